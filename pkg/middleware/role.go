package middleware

import (
	"net/http"
	"slices"

	"github.com/vfg2006/seller-pnl-api/pkg/apiErrors"
	"github.com/vfg2006/seller-pnl-api/pkg/log"
)

// Identificadores de role gravados nas claims
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleSeller     = 3
)

// RoleMiddleware libera a rota apenas para os roles informados.
// Sem claims no contexto responde 401, com role fora da lista responde 403.
func RoleMiddleware(allowedRoles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Claims gravadas pelo AuthMiddleware
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			// Verifica se o role do usuário está entre os permitidos
			if !slices.Contains(allowedRoles, userClaims.UserRoleID) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_id":   userClaims.UserID,
					"user_role": userClaims.UserRoleID,
					"path":      r.URL.Path,
				}).Warn("Acesso negado por role")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			// Role permitido, segue para o próximo handler
			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly protege as rotas operacionais, como o disparo das crons
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin)
}

// AllRoles aceita qualquer usuário autenticado com role conhecido
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin, RoleSupervisor, RoleSeller)
}
