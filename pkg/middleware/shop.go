package middleware

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/seller-pnl-api/pkg/apiErrors"
	"github.com/vfg2006/seller-pnl-api/pkg/log"
)

// ShopParam é o nome do parâmetro de rota com o ID da loja
const ShopParam = "id"

// ShopAccess restringe a rota às lojas vinculadas ao usuário do token.
// Deve ser aplicado depois do middleware de role.
func ShopAccess() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			shopID, err := strconv.ParseInt(httprouter.ParamsFromContext(r.Context()).ByName(ShopParam), 10, 64)
			if err != nil || shopID <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da loja inválido", nil)
				return
			}

			if !userClaims.CanAccessShop(shopID, RoleAdmin) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_id": userClaims.UserID,
					"shop_id": shopID,
				}).Warn("Acesso negado à loja")
				apiErrors.WriteError(w, apiErrors.ErrShopAccessDenied, "Usuário sem acesso a esta loja", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ShopRoutes combina a verificação de role e de vínculo com a loja
func ShopRoutes() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{AllRoles(), ShopAccess()}
}
