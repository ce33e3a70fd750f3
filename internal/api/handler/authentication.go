package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/seller-pnl-api/internal/usecases/authenticating"
	"github.com/vfg2006/seller-pnl-api/pkg/apiErrors"
	"github.com/vfg2006/seller-pnl-api/pkg/log"
	"github.com/vfg2006/seller-pnl-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// authErrorCodes traduz os erros sentinela do serviço de autenticação
var authErrorCodes = []struct {
	err     error
	code    string
	message string
}{
	{authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais inválidas"},
	{authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, "Usuário desativado"},
	{authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado"},
	{authenticating.ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios"},
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		token, err := service.LoginUser(email, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithField("user_email", email).WithError(err).Warn("Falha no login")
			writeAuthError(w, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, r, LoginResponse{Token: token})
	}
}

// GetMe retorna o usuário logado com as lojas vinculadas
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(userClaims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithField("user_id", userClaims.UserID).WithError(err).Error("Erro ao obter perfil")
			writeAuthError(w, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, r, user)
	}
}

func writeAuthError(w http.ResponseWriter, err error, fallback string) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	for _, m := range authErrorCodes {
		if errors.Is(err, m.err) {
			apiErrors.WriteError(w, m.code, m.message, nil)
			return
		}
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
