package adaptor

import (
	"errors"
	"net/http"

	"remarket/internal/dto/response"
	"remarket/internal/usecase"
	"remarket/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// IssueToken handles GET /jwt?email= (public). Unregistered emails get
// 403 with an empty accessToken.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	token, err := h.service.IssueToken(r.Context(), email)
	if err != nil {
		if errors.Is(err, usecase.ErrForbidden) {
			utils.ResponseJSON(w, http.StatusForbidden, false, err.Error(),
				response.TokenResponse{AccessToken: ""}, nil)
			return
		}
		handleServiceError(h.log, w, err, "issue token")
		return
	}

	utils.ResponseSuccess(w, "success", response.TokenResponse{AccessToken: token})
}
