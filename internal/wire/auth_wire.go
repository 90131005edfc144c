package wire

import (
	"remarket/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// GET /jwt - issue access token for a registered email (public)
	r.Get("/jwt", authHandler.IssueToken)
}
