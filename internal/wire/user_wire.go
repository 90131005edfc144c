package wire

import (
	"remarket/internal/adaptor"
	"remarket/internal/data/repository"
	"remarket/pkg/middleware"
	"remarket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /users - register, duplicate email rejected with 400
	r.Post("/users", userHandler.CreateUser)

	// GET /users/admin/{email} - boolean admin check
	r.Get("/users/admin/{email}", userHandler.CheckAdmin)

	// GET /users/{email} - fetch one user
	r.Get("/users/{email}", userHandler.GetUser)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))

		// PUT /users/{id} - partial profile update
		r.Put("/users/{id}", userHandler.UpdateUser)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /users - list users, filter by status / email search
		r.Get("/users", userHandler.ListUsers)

		// PUT /users/status/{id} - change user status
		r.Put("/users/status/{id}", userHandler.SetUserStatus)
	})
}
