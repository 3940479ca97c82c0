package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folkers/internal/auth"
	"folkers/internal/config"
	"folkers/internal/middleware"
	"folkers/internal/service"
	"folkers/internal/uploads"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров: собирает маршруты
// в группы по минимальной роли доступа.
func NewHandler(
	userService *service.UserService,
	personService *service.PersonService,
	signatureService *service.SignatureService,
	store *uploads.Store,
	tokens *auth.TokenService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	userHandler := NewUserHandler(userService, logger)
	personHandler := NewPersonHandler(personService, logger)
	mediaHandler := NewMediaHandler(store, logger, cfg)
	signatureHandler := NewSignatureHandler(signatureService, logger)

	// Public routes
	r.Get("/", userHandler.Root)
	r.Get("/health", userHandler.Health)
	r.Post("/login", userHandler.Login)

	// Watcher routes: проверка роли идёт до любого обращения к данным,
	// неавторизованный вызов не узнает о существовании записи
	r.Group(func(r chi.Router) {
		r.Use(middleware.WithAuth(tokens))
		r.Use(middleware.RequireRole(auth.RoleWatcher))

		r.Get("/me", userHandler.Me)
		r.Get("/media/{hash}", mediaHandler.Get)
		r.Get("/persons", personHandler.List)
		r.Get("/persons/search", personHandler.Search)
		r.Get("/persons/{id}", personHandler.Get)
	})

	// Editor routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.WithAuth(tokens))
		r.Use(middleware.RequireRole(auth.RoleEditor))

		r.Post("/upload", mediaHandler.Upload)
		r.Post("/persons/create", personHandler.Create)
		r.Patch("/persons/{id}", personHandler.Patch)
		r.Delete("/persons/{id}", personHandler.Delete)
		r.Get("/persons/{id}/verify", signatureHandler.Verify)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.WithAuth(tokens))
		r.Use(middleware.RequireRole(auth.RoleAdmin))

		r.Get("/users", userHandler.List)
		r.Post("/users/create", userHandler.Create)
		r.Get("/users/{username}", userHandler.Get)
		r.Patch("/users/{username}", userHandler.Patch)
		r.Delete("/users/{username}", userHandler.Delete)

		r.Post("/signature-keygen", userHandler.Keygen)
		r.Delete("/signature-reset", userHandler.KeyReset)
		r.Post("/persons/{id}/sign", signatureHandler.Sign)
		r.Delete("/persons/{id}/unsign", signatureHandler.Unsign)
	})

	return &Handler{Router: r}
}
