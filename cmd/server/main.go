package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"folkers/internal/auth"
	"folkers/internal/config"
	"folkers/internal/handlers"
	"folkers/internal/middleware"
	"folkers/internal/repo"
	"folkers/internal/service"
	"folkers/internal/uploads"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx := context.Background()

	// секрет и соль обязательны: без них сервис не стартует,
	// а не работает с отключённой криптографией
	if cfg.AuthSecret == "" {
		sugar.Fatalw("AUTH_SECRET is not configured")
	}
	hasher, err := auth.NewHasher(cfg.Base64Salt)
	if err != nil {
		sugar.Fatalw("BASE64_SALT failed verification", "error", err)
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	store, err := uploads.NewStore(cfg.UploadsDir, int64(cfg.UploadMaxSizeMB)*1024*1024)
	if err != nil {
		sugar.Fatalw("failed to initialize uploads dir", "error", err)
	}

	tokens := auth.NewTokenService(cfg.AuthSecret, cfg.TokenTTL)

	userRepo := repo.NewUserRepository(gormDB)
	personRepo := repo.NewPersonRepository(gormDB)
	signatureRepo := repo.NewSignatureRepository(gormDB)

	userService := service.NewUserService(userRepo, hasher, tokens)
	personService := service.NewPersonService(personRepo)
	signatureService := service.NewSignatureService(signatureRepo, personRepo)

	if err := userService.EnsureStaticAdmin(ctx, cfg.StaticAdminUsername, cfg.StaticAdminPassword); err != nil {
		sugar.Warnw("static admin wasn't initialized", "error", err)
	}

	h := handlers.NewHandler(userService, personService, signatureService, store, tokens, sugar, cfg)

	sugar.Infow(
		"Starting server",
		"addr", cfg.RunAddress,
		"uploads_dir", cfg.UploadsDir,
		"token_ttl", cfg.TokenTTL,
	)

	if err := http.ListenAndServe(cfg.RunAddress, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
