package setup

import (
	"github.com/repline-dev/repline/internal/config"
	"github.com/repline-dev/repline/internal/handler"
	"github.com/repline-dev/repline/internal/jwt"
	"github.com/repline-dev/repline/internal/middleware"
	"github.com/repline-dev/repline/internal/service"
	"github.com/repline-dev/repline/internal/storage/pg"
	"github.com/repline-dev/repline/internal/utils"
	"github.com/repline-dev/repline/internal/validation"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *middleware.Auth
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	authMw := middleware.NewAuth(jwtService)

	titleValidator := &utils.SubmissionTitleValidator{MaxLen: cfg.Public.MaxTitleLen}
	payloadValidator := &utils.MessagePayloadValidator{
		MaxLen:   cfg.Public.MaxMessageLen,
		VideoRef: validation.NewVideoRefValidator(cfg.Public.AllowedVideoHosts),
	}

	submission := service.NewSubmission(storage, titleValidator, &cfg.Public)
	message := service.NewMessage(storage, payloadValidator, service.NewTextSanitizer())
	readStatus := service.NewReadStatus(storage)

	h := handler.New(submission, message, readStatus, storage, cfg)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		Jwt:            jwtService,
		AuthMiddleware: authMw,
	}, nil
}
