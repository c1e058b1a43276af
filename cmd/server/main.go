package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexkarev/authgate/pkg/config"
	"github.com/alexkarev/authgate/pkg/environment"
	"github.com/alexkarev/authgate/pkg/httpserver"
	"github.com/alexkarev/authgate/pkg/identity"
	"github.com/alexkarev/authgate/pkg/logger"
	"github.com/alexkarev/authgate/pkg/requestid"
	"github.com/alexkarev/authgate/svc/auth"
)

func main() {
	ctx := context.Background()

	var (
		authCfg   auth.Config
		idpCfg    identity.Config
		serverCfg httpserver.Config
	)
	config.MustLoad(&authCfg)
	config.MustLoad(&idpCfg)
	config.MustLoad(&serverCfg)

	env := environment.Parse(authCfg.Environment)
	log := logger.New(
		logger.WithEnvironment(env, "authgate"),
		logger.WithContextExtractors(requestid.LogExtractor()),
	)

	provider, err := identity.NewCognitoProvider(ctx, idpCfg)
	if err != nil {
		log.ErrorContext(ctx, "identity provider init failed", logger.Error(err))
		os.Exit(1)
	}

	svc := auth.New(authCfg, idpCfg, provider, log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Get("/healthz", httpserver.HealthCheckHandler())
	r.Mount("/auth", svc.Handle())

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.ErrorContext(ctx, "server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
