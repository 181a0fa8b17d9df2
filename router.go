package main

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/buildwise/buildwise-backend/api"
	"github.com/buildwise/buildwise-backend/api/middleware"
	"github.com/buildwise/buildwise-backend/usecases"
	"github.com/buildwise/buildwise-backend/utils"
)

func corsOption(env string) cors.Config {
	allowedOrigins := []string{"*"}

	if env == "development" {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://localhost:5173")
	}

	return cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{http.MethodOptions, http.MethodHead, http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch},
		AllowHeaders:     []string{"Authorization", "Content-Type", "baggage", "sentry-trace"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

func initRouter(ctx context.Context, conf AppConfiguration, uc usecases.Usecases) *gin.Engine {
	if conf.env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)
	loggingMiddleware := middleware.NewLogging(logger, middleware.WithIgnorePath([]string{"/liveness"}))

	r := gin.New()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:           conf.sentryDsn,
		EnableTracing: true,
		Environment:   conf.env,
		TracesSampler: sentry.TracesSampler(func(ctx sentry.SamplingContext) float64 {
			if ctx.Span.Name == "GET /liveness" {
				return 0.0
			}
			return 1.0
		}),
	}); err != nil {
		panic(err)
	}

	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(cors.New(corsOption(conf.env)))
	r.Use(loggingMiddleware)
	r.Use(otelgin.Middleware("buildwise-backend"))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))

	api.AddRoutes(r, uc)

	return r
}
