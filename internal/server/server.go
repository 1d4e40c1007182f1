package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/hiresync/hubspot-bridge/internal/config"
	pkgmdw "github.com/hiresync/hubspot-bridge/internal/server/middleware"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	handler Controller,
	contacts ContactController,
	properties PropertyController,
) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = errorHandler()

	logConfig := pkgmdw.LogRequestConfig{
		Logger: logger.MustNamed("http"),
		Enabled: func(c echo.Context) bool {
			uri := c.Request().RequestURI
			return uri != "/health" && uri != "/metrics"
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}))

	e.GET("/health", handler.Health)
	e.GET("/", handler.Root)

	api := e.Group("/api")

	props := api.Group("/properties")
	props.GET("", properties.List)
	props.POST("", properties.Create)
	props.POST("/setup", properties.Setup)
	props.GET("/:name", properties.Get)

	crm := api.Group("/contacts")
	crm.POST("", contacts.Create)
	crm.GET("", contacts.Search)
	crm.POST("/batch", contacts.BatchCreate)
	crm.GET("/:id", contacts.Get)
	crm.PATCH("/:id", contacts.Update)
	crm.DELETE("/:id", contacts.Delete)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow(ctx, "starting HTTP server", "addr", conf.Server.Addr())
				if err := e.Start(conf.Server.Addr()); !errors.Is(err, http.ErrServerClosed) {
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}
