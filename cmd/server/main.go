package main

//	@title			Studio API
//	@version		1.0
//	@description	API for the studio marketing site and admin dashboard.
//	@schemes		http https
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				User bearer token (JWT)

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/halcyonlabs/studio-api/internal/bootstrap"
	"github.com/halcyonlabs/studio-api/internal/config"
	"github.com/halcyonlabs/studio-api/internal/modules/handler"
	"github.com/halcyonlabs/studio-api/internal/modules/service"
	"github.com/halcyonlabs/studio-api/internal/router"
	"github.com/samber/do"
	"go.uber.org/zap"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)

	// seed the public service catalog on first boot
	if cfg.Database.SeedCatalog {
		catalog := do.MustInvoke[service.CatalogService](inj)
		if err := catalog.Seed(context.Background()); err != nil {
			log.Sugar().Warnw("catalog seed failed", "err", err)
		}
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	// build handlers
	clientHandler := do.MustInvoke[*handler.ClientHandler](inj)
	projectHandler := do.MustInvoke[*handler.ProjectHandler](inj)
	invoiceHandler := do.MustInvoke[*handler.InvoiceHandler](inj)
	catalogHandler := do.MustInvoke[*handler.CatalogHandler](inj)
	contactHandler := do.MustInvoke[*handler.ContactHandler](inj)

	engine := router.NewRouter(router.RouterDeps{
		Config:         cfg,
		Log:            log,
		ClientHandler:  clientHandler,
		ProjectHandler: projectHandler,
		InvoiceHandler: invoiceHandler,
		CatalogHandler: catalogHandler,
		ContactHandler: contactHandler,
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
