package bootstrap

import (
	"context"
	"time"

	"github.com/halcyonlabs/studio-api/internal/config"
	"github.com/halcyonlabs/studio-api/internal/infra/blob"
	"github.com/halcyonlabs/studio-api/internal/infra/cache"
	"github.com/halcyonlabs/studio-api/internal/infra/db"
	"github.com/halcyonlabs/studio-api/internal/infra/logger"
	"github.com/halcyonlabs/studio-api/internal/infra/mailer"
	"github.com/halcyonlabs/studio-api/internal/modules/handler"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"github.com/halcyonlabs/studio-api/internal/modules/repo"
	"github.com/halcyonlabs/studio-api/internal/modules/service"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.Client{},
				&model.Project{},
				&model.Invoice{},
				&model.ServiceOffering{},
				&model.ContactMessage{},
			)
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewStore(context.Background(), cfg)
	})

	// Mailer
	do.Provide(inj, func(i *do.Injector) (mailer.Mailer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return mailer.NewSMTP(cfg), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ClientRepo, error) {
		return repo.NewClientRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.InvoiceRepo, error) {
		return repo.NewInvoiceRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CatalogRepo, error) {
		return repo.NewCatalogRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ContactRepo, error) {
		return repo.NewContactRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ClientService, error) {
		return service.NewClientService(do.MustInvoke[repo.ClientRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.InvoiceService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewInvoiceService(
			do.MustInvoke[repo.InvoiceRepo](i),
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*zap.Logger](i),
			time.Duration(cfg.Redis.SummaryTTLSec)*time.Second,
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CatalogService, error) {
		return service.NewCatalogService(do.MustInvoke[repo.CatalogRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ContactService, error) {
		return service.NewContactService(
			do.MustInvoke[repo.ContactRepo](i),
			do.MustInvoke[mailer.Mailer](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ClientHandler, error) {
		return handler.NewClientHandler(do.MustInvoke[service.ClientService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(
			do.MustInvoke[service.ProjectService](i),
			do.MustInvoke[*blob.Store](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.InvoiceHandler, error) {
		return handler.NewInvoiceHandler(do.MustInvoke[service.InvoiceService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CatalogHandler, error) {
		return handler.NewCatalogHandler(do.MustInvoke[service.CatalogService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ContactHandler, error) {
		return handler.NewContactHandler(do.MustInvoke[service.ContactService](i)), nil
	})

	return inj
}
