package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/halcyonlabs/studio-api/docs"
	"github.com/halcyonlabs/studio-api/internal/config"
	"github.com/halcyonlabs/studio-api/internal/middleware"
	"github.com/halcyonlabs/studio-api/internal/modules/handler"
	"github.com/halcyonlabs/studio-api/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config         *config.Config
	Log            *zap.Logger
	ClientHandler  *handler.ClientHandler
	ProjectHandler *handler.ProjectHandler
	InvoiceHandler *handler.InvoiceHandler
	CatalogHandler *handler.CatalogHandler
	ContactHandler *handler.ContactHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))

	// The dashboard is served from its own origin.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// public marketing-site surface
		v1.GET("/services", d.CatalogHandler.ListServices)
		v1.POST("/contact", d.ContactHandler.SubmitContact)

		auth := v1.Group("")
		auth.Use(middleware.UserAuth(d.Config))
		{
			auth.GET("/me", func(c *gin.Context) {
				userID := c.MustGet(middleware.ContextUserKey)
				c.JSON(http.StatusOK, serializer.Response{Data: gin.H{"user_id": userID}})
			})

			clients := auth.Group("/clients")
			{
				clients.GET("", d.ClientHandler.ListClients)
				clients.POST("", d.ClientHandler.CreateClient)
			}

			projects := auth.Group("/projects")
			{
				projects.GET("", d.ProjectHandler.ListProjects)
				projects.POST("", d.ProjectHandler.CreateProject)
				projects.GET("/:project_id", d.ProjectHandler.GetProject)
				projects.PUT("/:project_id", d.ProjectHandler.UpdateProject)
				projects.PUT("/:project_id/notes", d.ProjectHandler.UpdateNotes)
				projects.POST("/:project_id/image", d.ProjectHandler.ImageUploadURL)
			}

			invoices := auth.Group("/invoices")
			{
				invoices.GET("", d.InvoiceHandler.ListInvoices)
				invoices.POST("", d.InvoiceHandler.CreateInvoice)
				invoices.GET("/summary", d.InvoiceHandler.InvoiceSummary)
				invoices.PUT("/:invoice_id", d.InvoiceHandler.UpdateInvoice)
			}
		}
	}
	return r
}
