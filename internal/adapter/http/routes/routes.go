package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "quotebot/docs"
	"quotebot/internal/adapter/http/handlers"
	"quotebot/internal/app"
	"quotebot/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg *config.Config) {
	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	if err := serve(a, ":"+strconv.Itoa(cfg.Port)); err != nil {
		log.Printf("Failed to startup the application: %v", err)
		os.Exit(1)
	}
}

// serve runs the router on addr and closes the app once it stops.
func serve(a *app.App, addr string) error {
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("[app][routes] close failed err=%v", err)
		}
	}()
	return NewRouter(a).Run(addr)
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	projectHandler := handlers.NewProjectHandler(a.Workflow)
	catalogHandler := handlers.NewCatalogHandler(a.Catalog)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProjectRoutes(v1, projectHandler)
	addCatalogRoutes(v1, catalogHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
