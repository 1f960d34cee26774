package main

import (
	"log"

	_ "quotebot/docs"
	"quotebot/internal/adapter/http/routes"
	"quotebot/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CustomCraft QuoteBot API
// @version         1.0
// @description     Human-in-the-loop quoting for central vacuum systems.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	routes.Run(cfg)
}
