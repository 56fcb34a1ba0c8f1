package main

import (
	_ "construction_estimation/docs"
	"construction_estimation/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Construction Estimation API
// @version         1.0
// @description     Construction estimation records (clients, estimates, invoices) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
