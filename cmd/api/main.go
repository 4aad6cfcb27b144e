package main

import (
	_ "estimate_wizard/docs"
	"estimate_wizard/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Estimate Wizard API
// @version         1.0
// @description     Multi-step estimate request wizard for a detailing shop, with catalog, gallery and draft persistence.
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
