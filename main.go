package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/presbyterian-ypg/ypg-api/cmd/app"
)

// @contact.name   YPG Web Team
// @contact.email  webteam@ypg-church.org
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
