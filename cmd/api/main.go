package main

import (
	_ "bitumen_production/docs"
	"bitumen_production/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Bitumen Production API
// @version         1.0
// @description     BN-3 to BN-5 kettle conversion, blend packaging sessions and the material ledger.

// @contact.name   Plant Engineering

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
