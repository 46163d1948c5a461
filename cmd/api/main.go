package main

import (
	_ "oficina_diesel/docs"
	"oficina_diesel/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Oficina Diesel Service Order API
// @version         1.0
// @description     Service order lifecycle engine (budgets + payments) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
