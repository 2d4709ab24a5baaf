package main

import (
	"fmt"
	"os"

	"github.com/SscSPs/factory_ops_app/internal/cli"
)

// @title Factory Ops API
// @version 1.0
// @description Factories, workers, daily piecework logs and reports for a factory owner and their managers.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
