// Package main is the entry point for the boxcalc-service application.
//
// @title           Boxcalc Service API
// @version         1.0.0
// @description     API for validating supplier box packaging data and quoting orders.
//
//	Splits ordered quantities into full boxes and loose pieces, derives order
//	weight, volume and price, and estimates shipping by chargeable weight.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/boxcalc-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Products
// @tag.description Product packaging validation and catalog
//
// @tag.name        Orders
// @tag.description Order calculation and box breakdown
//
// @tag.name        Shipping
// @tag.description Shipping cost estimation
//
// @tag.name        Quotes
// @tag.description Priced order quotes
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	_ "github.com/guttosm/boxcalc-service/docs" // swagger docs

	"github.com/guttosm/boxcalc-service/config"
	"github.com/guttosm/boxcalc-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Warn().Err(err).Msg("Ignoring .env file")
	}
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server)

	runErr := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	application.Close(ctx)
	cancel()

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
