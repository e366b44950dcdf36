package main

import (
	"log"

	"cafefausse/config"
	"cafefausse/handlers"
	"cafefausse/models"
	"cafefausse/server"

	"github.com/rohanthewiz/logger"
)

func main() {
	cfg := config.Load()

	logger.SetLogLevel(cfg.LogLevel)

	// The site is a pure presentation layer; reservations and newsletter
	// signups are forwarded to the remote reservation service.
	handlers.Init(models.NewServiceClient(cfg.ServiceURL))

	srv := server.New(cfg)
	logger.Info("Café Fausse web starting", "address", cfg.Address, "service_url", cfg.ServiceURL)
	log.Fatal(server.Run(srv))
}
