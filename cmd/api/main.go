package main

import (
	"context"
	"log"

	"celestialbay/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
//
//	@title			Celestial Bay API
//	@version		1.0
//	@description	Hobby-astronomy community backend: user accounts, galaxies, posts, comments and images.
//	@BasePath		/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token, sent as "Bearer <token>". Obtain via /auth/login/.
func main() {
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("api server: %v", err)
	}
}
