package main

import (
	"os"

	"healthtrack/config"
	"healthtrack/routes"

	"github.com/rs/zerolog"
)

func main() {
	config.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	db, err := config.InitDB()
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	r := routes.SetupRouter(db, log)
	if err := r.Run(config.Port()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
