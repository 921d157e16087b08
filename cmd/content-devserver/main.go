package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := Run(); err != nil {
		log.Error().Err(err).Msg("content-devserver exited with error")
		os.Exit(1)
	}
}
