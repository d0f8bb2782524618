package logging

import (
	"os"

	gnarklogger "github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

func Logger() *zerolog.Logger {
	return &log
}

// SetJSONOutput switches to machine-readable output and rebinds gnark's
// internal logger so backend timings land on the same stream.
func SetJSONOutput() {
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
	gnarklogger.Set(log)
}
