// Package logger configures the process-global zerolog logger, grounded on
// salon-shared/logger.Init: parse the configured level (falling back to
// info on a bad value), attach a service name field, and install the
// result as the package-level logger every call site reaches via
// github.com/rs/zerolog/log.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger for the process.
func Init(level, serviceName string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stderr).With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}
