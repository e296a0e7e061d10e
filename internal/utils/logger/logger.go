// Package logger provides a global logger for the application
package logger

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"go.uber.org/zap"
)

// Logger backs Sugar. It is a no-op until Init runs so library code can log
// unconditionally.
var Logger = zap.NewNop()

// LevelForEnvironment maps ENVIRONMENT to the default zerolog level.
func LevelForEnvironment(environment string) (zerolog.Level, bool) {
	switch strings.ToLower(environment) {
	case "dev", "test":
		return zerolog.TraceLevel, true
	case "prod":
		return zerolog.InfoLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}

func initLogger() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal().Err(err).Msg("Error loading .env file!")
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	debug := flag.Bool("debug", false, "sets log level to debug")
	trace := flag.Bool("trace", false, "sets log level to trace")
	info := flag.Bool("info", false, "sets log level to info (default)")
	flag.Parse()

	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	if environment == "" {
		environment = "prod"
	}

	logLevel, known := LevelForEnvironment(environment)
	if known {
		log.Info().Str("environment", environment).Str("level", logLevel.String()).Msg("Environment detected")
	} else {
		log.Warn().Str("environment", environment).Msg("Unknown environment - defaulting to production log level (info and above)")
	}

	if *debug {
		logLevel = zerolog.DebugLevel
		log.Info().Msg("Debug flag detected - overriding environment log level")
	} else if *trace {
		logLevel = zerolog.TraceLevel
		log.Info().Msg("Trace flag detected - overriding environment log level")
	} else if *info {
		logLevel = zerolog.InfoLevel
		log.Info().Msg("Info flag detected - overriding environment log level")
	}

	zerolog.SetGlobalLevel(logLevel)

	var (
		zl  *zap.Logger
		err error
	)
	if environment == "prod" {
		zl, err = zap.NewProduction()
	} else {
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Warn().Err(err).Msg("failed to build zap logger, sugared logs are disabled")
		return
	}
	Logger = zl
}

// Init initializes the logger with the configuration from the environment
// and command line flags.
// It sets up the global logger to use zerolog with console output.
// Example usage:
//
//	logger.Init() <- inside whichever main() function in your entrypoint
//
// Then, `go run ./cmd/coincidence --debug`
func Init() {
	initLogger()
}

// Sugar returns a sugared logger for easier use
func Sugar() *zap.SugaredLogger {
	return Logger.Sugar()
}
