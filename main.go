package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	app "github.com/rocketscienceinc/othello6/internal"
	"github.com/rocketscienceinc/othello6/internal/config"
)

const defaultConfigPath = "config.yml"

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "", "path to the yml config file (default: ./config.yml when present)")
	resumeID := flag.String("resume", "", "id of a stored game to continue")
	flag.Parse()

	_ = godotenv.Load()

	conf := initConfig(*configPath)
	logger := initLogger(conf)

	opts := app.Options{
		ResumeID: *resumeID,
		In:       os.Stdin,
		Out:      os.Stdout,
	}

	if err := app.RunApp(logger, conf, opts); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig(path string) *config.Config {
	if path != "" {
		return config.MustLoad(path)
	}

	if _, err := os.Stat(defaultConfigPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			panic(fmt.Errorf("failed to stat %s: %w", defaultConfigPath, err))
		}

		return config.MustLoad("")
	}

	return config.MustLoad(defaultConfigPath)
}

// initialize logger. Stdout belongs to the board, so logs go to stderr.
func initLogger(conf *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}
