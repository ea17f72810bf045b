package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	app "github.com/rocketscienceinc/hangman-backend/internal"
	"github.com/rocketscienceinc/hangman-backend/internal/config"
	"github.com/rocketscienceinc/hangman-backend/internal/console"
	"github.com/rocketscienceinc/hangman-backend/internal/logger"
)

const usage = `usage: hangman <command> [flags]

commands:
  play   play in the terminal (default)
  demo   print a step-by-step run of the game algorithm
  serve  serve the game over HTTP and websocket
  vocab  store a vocabulary file in redis
`

var errVocabFileRequired = errors.New("vocab: -file is required")

// main - is the entry point of the application. It initializes the configuration, logger, and runs the command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	command, args := "play", os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		command, args = args[0], args[1:]
	}

	if err := run(command, args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", command, err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "./config.yml", "Path to the YAML config file.")
	word := fs.String("word", console.DemoWord, "Word played by the demo command.")
	file := fs.String("file", "", "Vocabulary file stored by the vocab command.")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	if command == "demo" {
		return console.Demo(os.Stdout, *word)
	}

	conf := config.MustLoad(*configPath)
	log := initLogger(conf)
	defer func() {
		_ = log.Sync()
	}()

	ctx, cancel := app.WithSignals(context.Background(), log)
	defer cancel()

	switch command {
	case "play":
		return app.RunPlay(ctx, log, conf, os.Stdin, os.Stdout)
	case "serve":
		return app.RunServe(ctx, log, conf)
	case "vocab":
		if *file == "" {
			return errVocabFileRequired
		}
		return app.RunVocab(ctx, log, conf, *file)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// initialize logger.
func initLogger(conf *config.Config) *zap.SugaredLogger {
	log, err := logger.New(conf.LogLevel, conf.LogFormat)
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return log
}
