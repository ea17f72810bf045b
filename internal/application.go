package application

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rocketscienceinc/hangman-backend/internal/apperror"
	"github.com/rocketscienceinc/hangman-backend/internal/config"
	"github.com/rocketscienceinc/hangman-backend/internal/console"
	"github.com/rocketscienceinc/hangman-backend/internal/entity"
	"github.com/rocketscienceinc/hangman-backend/internal/repository"
	"github.com/rocketscienceinc/hangman-backend/internal/repository/storage"
	"github.com/rocketscienceinc/hangman-backend/internal/usecase"
	"github.com/rocketscienceinc/hangman-backend/internal/vocabulary"
	"github.com/rocketscienceinc/hangman-backend/transport/rest"
	"github.com/rocketscienceinc/hangman-backend/transport/websocket"
)

// WithSignals returns a context cancelled on SIGINT or SIGTERM.
func WithSignals(ctx context.Context, logger *zap.SugaredLogger) (context.Context, context.CancelFunc) {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigs)

		select {
		case sig := <-sigs:
			log.Infow("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// LoadVocabulary resolves the configured vocabulary source. The builtin source
// returns nil so that the game falls back to its default list.
func LoadVocabulary(ctx context.Context, conf *config.Config) ([]string, error) {
	switch conf.Vocabulary.Source {
	case config.SourceBuiltin:
		return nil, nil
	case config.SourceFile:
		words, err := vocabulary.LoadFile(conf.Vocabulary.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary file: %w", err)
		}
		return words, nil
	case config.SourceRedis:
		client, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}
		defer client.Close()

		words, err := repository.NewVocabularyRepository(client, conf.Redis.Key).GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary from redis: %w", err)
		}
		return words, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownVocabularySource, conf.Vocabulary.Source)
	}
}

func newGame(ctx context.Context, logger *zap.SugaredLogger, conf *config.Config) (*entity.Game, error) {
	words, err := LoadVocabulary(ctx, conf)
	if err != nil {
		return nil, err
	}

	game, err := entity.NewGame(words, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	logger.Debugw("game created", "source", conf.Vocabulary.Source, "words", len(words))

	return game, nil
}

// RunPlay plays the console game on in/out.
func RunPlay(ctx context.Context, logger *zap.SugaredLogger, conf *config.Config, in io.Reader, out io.Writer) error {
	game, err := newGame(ctx, logger, conf)
	if err != nil {
		return err
	}

	if err = console.New(logger, game, in, out).Play(ctx); err != nil {
		return fmt.Errorf("console game failed: %w", err)
	}

	return nil
}

// RunServe serves the REST and websocket APIs for a single game until ctx is cancelled.
func RunServe(ctx context.Context, logger *zap.SugaredLogger, conf *config.Config) error {
	log := logger.With("component", "app")

	game, err := newGame(ctx, logger, conf)
	if err != nil {
		return err
	}

	session := usecase.NewGameSession(logger, game)

	router := rest.NewRouter()
	rest.NewHandler(logger, session).Register(router)
	websocket.New(logger, session).Register(router)

	log.Infow("Starting HTTP server", "port", conf.HTTPPort)
	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Infow("Application context canceled, shutting down")

	return nil
}

// RunVocab validates the vocabulary file at path and stores it in Redis.
func RunVocab(ctx context.Context, logger *zap.SugaredLogger, conf *config.Config, path string) error {
	log := logger.With("component", "app")

	words, err := vocabulary.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load vocabulary file: %w", err)
	}

	if _, err = entity.NewGame(words, nil); err != nil {
		return fmt.Errorf("vocabulary rejected: %w", err)
	}

	client, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Errorw("could not close redis storage", "error", closeErr)
		}
	}()

	if err = repository.NewVocabularyRepository(client, conf.Redis.Key).Replace(ctx, words); err != nil {
		return fmt.Errorf("failed to store vocabulary: %w", err)
	}

	log.Infow("vocabulary stored", "key", conf.Redis.Key, "words", len(words))

	return nil
}
