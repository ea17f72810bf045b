package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/hangman-backend/internal/apperror"
)

const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceRedis   = "redis"
)

var ErrVocabularyPathEmpty = errors.New("vocabulary path is empty")

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat  string     `yaml:"log-format" env:"LOG_FORMAT" env-default:"console"`
	HTTPPort   string     `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Vocabulary Vocabulary `yaml:"vocabulary"`
	Redis      Redis      `yaml:"redis"`
}

type Vocabulary struct {
	Source string `yaml:"source" env:"VOCABULARY_SOURCE" env-default:"builtin"`
	Path   string `yaml:"path" env:"VOCABULARY_PATH" env-default:""`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Key  string `yaml:"key" env:"REDIS_VOCABULARY_KEY" env-default:"vocabulary:words"`
}

// Load reads the config file at path when it exists, otherwise the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.Vocabulary.Source {
	case SourceBuiltin, SourceRedis:
		return nil
	case SourceFile:
		if that.Vocabulary.Path == "" {
			return ErrVocabularyPathEmpty
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownVocabularySource, that.Vocabulary.Source)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
