// Package config holds the settings shared by the command line and the server.
package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/powellquiring/versebot/strategy"
	"github.com/powellquiring/versebot/wordle"
)

type Config struct {
	// WordsDir holds words-N.txt lists, empty uses the embedded lists
	WordsDir   string   `yaml:"words_dir" validate:"omitempty,dir"`
	Length     int      `yaml:"length" validate:"gte=3,lte=12"`
	MaxGuesses int      `yaml:"max_guesses" validate:"gte=1,lte=100"`
	Strategy   string   `yaml:"strategy" validate:"required,strategy"`
	Seed       uint64   `yaml:"seed"`
	Workers    int      `yaml:"workers" validate:"gte=0,lte=1024"`
	SimCount   int      `yaml:"sim_count" validate:"gte=1"`
	Opening    []string `yaml:"opening,omitempty" validate:"dive,alpha"`
	LogLevel   string   `yaml:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Listen     string   `yaml:"listen" validate:"required,hostname_port"`
}

func Default() *Config {
	return &Config{
		Length:     5,
		MaxGuesses: 6,
		Strategy:   strategy.KindEliminator,
		SimCount:   1000,
		LogLevel:   "info",
		Listen:     ":8080",
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
			kind := strategy.Canonical(fl.Field().String())
			for _, known := range strategy.Kinds() {
				if kind == known {
					return true
				}
			}
			return false
		})
	})
	return validate
}

// Load reads path over the defaults, an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, wordle.Configurationf("read config: %v", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, wordle.Configurationf("parse config %s: %v", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return wordle.Configurationf("invalid config: %v", err)
	}
	return nil
}

// OpeningWords parses the configured clique opening
func (c *Config) OpeningWords() ([]wordle.Word, error) {
	words, err := wordle.ParseWords(c.Opening)
	if err != nil {
		return nil, wordle.Configurationf("opening: %v", err)
	}
	return words, nil
}

func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
