// Package config provides configuration management with XDG lookup, .env files and Viper integration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	wordfs "github.com/gallows/hangman/internal/infra/fs"
	"github.com/gallows/hangman/internal/observability/logging"
	"github.com/gallows/hangman/internal/services"
	"github.com/gallows/hangman/internal/types"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load, e.g. HANGMAN_LOG_LEVEL.
const EnvPrefix = "HANGMAN"

// DefaultEnvFile is loaded when present and no other .env file is requested.
const DefaultEnvFile = ".env"

// Config represents the complete application configuration.
type Config struct {
	// Words is the list secret words are picked from
	Words []string `yaml:"words"`
	// WordsFile names a file with one word per line; it replaces Words when set
	WordsFile string `yaml:"words_file,omitempty"`
	// Word forces a fixed secret word when set
	Word string `yaml:"word,omitempty"`
	// Seed makes word picks reproducible; zero picks a random seed
	Seed uint64 `yaml:"seed"`

	Log LogConfig `yaml:"log"`
	UI  UIConfig  `yaml:"ui"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// UIConfig configures user-facing output.
type UIConfig struct {
	Colors  bool `yaml:"colors"`
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Words: services.DefaultWords(),
		Seed:  0,
		Log: LogConfig{
			Level:  string(logging.LevelSilent),
			Format: string(logging.FormatJSON),
		},
		UI: UIConfig{
			Colors:  true,
			Verbose: false,
		},
	}
}

// LoadEnvFile loads variables from an env file without overriding ones already set.
// An empty path loads DefaultEnvFile if it exists.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", DefaultEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// Load reads the configuration file at configPath, or searches the XDG config directory,
// the home directory and the working directory when configPath is empty. Environment
// variables override the file, and the result is validated.
func Load(configPath string) types.Either[error, Config] {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return types.Failure[error, Config](fmt.Errorf("failed to read config %s: %w", configPath, err))
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "hangman"))
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")

		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return types.Failure[error, Config](fmt.Errorf("failed to read config: %w", err))
		}
	}

	return types.FlatMap(ReadWordsFile(fromViper(v)), Validate)
}

// ReadWordsFile replaces the word list with the contents of cfg.WordsFile, if set.
func ReadWordsFile(cfg Config) types.Either[error, Config] {
	if cfg.WordsFile == "" {
		return types.Success[error](cfg)
	}
	words := types.MapFailure(wordfs.ReadWords(cfg.WordsFile), func(err error) error {
		return fmt.Errorf("failed to read words file: %w", err)
	})
	return types.Map(words, func(words []string) Config {
		cfg.Words = words
		return cfg
	})
}

func newViper() *viper.Viper {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("words", defaults.Words)
	v.SetDefault("words_file", defaults.WordsFile)
	v.SetDefault("word", defaults.Word)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("ui.colors", defaults.UI.Colors)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) Config {
	return Config{
		Words:     v.GetStringSlice("words"),
		WordsFile: v.GetString("words_file"),
		Word:      v.GetString("word"),
		Seed:      v.GetUint64("seed"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		UI: UIConfig{
			Colors:  v.GetBool("ui.colors"),
			Verbose: v.GetBool("ui.verbose"),
		},
	}
}

// Validate checks the configuration and normalizes its words to upper case.
func Validate(cfg Config) types.Either[error, Config] {
	words := make([]string, 0, len(cfg.Words))
	for _, w := range cfg.Words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if !services.IsAlphabetic(w) {
			return types.Failure[error, Config](fmt.Errorf("invalid word %q: words may only contain letters", w))
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		return types.Failure[error, Config](errors.New("word list cannot be empty"))
	}
	cfg.Words = words

	cfg.Word = strings.ToUpper(strings.TrimSpace(cfg.Word))
	if cfg.Word != "" && !services.IsAlphabetic(cfg.Word) {
		return types.Failure[error, Config](fmt.Errorf("invalid word %q: words may only contain letters", cfg.Word))
	}

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return types.Failure[error, Config](err)
	}
	if _, err := logging.ParseFormat(cfg.Log.Format); err != nil {
		return types.Failure[error, Config](err)
	}

	return types.Success[error](cfg)
}

// Dictionary builds the word supply described by the configuration.
func (c Config) Dictionary() services.Dictionary {
	if c.Word != "" {
		return services.FixedDictionary(c.Word)
	}
	return services.NewRandomDictionary(c.Words, c.Seed)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}
