package cli

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the environment-driven CLI configuration. Profile data and
// region context always come from flags and files; the environment only
// shapes tool behavior.
type Config struct {
	LogLevel      string `env:"BIODATACHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"BIODATACHECK_LOG_FORMAT" envDefault:"text"`
	DefaultRegion string `env:"BIODATACHECK_DEFAULT_REGION" envDefault:"default"`
	Language      string `env:"BIODATACHECK_LANG" envDefault:"en"`
}

var (
	loadConfigOnce sync.Once
	loadedConfig   Config
	loadConfigErr  error
)

// LoadConfig parses the environment once per process, loading a local .env
// file first when present.
func LoadConfig() (Config, error) {
	loadConfigOnce.Do(func() {
		// A missing .env file is fine; explicit environment still applies.
		_ = godotenv.Load()
		if err := env.Parse(&loadedConfig); err != nil {
			loadConfigErr = fmt.Errorf("parse environment: %w", err)
		}
	})
	return loadedConfig, loadConfigErr
}
