package util

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

type CutConfig struct {
	Trials      int
	Workers     int
	Seed        uint64
	Strategy    string
	SamplerRuns int

	LogFile       string
	LogMaxSizeMB  int
	LogMaxAgeDays int
	Debug         bool
}

func setCutDefaults() {
	viper.SetDefault("KARGER_TRIALS", 50)
	viper.SetDefault("KARGER_WORKERS", runtime.NumCPU())
	viper.SetDefault("KARGER_SEED", 0)
	viper.SetDefault("KARGER_STRATEGY", "uniform_edge")
	viper.SetDefault("SAMPLER_RUNS", 1000)

	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("LOG_MAX_SIZE_MB", 100)
	viper.SetDefault("LOG_MAX_AGE_DAYS", 7)
	viper.SetDefault("DEBUG", false)
}

// LoadCutConfig reads ./data/config.* when present and falls back to defaults and
// environment variables otherwise. A missing config file is not an error.
func LoadCutConfig() (CutConfig, error) {
	setCutDefaults()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := ReadConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return CutConfig{}, err
		}
	}

	cfg := CutConfig{
		Trials:        viper.GetInt("KARGER_TRIALS"),
		Workers:       viper.GetInt("KARGER_WORKERS"),
		Seed:          viper.GetUint64("KARGER_SEED"),
		Strategy:      viper.GetString("KARGER_STRATEGY"),
		SamplerRuns:   viper.GetInt("SAMPLER_RUNS"),
		LogFile:       viper.GetString("LOG_FILE"),
		LogMaxSizeMB:  viper.GetInt("LOG_MAX_SIZE_MB"),
		LogMaxAgeDays: viper.GetInt("LOG_MAX_AGE_DAYS"),
		Debug:         viper.GetBool("DEBUG"),
	}
	if cfg.Trials < 1 {
		return CutConfig{}, NewErrorf(ErrConfiguration, Fields{"trials": cfg.Trials},
			"KARGER_TRIALS must be at least 1")
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}
