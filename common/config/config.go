// Package config loads the analyzer's configuration with viper: a yaml
// file named on the command line, overridable by environment variables,
// reloaded on change.
package config

import (
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Conf is the loaded configuration. Read it through Get after Load.
var (
	mu   sync.RWMutex
	Conf Configuration
)

type Configuration struct {
	Name       string    `mapstructure:"name"`
	HTTPPort   int       `mapstructure:"httpPort"`
	MetricPort int       `mapstructure:"metricPort"`
	GinMode    string    `mapstructure:"ginMode"`
	LogConf    LogConf   `mapstructure:"log"`
	CacheConf  CacheConf `mapstructure:"cache"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

type CacheConf struct {
	MaxCost    int64 `mapstructure:"maxCost"`
	TTLSeconds int   `mapstructure:"ttlSeconds"`
}

// Load reads the config file and keeps watching it; a changed file is
// re-unmarshaled in place so long-running servers pick up level changes.
func Load(configFile string) error {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return err
	}
	setDefaults(&cfg)

	mu.Lock()
	Conf = cfg
	mu.Unlock()

	v.WatchConfig()
	v.OnConfigChange(func(in fsnotify.Event) {
		var next Configuration
		if err := v.Unmarshal(&next); err != nil {
			return
		}
		setDefaults(&next)
		mu.Lock()
		Conf = next
		mu.Unlock()
	})

	return nil
}

// Get returns a copy of the current configuration.
func Get() Configuration {
	mu.RLock()
	defer mu.RUnlock()
	return Conf
}

func setDefaults(cfg *Configuration) {
	if cfg.Name == "" {
		cfg.Name = "riichi-analyzer"
	}
	if cfg.HTTPPort == 0 {
		cfg.HTTPPort = 8080
	}
	if cfg.MetricPort == 0 {
		cfg.MetricPort = 8081
	}
	if cfg.CacheConf.MaxCost == 0 {
		cfg.CacheConf.MaxCost = 1 << 26
	}
	if cfg.CacheConf.TTLSeconds == 0 {
		cfg.CacheConf.TTLSeconds = 600
	}
}
