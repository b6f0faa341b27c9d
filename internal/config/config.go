// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	API struct {
		// BaseURL は接続先のAPIサーバ。空ならインメモリの擬似APIを立てて接続する
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"api"`
	App struct {
		PageSize               int `mapstructure:"page_size"`
		SummaryIntervalSeconds int `mapstructure:"summary_interval_seconds"`
	} `mapstructure:"app"`
	Outbox struct {
		Path                 string  `mapstructure:"path"`
		FlushIntervalSeconds int     `mapstructure:"flush_interval_seconds"`
		FlushRPS             float64 `mapstructure:"flush_rps"`
	} `mapstructure:"outbox"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Import struct {
		File string `mapstructure:"file"`
	} `mapstructure:"import"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// APP_LOG_LEVEL のように接頭辞つきの環境変数でも上書きできる
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("api.base_url", "API_BASE_URL")
	viper.BindEnv("log.level", "LOG_LEVEL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.App.PageSize <= 0 {
		log.Printf("App page size not set or invalid, using default '%d'", DefaultPageSize)
		Cfg.App.PageSize = DefaultPageSize
	}
	if Cfg.App.SummaryIntervalSeconds <= 0 {
		Cfg.App.SummaryIntervalSeconds = DefaultSummaryIntervalSeconds
	}
	if Cfg.Outbox.Path == "" {
		log.Printf("Outbox path not set, using default '%s'", DefaultOutboxPath)
		Cfg.Outbox.Path = DefaultOutboxPath
	}
	if Cfg.Outbox.FlushIntervalSeconds <= 0 {
		Cfg.Outbox.FlushIntervalSeconds = DefaultFlushIntervalSeconds
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	// api.base_url は空を許す (空のときの扱いは呼び出し側が決める)

	log.Println("Config loaded successfully")
	log.Printf("API Base URL: %s", Cfg.API.BaseURL)
	log.Printf("Page Size: %d", Cfg.App.PageSize)
	log.Printf("Outbox Path: %s", Cfg.Outbox.Path)

	return nil
}
