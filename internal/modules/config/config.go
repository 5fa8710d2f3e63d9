package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	configFilePathENV = "CONFIG_FILE"
	tokenTelegramENV  = "TELEGRAM_TOKEN"
	databaseDSN       = "DATABASE_DSN"
	marketDataKeyENV  = "MARKET_DATA_API_KEY"
)

// Config ...
type Config struct {
	Telegram struct {
		Token  string `mapstructure:"token"`
		ChatID int64  `mapstructure:"chat_id"`
	} `mapstructure:"telegram"`
	DB string `mapstructure:"db_dsn"`

	MarketData struct {
		BaseURL string `mapstructure:"base_url"`
		APIKey  string `mapstructure:"api_key"`
		// Пауза между запросами к апстриму, защита от rate limit.
		RequestInterval time.Duration `mapstructure:"request_interval"`
		RequestTimeout  time.Duration `mapstructure:"request_timeout"`
		WSEnabled       bool          `mapstructure:"ws_enabled"`
		WSURL           string        `mapstructure:"ws_url"`
	} `mapstructure:"market_data"`

	Jaeger struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
	} `mapstructure:"jaeger"`

	WatchlistFile string `mapstructure:"watchlist_file"`

	Trading TradingConfig `mapstructure:"trading"`
}

// TradingConfig — все пороги в долях: 0.01 == 1%.
type TradingConfig struct {
	TradeInterval    time.Duration `mapstructure:"trade_interval"`
	CandleCount      int           `mapstructure:"candle_count"`
	MaxOpenPositions int           `mapstructure:"max_open_positions"`
	DailyLossCap     float64       `mapstructure:"daily_loss_cap"` // отрицательный, в валюте

	TrailArmPct     float64 `mapstructure:"trail_arm_pct"`
	TrailDropPct    float64 `mapstructure:"trail_drop_pct"`
	BreakEvenArmPct float64 `mapstructure:"break_even_arm_pct"`
	CumLossPct      float64 `mapstructure:"cum_loss_pct"`

	// Варианты поведения, которые в исходниках гуляли от версии к версии.
	BreakEvenStrict        bool `mapstructure:"break_even_strict"`          // true => закрываем только строго ниже входа
	ResetCumLossOnRecovery bool `mapstructure:"reset_cum_loss_on_recovery"` // true => накопленный минус обнуляется при выходе в плюс

	VWAPTolerancePct float64 `mapstructure:"vwap_tolerance_pct"`
	VWAPWindow       int     `mapstructure:"vwap_window"`

	// Паттерны в порядке приоритета; первый сматчившийся выигрывает.
	Patterns []string `mapstructure:"patterns"`

	Session SessionConfig `mapstructure:"session"`
}

type SessionConfig struct {
	Open     string `mapstructure:"open"`  // "09:30"
	Close    string `mapstructure:"close"` // "16:00"
	Timezone string `mapstructure:"timezone"`
}

func NewConfig() (*Config, error) {
	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}

	v := viper.New()
	v.SetConfigFile("configs/" + configFileName)

	v.SetDefault("watchlist_file", "configs/watchlist.yaml")

	v.SetDefault("market_data.request_interval", "350ms")
	v.SetDefault("market_data.request_timeout", "10s")

	v.SetDefault("trading.trade_interval", "60s")
	v.SetDefault("trading.candle_count", 5)
	v.SetDefault("trading.max_open_positions", 5)
	v.SetDefault("trading.daily_loss_cap", -100.0)

	v.SetDefault("trading.trail_arm_pct", 0.01)
	v.SetDefault("trading.trail_drop_pct", 0.0075)
	v.SetDefault("trading.break_even_arm_pct", 0.008)
	v.SetDefault("trading.cum_loss_pct", 0.0075)

	v.SetDefault("trading.vwap_tolerance_pct", 0.005)
	v.SetDefault("trading.vwap_window", 14)

	v.SetDefault("trading.patterns", []string{"hammer", "bullish_engulfing", "marubozu", "three_bar_play"})

	v.SetDefault("trading.session.open", "09:30")
	v.SetDefault("trading.session.close", "16:00")
	v.SetDefault("trading.session.timezone", "America/New_York")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if token := os.Getenv(tokenTelegramENV); token != "" {
		config.Telegram.Token = token
	}
	if dsn := os.Getenv(databaseDSN); dsn != "" {
		config.DB = dsn
	}
	if key := os.Getenv(marketDataKeyENV); key != "" {
		config.MarketData.APIKey = key
	}

	return &config, nil
}
