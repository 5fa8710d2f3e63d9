package service

import (
	"fmt"
	"os"

	"intraday_bot/internal/modules/config"

	"gopkg.in/yaml.v2"
)

// Watchlist — статичная вселенная торгуемых символов из YAML-файла.
type Watchlist struct {
	symbols []string
}

type watchlistFile struct {
	Symbols []string `yaml:"symbols"`
}

func NewWatchlist(cfg *config.Config) (*Watchlist, error) {
	file, err := os.Open(cfg.WatchlistFile)
	if err != nil {
		return nil, fmt.Errorf("open watchlist file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var wf watchlistFile
	if err := yaml.NewDecoder(file).Decode(&wf); err != nil {
		return nil, fmt.Errorf("decode watchlist file: %w", err)
	}
	if len(wf.Symbols) == 0 {
		return nil, fmt.Errorf("watchlist %s is empty", cfg.WatchlistFile)
	}

	return &Watchlist{symbols: wf.Symbols}, nil
}

// ListTradableSymbols возвращает копию — вызывающий может тасовать как хочет.
func (w *Watchlist) ListTradableSymbols() []string {
	out := make([]string, len(w.symbols))
	copy(out, w.symbols)
	return out
}
