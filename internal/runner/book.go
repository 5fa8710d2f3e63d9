package runner

import (
	"fmt"
	"sort"

	"intraday_bot/internal/models"
)

// Book владеет отображением символ -> открытая позиция. Никакого глобального
// состояния: книга создаётся раннером и мутируется только циклом.
type Book struct {
	positions map[string]*models.Position
}

func NewBook() *Book {
	return &Book{
		positions: make(map[string]*models.Position),
	}
}

func (b *Book) Len() int { return len(b.positions) }

func (b *Book) Has(symbol string) bool {
	_, ok := b.positions[symbol]
	return ok
}

func (b *Book) Get(symbol string) *models.Position {
	return b.positions[symbol]
}

// Add: не больше одной позиции на символ.
func (b *Book) Add(p *models.Position) error {
	if _, ok := b.positions[p.Symbol]; ok {
		return fmt.Errorf("position %s already open", p.Symbol)
	}
	b.positions[p.Symbol] = p
	return nil
}

func (b *Book) Remove(symbol string) {
	delete(b.positions, symbol)
}

// Symbols — стабильный порядок обхода для детерминированной фазы выходов.
func (b *Book) Symbols() []string {
	out := make([]string, 0, len(b.positions))
	for s := range b.positions {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
