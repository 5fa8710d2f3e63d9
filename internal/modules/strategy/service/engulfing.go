package service

// BullishEngulfing: предыдущая свеча медвежья, текущая бычья и её тело
// целиком накрывает тело предыдущей.
type BullishEngulfing struct{}

func (BullishEngulfing) Name() string { return "Bullish Engulfing" }

func (BullishEngulfing) Match(w Window) bool {
	if w.Len() < 2 {
		return false
	}
	prev := w.Last(1)
	cur := w.Last(0)

	if !prev.Bearish() || !cur.Bullish() {
		return false
	}

	return cur.Open < prev.Close && cur.Close > prev.Open
}
