package service

// Marubozu: тело почти на весь диапазон, тени по 5% максимум.
type Marubozu struct{}

func (Marubozu) Name() string { return "Marubozu" }

func (Marubozu) Match(w Window) bool {
	if w.Len() < 1 {
		return false
	}
	c := w.Last(0)

	rng := c.Range()
	if rng <= 0 {
		return false
	}
	if c.Body() < rng*0.9 {
		return false
	}

	top := c.Open
	bottom := c.Close
	if c.Close > c.Open {
		top, bottom = c.Close, c.Open
	}
	upperWick := c.High - top
	lowerWick := bottom - c.Low

	return upperWick < rng*0.05 && lowerWick < rng*0.05
}
