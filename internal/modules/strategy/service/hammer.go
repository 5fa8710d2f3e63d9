package service

// Hammer: маленькое тело у вершины диапазона, длинная нижняя тень.
type Hammer struct{}

func (Hammer) Name() string { return "Hammer" }

func (Hammer) Match(w Window) bool {
	if w.Len() < 1 {
		return false
	}
	c := w.Last(0)

	rng := c.Range()
	if rng <= 0 {
		return false
	}

	body := c.Body()
	if body >= rng*0.3 {
		return false
	}

	top := c.Open
	bottom := c.Close
	if c.Close > c.Open {
		top, bottom = c.Close, c.Open
	}
	upperWick := c.High - top
	lowerWick := bottom - c.Low

	return lowerWick > 2*body && upperWick < body
}
