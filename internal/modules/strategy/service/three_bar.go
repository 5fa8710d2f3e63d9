package service

// ThreeBarPlay: сильная зелёная свеча, откат/внутренняя свеча с маленьким
// телом внутри первой, затем пробой выше обоих хаёв.
type ThreeBarPlay struct{}

func (ThreeBarPlay) Name() string { return "3-Bar Play" }

func (ThreeBarPlay) Match(w Window) bool {
	if w.Len() < 3 {
		return false
	}
	c1 := w.Last(2)
	c2 := w.Last(1)
	c3 := w.Last(0)

	// 1-я: сильная зелёная
	c1Body := c1.Close - c1.Open
	if c1Body <= 0 || c1Body < c1.Range()*0.6 {
		return false
	}

	// 2-я: откат или внутренняя
	if c2.High > c1.High || c2.Low < c1.Low {
		return false
	}
	if c2.Body() > c1Body*0.5 {
		return false
	}

	// 3-я: пробой
	breakout := c1.High
	if c2.High > breakout {
		breakout = c2.High
	}
	return c3.Close > breakout
}
