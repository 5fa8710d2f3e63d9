package service

// BreakoutRetest: свеча пробивает хаи всего предыдущего окна, минимум три
// следующих свечи держатся выше уровня пробоя, последняя закрывается над ним.
type BreakoutRetest struct{}

func (BreakoutRetest) Name() string { return "Breakout Retest" }

func (BreakoutRetest) Match(w Window) bool {
	n := w.Len()
	if n < 5 {
		return false
	}
	cs := w.Candles

	// Кандидаты на пробойную свечу: после неё должно остаться >= 3 свечей
	// удержания плюс закрывающая.
	for i := 1; i <= n-4; i++ {
		prevHigh := cs[0].High
		for _, c := range cs[1:i] {
			if c.High > prevHigh {
				prevHigh = c.High
			}
		}
		b := cs[i]
		if !b.Bullish() || b.Close <= prevHigh {
			continue
		}

		held := true
		for _, c := range cs[i+1 : n-1] {
			if c.Low < b.High {
				held = false
				break
			}
		}
		if !held {
			continue
		}

		if cs[n-1].Close > b.High {
			return true
		}
	}
	return false
}
