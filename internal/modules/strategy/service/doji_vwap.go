package service

import "math"

// DojiNearVWAP: свеча с крошечным телом, закрывшаяся около VWAP.
type DojiNearVWAP struct {
	Tolerance float64 // доля, 0.005 == 0.5%
}

func (DojiNearVWAP) Name() string { return "Doji Near VWAP" }

func (d DojiNearVWAP) Match(w Window) bool {
	if w.Len() < 1 || w.VWAP <= 0 {
		return false
	}
	c := w.Last(0)

	rng := c.Range()
	if rng <= 0 {
		return false
	}
	if c.Body() > rng*0.1 {
		return false
	}

	return math.Abs(c.Close-w.VWAP)/w.VWAP <= d.Tolerance
}
