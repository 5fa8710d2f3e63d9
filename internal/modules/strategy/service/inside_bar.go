package service

// InsideBar: последняя свеча целиком внутри диапазона предыдущей.
type InsideBar struct{}

func (InsideBar) Name() string { return "Inside Bar" }

func (InsideBar) Match(w Window) bool {
	if w.Len() < 2 {
		return false
	}
	prev := w.Last(1)
	cur := w.Last(0)

	return cur.High <= prev.High && cur.Low >= prev.Low
}
