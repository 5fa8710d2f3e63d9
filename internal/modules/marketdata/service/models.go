package service

type quoteResponse struct {
	Status string  `json:"status"`
	Symbol string  `json:"symbol"`
	Ask    float64 `json:"ask"`
	Bid    float64 `json:"bid"`
}

type candleRow struct {
	Open   float64 `json:"o"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Close  float64 `json:"c"`
	Volume float64 `json:"v"`
	Ts     int64   `json:"t"` // unix ms начала бакета
}

type candlesResponse struct {
	Status  string      `json:"status"`
	Symbol  string      `json:"symbol"`
	Results []candleRow `json:"results"`
}

type vwapResponse struct {
	Status string  `json:"status"`
	Symbol string  `json:"symbol"`
	VWAP   float64 `json:"vwap"`
}

// quoteFrame — кадр из WS-потока котировок.
type quoteFrame struct {
	Event  string  `json:"ev"`
	Symbol string  `json:"symbol"`
	Ask    float64 `json:"ask"`
	Bid    float64 `json:"bid"`
}
