package coingecko

// CoinListEntry is one row of the provider's /coins/list payload.
type CoinListEntry struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// simplePriceResponse maps coin id -> vs-currency -> price.
type simplePriceResponse map[string]map[string]float64

type errorResponse struct {
	Error string `json:"error"`
}
