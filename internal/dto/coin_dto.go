package dto

// CoinListResponse wraps the provider coin catalogue as a list of coin ids.
type CoinListResponse struct {
	Items []string `json:"items"`
}
