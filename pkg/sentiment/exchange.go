package sentiment

type PredictRequest struct {
	Review string `json:"review"`
}

type PredictResponse struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
