package domain

// GenerateRequest asks for one or more tracking numbers.
type GenerateRequest struct {
	Country      string `json:"country" binding:"required"`
	LocalAddress string `json:"local_address" binding:"required"`
	Count        int    `json:"count"`
}

// ParseRequest asks for a tracking number to be split into its segments.
type ParseRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
}

// GenerateResponse carries the generated tracking numbers.
type GenerateResponse struct {
	TrackingNumbers []string `json:"tracking_numbers"`
}
