package model

// RuntimeConfig is the response for GET /config.json.
type RuntimeConfig struct {
	BaseURL      string `json:"baseUrl"`
	APIBase      string `json:"apiBase"`
	AdminBaseURL string `json:"adminBaseUrl"`
}
