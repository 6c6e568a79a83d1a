package config

import (
	"techsell-web/internal/utils"
	"techsell-web/pkg/gateway"
)

const defaultBackendURL = "http://localhost:3000/api"

// ConnectBackend builds the HTTP client for the marketplace backend.
func ConnectBackend() *gateway.Client {
	baseURL := utils.GetConfig("API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBackendURL
	}
	return gateway.NewClient(baseURL)
}
