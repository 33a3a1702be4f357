package gateway

import (
	"github.com/fbp-works/economy-service/internal/infrastructure/config"
	"github.com/go-resty/resty/v2"
)

// NewClient builds a resty client pointed at the chat-gateway sidecar.
// The sidecar bridges this service to the chat platform, exposing the
// member roster and channel message delivery over plain HTTP.
func NewClient(cfg config.GatewayConfig) *resty.Client {
	return resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")
}
