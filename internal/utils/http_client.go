package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// HTTPClient is a resty client preconfigured for the sync API. It embeds
// *resty.Client so callers build requests with the usual resty methods.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that resolves request paths against
// baseURL, gives up after timeout and encodes bodies with go-json.
//
//	client := utils.NewHTTPClient("http://localhost:8080", 15*time.Second)
//	resp, err := client.R().Get("/api/version")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
