package rostersdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the roster service.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new roster service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Ptr returns a pointer to v. Handy for the optional fields of update requests.
func Ptr[T any](v T) *T { return &v }
