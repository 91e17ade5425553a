//go:build gcloud

package notifier

import (
	"context"
	"log/slog"
	"net/http"

	"google.golang.org/api/idtoken"
)

// newHTTPClient creates an HTTP client with GCP ID token authentication.
func newHTTPClient(audience string) *http.Client {
	httpClient, err := idtoken.NewClient(context.Background(), audience)
	if err != nil {
		slog.Error("failed to create idtoken client, falling back to unauthenticated client",
			slog.String("error", err.Error()),
		)
		return &http.Client{
			Timeout: defaultTimeout,
		}
	}
	httpClient.Timeout = defaultTimeout
	return httpClient
}
