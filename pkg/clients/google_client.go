package clients

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const timeout = time.Second * 15

// NewGoogleClient builds an HTTP client authorised by a service-account JSON key.
// Token refreshes and API calls share the same timeout.
func NewGoogleClient(ctx context.Context, credentialsJSON []byte, scopes ...string) (*http.Client, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: timeout})

	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse google credentials: %w", err)
	}

	client := oauth2.NewClient(ctx, creds.TokenSource)
	client.Timeout = timeout
	return client, nil
}

func NewGoogleClientFromFile(ctx context.Context, path string, scopes ...string) (*http.Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read google credentials: %w", err)
	}
	return NewGoogleClient(ctx, data, scopes...)
}
