// Package googleauth loads the OAuth client secret and cached token used
// by the Calendar and Gmail services. Token refresh on expiry is handled
// by the oauth2 transport in memory only; the refreshed access token is
// not written back to the token file, so each process start refreshes
// again from the stored refresh token.
package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	gmail "google.golang.org/api/gmail/v1"
)

var scopes = []string{
	calendar.CalendarScope,
	gmail.GmailReadonlyScope,
	gmail.GmailSendScope,
}

// Client builds an authenticated HTTP client from the on-disk client
// secret and token files. There is no interactive flow here: a missing or
// unparsable token is an error telling the operator to provision one.
func Client(ctx context.Context, credentialsFile, tokenFile string) (*http.Client, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secret file: %w", err)
	}

	cfg, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secret file: %w", err)
	}

	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth token (run the authorization flow first): %w", err)
	}

	return cfg.Client(ctx, tok), nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token file %s: %w", path, err)
	}
	return tok, nil
}
