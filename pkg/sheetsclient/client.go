// Package sheetsclient constructs the Google Sheets API service from
// service-account credentials, either a key file path or a base64 encoded
// key (convenient for container environments).
package sheetsclient

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

type Credentials struct {
	File       string
	JSONBase64 string
}

func New(ctx context.Context, creds Credentials) (*sheetsapi.Service, error) {
	opts := []option.ClientOption{option.WithScopes(sheetsapi.SpreadsheetsScope)}

	switch {
	case creds.File != "":
		opts = append(opts, option.WithCredentialsFile(creds.File))
	case creds.JSONBase64 != "":
		decoded, err := base64.StdEncoding.DecodeString(creds.JSONBase64)
		if err != nil {
			return nil, fmt.Errorf("decode sheets credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
	default:
		// Fall through to Application Default Credentials.
	}

	srv, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return srv, nil
}
