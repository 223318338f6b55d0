// Package utils provides general-purpose helper utilities used across the
// go-cred-store client: HTTP client initialization, bearer-token parsing,
// JWT expiry inspection, and request-ID generation.
package utils
