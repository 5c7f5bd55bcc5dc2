package constants

import "errors"

// Configuration errors.
var (
	ErrNotAuthenticated = errors.New("no access token configured, use 'fortie login' first")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrInvalidBoolValue = errors.New("value must be 'true' or 'false'")
	ErrInvalidIntValue  = errors.New("value must be a whole number")
)

// Input errors.
var (
	ErrInvalidAssignment = errors.New("expected KEY=VALUE")
	ErrEmptyRecord       = errors.New("no fields given, use --set or --from-file")
	ErrInvalidPageSize   = errors.New("limit must be between 1 and 500")
	ErrAccessTokenEmpty  = errors.New("access token is required")
	ErrClientSecretEmpty = errors.New("client secret is required")
)

// Output errors.
var (
	ErrUnknownOutputFormat = errors.New("unknown output format, use table, json or yaml")
)
