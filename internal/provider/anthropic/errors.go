package anthropic

import (
	"encoding/json"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	ai "github.com/spetersoncode/parley"
)

// wrapError converts an Anthropic SDK error into an ai.ProviderError.
// For API errors the message is pulled from the response body's nested
// error.message field; anything else (typically a transport failure with
// no response) is wrapped as-is.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return ai.NewTransportError(err)
	}

	return ai.NewProviderError(apiErr.StatusCode, errorMessage(apiErr.RawJSON()), err)
}

// errorMessage extracts error.message from an error response body
// ({"type":"error","error":{"type":"...","message":"..."}}). Returns ""
// when the body does not carry one, leaving ProviderError to fall back to
// a generic description.
func errorMessage(raw string) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return ""
	}
	return body.Error.Message
}
