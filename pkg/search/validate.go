package search

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrEmptyQuery = errors.New("Must not be an empty string.")
	ErrInvalidURL = errors.New("Invalid URL format. Please enter a valid URL.")
)

// Validator checks a query before it is forwarded to the controller.
// Strict additionally requires an absolute URL with a scheme and host.
type Validator struct {
	Strict bool
}

func (v Validator) Validate(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyQuery
	}
	if !v.Strict {
		return nil
	}

	u, err := url.Parse(trimmed)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}
