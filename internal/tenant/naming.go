package tenant

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidCode is returned for any code containing characters outside
// [A-Za-z0-9_]. Derived names end up inside CREATE DATABASE statements, so
// validation happens before any derivation.
var ErrInvalidCode = errors.New("invalid tenant code format")

var codePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// SanitizeCode validates a CA code against the strict identifier pattern and
// returns it unchanged. Every derivation below calls this first.
func SanitizeCode(code string) (string, error) {
	if !codePattern.MatchString(code) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	return code, nil
}

// Alias derives the connection alias for a CA code, e.g. "CAABC123" -> "ca_caabc123".
func Alias(code string) (string, error) {
	code, err := SanitizeCode(code)
	if err != nil {
		return "", err
	}
	return "ca_" + strings.ToLower(code), nil
}

// DBName derives the physical database name for a CA code, e.g. "CAABC123" -> "ca_caabc123_db".
func DBName(code string) (string, error) {
	alias, err := Alias(code)
	if err != nil {
		return "", err
	}
	return alias + "_db", nil
}
