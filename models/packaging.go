package models

import (
	"fmt"
	"strings"
)

// Packaging is the artifact type of the application being deployed. It
// decides which web container a default configuration uses.
type Packaging string

const (
	Jar Packaging = "jar"
	War Packaging = "war"
	Ear Packaging = "ear"
)

// ParsePackaging parses jar, war or ear ignoring case. An empty string
// parses to the unset value.
func ParsePackaging(s string) (Packaging, error) {
	switch p := Packaging(strings.ToLower(strings.TrimSpace(s))); p {
	case "", Jar, War, Ear:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPackaging, s)
	}
}
