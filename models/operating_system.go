package models

import (
	"fmt"
	"strings"
)

// OperatingSystem is the kind of host an App Service web app runs on.
type OperatingSystem string

const (
	// Linux is a native (non-container) Linux web app.
	Linux OperatingSystem = "Linux"
	// Windows is a native Windows web app.
	Windows OperatingSystem = "Windows"
	// Docker is a custom container web app.
	Docker OperatingSystem = "Docker"
)

var operatingSystems = []OperatingSystem{Linux, Windows, Docker}

// ParseOperatingSystem matches s case-insensitively against the known
// operating systems. An empty string parses to the unset value.
func ParseOperatingSystem(s string) (OperatingSystem, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}

	for _, os := range operatingSystems {
		if strings.EqualFold(string(os), s) {
			return os, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOperatingSystem, s)
}

// IsNative reports whether os describes a non-container host.
func (os OperatingSystem) IsNative() bool {
	return os == Linux || os == Windows
}

func (os OperatingSystem) String() string {
	return string(os)
}
