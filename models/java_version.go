package models

import (
	"fmt"
	"strconv"
	"strings"
)

// JavaVersion is the language runtime of a native web app, e.g. "Java 17".
type JavaVersion string

const (
	Java8  JavaVersion = "Java 8"
	Java11 JavaVersion = "Java 11"
	Java17 JavaVersion = "Java 17"
	Java21 JavaVersion = "Java 21"
)

// ParseJavaVersion accepts the spellings App Service and build tools use for
// a Java release ("8", "1.8", "1.8.0_202", "11", "java11", "Java 17",
// "17-java17", "jre8") and returns the canonical "Java N" form. An empty string parses
// to the unset value.
func ParseJavaVersion(s string) (JavaVersion, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return "", nil
	}

	if i := strings.Index(v, "-"); i > 0 {
		v = v[:i]
	}
	v = strings.TrimPrefix(v, "java")
	v = strings.TrimSpace(strings.TrimPrefix(v, "jre"))
	v = strings.TrimPrefix(v, "1.")

	end := 0
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}

	major, err := strconv.Atoi(v[:end])
	if err != nil || major <= 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownJavaVersion, s)
	}

	return JavaVersion("Java " + strconv.Itoa(major)), nil
}

// Major returns the major release number, or 0 when the version is unset or
// not in canonical form.
func (v JavaVersion) Major() int {
	major, err := strconv.Atoi(strings.TrimPrefix(string(v), "Java "))
	if err != nil {
		return 0
	}
	return major
}

func (v JavaVersion) String() string {
	return string(v)
}
