package models

import (
	"fmt"
	"strings"
)

// WebContainer is the application server hosting a native Java web app.
type WebContainer string

const (
	JavaSE    WebContainer = "Java SE"
	Tomcat85  WebContainer = "Tomcat 8.5"
	Tomcat90  WebContainer = "Tomcat 9.0"
	Tomcat101 WebContainer = "Tomcat 10.1"
	JBossEAP7 WebContainer = "JBossEAP 7"
	JBossEAP8 WebContainer = "JBossEAP 8"
)

var webContainers = []WebContainer{JavaSE, Tomcat85, Tomcat90, Tomcat101, JBossEAP7, JBossEAP8}

// Tomcat returns the Tomcat container for the given version string, e.g. "9.0".
func Tomcat(version string) WebContainer {
	return WebContainer("Tomcat " + strings.TrimSpace(version))
}

// JBossEAP returns the JBoss EAP container for the given major version.
func JBossEAP(version string) WebContainer {
	return WebContainer("JBossEAP " + strings.TrimSpace(version))
}

// ParseWebContainer matches s against the known containers ignoring case and
// whitespace, so "tomcat9.0" and "Tomcat 9.0" are the same container. Tomcat
// and JBoss EAP releases outside the known list ("Tomcat 10.0",
// "Tomcat 9.0.41") are accepted as well. An empty string parses to the unset
// value.
func ParseWebContainer(s string) (WebContainer, error) {
	key := squash(s)
	if key == "" {
		return "", nil
	}

	for _, c := range webContainers {
		if squash(string(c)) == key {
			return c, nil
		}
	}

	if version, ok := releaseOf(key, "tomcat"); ok {
		return Tomcat(version), nil
	}
	if version, ok := releaseOf(key, "jbosseap"); ok {
		return JBossEAP(version), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownWebContainer, s)
}

// releaseOf returns the version following family in a squashed key, e.g.
// "9.0.41" for ("tomcat9.0.41", "tomcat").
func releaseOf(key, family string) (string, bool) {
	version, ok := strings.CutPrefix(key, family)
	if !ok || version == "" || version[0] < '0' || version[0] > '9' {
		return "", false
	}
	return version, true
}

func (c WebContainer) String() string {
	return string(c)
}

func squash(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
