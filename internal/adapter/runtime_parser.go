package adapter

import (
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"

	"github.com/MKhiriev/appservice-config/models"
)

const dockerFxPrefix = "DOCKER|"

// fxVersion returns the Linux fx version, falling back to the Windows one.
func fxVersion(site armappservice.Site) string {
	cfg := siteConfig(site)
	if cfg == nil {
		return ""
	}
	if fx := value(cfg.LinuxFxVersion); fx != "" {
		return fx
	}
	return value(cfg.WindowsFxVersion)
}

func siteConfig(site armappservice.Site) *armappservice.SiteConfig {
	if site.Properties == nil {
		return nil
	}
	return site.Properties.SiteConfig
}

func isLinuxSite(site armappservice.Site) bool {
	if site.Properties != nil && value(site.Properties.Reserved) {
		return true
	}
	return strings.Contains(strings.ToLower(value(site.Kind)), "linux")
}

func isDockerSite(site armappservice.Site) bool {
	if strings.HasPrefix(strings.ToUpper(fxVersion(site)), dockerFxPrefix) {
		return true
	}
	return strings.Contains(strings.ToLower(value(site.Kind)), "container")
}

func dockerImage(site armappservice.Site) string {
	fx := fxVersion(site)
	if !strings.HasPrefix(strings.ToUpper(fx), dockerFxPrefix) {
		return ""
	}
	return strings.TrimSpace(fx[len(dockerFxPrefix):])
}

// parseRuntime describes the native stack of site. Values the site does not
// report, or reports in an unrecognized form, stay unset.
func parseRuntime(site armappservice.Site) models.RuntimeDescriptor {
	if isLinuxSite(site) {
		d := parseLinuxFxVersion(fxVersion(site))
		d.OS = models.Linux
		return d
	}

	d := models.RuntimeDescriptor{OS: models.Windows}
	cfg := siteConfig(site)
	if cfg == nil {
		return d
	}

	d.JavaVersion, _ = models.ParseJavaVersion(value(cfg.JavaVersion))

	container := strings.ToUpper(strings.TrimSpace(value(cfg.JavaContainer)))
	version := strings.TrimSpace(value(cfg.JavaContainerVersion))
	switch container {
	case "":
	case "JAVA":
		d.WebContainer = models.JavaSE
	case "TOMCAT":
		d.WebContainer = models.Tomcat(version)
	case "JBOSSEAP":
		d.WebContainer = models.JBossEAP(version)
	default:
		d.WebContainer = models.WebContainer(strings.TrimSpace(value(cfg.JavaContainer) + " " + version))
	}

	return d
}

// parseLinuxFxVersion reads values such as "JAVA|17-java17",
// "TOMCAT|9.0-java11" or "JBOSSEAP|7-java8".
func parseLinuxFxVersion(fx string) models.RuntimeDescriptor {
	var d models.RuntimeDescriptor

	stack, version, ok := strings.Cut(fx, "|")
	if !ok {
		return d
	}

	containerVersion, javaPart, _ := strings.Cut(version, "-")

	switch strings.ToUpper(strings.TrimSpace(stack)) {
	case "JAVA":
		d.WebContainer = models.JavaSE
		// "JAVA|17-java17": the major version precedes the dash
		d.JavaVersion, _ = models.ParseJavaVersion(containerVersion)
	case "TOMCAT":
		d.WebContainer = models.Tomcat(containerVersion)
		d.JavaVersion, _ = models.ParseJavaVersion(javaPart)
	case "JBOSSEAP":
		d.WebContainer = models.JBossEAP(containerVersion)
		d.JavaVersion, _ = models.ParseJavaVersion(javaPart)
	}

	return d
}
