package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJavaVersion(t *testing.T) {
	tests := []struct {
		in   string
		want JavaVersion
	}{
		{"", ""},
		{"8", Java8},
		{"1.8", Java8},
		{"1.8.0_202", Java8},
		{"11", Java11},
		{"11.0.21", Java11},
		{"java11", Java11},
		{"Java 17", Java17},
		{"17-java17", Java17},
		{"JAVA 21", Java21},
		{"java25", JavaVersion("Java 25")},
		{"jre8", Java8},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseJavaVersion(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseJavaVersion_Invalid(t *testing.T) {
	for _, in := range []string{"java", "latest", "0"} {
		_, err := ParseJavaVersion(in)
		assert.ErrorIs(t, err, ErrUnknownJavaVersion, in)
	}
}

func TestJavaVersion_Major(t *testing.T) {
	assert.Equal(t, 17, Java17.Major())
	assert.Equal(t, 0, JavaVersion("").Major())
}

func TestParseOperatingSystem(t *testing.T) {
	os, err := ParseOperatingSystem("linux")
	require.NoError(t, err)
	assert.Equal(t, Linux, os)

	os, err = ParseOperatingSystem(" DOCKER ")
	require.NoError(t, err)
	assert.Equal(t, Docker, os)

	os, err = ParseOperatingSystem("")
	require.NoError(t, err)
	assert.Empty(t, os)

	_, err = ParseOperatingSystem("macos")
	assert.ErrorIs(t, err, ErrUnknownOperatingSystem)
}

func TestOperatingSystem_IsNative(t *testing.T) {
	assert.True(t, Linux.IsNative())
	assert.True(t, Windows.IsNative())
	assert.False(t, Docker.IsNative())
	assert.False(t, OperatingSystem("").IsNative())
}

func TestParseWebContainer(t *testing.T) {
	c, err := ParseWebContainer("tomcat9.0")
	require.NoError(t, err)
	assert.Equal(t, Tomcat90, c)

	c, err = ParseWebContainer("java se")
	require.NoError(t, err)
	assert.Equal(t, JavaSE, c)

	c, err = ParseWebContainer("Tomcat 10.0")
	require.NoError(t, err)
	assert.Equal(t, Tomcat("10.0"), c)

	c, err = ParseWebContainer("tomcat 9.0.41")
	require.NoError(t, err)
	assert.Equal(t, WebContainer("Tomcat 9.0.41"), c)

	c, err = ParseWebContainer("JBossEAP 8")
	require.NoError(t, err)
	assert.Equal(t, JBossEAP8, c)

	_, err = ParseWebContainer("jetty 9")
	assert.ErrorIs(t, err, ErrUnknownWebContainer)

	_, err = ParseWebContainer("tomcat")
	assert.ErrorIs(t, err, ErrUnknownWebContainer)

	assert.Equal(t, Tomcat101, Tomcat("10.1"))
	assert.Equal(t, JBossEAP7, JBossEAP("7"))
}

func TestParsePackaging(t *testing.T) {
	p, err := ParsePackaging("WAR")
	require.NoError(t, err)
	assert.Equal(t, War, p)

	_, err = ParsePackaging("zip")
	assert.ErrorIs(t, err, ErrUnknownPackaging)
}

func TestParsePricingTier(t *testing.T) {
	tests := []struct {
		in   string
		want PricingTier
	}{
		{"P1v2", P1v2},
		{"p2V3", PricingTier{Tier: "PremiumV3", Size: "P2v3"}},
		{"P1mv3", PricingTier{Tier: "PremiumMV3", Size: "P1mv3"}},
		{"s1", PricingTier{Tier: "Standard", Size: "S1"}},
		{"B2", PricingTier{Tier: "Basic", Size: "B2"}},
		{"F1", PricingTier{Tier: "Free", Size: "F1"}},
		{"ep1", PricingTier{Tier: "ElasticPremium", Size: "EP1"}},
		{"I1v2", PricingTier{Tier: "IsolatedV2", Size: "I1v2"}},
		{"ws1", PricingTier{Tier: "WorkflowStandard", Size: "WS1"}},
		{"FC1", PricingTier{Tier: "FlexConsumption", Size: "FC1"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePricingTier(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Size, got.String())
		})
	}

	empty, err := ParsePricingTier("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParsePricingTier("Gold")
	assert.ErrorIs(t, err, ErrInvalidPricingTier)
}

func TestNewRegion_NormalizesDisplayNames(t *testing.T) {
	assert.Equal(t, Region("westeurope"), NewRegion("West Europe"))
	assert.Equal(t, Region("eastus2"), NewRegion(" East US 2 "))
	assert.Equal(t, Region("westeurope"), NewRegion("westeurope"))
}

func TestContainsRegion(t *testing.T) {
	regions := []Region{"eastus", "westeurope"}
	assert.True(t, ContainsRegion(regions, "westeurope"))
	assert.False(t, ContainsRegion(regions, "japaneast"))
	assert.False(t, ContainsRegion(nil, "eastus"))
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "", "abc123")

	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "v1.2.0 (date: N/A, commit: abc123)", info.String())
}
