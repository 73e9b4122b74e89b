package models

import (
	"fmt"
	"regexp"
	"strings"
)

// PricingTier is the billing and capacity class of an App Service plan.
// Size is the SKU name users type ("P1v2"); Tier is the SKU family
// ("PremiumV2").
type PricingTier struct {
	Tier string
	Size string
}

// P1v2 is the pricing tier default configurations start from.
var P1v2 = PricingTier{Tier: "PremiumV2", Size: "P1v2"}

var tierBySize = []struct {
	pattern *regexp.Regexp
	tier    string
}{
	{regexp.MustCompile(`^p\d+mv3$`), "PremiumMV3"},
	{regexp.MustCompile(`^p\d+v3$`), "PremiumV3"},
	{regexp.MustCompile(`^p\d+v2$`), "PremiumV2"},
	{regexp.MustCompile(`^p\d+$`), "Premium"},
	{regexp.MustCompile(`^i\d+v2$`), "IsolatedV2"},
	{regexp.MustCompile(`^i\d+$`), "Isolated"},
	{regexp.MustCompile(`^ep\d+$`), "ElasticPremium"},
	{regexp.MustCompile(`^ws\d+$`), "WorkflowStandard"},
	{regexp.MustCompile(`^fc\d+$`), "FlexConsumption"},
	{regexp.MustCompile(`^s\d+$`), "Standard"},
	{regexp.MustCompile(`^b\d+$`), "Basic"},
	{regexp.MustCompile(`^d\d+$`), "Shared"},
	{regexp.MustCompile(`^f\d+$`), "Free"},
	{regexp.MustCompile(`^y\d+$`), "Dynamic"},
}

// ParsePricingTier parses a SKU size such as "P1v2", "s1" or "EP2" and infers
// its tier. An empty string parses to the unset value.
func ParsePricingTier(size string) (PricingTier, error) {
	key := strings.ToLower(strings.TrimSpace(size))
	if key == "" {
		return PricingTier{}, nil
	}

	for _, t := range tierBySize {
		if t.pattern.MatchString(key) {
			return PricingTier{Tier: t.tier, Size: canonicalSize(key)}, nil
		}
	}

	return PricingTier{}, fmt.Errorf("%w: %q", ErrInvalidPricingTier, size)
}

// IsZero reports whether the tier is unset.
func (p PricingTier) IsZero() bool {
	return p == PricingTier{}
}

func (p PricingTier) String() string {
	return p.Size
}

// canonicalSize upper-cases the family letters before the first digit:
// "p1v2" becomes "P1v2" and "ws1" becomes "WS1".
func canonicalSize(key string) string {
	i := strings.IndexFunc(key, func(r rune) bool { return r >= '0' && r <= '9' })
	if i < 0 {
		i = len(key)
	}
	return strings.ToUpper(key[:i]) + key[i:]
}
