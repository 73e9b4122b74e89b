package models

// AppConfig is the declarative description of an App Service web app: its
// identity, location, hosting plan and runtime. The zero value of every field
// means "unset".
type AppConfig struct {
	AppName                  string
	ResourceGroup            string
	SubscriptionID           string
	Region                   Region
	PricingTier              PricingTier
	ServicePlanName          string
	ServicePlanResourceGroup string
	Runtime                  Runtime
}

// FillBlanks copies from's values into every unset top-level field of c and
// then, when the two runtimes are distinct values, into the unset fields of
// c's runtime. Fields already set in c are never changed.
//
// A nil runtime in c receives a copy of from's runtime. Runtimes of different
// kinds are left alone.
func (c *AppConfig) FillBlanks(from *AppConfig) {
	if c == nil || from == nil {
		return
	}

	coalesce(&c.AppName, from.AppName)
	coalesce(&c.ResourceGroup, from.ResourceGroup)
	coalesce(&c.SubscriptionID, from.SubscriptionID)
	coalesce(&c.Region, from.Region)
	coalesce(&c.PricingTier, from.PricingTier)
	coalesce(&c.ServicePlanName, from.ServicePlanName)
	coalesce(&c.ServicePlanResourceGroup, from.ServicePlanResourceGroup)

	switch {
	case isNilRuntime(from.Runtime):
	case isNilRuntime(c.Runtime):
		c.Runtime = from.Runtime.Clone()
	case c.Runtime != from.Runtime:
		c.Runtime.fillBlanks(from.Runtime)
	}
}

// Clone returns a deep copy of c.
func (c *AppConfig) Clone() *AppConfig {
	if c == nil {
		return nil
	}

	clone := *c
	if c.Runtime != nil {
		clone.Runtime = c.Runtime.Clone()
	}
	return &clone
}

func isNilRuntime(r Runtime) bool {
	switch v := r.(type) {
	case nil:
		return true
	case *DockerRuntime:
		return v == nil
	case *NativeRuntime:
		return v == nil
	}
	return false
}

// coalesce sets *to to from when *to holds the zero value.
func coalesce[T comparable](to *T, from T) {
	var zero T
	if *to == zero {
		*to = from
	}
}
