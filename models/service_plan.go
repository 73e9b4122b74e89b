package models

// ServicePlanEntity is the part of an App Service plan a web app
// configuration needs.
type ServicePlanEntity struct {
	ResourceGroup string
	PricingTier   PricingTier
}
