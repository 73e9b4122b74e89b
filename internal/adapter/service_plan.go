package adapter

import (
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"

	"github.com/MKhiriev/appservice-config/models"
)

type servicePlan struct {
	name   string
	entity *models.ServicePlanEntity
}

func newServicePlan(plan armappservice.Plan) *servicePlan {
	resourceGroup := ""
	if plan.Properties != nil {
		resourceGroup = value(plan.Properties.ResourceGroup)
	}
	if resourceGroup == "" {
		if id, err := arm.ParseResourceID(value(plan.ID)); err == nil {
			resourceGroup = id.ResourceGroupName
		}
	}

	return &servicePlan{
		name: value(plan.Name),
		entity: &models.ServicePlanEntity{
			ResourceGroup: resourceGroup,
			PricingTier:   pricingTierOf(plan.SKU),
		},
	}
}

// pricingTierOf reads the SKU as reported by the resource provider. An
// unrecognized size keeps the provider's spelling.
func pricingTierOf(sku *armappservice.SKUDescription) models.PricingTier {
	if sku == nil {
		return models.PricingTier{}
	}

	size := value(sku.Size)
	if size == "" {
		size = value(sku.Name)
	}

	if parsed, err := models.ParsePricingTier(size); err == nil && !parsed.IsZero() {
		if tier := strings.TrimSpace(value(sku.Tier)); tier != "" {
			parsed.Tier = tier
		}
		return parsed
	}

	return models.PricingTier{Tier: value(sku.Tier), Size: size}
}

func (p *servicePlan) Name() string {
	return p.name
}

func (p *servicePlan) Entity() *models.ServicePlanEntity {
	return p.entity
}
