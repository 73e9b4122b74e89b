package adapter

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"

	"github.com/MKhiriev/appservice-config/models"
)

// appendGeoRegions appends the normalized names of page to regions, skipping
// entries already in seen. The resource provider reports display names
// ("West Europe"), which normalize to location names ("westeurope").
func appendGeoRegions(regions []models.Region, seen map[models.Region]struct{}, page []*armappservice.GeoRegion) []models.Region {
	for _, geo := range page {
		if geo == nil {
			continue
		}

		name := value(geo.Name)
		if name == "" && geo.Properties != nil {
			name = value(geo.Properties.DisplayName)
		}

		region := models.NewRegion(name)
		if region == "" {
			continue
		}
		if _, dup := seen[region]; dup {
			continue
		}

		seen[region] = struct{}{}
		regions = append(regions, region)
	}

	return regions
}

// value dereferences p, returning the zero value for nil.
func value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
