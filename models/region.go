package models

import "strings"

// Region is a normalized Azure location name such as "westeurope".
type Region string

// NewRegion normalizes either an ARM location name or a display name
// ("West Europe") into a Region.
func NewRegion(name string) Region {
	return Region(strings.ToLower(strings.Join(strings.Fields(name), "")))
}

// ContainsRegion reports whether r is one of regions.
func ContainsRegion(regions []Region, r Region) bool {
	for _, candidate := range regions {
		if candidate == r {
			return true
		}
	}
	return false
}

func (r Region) String() string {
	return string(r)
}
