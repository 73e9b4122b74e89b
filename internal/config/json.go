package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	Azure struct {
		SubscriptionID string `json:"subscription_id"`
		TenantID       string `json:"tenant_id"`
		Cloud          string `json:"cloud"`
	} `json:"azure,omitempty"`

	Defaults struct {
		Region      string `json:"region"`
		PricingTier string `json:"pricing_tier"`
		OS          string `json:"os"`
		JavaVersion string `json:"java_version"`
	} `json:"defaults,omitempty"`

	Output struct {
		Format string `json:"format"`
	} `json:"output,omitempty"`

	Log struct {
		Verbose bool `json:"verbose"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Azure: Azure{
			SubscriptionID: jsonCfg.Azure.SubscriptionID,
			TenantID:       jsonCfg.Azure.TenantID,
			Cloud:          jsonCfg.Azure.Cloud,
		},
		Defaults: Defaults{
			Region:      jsonCfg.Defaults.Region,
			PricingTier: jsonCfg.Defaults.PricingTier,
			OS:          jsonCfg.Defaults.OS,
			JavaVersion: jsonCfg.Defaults.JavaVersion,
		},
		Output: Output{
			Format: jsonCfg.Output.Format,
		},
		Log: Log{
			Verbose: jsonCfg.Log.Verbose,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
