package config

import "github.com/spf13/pflag"

// BindFlags registers the configuration flags on fs and returns the
// StructuredConfig they write into. The returned value is meant to be passed
// to [GetStructuredConfig] after fs has been parsed; unset flags keep their
// zero value and therefore do not override other sources.
//
// Flags:
//
//	--config-file     JSON file with configs
//	--subscription    Azure subscription id
//	--tenant          Azure tenant id
//	--cloud           Azure cloud (public, china, usgovernment)
//	--default-region  region of default configurations
//	--default-pricing-tier pricing tier of default configurations
//	--default-os      operating system of default configurations
//	--default-java-version java version of default configurations
//	--format          output format (yaml, json)
//	-v/--verbose      debug logging
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.JSONFilePath, "config-file", "", "JSON config file path")
	fs.StringVar(&cfg.Azure.SubscriptionID, "subscription", "", "Azure subscription id")
	fs.StringVar(&cfg.Azure.TenantID, "tenant", "", "Azure tenant id")
	fs.StringVar(&cfg.Azure.Cloud, "cloud", "", "Azure cloud: public, china or usgovernment")
	fs.StringVar(&cfg.Defaults.Region, "default-region", "", "Region of default configurations")
	fs.StringVar(&cfg.Defaults.PricingTier, "default-pricing-tier", "", "Pricing tier of default configurations (e.g. P1v2)")
	fs.StringVar(&cfg.Defaults.OS, "default-os", "", "Operating system of default configurations (Linux, Windows)")
	fs.StringVar(&cfg.Defaults.JavaVersion, "default-java-version", "", "Java version of default configurations (e.g. 17)")
	fs.StringVar(&cfg.Output.Format, "format", "", "Output format: yaml or json")
	fs.BoolVarP(&cfg.Log.Verbose, "verbose", "v", false, "Enable debug logging")

	return cfg
}
