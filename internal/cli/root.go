package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/appservice-config/internal/adapter"
	"github.com/MKhiriev/appservice-config/internal/config"
	"github.com/MKhiriev/appservice-config/internal/logger"
	"github.com/MKhiriev/appservice-config/internal/service"
	"github.com/MKhiriev/appservice-config/models"
)

const role = "appservice-config"

// AdapterFactory creates the resource-manager adapter once the tool
// configuration is known.
type AdapterFactory func(cfg *config.StructuredConfig, log *logger.Logger) (adapter.AppServiceAdapter, error)

type Option func(*app)

// WithBuildInfo enables --version.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(a *app) {
		a.version = info.String()
	}
}

// WithAdapterFactory replaces the Azure adapter the live commands use.
func WithAdapterFactory(f AdapterFactory) Option {
	return func(a *app) {
		a.newAdapter = f
	}
}

type app struct {
	flags *config.StructuredConfig
	cfg   *config.StructuredConfig
	log   *logger.Logger

	newAdapter AdapterFactory
	adapter    adapter.AppServiceAdapter

	version string
}

// NewRootCommand assembles the command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{newAdapter: newAzureAdapter}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:           "appservice-config",
		Short:         "Extract, default and merge Azure App Service web app configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       a.version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newExtractCommand(a),
		newDefaultCommand(a),
		newMergeCommand(a),
		newFillCommand(a),
		newValidateCommand(a),
	)

	return root
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.GetStructuredConfig(a.flags)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	a.cfg = cfg
	a.log = logger.NewLogger(role, cmd.ErrOrStderr(), cfg.Log.Verbose)
	cmd.SetContext(a.log.WithContext(cmd.Context()))

	a.log.Debug().
		Str("cloud", cfg.Azure.Cloud).
		Str("format", cfg.Output.Format).
		Msg("configuration loaded")

	return nil
}

func (a *app) azure() (adapter.AppServiceAdapter, error) {
	if a.adapter != nil {
		return a.adapter, nil
	}

	ad, err := a.newAdapter(a.cfg, a.log)
	if err != nil {
		return nil, fmt.Errorf("create azure adapter: %w", err)
	}
	a.adapter = ad
	return ad, nil
}

// services builds the reconciler. regions may be nil for commands that only
// merge documents.
func (a *app) services(regions adapter.RegionCatalog) (*service.Services, error) {
	services, err := service.NewServices(regions, a.cfg.Defaults, a.log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}
	return services, nil
}

func (a *app) subscription() (string, error) {
	if a.cfg.Azure.SubscriptionID == "" {
		return "", ErrMissingSubscription
	}
	return a.cfg.Azure.SubscriptionID, nil
}

func (a *app) stdout(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

// newAzureAdapter lists regions with Linux workers unless defaults target
// Windows.
func newAzureAdapter(cfg *config.StructuredConfig, log *logger.Logger) (adapter.AppServiceAdapter, error) {
	credential, err := adapter.NewDefaultCredential(cfg.Azure)
	if err != nil {
		return nil, err
	}

	return adapter.NewAzureAdapter(cfg.Azure, credential, log,
		adapter.WithLinuxWorkers(linuxWorkers(cfg.Defaults)),
	)
}

func linuxWorkers(defaults config.Defaults) bool {
	os, err := models.ParseOperatingSystem(defaults.OS)
	return err != nil || os != models.Windows
}
