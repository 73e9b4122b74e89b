package adapter

import (
	"context"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"

	"github.com/MKhiriev/appservice-config/models"
)

type settingsLoader func(ctx context.Context) (map[string]*string, error)

type webApp struct {
	site    armappservice.Site
	runtime models.RuntimeDescriptor
	docker  bool
	image   string

	loadSettings settingsLoader

	mu       sync.Mutex
	settings map[string]string
}

func newWebApp(site armappservice.Site, loadSettings settingsLoader) *webApp {
	return &webApp{
		site:         site,
		runtime:      parseRuntime(site),
		docker:       isDockerSite(site),
		image:        dockerImage(site),
		loadSettings: loadSettings,
	}
}

func (w *webApp) Name() string {
	return value(w.site.Name)
}

func (w *webApp) ID() string {
	return value(w.site.ID)
}

func (w *webApp) ResourceGroup() string {
	if w.site.Properties != nil && value(w.site.Properties.ResourceGroup) != "" {
		return value(w.site.Properties.ResourceGroup)
	}

	id, err := arm.ParseResourceID(w.ID())
	if err != nil {
		return ""
	}
	return id.ResourceGroupName
}

func (w *webApp) Region() models.Region {
	return models.NewRegion(value(w.site.Location))
}

func (w *webApp) ServicePlanID() string {
	if w.site.Properties == nil {
		return ""
	}
	return value(w.site.Properties.ServerFarmID)
}

func (w *webApp) IsDocker() bool {
	return w.docker
}

func (w *webApp) DockerImageName() string {
	return w.image
}

func (w *webApp) Runtime() models.RuntimeDescriptor {
	return w.runtime
}

// AppSettings loads the settings once and serves later calls from memory.
// A failed load is not cached.
func (w *webApp) AppSettings(ctx context.Context) (map[string]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.settings != nil {
		return w.settings, nil
	}
	if w.loadSettings == nil {
		return map[string]string{}, nil
	}

	raw, err := w.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(raw))
	for k, v := range raw {
		settings[k] = value(v)
	}
	w.settings = settings

	return settings, nil
}
