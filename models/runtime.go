package models

// Runtime is the execution environment of a web app. It is one of
// *DockerRuntime or *NativeRuntime; a nil Runtime means the runtime is unset.
type Runtime interface {
	// OperatingSystem returns the OS kind of the runtime. Docker runtimes
	// always report Docker.
	OperatingSystem() OperatingSystem

	// Clone returns a copy that shares no memory with the receiver.
	Clone() Runtime

	// fillBlanks copies from's values into unset fields of the receiver when
	// both runtimes are of the same kind.
	fillBlanks(from Runtime)
}

// DockerRuntime describes a custom container web app.
type DockerRuntime struct {
	// Image is the image reference, e.g. "myregistry.azurecr.io/app:1".
	Image string
	// RegistryURL is the private registry server, empty for Docker Hub.
	RegistryURL string
}

// NativeRuntime describes a web app running on a built-in Java stack.
type NativeRuntime struct {
	OS           OperatingSystem
	WebContainer WebContainer
	JavaVersion  JavaVersion
}

// RuntimeDescriptor is what a live native web app reports about its stack.
type RuntimeDescriptor struct {
	OS           OperatingSystem
	WebContainer WebContainer
	JavaVersion  JavaVersion
}

func (r *DockerRuntime) OperatingSystem() OperatingSystem {
	return Docker
}

func (r *DockerRuntime) Clone() Runtime {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

func (r *DockerRuntime) fillBlanks(from Runtime) {
	src, ok := from.(*DockerRuntime)
	if !ok || src == nil {
		return
	}

	coalesce(&r.Image, src.Image)
	coalesce(&r.RegistryURL, src.RegistryURL)
}

func (r *NativeRuntime) OperatingSystem() OperatingSystem {
	return r.OS
}

func (r *NativeRuntime) Clone() Runtime {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

func (r *NativeRuntime) fillBlanks(from Runtime) {
	src, ok := from.(*NativeRuntime)
	if !ok || src == nil {
		return
	}

	coalesce(&r.OS, src.OS)
	coalesce(&r.WebContainer, src.WebContainer)
	coalesce(&r.JavaVersion, src.JavaVersion)
}

// NativeRuntimeFrom builds a native runtime from what a live app reports.
func NativeRuntimeFrom(d RuntimeDescriptor) *NativeRuntime {
	return &NativeRuntime{
		OS:           d.OS,
		WebContainer: d.WebContainer,
		JavaVersion:  d.JavaVersion,
	}
}
