package azurestorage

// Options contains the configuration needed to construct a service-level
// Azure Blob Storage client.
type Options struct {
	// URL holds the Azure Storage connection string, or the plain service
	// endpoint URL of the storage account.
	URL string
}

// ContainerOptions contains the configuration needed to construct a client
// scoped to one container of a storage account.
type ContainerOptions struct {
	Options

	// Container holds the name of the container the client is scoped to.
	Container string
}

// ServiceOptionsSource resolves service-level client options by connection name.
type ServiceOptionsSource interface {
	ServiceOptions(name string) (*Options, error)
}

// ServiceOptionsFunc adapts a plain function to a ServiceOptionsSource.
type ServiceOptionsFunc func(name string) (*Options, error)

// ServiceOptions calls f(name)
func (f ServiceOptionsFunc) ServiceOptions(name string) (*Options, error) {
	return f(name)
}

// ContainerOptionsSource resolves container-level client options by connection
// name.  The container argument is a caller-supplied override; when it is empty
// (after trimming), the source decides the effective container itself.
type ContainerOptionsSource interface {
	ContainerOptions(name, container string) (*ContainerOptions, error)
}

// ContainerOptionsFunc adapts a plain function to a ContainerOptionsSource.
type ContainerOptionsFunc func(name, container string) (*ContainerOptions, error)

// ContainerOptions calls f(name, container)
func (f ContainerOptionsFunc) ContainerOptions(name, container string) (*ContainerOptions, error) {
	return f(name, container)
}
