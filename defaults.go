package azurestorage

import (
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
)

// defaultResolver reads from the process environment.
var defaultResolver = NewResolver(nil)

var (
	defaultServiceClientFactory   ServiceClientFactory
	defaultContainerClientFactory ContainerClientFactory
)

func init() {
	// A nil source can always be normalized, so neither construction can fail.
	defaultServiceClientFactory, _ = NewServiceClientFactory(nil)
	defaultContainerClientFactory, _ = NewContainerClientFactory(nil)
}

// GetServiceClient returns a service-level client for the named connection,
// resolved from the AZURE_STORAGE_CONNECTION_* environment variables.
func GetServiceClient(name string) (*azblob.Client, error) {
	return defaultServiceClientFactory(name)
}

// GetContainerClient returns a container-scoped client for the named
// connection, resolved from the AZURE_STORAGE_CONNECTION_* environment
// variables.  An optional container argument overrides the connection's
// _CONTAINER variable.
func GetContainerClient(name string, containerName ...string) (*container.Client, error) {
	return defaultContainerClientFactory(name, containerName...)
}
