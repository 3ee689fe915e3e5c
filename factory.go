package azurestorage

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
)

// ServiceClientFactory returns a fresh service-level client for the named
// connection on every call.
type ServiceClientFactory func(name string) (*azblob.Client, error)

// ContainerClientFactory returns a fresh container-scoped client for the named
// connection on every call.  An optional container argument overrides the
// connection's default container.
type ContainerClientFactory func(name string, containerName ...string) (*container.Client, error)

// CredentialFactory creates the token credential used when a connection is
// declared with a bare service URL instead of a connection string.  This
// function type is provided to allow for mocking in unit tests.
type CredentialFactory func() (azcore.TokenCredential, error)

// DefaultCredentialFactory builds credentials via azidentity's default chain
// (environment, workload identity, managed identity, Azure CLI).
func DefaultCredentialFactory() (azcore.TokenCredential, error) {
	return azidentity.NewDefaultAzureCredential(nil)
}

type factoryConfig struct {
	clientOptions     *azblob.ClientOptions
	credentialFactory CredentialFactory
}

// FactoryOption configures a client factory at construction time.
type FactoryOption func(*factoryConfig)

// WithClientOptions sets the azblob client options (transport, retry policy,
// telemetry) passed to every client the factory constructs.
func WithClientOptions(o azblob.ClientOptions) FactoryOption {
	return func(cfg *factoryConfig) {
		cfg.clientOptions = &o
	}
}

// WithCredentialFactory replaces the credential chain used for connections
// declared with a bare service URL.
func WithCredentialFactory(f CredentialFactory) FactoryOption {
	return func(cfg *factoryConfig) {
		cfg.credentialFactory = f
	}
}

func newFactoryConfig(opts []FactoryOption) *factoryConfig {
	cfg := &factoryConfig{credentialFactory: DefaultCredentialFactory}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// NewServiceClientFactory builds a ServiceClientFactory from an options source.
//
// source must be one of:
//   - nil: the default environment-variable Resolver
//   - a ServiceOptionsSource (a *Resolver, a ServiceOptionsFunc, ...)
//   - a func(name string) (*Options, error)
//   - a static Options or *Options record, used verbatim for every call
//
// Any other value is rejected here with ErrInvalidOptionsSource so that a
// miswired factory fails when it is built, not on first use.
func NewServiceClientFactory(source any, opts ...FactoryOption) (ServiceClientFactory, error) {
	src, err := normalizeServiceSource(source)
	if err != nil {
		return nil, err
	}

	cfg := newFactoryConfig(opts)
	return func(name string) (*azblob.Client, error) {
		o, err := src.ServiceOptions(name)
		if err != nil {
			return nil, err
		}
		return newServiceClient(o.URL, cfg)
	}, nil
}

// NewContainerClientFactory builds a ContainerClientFactory from an options
// source.  source follows the same contract as in NewServiceClientFactory,
// with ContainerOptionsSource, func(name, container string)
// (*ContainerOptions, error) and ContainerOptions as the accepted shapes.
func NewContainerClientFactory(source any, opts ...FactoryOption) (ContainerClientFactory, error) {
	src, err := normalizeContainerSource(source)
	if err != nil {
		return nil, err
	}

	cfg := newFactoryConfig(opts)
	return func(name string, containerName ...string) (*container.Client, error) {
		override := ""
		if len(containerName) > 0 {
			override = containerName[0]
		}

		o, err := src.ContainerOptions(name, override)
		if err != nil {
			return nil, err
		}

		client, err := newServiceClient(o.URL, cfg)
		if err != nil {
			return nil, err
		}
		return client.ServiceClient().NewContainerClient(o.Container), nil
	}, nil
}

// normalizeServiceSource resolves the function-or-record union once, at
// factory-construction time, into a uniform ServiceOptionsSource.
func normalizeServiceSource(source any) (ServiceOptionsSource, error) {
	switch s := source.(type) {
	case nil:
		return defaultResolver, nil
	case ServiceOptionsSource:
		return s, nil
	case func(name string) (*Options, error):
		return ServiceOptionsFunc(s), nil
	case Options:
		return staticServiceOptions(s), nil
	case *Options:
		return staticServiceOptions(*s), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidOptionsSource, source)
	}
}

func normalizeContainerSource(source any) (ContainerOptionsSource, error) {
	switch s := source.(type) {
	case nil:
		return defaultResolver, nil
	case ContainerOptionsSource:
		return s, nil
	case func(name, container string) (*ContainerOptions, error):
		return ContainerOptionsFunc(s), nil
	case ContainerOptions:
		return staticContainerOptions(s), nil
	case *ContainerOptions:
		return staticContainerOptions(*s), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidOptionsSource, source)
	}
}

// staticServiceOptions wraps a fixed record in a source that ignores its
// arguments.
func staticServiceOptions(o Options) ServiceOptionsSource {
	return ServiceOptionsFunc(func(string) (*Options, error) {
		opts := o
		return &opts, nil
	})
}

// staticContainerOptions wraps a fixed record in a source that returns it
// verbatim, regardless of arguments.  A container override passed to the
// provider function is ignored for static records.
func staticContainerOptions(o ContainerOptions) ContainerOptionsSource {
	return ContainerOptionsFunc(func(string, string) (*ContainerOptions, error) {
		opts := o
		return &opts, nil
	})
}

// newServiceClient constructs the underlying SDK client from a resolved _URL
// value.
func newServiceClient(url string, cfg *factoryConfig) (*azblob.Client, error) {
	if isConnectionString(url) {
		return azblob.NewClientFromConnectionString(url, cfg.clientOptions)
	}

	credential, err := cfg.credentialFactory()
	if err != nil {
		return nil, err
	}
	return azblob.NewClient(url, credential, cfg.clientOptions)
}

// isConnectionString distinguishes "DefaultEndpointsProtocol=...;AccountName=..."
// connection strings from plain service URLs.  Connection strings are always
// semicolon-delimited key=value pairs; requiring both separators keeps URLs
// that carry a query string (such as SAS URLs, "...?sv=...&sig=...") on the
// URL path.
func isConnectionString(s string) bool {
	return strings.Contains(s, ";") && strings.Contains(s, "=")
}
