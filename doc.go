/*
Package azurestorage provides pre-configured Azure Blob Storage clients by logical
connection name.

Connections are declared as numbered groups of environment variables.  Each group
shares an ordinal index <N> that ties a logical name to its connection details:

	AZURE_STORAGE_CONNECTION_<N>            the logical connection name
	AZURE_STORAGE_CONNECTION_<N>_URL        the connection string or service URL (required)
	AZURE_STORAGE_CONNECTION_<N>_CONTAINER  the default container (container clients only)

With those set, clients are retrieved by name alone:

	import azurestorage "github.com/egomobile/go-azure-storage"

	func DoSomething() error {
	    svc, err := azurestorage.GetServiceClient("my-connection")
	    if err != nil {
	        return err
	    }

	    // container client scoped to the connection's default container
	    ctr, err := azurestorage.GetContainerClient("my-connection")
	    if err != nil {
	        return err
	    }

	    // or scoped to an explicit container, overriding the default
	    ctr, err = azurestorage.GetContainerClient("my-connection", "other-container")
	    ...
	}

GetServiceClient and GetContainerClient re-read the environment on every call and
construct a fresh client each time.  Nothing is cached at this layer.

# Custom options sources

The package-level functions are built by factory builders that accept an options
source: either a static options record or a function resolving options by name.
Both produce a provider function with the same shape:

	// static record: every call yields a client for the same account
	getClient, err := azurestorage.NewServiceClientFactory(azurestorage.Options{
	    URL: "DefaultEndpointsProtocol=https;AccountName=...;AccountKey=...",
	})

	// resolver function: full control over how names map to options
	getClient, err = azurestorage.NewServiceClientFactory(
	    func(name string) (*azurestorage.Options, error) {
	        return lookupOptionsSomewhere(name)
	    },
	)

	// nil: the environment-variable resolver described above
	getClient, err = azurestorage.NewServiceClientFactory(nil)

Anything else is rejected with ErrInvalidOptionsSource when the factory is built,
never when the provider function is called.

# Resolution

A Resolver translates a connection name into typed options by scanning the
environment for declaration keys matching AZURE_STORAGE_CONNECTION_<digits>,
comparing their trimmed values against the requested name.  The first matching
key encountered wins.  Enumeration order of process environment variables is not
guaranteed to be stable across platforms, so declaring the same name under two
indexes is implementation-defined; use MapEnv when deterministic (sorted-key)
iteration is required.

Resolvers read from an injectable Env so that resolution can be tested without
mutating the process environment:

	r := azurestorage.NewResolver(azurestorage.MapEnv{
	    "AZURE_STORAGE_CONNECTION_1":     "acme",
	    "AZURE_STORAGE_CONNECTION_1_URL": "https://acme.blob.core.windows.net",
	})
	opts, err := r.ServiceOptions("acme")

# Authentication

When a connection's _URL value is an Azure Storage connection string (of the
"key=value;key=value" form), the client is built with
azblob.NewClientFromConnectionString.  When it is a bare service URL, a token
credential is obtained from azidentity.NewDefaultAzureCredential, which honors
the usual AZURE_* credential environment variables, workload identity, managed
identity and the Azure CLI, in that order.  WithCredentialFactory replaces that
default, for instance to supply a mock credential in tests.
*/
package azurestorage
