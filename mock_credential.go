package azurestorage

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// MockCredentialFactory creates a "do-nothing" token credential used for unit
// testing, so factories can be exercised against URL-declared connections
// without any real credential source being present.
func MockCredentialFactory() (azcore.TokenCredential, error) {
	return &mockCredential{}, nil
}

type mockCredential struct{}

// GetToken returns a static token that never goes through a refresh
func (c *mockCredential) GetToken(_ context.Context, _ policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: "aaa", ExpiresOn: time.Now().Add(time.Hour)}, nil
}
