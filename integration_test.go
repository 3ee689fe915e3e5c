//go:build integration

package azurestorage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// IntegrationTestSuite runs against a real storage account or an Azurite
// emulator.  Point AZURE_STORAGE_CONNECTION_1_URL at the account before
// running with -tags integration, e.g. for Azurite:
//
//	AZURE_STORAGE_CONNECTION_1=integration
//	AZURE_STORAGE_CONNECTION_1_URL="DefaultEndpointsProtocol=http;AccountName=devstoreaccount1;AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;BlobEndpoint=http://127.0.0.1:10000/devstoreaccount1;"
type IntegrationTestSuite struct {
	suite.Suite
	containerName string
}

func (s *IntegrationTestSuite) SetupSuite() {
	if os.Getenv("AZURE_STORAGE_CONNECTION_1_URL") == "" {
		s.T().Skip("AZURE_STORAGE_CONNECTION_1_URL not set")
	}
	s.NoError(os.Setenv("AZURE_STORAGE_CONNECTION_1", "integration"))
	s.containerName = fmt.Sprintf("azurestorage-test-%d", time.Now().UnixNano())
}

func (s *IntegrationTestSuite) TearDownSuite() {
	s.NoError(os.Unsetenv("AZURE_STORAGE_CONNECTION_1"))
}

func (s *IntegrationTestSuite) TestServiceClientRoundTrip() {
	ctx := context.Background()

	client, err := GetServiceClient("integration")
	s.Require().NoError(err)

	_, err = client.CreateContainer(ctx, s.containerName, nil)
	s.Require().NoError(err)
	defer func() {
		_, err := client.DeleteContainer(ctx, s.containerName, nil)
		s.NoError(err)
	}()

	ctr, err := GetContainerClient("integration", s.containerName)
	s.Require().NoError(err)

	_, err = ctr.GetProperties(ctx, nil)
	s.NoError(err, "the container client must point at the container just created")
}

func TestIntegration(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
