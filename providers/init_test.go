package providers_test

import (
	"net/http"
	"time"

	"github.com/hydrantlabs/netintel/intellib"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

type ProviderTestSuite struct {
	suite.Suite

	http intellib.HTTPClient
}

func (suite *ProviderTestSuite) SetupTest() {
	suite.http = intellib.NewHTTPClient(&http.Client{},
		"test-agent",
		time.Millisecond,
		100,
		1000,
		time.Minute,
		time.Minute)
}

type MockedProviderTestSuite struct {
	ProviderTestSuite
}

func (suite *MockedProviderTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *MockedProviderTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *MockedProviderTestSuite) TearDownTest() {
	httpmock.Reset()
}
