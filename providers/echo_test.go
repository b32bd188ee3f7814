package providers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/hydrantlabs/netintel/intellib"
	"github.com/hydrantlabs/netintel/providers"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

type MockedEchoTestSuite struct {
	MockedProviderTestSuite
}

func (suite *MockedEchoTestSuite) TestName() {
	prov := providers.NewEcho(suite.http, "echo-test", "https://echo.example.com", intellib.FamilyNone)

	suite.Equal("echo-test", prov.Name())
}

func (suite *MockedEchoTestSuite) TestLookupIPv4() {
	httpmock.RegisterResponder("GET",
		"https://echo.example.com",
		httpmock.NewStringResponder(http.StatusOK, "203.0.113.5\n"))

	prov := providers.NewEcho(suite.http, "echo-test", "https://echo.example.com", intellib.FamilyIPv4)

	result, err := prov.Lookup(context.Background())

	suite.NoError(err)
	suite.Equal("203.0.113.5", result.IPv4)
	suite.Equal("", result.IPv6)
}

func (suite *MockedEchoTestSuite) TestLookupIPv6() {
	httpmock.RegisterResponder("GET",
		"https://echo.example.com",
		httpmock.NewStringResponder(http.StatusOK, "2001:db8::1"))

	prov := providers.NewEcho(suite.http, "echo-test", "https://echo.example.com", intellib.FamilyIPv6)

	result, err := prov.Lookup(context.Background())

	suite.NoError(err)
	suite.Equal("", result.IPv4)
	suite.Equal("2001:db8::1", result.IPv6)
}

func (suite *MockedEchoTestSuite) TestWrongFamilyDropped() {
	httpmock.RegisterResponder("GET",
		"https://echo.example.com",
		httpmock.NewStringResponder(http.StatusOK, "2001:db8::1"))

	prov := providers.NewEcho(suite.http, "echo-test", "https://echo.example.com", intellib.FamilyIPv4)

	result, err := prov.Lookup(context.Background())

	suite.NoError(err)
	suite.True(result.Empty())
}

func (suite *MockedEchoTestSuite) TestGarbageBody() {
	httpmock.RegisterResponder("GET",
		"https://echo.example.com",
		httpmock.NewStringResponder(http.StatusOK, "<html>not an ip</html>"))

	prov := providers.NewEcho(suite.http, "echo-test", "https://echo.example.com", intellib.FamilyNone)

	result, err := prov.Lookup(context.Background())

	suite.NoError(err)
	suite.True(result.Empty())
}

func (suite *MockedEchoTestSuite) TestLookupFailed() {
	httpmock.RegisterResponder("GET",
		"https://echo.example.com",
		httpmock.NewStringResponder(http.StatusInternalServerError, ""))

	prov := providers.NewEcho(suite.http, "echo-test", "https://echo.example.com", intellib.FamilyNone)

	_, err := prov.Lookup(context.Background())

	suite.Error(err)
	suite.Equal(intellib.ReasonStatus, intellib.FailureReason(err))
}

func (suite *MockedEchoTestSuite) TestLookupClosedContext() {
	ctx, cancel := context.WithCancel(context.Background())

	cancel()

	prov := providers.NewEcho(suite.http, "echo-test", "https://echo.example.com", intellib.FamilyNone)

	_, err := prov.Lookup(ctx)

	suite.Error(err)
}

func TestEcho(t *testing.T) {
	suite.Run(t, &MockedEchoTestSuite{})
}
