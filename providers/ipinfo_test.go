package providers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/hydrantlabs/netintel/providers"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

type MockedIPInfoTestSuite struct {
	MockedProviderTestSuite
}

func (suite *MockedIPInfoTestSuite) TestName() {
	suite.Equal(providers.NameIPInfo,
		providers.NewIPInfo(suite.http, "").Name())
	suite.Equal(providers.NameIPInfo+"-targeted",
		providers.NewIPInfo(suite.http, "203.0.113.5").Name())
}

func (suite *MockedIPInfoTestSuite) TestLookupOk() {
	httpmock.RegisterResponder("GET",
		"https://ipinfo.io/json",
		httpmock.NewStringResponder(http.StatusOK, `{
            "ip": "203.0.113.5",
            "city": "Berlin",
            "country": "DE",
            "loc": "52.5200,13.4050",
            "org": "AS64496 Acme Telecom"
        }`))

	result, err := providers.NewIPInfo(suite.http, "").Lookup(context.Background())

	suite.NoError(err)
	suite.Equal("203.0.113.5", result.IPv4)
	suite.Equal("Berlin", result.City)
	suite.Equal("DE", result.Country)
	suite.Equal("AS64496 Acme Telecom", result.ISP)
	suite.Require().NotNil(result.Lat)
	suite.InDelta(52.52, *result.Lat, 1e-9)
	suite.Require().NotNil(result.Lon)
	suite.InDelta(13.405, *result.Lon, 1e-9)
}

func (suite *MockedIPInfoTestSuite) TestLookupTargeted() {
	httpmock.RegisterResponder("GET",
		"https://ipinfo.io/2001:db8::1/json",
		httpmock.NewStringResponder(http.StatusOK, `{
            "ip": "2001:db8::1",
            "country": "DE"
        }`))

	result, err := providers.NewIPInfo(suite.http, "2001:db8::1").Lookup(context.Background())

	suite.NoError(err)
	suite.Equal("", result.IPv4)
	suite.Equal("2001:db8::1", result.IPv6)
}

func (suite *MockedIPInfoTestSuite) TestLookupBrokenLoc() {
	httpmock.RegisterResponder("GET",
		"https://ipinfo.io/json",
		httpmock.NewStringResponder(http.StatusOK, `{
            "ip": "203.0.113.5",
            "loc": "somewhere"
        }`))

	result, err := providers.NewIPInfo(suite.http, "").Lookup(context.Background())

	suite.NoError(err)
	suite.Equal("203.0.113.5", result.IPv4)
	suite.Nil(result.Lat)
	suite.Nil(result.Lon)
}

func TestIPInfo(t *testing.T) {
	suite.Run(t, &MockedIPInfoTestSuite{})
}
