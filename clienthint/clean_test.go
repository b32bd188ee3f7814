package clienthint_test

import (
	"testing"

	"github.com/hydrantlabs/netintel/clienthint"
	"github.com/stretchr/testify/suite"
)

type CleanAddressTestSuite struct {
	suite.Suite
}

func (suite *CleanAddressTestSuite) TestPassThrough() {
	suite.Equal("203.0.113.5", clienthint.CleanAddress("203.0.113.5"))
	suite.Equal("2001:db8::1", clienthint.CleanAddress("2001:db8::1"))
}

func (suite *CleanAddressTestSuite) TestWhitespace() {
	suite.Equal("203.0.113.5", clienthint.CleanAddress("  203.0.113.5\t"))
}

func (suite *CleanAddressTestSuite) TestQuotes() {
	suite.Equal("203.0.113.5", clienthint.CleanAddress(`"203.0.113.5"`))
	suite.Equal("203.0.113.5", clienthint.CleanAddress("'203.0.113.5'"))
}

func (suite *CleanAddressTestSuite) TestPort() {
	suite.Equal("203.0.113.5", clienthint.CleanAddress("203.0.113.5:8080"))
}

func (suite *CleanAddressTestSuite) TestBracketedIPv6() {
	suite.Equal("2001:db8::1", clienthint.CleanAddress("[2001:db8::1]"))
	suite.Equal("2001:db8::1", clienthint.CleanAddress("[2001:db8::1]:443"))
}

func (suite *CleanAddressTestSuite) TestZoneID() {
	suite.Equal("fe80::1", clienthint.CleanAddress("fe80::1%eth0"))
}

func (suite *CleanAddressTestSuite) TestQuotedBracketedWithPort() {
	suite.Equal("2001:db8::1", clienthint.CleanAddress(`"[2001:db8::1]:443"`))
}

func (suite *CleanAddressTestSuite) TestNoValidation() {
	suite.Equal("unknown", clienthint.CleanAddress("unknown"))
}

func TestCleanAddress(t *testing.T) {
	suite.Run(t, &CleanAddressTestSuite{})
}
