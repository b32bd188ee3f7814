package intellib_test

import (
	"testing"

	"github.com/hydrantlabs/netintel/intellib"
	"github.com/stretchr/testify/suite"
)

type NormalizeCountryTestSuite struct {
	suite.Suite
}

func (suite *NormalizeCountryTestSuite) TestAlpha2Codes() {
	suite.Equal("Iran", intellib.NormalizeCountry("ir"))
	suite.Equal("Iran", intellib.NormalizeCountry("IR"))
	suite.Equal("Germany", intellib.NormalizeCountry("DE"))
	suite.Equal("United States", intellib.NormalizeCountry("us"))
}

func (suite *NormalizeCountryTestSuite) TestLegacyCodes() {
	suite.Equal("United Kingdom", intellib.NormalizeCountry("UK"))
	suite.Equal("France", intellib.NormalizeCountry("FX"))
}

func (suite *NormalizeCountryTestSuite) TestUnknownCodePassesThroughUppercased() {
	suite.Equal("XX", intellib.NormalizeCountry("xx"))
}

func (suite *NormalizeCountryTestSuite) TestFullNamePassesThrough() {
	suite.Equal("Neverland", intellib.NormalizeCountry("Neverland"))
	suite.Equal("Germany", intellib.NormalizeCountry("  Germany  "))
}

func (suite *NormalizeCountryTestSuite) TestEmpty() {
	suite.Equal("", intellib.NormalizeCountry(""))
	suite.Equal("", intellib.NormalizeCountry("   "))
}

func (suite *NormalizeCountryTestSuite) TestNonLetterPairPassesThrough() {
	suite.Equal("42", intellib.NormalizeCountry("42"))
}

func TestNormalizeCountry(t *testing.T) {
	suite.Run(t, &NormalizeCountryTestSuite{})
}
