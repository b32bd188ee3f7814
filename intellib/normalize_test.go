package intellib_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/hydrantlabs/netintel/intellib"
	"github.com/stretchr/testify/suite"
)

type ClassifyAddressTestSuite struct {
	suite.Suite
}

func (suite *ClassifyAddressTestSuite) TestIPv4() {
	suite.Equal(intellib.FamilyIPv4, intellib.ClassifyAddress("203.0.113.5"))
	suite.Equal(intellib.FamilyIPv4, intellib.ClassifyAddress("0.0.0.0"))
	suite.Equal(intellib.FamilyIPv4, intellib.ClassifyAddress("255.255.255.255"))
	suite.Equal(intellib.FamilyIPv4, intellib.ClassifyAddress("  8.8.8.8  "))
	suite.Equal(intellib.FamilyIPv4, intellib.ClassifyAddress("1.2.3.004"))
}

func (suite *ClassifyAddressTestSuite) TestNotIPv4() {
	suite.Equal(intellib.FamilyNone, intellib.ClassifyAddress("256.0.113.5"))
	suite.Equal(intellib.FamilyNone, intellib.ClassifyAddress("203.0.113"))
	suite.Equal(intellib.FamilyNone, intellib.ClassifyAddress("203.0.113.5.1"))
	suite.Equal(intellib.FamilyNone, intellib.ClassifyAddress("203.0..5"))
	suite.Equal(intellib.FamilyNone, intellib.ClassifyAddress("a.b.c.d"))
	suite.Equal(intellib.FamilyNone, intellib.ClassifyAddress(""))
	suite.Equal(intellib.FamilyNone, intellib.ClassifyAddress("not an ip"))
}

func (suite *ClassifyAddressTestSuite) TestIPv6() {
	suite.Equal(intellib.FamilyIPv6, intellib.ClassifyAddress("2001:db8::1"))
	suite.Equal(intellib.FamilyIPv6, intellib.ClassifyAddress("::1"))
	suite.Equal(intellib.FamilyIPv6, intellib.ClassifyAddress("fe80:0:0:0:0:0:0:1"))
	suite.Equal(intellib.FamilyIPv6, intellib.ClassifyAddress("2001:0db8:85a3:0000:0000:8a2e:0370:7334"))
}

func (suite *ClassifyAddressTestSuite) TestNotIPv6() {
	suite.Equal(intellib.FamilyNone, intellib.ClassifyAddress("2001:::1"))
	suite.Equal(intellib.FamilyNone, intellib.ClassifyAddress("1:2:3:4:5:6:7:8:9"))
	suite.Equal(intellib.FamilyNone, intellib.ClassifyAddress("2001:db8::zz"))
	suite.Equal(intellib.FamilyNone, intellib.ClassifyAddress("fe80::1%eth0"))
}

type IsMeaningfulTestSuite struct {
	suite.Suite
}

func (suite *IsMeaningfulTestSuite) TestMeaningful() {
	suite.True(intellib.IsMeaningful("Acme Telecom"))
	suite.True(intellib.IsMeaningful("  Berlin  "))
	suite.True(intellib.IsMeaningful("0"))
}

func (suite *IsMeaningfulTestSuite) TestPlaceholders() {
	suite.False(intellib.IsMeaningful(""))
	suite.False(intellib.IsMeaningful("   "))
	suite.False(intellib.IsMeaningful("unknown"))
	suite.False(intellib.IsMeaningful("UNKNOWN"))
	suite.False(intellib.IsMeaningful("N/A"))
	suite.False(intellib.IsMeaningful("na"))
	suite.False(intellib.IsMeaningful("None"))
	suite.False(intellib.IsMeaningful("null"))
	suite.False(intellib.IsMeaningful("undefined"))
	suite.False(intellib.IsMeaningful("-"))
	suite.False(intellib.IsMeaningful("نامشخص"))
}

type ParseCoordinateTestSuite struct {
	suite.Suite
}

func (suite *ParseCoordinateTestSuite) TestPair() {
	lat, lon := intellib.ParseCoordinatePair("36.7957,-76.0126")

	suite.Require().NotNil(lat)
	suite.Require().NotNil(lon)
	suite.InDelta(36.7957, *lat, 1e-9)
	suite.InDelta(-76.0126, *lon, 1e-9)
}

func (suite *ParseCoordinateTestSuite) TestPairWithSpaces() {
	lat, lon := intellib.ParseCoordinatePair(" 52.52 , 13.405 ")

	suite.Require().NotNil(lat)
	suite.Require().NotNil(lon)
	suite.InDelta(52.52, *lat, 1e-9)
	suite.InDelta(13.405, *lon, 1e-9)
}

func (suite *ParseCoordinateTestSuite) TestMissingSide() {
	lat, lon := intellib.ParseCoordinatePair("52.52")

	suite.NotNil(lat)
	suite.Nil(lon)

	lat, lon = intellib.ParseCoordinatePair(",13.405")

	suite.Nil(lat)
	suite.NotNil(lon)
}

func (suite *ParseCoordinateTestSuite) TestGarbage() {
	lat, lon := intellib.ParseCoordinatePair("here,there")

	suite.Nil(lat)
	suite.Nil(lon)
}

func (suite *ParseCoordinateTestSuite) TestNumericCoordinate() {
	suite.Nil(intellib.ParseNumericCoordinate(nil))
	suite.Nil(intellib.ParseNumericCoordinate("garbage"))
	suite.Nil(intellib.ParseNumericCoordinate(math.Inf(1)))
	suite.Nil(intellib.ParseNumericCoordinate(math.NaN()))

	value := intellib.ParseNumericCoordinate(13.405)
	suite.Require().NotNil(value)
	suite.InDelta(13.405, *value, 1e-9)

	value = intellib.ParseNumericCoordinate("-76.0126")
	suite.Require().NotNil(value)
	suite.InDelta(-76.0126, *value, 1e-9)

	value = intellib.ParseNumericCoordinate(json.Number("52.52"))
	suite.Require().NotNil(value)
	suite.InDelta(52.52, *value, 1e-9)
}

func TestClassifyAddress(t *testing.T) {
	suite.Run(t, &ClassifyAddressTestSuite{})
}

func TestIsMeaningful(t *testing.T) {
	suite.Run(t, &IsMeaningfulTestSuite{})
}

func TestParseCoordinate(t *testing.T) {
	suite.Run(t, &ParseCoordinateTestSuite{})
}
