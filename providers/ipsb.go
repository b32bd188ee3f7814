package providers

import (
	"context"
	"net/url"

	"github.com/hydrantlabs/netintel/intellib"
)

type ipsbProvider struct {
	client intellib.HTTPClient
	target string
}

func (i ipsbProvider) Name() string {
	if i.target != "" {
		return NameIPSB + targetedSuffix
	}

	return NameIPSB
}

func (i ipsbProvider) Lookup(ctx context.Context) (intellib.Observation, error) {
	result := intellib.Observation{}

	endpoint := "https://api.ip.sb/geoip"
	if i.target != "" {
		endpoint += "/" + url.PathEscape(i.target)
	}

	body, err := fetchJSON(ctx, i.client, endpoint)
	if err != nil {
		return result, err
	}

	setAddress(&result, pickString(body, "ip"))

	result.ISP = pickString(body, "isp", "organization")
	result.City = pickString(body, "city", "region", "region_name")
	result.Country = pickString(body, "country", "country_code")
	result.Lat = pickCoordinate(body, "latitude")
	result.Lon = pickCoordinate(body, "longitude")

	return result, nil
}

// NewIPSB builds an api.ip.sb provider. A non-empty target queries the
// "lookup this IP" variant instead of "lookup my IP".
func NewIPSB(client intellib.HTTPClient, target string) intellib.Provider {
	return ipsbProvider{
		client: client,
		target: target,
	}
}
