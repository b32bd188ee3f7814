package providers

import (
	"context"
	"net/url"

	"github.com/hydrantlabs/netintel/intellib"
)

type freeipapiProvider struct {
	client intellib.HTTPClient
	target string
}

func (f freeipapiProvider) Name() string {
	if f.target != "" {
		return NameFreeIPAPI + targetedSuffix
	}

	return NameFreeIPAPI
}

func (f freeipapiProvider) Lookup(ctx context.Context) (intellib.Observation, error) {
	result := intellib.Observation{}

	endpoint := "https://freeipapi.com/api/json"
	if f.target != "" {
		endpoint += "/" + url.PathEscape(f.target)
	}

	body, err := fetchJSON(ctx, f.client, endpoint)
	if err != nil {
		return result, err
	}

	setAddress(&result, pickString(body, "ipAddress", "ip"))

	result.ISP = pickString(body, "ispName", "isp")
	result.City = pickString(body, "cityName", "regionName", "city")
	result.Country = pickString(body, "countryName", "countryCode")
	result.Lat = pickCoordinate(body, "latitude")
	result.Lon = pickCoordinate(body, "longitude")

	return result, nil
}

// NewFreeIPAPI builds a freeipapi.com provider. A non-empty target
// queries the "lookup this IP" variant instead of "lookup my IP".
func NewFreeIPAPI(client intellib.HTTPClient, target string) intellib.Provider {
	return freeipapiProvider{
		client: client,
		target: target,
	}
}
