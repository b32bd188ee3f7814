package providers

import (
	"context"
	"net/url"

	"github.com/hydrantlabs/netintel/intellib"
)

// ipwhoisProvider queries ipwho.is. Failures are reported in-band via a
// "success" boolean.
type ipwhoisProvider struct {
	client intellib.HTTPClient
	target string
}

func (i ipwhoisProvider) Name() string {
	if i.target != "" {
		return NameIPWhois + targetedSuffix
	}

	return NameIPWhois
}

func (i ipwhoisProvider) Lookup(ctx context.Context) (intellib.Observation, error) {
	result := intellib.Observation{}

	endpoint := "https://ipwho.is/"
	if i.target != "" {
		endpoint += url.PathEscape(i.target)
	}

	body, err := fetchJSON(ctx, i.client, endpoint)
	if err != nil {
		return result, err
	}

	if success, ok := body["success"].(bool); ok && !success {
		return result, nil
	}

	setAddress(&result, pickString(body, "ip"))

	if connection, ok := body["connection"].(map[string]interface{}); ok {
		result.ISP = pickString(connection, "isp", "org")
	}

	result.City = pickString(body, "city", "region", "region_name")
	result.Country = pickString(body, "country", "country_code")
	result.Lat = pickCoordinate(body, "latitude", "lat")
	result.Lon = pickCoordinate(body, "longitude", "lon")

	return result, nil
}

// NewIPWhois builds an ipwho.is provider. A non-empty target queries
// the "lookup this IP" variant instead of "lookup my IP".
func NewIPWhois(client intellib.HTTPClient, target string) intellib.Provider {
	return ipwhoisProvider{
		client: client,
		target: target,
	}
}
