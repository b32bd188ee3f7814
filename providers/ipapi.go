package providers

import (
	"context"
	"net/url"

	"github.com/hydrantlabs/netintel/intellib"
)

// ipapiProvider queries ip-api.com. The free tier is HTTP only and
// reports errors in-band via a "fail" status, which is treated as an
// empty observation instead of a failure.
type ipapiProvider struct {
	client intellib.HTTPClient
	target string
}

func (i ipapiProvider) Name() string {
	if i.target != "" {
		return NameIPAPI + targetedSuffix
	}

	return NameIPAPI
}

func (i ipapiProvider) Lookup(ctx context.Context) (intellib.Observation, error) {
	result := intellib.Observation{}

	endpoint := "http://ip-api.com/json/"
	if i.target != "" {
		endpoint += url.PathEscape(i.target)
	}

	body, err := fetchJSON(ctx, i.client, endpoint)
	if err != nil {
		return result, err
	}

	if pickString(body, "status") == "fail" {
		return result, nil
	}

	setAddress(&result, pickString(body, "query"))

	result.ISP = pickString(body, "isp", "org", "as")
	result.City = pickString(body, "city", "regionName", "region_name")
	result.Country = pickString(body, "country", "countryCode", "country_code")
	result.Lat = pickCoordinate(body, "lat", "latitude")
	result.Lon = pickCoordinate(body, "lon", "longitude")

	return result, nil
}

// NewIPAPI builds an ip-api.com provider. A non-empty target queries
// the "lookup this IP" variant instead of "lookup my IP".
func NewIPAPI(client intellib.HTTPClient, target string) intellib.Provider {
	return ipapiProvider{
		client: client,
		target: target,
	}
}
