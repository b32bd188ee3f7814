package providers

import (
	"context"
	"net/url"

	"github.com/hydrantlabs/netintel/intellib"
)

// ipinfoProvider queries ipinfo.io, which reports coordinates as a
// combined "lat,lon" string under the loc key.
type ipinfoProvider struct {
	client intellib.HTTPClient
	target string
}

func (i ipinfoProvider) Name() string {
	if i.target != "" {
		return NameIPInfo + targetedSuffix
	}

	return NameIPInfo
}

func (i ipinfoProvider) Lookup(ctx context.Context) (intellib.Observation, error) {
	result := intellib.Observation{}

	endpoint := "https://ipinfo.io/json"
	if i.target != "" {
		endpoint = "https://ipinfo.io/" + url.PathEscape(i.target) + "/json"
	}

	body, err := fetchJSON(ctx, i.client, endpoint)
	if err != nil {
		return result, err
	}

	setAddress(&result, pickString(body, "ip"))

	result.ISP = pickString(body, "org")
	result.City = pickString(body, "city", "region")
	result.Country = pickString(body, "country")

	if loc := pickString(body, "loc"); loc != "" {
		result.Lat, result.Lon = intellib.ParseCoordinatePair(loc)
	}

	return result, nil
}

// NewIPInfo builds an ipinfo.io provider. A non-empty target queries
// the "lookup this IP" variant instead of "lookup my IP".
func NewIPInfo(client intellib.HTTPClient, target string) intellib.Provider {
	return ipinfoProvider{
		client: client,
		target: target,
	}
}
