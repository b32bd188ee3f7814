package providers

import (
	"context"
	"net/url"

	"github.com/hydrantlabs/netintel/intellib"
)

// geojsProvider queries get.geojs.io, which reports coordinates as
// numeric strings.
type geojsProvider struct {
	client intellib.HTTPClient
	target string
}

func (g geojsProvider) Name() string {
	if g.target != "" {
		return NameGeoJS + targetedSuffix
	}

	return NameGeoJS
}

func (g geojsProvider) Lookup(ctx context.Context) (intellib.Observation, error) {
	result := intellib.Observation{}

	endpoint := "https://get.geojs.io/v1/ip/geo.json"
	if g.target != "" {
		endpoint = "https://get.geojs.io/v1/ip/geo/" + url.PathEscape(g.target) + ".json"
	}

	body, err := fetchJSON(ctx, g.client, endpoint)
	if err != nil {
		return result, err
	}

	setAddress(&result, pickString(body, "ip"))

	result.ISP = pickString(body, "organization_name", "organization")
	result.City = pickString(body, "city", "region")
	result.Country = pickString(body, "country", "country_code")
	result.Lat = pickCoordinate(body, "latitude", "lat")
	result.Lon = pickCoordinate(body, "longitude", "lon")

	return result, nil
}

// NewGeoJS builds a get.geojs.io provider. A non-empty target queries
// the "lookup this IP" variant instead of "lookup my IP".
func NewGeoJS(client intellib.HTTPClient, target string) intellib.Provider {
	return geojsProvider{
		client: client,
		target: target,
	}
}
