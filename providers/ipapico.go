package providers

import (
	"context"
	"net/url"

	"github.com/hydrantlabs/netintel/intellib"
)

// ipapicoProvider queries ipapi.co. Rate-limit errors come back as a
// JSON object with an "error" boolean, treated as an empty observation.
type ipapicoProvider struct {
	client intellib.HTTPClient
	target string
}

func (i ipapicoProvider) Name() string {
	if i.target != "" {
		return NameIPAPICo + targetedSuffix
	}

	return NameIPAPICo
}

func (i ipapicoProvider) Lookup(ctx context.Context) (intellib.Observation, error) {
	result := intellib.Observation{}

	endpoint := "https://ipapi.co/json/"
	if i.target != "" {
		endpoint = "https://ipapi.co/" + url.PathEscape(i.target) + "/json/"
	}

	body, err := fetchJSON(ctx, i.client, endpoint)
	if err != nil {
		return result, err
	}

	if failed, ok := body["error"].(bool); ok && failed {
		return result, nil
	}

	setAddress(&result, pickString(body, "ip"))

	result.ISP = pickString(body, "org")
	result.City = pickString(body, "city", "region")
	result.Country = pickString(body, "country_name", "country", "country_code")
	result.Lat = pickCoordinate(body, "latitude")
	result.Lon = pickCoordinate(body, "longitude")

	return result, nil
}

// NewIPAPICo builds an ipapi.co provider. A non-empty target queries
// the "lookup this IP" variant instead of "lookup my IP".
func NewIPAPICo(client intellib.HTTPClient, target string) intellib.Provider {
	return ipapicoProvider{
		client: client,
		target: target,
	}
}
