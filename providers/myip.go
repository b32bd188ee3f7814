package providers

import (
	"context"

	"github.com/hydrantlabs/netintel/intellib"
)

// myipProvider queries api.myip.com. It has no lookup-this-IP variant:
// the answer is always about the calling vantage.
type myipProvider struct {
	client intellib.HTTPClient
}

func (m myipProvider) Name() string {
	return NameMyIP
}

func (m myipProvider) Lookup(ctx context.Context) (intellib.Observation, error) {
	result := intellib.Observation{}

	body, err := fetchJSON(ctx, m.client, "https://api.myip.com")
	if err != nil {
		return result, err
	}

	setAddress(&result, pickString(body, "ip"))

	result.Country = pickString(body, "country", "cc")

	return result, nil
}

func NewMyIP(client intellib.HTTPClient) intellib.Provider {
	return myipProvider{
		client: client,
	}
}
