package providers

import (
	"context"

	"github.com/hydrantlabs/netintel/intellib"
)

// echoProvider is a plain-text endpoint whose whole body is the caller
// address. Some of them are pinned to a single address family: an
// answer of the other family (or any non-address text) yields an empty
// observation, never an error.
type echoProvider struct {
	client intellib.HTTPClient
	name   string
	url    string
	family intellib.AddressFamily
}

func (e echoProvider) Name() string {
	return e.name
}

func (e echoProvider) Lookup(ctx context.Context) (intellib.Observation, error) {
	result := intellib.Observation{}

	body, err := fetchText(ctx, e.client, e.url)
	if err != nil {
		return result, err
	}

	switch intellib.ClassifyAddress(body) {
	case intellib.FamilyIPv4:
		if e.family != intellib.FamilyIPv6 {
			result.IPv4 = body
		}
	case intellib.FamilyIPv6:
		if e.family != intellib.FamilyIPv4 {
			result.IPv6 = body
		}
	}

	return result, nil
}

// NewEcho builds a plain-text IP echo provider. family pins the
// expected address family; FamilyNone accepts either.
func NewEcho(client intellib.HTTPClient, name, url string, family intellib.AddressFamily) intellib.Provider {
	return echoProvider{
		client: client,
		name:   name,
		url:    url,
		family: family,
	}
}
