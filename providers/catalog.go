package providers

import (
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/hydrantlabs/netintel/intellib"
)

const (
	DefaultCacheSize = 4096
	DefaultCacheTTL  = 10 * time.Minute
)

type echoEndpoint struct {
	name   string
	url    string
	family intellib.AddressFamily
}

// The static echo pool: a mix of IPv4-only, IPv6-only and dual-stack
// plain-text endpoints. Single-family entries are what actually gets
// both families populated: a dual-stack endpoint answers with whichever
// family the caller connected over.
var echoEndpoints = []echoEndpoint{
	{"echo-ipify4", "https://api.ipify.org", intellib.FamilyIPv4},
	{"echo-ipify6", "https://api6.ipify.org", intellib.FamilyIPv6},
	{"echo-ipify64", "https://api64.ipify.org", intellib.FamilyNone},
	{"echo-icanhazip4", "https://ipv4.icanhazip.com", intellib.FamilyIPv4},
	{"echo-icanhazip6", "https://ipv6.icanhazip.com", intellib.FamilyIPv6},
	{"echo-icanhazip", "https://icanhazip.com", intellib.FamilyNone},
	{"echo-identme4", "https://v4.ident.me", intellib.FamilyIPv4},
	{"echo-identme6", "https://v6.ident.me", intellib.FamilyIPv6},
	{"echo-identme", "https://ident.me", intellib.FamilyNone},
	{"echo-seeip4", "https://ip4.seeip.org", intellib.FamilyIPv4},
	{"echo-seeip6", "https://ip6.seeip.org", intellib.FamilyIPv6},
	{"echo-ifconfigme", "https://ifconfig.me/ip", intellib.FamilyNone},
	{"echo-amazonaws", "https://checkip.amazonaws.com", intellib.FamilyIPv4},
	{"echo-ipecho", "https://ipecho.net/plain", intellib.FamilyNone},
}

// Catalog builds provider lists for aggregation runs: the echo pool
// first, then targeted geolocation variants when a caller address is
// already known, then the untargeted geolocation pool. Targeted lookups
// are keyed by the address they resolve, so they go through a shared
// TTL cache; everything else depends on the calling vantage and is
// never cached.
type Catalog struct {
	client intellib.HTTPClient
	cache  *ristretto.Cache
	ttl    time.Duration
}

func (c *Catalog) Providers(hintIP string) []intellib.Provider {
	rv := make([]intellib.Provider, 0, len(echoEndpoints)+16)

	for _, endpoint := range echoEndpoints {
		rv = append(rv, NewEcho(c.client, endpoint.name, endpoint.url, endpoint.family))
	}

	if hintIP != "" {
		for _, targeted := range c.targetedPool(hintIP) {
			rv = append(rv, intellib.NewCachingProvider(targeted, c.cache, hintIP, c.ttl))
		}
	}

	rv = append(rv, c.untargetedPool()...)

	return rv
}

func (c *Catalog) targetedPool(hintIP string) []intellib.Provider {
	return []intellib.Provider{
		NewIPAPI(c.client, hintIP),
		NewIPWhois(c.client, hintIP),
		NewIPInfo(c.client, hintIP),
		NewGeoJS(c.client, hintIP),
		NewFreeIPAPI(c.client, hintIP),
		NewIPSB(c.client, hintIP),
		NewIPAPICo(c.client, hintIP),
	}
}

func (c *Catalog) untargetedPool() []intellib.Provider {
	return []intellib.Provider{
		NewIPAPI(c.client, ""),
		NewIPWhois(c.client, ""),
		NewIPInfo(c.client, ""),
		NewGeoJS(c.client, ""),
		NewFreeIPAPI(c.client, ""),
		NewIPSB(c.client, ""),
		NewIPAPICo(c.client, ""),
		NewMyIP(c.client),
	}
}

// NewCatalog builds a catalog on top of the given HTTP client. ttl and
// cacheSize control the targeted-lookup cache; zero values pick the
// defaults.
func NewCatalog(client intellib.HTTPClient, cacheSize uint, ttl time.Duration) *Catalog {
	if cacheSize == 0 {
		cacheSize = DefaultCacheSize
	}

	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &Catalog{
		client: client,
		cache:  intellib.NewLookupCache(cacheSize),
		ttl:    ttl,
	}
}
