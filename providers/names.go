package providers

// Stable provider identifiers. The name prefix decides which parser a
// body goes through; targeted geolocation variants get a "-targeted"
// suffix so diagnostics distinguish them from vantage-based lookups.
const (
	NameIPAPI     = "ipapi"
	NameIPWhois   = "ipwhois"
	NameIPInfo    = "ipinfo"
	NameGeoJS     = "geojs"
	NameFreeIPAPI = "freeipapi"
	NameIPSB      = "ipsb"
	NameIPAPICo   = "ipapico"
	NameMyIP      = "myip"

	targetedSuffix = "-targeted"
)
