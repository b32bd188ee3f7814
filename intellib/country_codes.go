package intellib

import (
	"strings"

	"github.com/pariz/gountries"
)

var countryCodeQuery = gountries.New()

// NormalizeCountry canonicalizes a country value coming from an
// uncontrolled source. A bare 2-letter code is expanded to the common
// country name (falling back to the uppercased code when the code is
// not in ISO3166); anything else is passed through trimmed. Empty input
// yields an empty string.
//
// Some databases still use legacy codes; the same mapping the
// geolocation CSV dumps document is applied before the lookup.
func NormalizeCountry(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if !isBareAlpha2(text) {
		return text
	}

	code := normalizeLegacyAlpha2(strings.ToUpper(text))

	country, err := countryCodeQuery.FindCountryByAlpha(code)
	if err != nil {
		return code
	}

	return country.Name.Common
}

func isBareAlpha2(text string) bool {
	if len(text) != 2 {
		return false
	}

	for _, char := range text {
		isLower := char >= 'a' && char <= 'z'
		isUpper := char >= 'A' && char <= 'Z'

		if !isLower && !isUpper {
			return false
		}
	}

	return true
}

func normalizeLegacyAlpha2(code string) string {
	switch code {
	case "YU":
		return "CS"
	case "FX":
		return "FR"
	case "UK":
		return "GB"
	}

	return code
}
