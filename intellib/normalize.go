package intellib

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// AddressFamily is a result of ClassifyAddress.
type AddressFamily int

const (
	FamilyNone AddressFamily = iota
	FamilyIPv4
	FamilyIPv6
)

// placeholder values some providers return instead of omitting a field.
// The last entry is Persian for "unspecified".
var placeholderValues = map[string]bool{
	"unknown":   true,
	"n/a":       true,
	"na":        true,
	"none":      true,
	"null":      true,
	"undefined": true,
	"-":         true,
	"نامشخص":    true,
}

// ClassifyAddress decides whether the given text looks like an IPv4 or
// an IPv6 address. This is validation only: IPv6 addresses are not
// canonicalized, and anything else yields FamilyNone.
func ClassifyAddress(text string) AddressFamily {
	text = strings.TrimSpace(text)
	if text == "" {
		return FamilyNone
	}

	if !strings.Contains(text, ":") {
		if isDottedQuad(text) {
			return FamilyIPv4
		}

		return FamilyNone
	}

	if strings.Contains(text, ":::") {
		return FamilyNone
	}

	for _, char := range text {
		if !isHexDigit(char) && char != ':' {
			return FamilyNone
		}
	}

	if len(strings.Split(text, ":")) > 8 {
		return FamilyNone
	}

	return FamilyIPv6
}

func isDottedQuad(text string) bool {
	octets := strings.Split(text, ".")
	if len(octets) != 4 {
		return false
	}

	for _, octet := range octets {
		if octet == "" {
			return false
		}

		for _, char := range octet {
			if char < '0' || char > '9' {
				return false
			}
		}

		if value, err := strconv.Atoi(octet); err != nil || value > 255 {
			return false
		}
	}

	return true
}

func isHexDigit(char rune) bool {
	switch {
	case char >= '0' && char <= '9':
		return true
	case char >= 'a' && char <= 'f':
		return true
	case char >= 'A' && char <= 'F':
		return true
	}

	return false
}

// IsMeaningful reports whether a text field actually says something:
// non-empty after trimming and not one of the well-known placeholders.
func IsMeaningful(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	return !placeholderValues[strings.ToLower(text)]
}

// ParseNumericCoordinate coerces a coordinate which providers report
// either as a JSON number or as a numeric string. Returns nil when the
// value is absent, malformed or not finite.
func ParseNumericCoordinate(value interface{}) *float64 {
	switch typed := value.(type) {
	case nil:
		return nil
	case float64:
		return finiteFloat(typed)
	case float32:
		return finiteFloat(float64(typed))
	case int:
		return finiteFloat(float64(typed))
	case int64:
		return finiteFloat(float64(typed))
	case json.Number:
		return parseFloatString(typed.String())
	case string:
		return parseFloatString(typed)
	}

	return nil
}

// ParseCoordinatePair splits a combined "lat,lon" string on the first
// comma and parses both sides independently. A missing or non-finite
// side yields nil for that component only.
func ParseCoordinatePair(text string) (lat, lon *float64) {
	first, second, found := strings.Cut(text, ",")

	lat = parseFloatString(first)

	if found {
		lon = parseFloatString(second)
	}

	return lat, lon
}

func parseFloatString(text string) *float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}

	return finiteFloat(value)
}

func finiteFloat(value float64) *float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}

	return &value
}
