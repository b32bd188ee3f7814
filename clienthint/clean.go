package clienthint

import (
	"net"
	"strings"
)

// CleanAddress strips the decorations proxy headers wrap around an IP
// literal: whitespace, single or double quotes, a port suffix, IPv6
// brackets and a zone-id suffix. It does not validate the result.
func CleanAddress(text string) string {
	text = strings.TrimSpace(text)
	text = trimMatchedPair(text, '"', '"')
	text = trimMatchedPair(text, '\'', '\'')

	if host, _, err := net.SplitHostPort(text); err == nil {
		text = host
	}

	text = trimMatchedPair(text, '[', ']')

	if i := strings.IndexByte(text, '%'); i >= 0 {
		text = text[:i]
	}

	return text
}

// firstForwardedFor extracts the for= value of the first element of an
// RFC 7239 Forwarded header value. Parameters are matched
// case-insensitively; elements without a for parameter yield "".
func firstForwardedFor(value string) string {
	element, _, _ := strings.Cut(value, ",")

	for _, parameter := range strings.Split(element, ";") {
		key, paramValue, found := strings.Cut(parameter, "=")
		if !found {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(key), "for") {
			return strings.TrimSpace(paramValue)
		}
	}

	return ""
}

// trimMatchedPair removes one leading and trailing delimiter when both
// match.
func trimMatchedPair(text string, start, end byte) string {
	if len(text) < 2 {
		return text
	}

	if text[0] != start || text[len(text)-1] != end {
		return text
	}

	return text[1 : len(text)-1]
}
