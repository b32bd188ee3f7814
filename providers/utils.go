package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hydrantlabs/netintel/intellib"
)

// responseBodyLimit caps how much of a provider body is read. Echo
// endpoints return a couple dozen bytes; anything bigger is garbage.
const responseBodyLimit = 64 * 1024

func fetchJSON(ctx context.Context, client intellib.HTTPClient, url string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot build a request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot send a request: %w", err)
	}

	defer flushResponse(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, intellib.NewLookupError(intellib.ReasonStatus,
			fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	body := map[string]interface{}{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(io.LimitReader(resp.Body, responseBodyLimit)))

	if err := jsonDecoder.Decode(&body); err != nil {
		return nil, intellib.NewLookupError(intellib.ReasonDecode,
			fmt.Errorf("cannot parse a response: %w", err))
	}

	return body, nil
}

func fetchText(ctx context.Context, client intellib.HTTPClient, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("cannot build a request: %w", err)
	}

	req.Header.Set("Accept", "text/plain")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot send a request: %w", err)
	}

	defer flushResponse(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", intellib.NewLookupError(intellib.ReasonStatus,
			fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyLimit))
	if err != nil {
		return "", intellib.NewLookupError(intellib.ReasonDecode,
			fmt.Errorf("cannot read response body: %w", err))
	}

	return strings.TrimSpace(string(bodyBytes)), nil
}

func flushResponse(body io.ReadCloser) {
	io.Copy(io.Discard, body) // nolint: errcheck
	body.Close()
}

// pickString returns the first non-empty string value among the given
// alias keys. Providers disagree on key names, so every logical field
// has an ordered alias list.
func pickString(body map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := body[key].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}

	return ""
}

// pickCoordinate returns the first parseable coordinate among the given
// alias keys, coping with providers which report numbers as strings.
func pickCoordinate(body map[string]interface{}, keys ...string) *float64 {
	for _, key := range keys {
		value, ok := body[key]
		if !ok {
			continue
		}

		if parsed := intellib.ParseNumericCoordinate(value); parsed != nil {
			return parsed
		}
	}

	return nil
}

// setAddress classifies a candidate address and stores it under the
// matching family. Non-address text is dropped.
func setAddress(observation *intellib.Observation, candidate string) {
	candidate = strings.TrimSpace(candidate)

	switch intellib.ClassifyAddress(candidate) {
	case intellib.FamilyIPv4:
		observation.IPv4 = candidate
	case intellib.FamilyIPv6:
		observation.IPv6 = candidate
	}
}
