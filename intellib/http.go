package intellib

import (
	"encoding/json"
	"net/http"
)

// ProviderCatalog builds the provider list for one aggregation run. The
// hint IP, when non-empty, is a caller address already known from the
// inbound request; catalogs are expected to append lookup-this-IP
// provider variants for it.
type ProviderCatalog interface {
	Providers(hintIP string) []Provider
}

// HintExtractor produces an optional caller address hint from the
// inbound request, together with a label of where it came from.
type HintExtractor interface {
	Extract(req *http.Request) (ip string, source string, ok bool)
}

type httpHandler struct {
	aggregator *Aggregator
	catalog    ProviderCatalog
	hints      HintExtractor
}

func (h httpHandler) handleIntel(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		h.sendError(w, nil, "This HTTP method is not allowed", http.StatusMethodNotAllowed)

		return
	}

	var seed *Seed

	hintIP := ""

	if h.hints != nil {
		if ip, source, ok := h.hints.Extract(req); ok {
			observation := Observation{}

			switch ClassifyAddress(ip) {
			case FamilyIPv4:
				observation.IPv4 = ip
			case FamilyIPv6:
				observation.IPv6 = ip
			}

			if !observation.Empty() {
				hintIP = ip
				seed = &Seed{
					Observation: observation,
					Sources:     []string{source},
				}
			}
		}
	}

	result := h.aggregator.Aggregate(req.Context(), h.catalog.Providers(hintIP), seed)

	w.Header().Set("Cache-Control", "no-store")
	h.encodeJSON(w, newIntelResponse(result))
}

func (h httpHandler) handleProviderStats(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		h.sendError(w, nil, "This HTTP method is not allowed", http.StatusMethodNotAllowed)

		return
	}

	response := struct {
		Results []*UsageStats `json:"results"`
	}{
		Results: h.aggregator.UsageStats(),
	}

	h.encodeJSON(w, response)
}

func (h httpHandler) encodeJSON(w http.ResponseWriter, data interface{}) {
	encoder := json.NewEncoder(w)

	w.Header().Add("Content-Type", "application/json")
	encoder.SetEscapeHTML(false)
	encoder.Encode(data) // nolint: errcheck
}

func (h httpHandler) sendError(w http.ResponseWriter, err error, message string, statusCode int) {
	e := &httpError{
		message:    message,
		statusCode: statusCode,
		err:        err,
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode())
	h.encodeJSON(w, e)
}

// NewHTTPHandler returns a handler serving the aggregation API:
// GET /network-intel and GET /providers, relative to wherever the
// handler is mounted (the shipped binary mounts it under /api).
func NewHTTPHandler(aggregator *Aggregator, catalog ProviderCatalog, hints HintExtractor) http.Handler {
	handler := httpHandler{
		aggregator: aggregator,
		catalog:    catalog,
		hints:      hints,
	}
	mux := http.NewServeMux()

	mux.HandleFunc("/network-intel", handler.handleIntel)
	mux.HandleFunc("/providers", handler.handleProviderStats)

	return mux
}
