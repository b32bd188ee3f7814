package intellib

// intelResponse is the wire shape of GET /api/network-intel. Absent
// fields are serialized as explicit nulls, not omitted: consumers rely
// on a stable shape.
type intelResponse struct {
	Success     bool             `json:"success"`
	Data        intelData        `json:"data"`
	Diagnostics intelDiagnostics `json:"diagnostics"`
}

type intelData struct {
	IPv4        *string  `json:"ipv4"`
	IPv6        *string  `json:"ipv6"`
	ISP         *string  `json:"isp"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	SourcesUsed []string `json:"sourcesUsed"`
}

type intelDiagnostics struct {
	Attempted []string  `json:"attempted"`
	Failures  []Failure `json:"failures"`
}

func newIntelResponse(result AggregationResult) intelResponse {
	return intelResponse{
		Success: result.OK(),
		Data: intelData{
			IPv4:        nullableString(result.Record.IPv4),
			IPv6:        nullableString(result.Record.IPv6),
			ISP:         nullableString(result.Record.ISP),
			City:        nullableString(result.Record.City),
			Country:     nullableString(result.Record.Country),
			Lat:         result.Record.Lat,
			Lon:         result.Record.Lon,
			SourcesUsed: result.SourcesUsed,
		},
		Diagnostics: intelDiagnostics{
			Attempted: result.Attempted,
			Failures:  result.Failures,
		},
	}
}

func nullableString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
