package intellib

// Observation is what a single provider managed to extract from its
// response. Every field is optional: an empty string (or nil pointer)
// means "this provider did not report the field", not "the field is
// empty".
type Observation struct {
	IPv4    string
	IPv6    string
	ISP     string
	City    string
	Country string
	Lat     *float64
	Lon     *float64
}

// Empty reports whether the observation carries no fields at all.
func (o Observation) Empty() bool {
	return o.IPv4 == "" &&
		o.IPv6 == "" &&
		o.ISP == "" &&
		o.City == "" &&
		o.Country == "" &&
		o.Lat == nil &&
		o.Lon == nil
}

// Record is the canonical accumulator built by folding observations
// together. Populated fields are always cleaned: addresses validated,
// text fields trimmed and non-placeholder, country expanded to a full
// name when it arrived as a 2-letter code, coordinates present only as
// a pair taken from a single provider.
type Record struct {
	IPv4    string
	IPv6    string
	ISP     string
	City    string
	Country string
	Lat     *float64
	Lon     *float64
}

// Sufficient reports whether the record carries enough information to
// stop querying further providers: both address families resolved plus
// at least one of ISP or country.
func (r Record) Sufficient() bool {
	return r.IPv4 != "" && r.IPv6 != "" && (IsMeaningful(r.ISP) || IsMeaningful(r.Country))
}

// Failure describes one provider which was attempted and did not
// produce a usable observation.
type Failure struct {
	Source string `json:"source"`
	Reason string `json:"reason"`
}

// AggregationResult is the outcome of a single aggregation run: the
// merged record plus diagnostics about who was asked and who failed.
// It is built once per request and never persisted.
type AggregationResult struct {
	Record      Record
	Attempted   []string
	Failures    []Failure
	SourcesUsed []string
}

// OK reports whether the run produced at least one address. This is the
// only caller-visible failure mode: individual provider failures are
// diagnostics, not errors.
func (r AggregationResult) OK() bool {
	return r.Record.IPv4 != "" || r.Record.IPv6 != ""
}

// Seed is an initial observation folded into the record before any
// provider runs, typically extracted from proxy headers of the inbound
// request.
type Seed struct {
	Observation Observation
	Sources     []string
}
