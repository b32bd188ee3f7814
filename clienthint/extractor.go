// Package clienthint extracts a best-effort caller address hint from an
// inbound HTTP request: a priority-ordered scan over common proxy and
// CDN headers, falling back to the connection peer address. Headers are
// trusted only when the peer itself is a trusted proxy, otherwise
// anyone could seed the lookup with an arbitrary address.
package clienthint

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/asergeyev/nradix"

	"github.com/hydrantlabs/netintel/intellib"
)

// SourceRemoteAddr labels a hint taken from the connection peer rather
// than from a header.
const SourceRemoteAddr = "remote-addr"

// hint headers in priority order. Single-value CDN headers go first:
// they are set by infrastructure we trust more than an arbitrary
// X-Forwarded-For chain.
var defaultHeaders = []string{
	"CF-Connecting-IP",
	"True-Client-IP",
	"X-Real-IP",
	"Fastly-Client-IP",
	"Forwarded",
	"X-Forwarded-For",
	"X-Client-IP",
	"X-Cluster-Client-IP",
}

// DefaultTrustedProxies covers loopback and private networks: the
// standard deployment of this service is behind a reverse proxy on the
// same host or VPC.
var DefaultTrustedProxies = []string{
	"127.0.0.0/8",
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
	"169.254.0.0/16",
	"::1/128",
	"fc00::/7",
	"fe80::/10",
}

type Extractor struct {
	headers     []string
	trustedTree *nradix.Tree
}

// Extract returns the best caller address hint found in the request and
// a label of its origin ("header:<name>" or "remote-addr"). ok is false
// when not even the peer address parses as an IP.
func (e *Extractor) Extract(req *http.Request) (string, string, bool) {
	peer := peerAddress(req.RemoteAddr)

	if peer != "" && e.isTrustedProxy(peer) {
		if ip, source, ok := e.extractFromHeaders(req); ok {
			return ip, source, true
		}
	}

	if intellib.ClassifyAddress(peer) != intellib.FamilyNone {
		return peer, SourceRemoteAddr, true
	}

	return "", "", false
}

func (e *Extractor) extractFromHeaders(req *http.Request) (string, string, bool) {
	for _, header := range e.headers {
		for _, value := range req.Header.Values(header) {
			candidate := value

			switch {
			case strings.EqualFold(header, "Forwarded"):
				candidate = firstForwardedFor(value)
			case strings.EqualFold(header, "X-Forwarded-For"):
				candidate, _, _ = strings.Cut(value, ",")
			}

			candidate = CleanAddress(candidate)

			if intellib.ClassifyAddress(candidate) != intellib.FamilyNone {
				return candidate, "header:" + strings.ToLower(header), true
			}
		}
	}

	return "", "", false
}

func (e *Extractor) isTrustedProxy(peer string) bool {
	node, err := e.trustedTree.FindCIDR(peer)

	return err == nil && node != nil
}

func peerAddress(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		remoteAddr = host
	}

	return CleanAddress(remoteAddr)
}

// NewExtractor builds an extractor trusting the given proxy networks.
// An empty list means DefaultTrustedProxies.
func NewExtractor(trustedProxies []string) (*Extractor, error) {
	if len(trustedProxies) == 0 {
		trustedProxies = DefaultTrustedProxies
	}

	tree := nradix.NewTree(0)

	for _, cidr := range trustedProxies {
		if err := tree.AddCIDR(cidr, true); err != nil {
			return nil, fmt.Errorf("cannot parse trusted proxy %s: %w", cidr, err)
		}
	}

	return &Extractor{
		headers:     defaultHeaders,
		trustedTree: tree,
	}, nil
}
