// Netintel is a service which answers "what is my public IP address
// and where does it live" by querying a pool of independent, unreliable
// third-party HTTP endpoints and merging their partial answers into a
// single record.
//
// Tool itself is organized into 3 logical parts:
//
// Intellib
//
// intellib is a main package of the application: the record and
// observation types, the field normalization heuristics, the merge
// policy and the bounded-concurrency aggregation scheduler. It also
// ships an http.Handler for the public API.
//
// Providers
//
// This package has the stock catalog: plain-text IP echo endpoints and
// structured geolocation endpoints with their per-family response
// parsers. Adding a provider is a data change plus one small parser.
//
// Netintel
//
// A main package itself wires both together: CLI, config, logging,
// metrics and the HTTP server. Resulting binary starts an http server
// and you can use it in your infrastructure as is.
package main
