// intellib is a library for building network self-intelligence services:
// services which answer "what is my public IP address and where does it
// live" by querying a pool of independent, unreliable third-party HTTP
// endpoints and merging their partial answers into a single record.
//
// The library owns the hard parts: field normalization heuristics, a
// first-meaningful-wins merge policy, and a bounded-concurrency
// aggregation scheduler with a shared deadline and early stop. Provider
// catalogs and response parsers live outside (see the providers package
// of this repository for the stock set).
package intellib
