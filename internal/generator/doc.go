// Package generator turns id requests from the web service and the CLI into
// nanoid calls.
//
// Requests are checked with go-playground/validator against the limits from
// the generator config section. Every batch is counted and timed per strategy
// in prometheus.
package generator
