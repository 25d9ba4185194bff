// Package cvss implements the CVSS v2 scoring standard: the Base,
// Temporal and Environmental metric groups, their weight tables, the
// deterministic 0-10 scoring equations, and the slash-delimited vector
// string encoding (serialization and parsing).
//
// All models are plain comparable values. Scoring is a closed-form
// computation with no caching and no I/O; a model shared across
// goroutines must be treated as immutable after construction.
package cvss
