// Package mock provides test doubles for the ai package interfaces.
//
// MockCompleter lets tests script model behavior via function fields,
// including transport failures and malformed or truncated output, so the
// analysis fallback paths can be exercised without a live endpoint.
package mock
