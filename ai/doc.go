// Package ai defines the abstract interface to LLM completion services
// used for contract analysis.
//
// The package contains only interfaces, configuration, and shared types.
// Concrete implementations live in subpackages:
//   - ai/openai: OpenAI-compatible API implementation (works with any
//     OpenAI-compatible endpoint)
//   - ai/mock: test doubles for unit testing
//
// Consumers depend on the Completer interface, never on a concrete
// implementation, so model failures can be simulated and the analysis
// fallback paths exercised without a live endpoint.
package ai
