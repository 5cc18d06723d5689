// Package analysis contains the LLM-backed contract analysis
// orchestrators: structured extraction, risk scoring, and compliance
// checking, plus a runner that executes all three concurrently.
//
// Every orchestrator follows the same resilience contract: the model is a
// collaborator that may fail, return malformed JSON, or be cut off
// mid-response. Model output passes through the jsonrepair layer, and any
// unrecoverable failure degrades to a deterministic fallback result. An
// error is returned only for invalid input, never for model misbehavior.
package analysis
