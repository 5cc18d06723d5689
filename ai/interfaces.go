package ai

import "context"

// Completer produces raw text completions from a chat-style LLM.
// Implementations must be thread-safe for concurrent use.
type Completer interface {
	// Complete sends a system/user prompt pair to the model and returns the
	// raw text of the first choice. The content is returned untouched; any
	// parsing or repair of model output is the caller's responsibility.
	// Returns an error only for transport or API failures, never for
	// malformed model output.
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}

// CompletionRequest describes one chat completion call.
type CompletionRequest struct {
	// System is the system prompt establishing the model's role and the
	// expected output format.
	System string

	// User is the user message, typically the document text under analysis.
	User string

	// Temperature controls sampling randomness. Analysis calls use low
	// values for reproducibility.
	Temperature float64

	// MaxTokens bounds the response length. 0 means provider default.
	MaxTokens int
}

// Completion is the raw model response.
type Completion struct {
	// Content is the text of the first choice, unmodified.
	Content string

	// Truncated is true when the model stopped because it ran out of
	// tokens, meaning Content is likely cut off mid-structure.
	Truncated bool
}
