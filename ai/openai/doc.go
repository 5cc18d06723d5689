// Package openai implements the ai.Completer interface against any
// OpenAI-compatible chat completion API, including local servers such as
// Ollama, LocalAI, and vLLM, and hosted gateways such as OpenRouter.
package openai
