package openai

// DefaultModel is the fixed model used for all requests unless overridden
// with WithModel.
const DefaultModel = "gpt-4o"
