package anthropic

// DefaultModel is the fixed model used for all requests unless overridden
// with WithModel.
const DefaultModel = "claude-sonnet-4-5"

// defaultMaxTokens caps the reply size on every request. The Messages API
// requires an explicit max_tokens value.
const defaultMaxTokens = 1024
