package openai

import (
	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/parley"
)

// convertMessages maps the neutral message list onto Chat Completions
// params, role and content only, preserving order.
func convertMessages(messages []ai.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleAssistant:
			result = append(result, openai.AssistantMessage(msg.Content))
		default:
			result = append(result, openai.UserMessage(msg.Content))
		}
	}
	return result
}
