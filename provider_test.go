package parley

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProvider(t *testing.T) {
	p, err := ParseProvider("anthropic")
	require.NoError(t, err)
	assert.Equal(t, ProviderAnthropic, p)

	p, err = ParseProvider("openai")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, p)
}

func TestParseProvider_Unknown(t *testing.T) {
	_, err := ParseProvider("gemini")
	assert.ErrorIs(t, err, ErrUnknownProvider)
	assert.Contains(t, err.Error(), "gemini")
}

func TestGenerateMessageID_Unique(t *testing.T) {
	a := GenerateMessageID()
	b := GenerateMessageID()
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "msg-")
}

func TestNewUserMessage(t *testing.T) {
	m := NewUserMessage("hello")
	assert.Equal(t, RoleUser, m.Role)
	assert.Equal(t, "hello", m.Content)
	assert.NotEmpty(t, m.ID)
	assert.False(t, m.CreatedAt.IsZero())
}
