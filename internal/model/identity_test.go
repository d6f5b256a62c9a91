package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeEmail(t *testing.T) {
	assert.True(t, LooksLikeEmail("alice@example.com"))
	assert.True(t, LooksLikeEmail("a.b+c@sub.example.co"))

	assert.False(t, LooksLikeEmail("chatgpt"))
	assert.False(t, LooksLikeEmail("alice@example"))
	assert.False(t, LooksLikeEmail("alice at example.com"))
	assert.False(t, LooksLikeEmail(""))
}

func TestIsAIIdentity(t *testing.T) {
	assert.True(t, IsAIIdentity(AIIdentity))
	assert.True(t, IsAIIdentity("ChatGPT"))
	assert.True(t, IsAIIdentity("the chatgpt player"))

	// Email-shaped identities are always human, even with the marker
	assert.False(t, IsAIIdentity("chatgpt@example.com"))
	assert.False(t, IsAIIdentity("alice@example.com"))
	assert.False(t, IsAIIdentity("robot"))
}

func TestSanitizeIdentity(t *testing.T) {
	assert.Equal(t, "alice_example_com", SanitizeIdentity("alice@example.com"))
	assert.Equal(t, "chatgpt", SanitizeIdentity(AIIdentity))
}
