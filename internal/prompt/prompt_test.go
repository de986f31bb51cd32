package prompt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silver-dev/resume-checker/internal/domain"
	"github.com/silver-dev/resume-checker/internal/prompt"
)

func TestSystemPrompt_EmbedsGuideAndAuthor(t *testing.T) {
	t.Parallel()
	sys := prompt.SystemPrompt("jane doe")
	assert.Contains(t, sys, prompt.Guide, "system prompt must embed the guide verbatim")
	assert.Contains(t, sys, "(autor: jane doe)")
	assert.Contains(t, sys, prompt.SentinelAuthor)
}

func TestUserPrompt_EmbedsSameGuide(t *testing.T) {
	t.Parallel()
	// Both prompts carry the same guide text; divergence would give the
	// engine conflicting instructions.
	assert.Contains(t, prompt.UserPrompt, prompt.Guide)
	assert.Contains(t, prompt.Guide, prompt.TypstTemplateURL)
}

func TestMessages_Ordering(t *testing.T) {
	t.Parallel()
	b := prompt.NewBuilder()
	examples := []domain.GradeExample{
		{Name: "one", Document: []byte("%PDF one"), Gold: domain.GradeResult{Grade: domain.GradeS, RedFlags: []string{}, YellowFlags: []string{}}},
		{Name: "two", Document: []byte("%PDF two"), Gold: domain.GradeResult{Grade: domain.GradeC, RedFlags: []string{"corto"}, YellowFlags: []string{}}},
	}
	pdf := []byte("%PDF submitted")

	msgs, err := b.Messages(domain.ExtractedDocument{Text: "text", AuthorHint: "someone"}, pdf, examples)
	require.NoError(t, err)
	// system, then user/assistant per example, then the submission
	require.Len(t, msgs, 6)

	assert.Equal(t, domain.RoleSystem, msgs[0].Role)
	assert.Equal(t, domain.RoleUser, msgs[1].Role)
	assert.Equal(t, domain.RoleAssistant, msgs[2].Role)
	assert.Equal(t, domain.RoleUser, msgs[3].Role)
	assert.Equal(t, domain.RoleAssistant, msgs[4].Role)
	assert.Equal(t, domain.RoleUser, msgs[5].Role)

	// Example documents ride along as file parts in submission order.
	assert.Equal(t, []byte("%PDF one"), msgs[1].Parts[1].File)
	assert.Equal(t, []byte("%PDF two"), msgs[3].Parts[1].File)
	assert.Equal(t, pdf, msgs[5].Parts[1].File)

	// Gold answers are serialized as the JSON the engine must imitate.
	var gold domain.GradeResult
	require.NoError(t, json.Unmarshal([]byte(msgs[4].Parts[0].Text), &gold))
	assert.Equal(t, domain.GradeC, gold.Grade)
	assert.Equal(t, []string{"corto"}, gold.RedFlags)
}

func TestMessages_DocumentMessagesCarryUserPrompt(t *testing.T) {
	t.Parallel()
	b := prompt.NewBuilder()
	msgs, err := b.Messages(domain.ExtractedDocument{Text: "text"}, []byte("%PDF x"), nil)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	final := msgs[1]
	require.Len(t, final.Parts, 2)
	assert.Equal(t, prompt.UserPrompt, final.Parts[0].Text)
	assert.NotNil(t, final.Parts[1].File)
}

func TestMessages_SentinelAuthorSuppression(t *testing.T) {
	t.Parallel()
	sys := prompt.SystemPrompt(prompt.SentinelAuthor)
	// The sentinel rule names the author twice: once as the reserved value,
	// once as the submitted hint.
	assert.GreaterOrEqual(t, strings.Count(sys, prompt.SentinelAuthor), 2)
}
