package textx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/silver-dev/resume-checker/pkg/textx"
)

func TestSanitizeText_StripsControlChars(t *testing.T) {
	t.Parallel()
	in := "hello\x00world\x07 ok\n\tend"
	out := textx.SanitizeText(in)
	assert.Equal(t, "helloworld ok\n\tend", out)
}

func TestSanitizeText_Trims(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", textx.SanitizeText("  abc  "))
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a b c", textx.CollapseWhitespace(" a\n\n b\t\tc "))
	assert.Equal(t, "", textx.CollapseWhitespace("  \n\t "))
}
