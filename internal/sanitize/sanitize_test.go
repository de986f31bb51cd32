package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/silver-dev/resume-checker/internal/domain"
	"github.com/silver-dev/resume-checker/internal/sanitize"
)

func TestResult_DropsGmailOnlyFlags(t *testing.T) {
	t.Parallel()
	in := domain.GradeResult{
		Grade: domain.GradeB,
		RedFlags: []string{
			"Usar un correo en Gmail proyecta una imagen anticuada.",
			"El CV tiene dos páginas.",
		},
		YellowFlags: []string{
			"No uses Hotmail, es preferible Gmail u otro proveedor moderno.",
			"Es preferible usar gmail antes que otros proveedores.",
		},
	}

	out := sanitize.Result(in)

	assert.Equal(t, []string{"El CV tiene dos páginas."}, out.RedFlags)
	assert.Equal(t, []string{"No uses Hotmail, es preferible Gmail u otro proveedor moderno."}, out.YellowFlags)
}

func TestResult_RemovesAllMatchesNotJustFirst(t *testing.T) {
	t.Parallel()
	in := domain.GradeResult{
		Grade: domain.GradeC,
		RedFlags: []string{
			"Evitá usar GMAIL en tu CV.",
			"Otro flag válido.",
			"El correo de gmail no es profesional.",
		},
	}

	out := sanitize.Result(in)

	assert.Equal(t, []string{"Otro flag válido."}, out.RedFlags)
}

func TestResult_Idempotent(t *testing.T) {
	t.Parallel()
	in := domain.GradeResult{
		Grade:       domain.GradeA,
		RedFlags:    []string{"usá gmail en vez de hotmail"},
		YellowFlags: []string{"tenés un typo", "gmail no es profesional"},
	}

	once := sanitize.Result(in)
	twice := sanitize.Result(once)
	assert.Equal(t, once, twice)
}

func TestResult_NoMatches_PreservesOrderAndInput(t *testing.T) {
	t.Parallel()
	in := domain.GradeResult{
		Grade:       domain.GradeS,
		RedFlags:    []string{"a", "b"},
		YellowFlags: []string{"c"},
	}

	out := sanitize.Result(in)
	assert.Equal(t, in, out)

	// input slices are never mutated
	out.RedFlags[0] = "changed"
	assert.Equal(t, "a", in.RedFlags[0])
}

func TestResult_NilFlagsStayNil(t *testing.T) {
	t.Parallel()
	out := sanitize.Result(domain.GradeResult{Grade: domain.GradeS})
	assert.Nil(t, out.RedFlags)
	assert.Nil(t, out.YellowFlags)
}
