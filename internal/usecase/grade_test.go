package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silver-dev/resume-checker/internal/cache"
	"github.com/silver-dev/resume-checker/internal/domain"
	"github.com/silver-dev/resume-checker/internal/examples"
	"github.com/silver-dev/resume-checker/internal/prompt"
	"github.com/silver-dev/resume-checker/internal/usecase"
)

type fakeExtractor struct {
	doc   domain.ExtractedDocument
	err   error
	calls int
}

func (f *fakeExtractor) Extract(_ domain.Context, _ []byte) (domain.ExtractedDocument, error) {
	f.calls++
	return f.doc, f.err
}

type fakeEngine struct {
	res   domain.GradeResult
	err   error
	calls int
	msgs  []domain.ChatMessage
}

func (f *fakeEngine) Grade(_ domain.Context, msgs []domain.ChatMessage) (domain.GradeResult, error) {
	f.calls++
	f.msgs = msgs
	return f.res, f.err
}

func testStore(t *testing.T) *examples.Store {
	t.Helper()
	dir := t.TempDir()
	for _, f := range []string{"s_resume.pdf", "a_resume.pdf", "b_resume.pdf", "c_resume.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("%PDF "+f), 0o600))
	}
	store, err := examples.Load(dir, "")
	require.NoError(t, err)
	return store
}

func newService(t *testing.T, ex *fakeExtractor, eng *fakeEngine, now func() time.Time) *usecase.GradeService {
	t.Helper()
	return usecase.NewGradeService(ex, eng, prompt.NewBuilder(), testStore(t), cache.New(24*time.Hour, now))
}

func TestGrade_Pipeline(t *testing.T) {
	t.Parallel()
	ex := &fakeExtractor{doc: domain.ExtractedDocument{Text: "resume text", AuthorHint: "someone"}}
	eng := &fakeEngine{res: domain.GradeResult{
		Grade:       domain.GradeB,
		RedFlags:    []string{"Usá un email que no sea gmail", "Tiene dos páginas"},
		YellowFlags: []string{"Cambiá tu dirección de hotmail por una de gmail"},
	}}
	svc := newService(t, ex, eng, nil)

	res, err := svc.Grade(context.Background(), domain.GradeRequest{Source: []byte("%PDF fake"), Kind: domain.SourceUpload})
	require.NoError(t, err)
	assert.Equal(t, domain.GradeB, res.Grade)
	// The gmail-without-hotmail flag is sanitized away, the rest survive.
	assert.Equal(t, []string{"Tiene dos páginas"}, res.RedFlags)
	assert.Equal(t, []string{"Cambiá tu dirección de hotmail por una de gmail"}, res.YellowFlags)

	// system + 4 examples (user/assistant pairs) + final user message
	require.Len(t, eng.msgs, 10)
	assert.Equal(t, domain.RoleSystem, eng.msgs[0].Role)
	assert.Equal(t, domain.RoleUser, eng.msgs[9].Role)
}

func TestGrade_EmptyDocument(t *testing.T) {
	t.Parallel()
	svc := newService(t, &fakeExtractor{}, &fakeEngine{}, nil)
	_, err := svc.Grade(context.Background(), domain.GradeRequest{Kind: domain.SourceUpload})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestGrade_ExtractionFailurePropagates(t *testing.T) {
	t.Parallel()
	ex := &fakeExtractor{err: domain.ErrExtraction}
	eng := &fakeEngine{}
	svc := newService(t, ex, eng, nil)

	_, err := svc.Grade(context.Background(), domain.GradeRequest{Source: []byte("nope"), Kind: domain.SourceUpload})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExtraction))
	assert.Zero(t, eng.calls, "engine must not run when extraction fails")
}

func TestGrade_TemplateResultCached(t *testing.T) {
	t.Parallel()
	ex := &fakeExtractor{doc: domain.ExtractedDocument{Text: "template"}}
	eng := &fakeEngine{res: domain.GradeResult{Grade: domain.GradeS, RedFlags: []string{}, YellowFlags: []string{}}}
	svc := newService(t, ex, eng, nil)

	req := domain.GradeRequest{
		Source:      []byte("%PDF template"),
		Kind:        domain.SourceTemplate,
		TemplateKey: "templates/s_resume.pdf",
	}
	first, err := svc.Grade(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Grade(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, eng.calls, "second template request must be served from cache")
	assert.Equal(t, 1, ex.calls)
}

func TestGrade_TemplateCacheExpires(t *testing.T) {
	t.Parallel()
	current := time.Now()
	ex := &fakeExtractor{doc: domain.ExtractedDocument{Text: "template"}}
	eng := &fakeEngine{res: domain.GradeResult{Grade: domain.GradeA}}
	svc := newService(t, ex, eng, func() time.Time { return current })

	req := domain.GradeRequest{
		Source:      []byte("%PDF template"),
		Kind:        domain.SourceTemplate,
		TemplateKey: "templates/a_resume.pdf",
	}
	_, err := svc.Grade(context.Background(), req)
	require.NoError(t, err)

	current = current.Add(24*time.Hour + time.Second)
	_, err = svc.Grade(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, eng.calls, "expired entry must be re-graded")
}

func TestGrade_UploadsNeverCached(t *testing.T) {
	t.Parallel()
	ex := &fakeExtractor{doc: domain.ExtractedDocument{Text: "upload"}}
	eng := &fakeEngine{res: domain.GradeResult{Grade: domain.GradeC}}
	svc := newService(t, ex, eng, nil)

	req := domain.GradeRequest{Source: []byte("%PDF upload"), Kind: domain.SourceUpload}
	_, err := svc.Grade(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.Grade(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, eng.calls)
}

func TestGrade_EngineFailurePropagates(t *testing.T) {
	t.Parallel()
	ex := &fakeExtractor{doc: domain.ExtractedDocument{Text: "x"}}
	eng := &fakeEngine{err: domain.ErrGrading}
	svc := newService(t, ex, eng, nil)

	_, err := svc.Grade(context.Background(), domain.GradeRequest{Source: []byte("%PDF"), Kind: domain.SourceRemote})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGrading))
}
