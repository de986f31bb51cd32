// Package pdfx extracts plain text and author metadata from PDF buffers.
package pdfx

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"

	"github.com/silver-dev/resume-checker/internal/domain"
	"github.com/silver-dev/resume-checker/pkg/textx"
)

// Extractor implements domain.DocumentExtractor with an in-process PDF
// parser. It is a pure transform: no temp files, no external services.
type Extractor struct{}

// New constructs an Extractor.
func New() *Extractor { return &Extractor{} }

// Extract parses data as a PDF and returns its text plus the author field
// from the document Info dictionary. The author is best-effort: a missing
// field yields an empty AuthorHint, never an error. Non-PDF buffers,
// corrupt streams and zero-page documents fail with domain.ErrExtraction.
func (e *Extractor) Extract(_ domain.Context, data []byte) (doc domain.ExtractedDocument, err error) {
	// The underlying parser panics on some malformed streams; fold those
	// into the extraction error contract.
	defer func() {
		if rec := recover(); rec != nil {
			doc = domain.ExtractedDocument{}
			err = fmt.Errorf("%w: pdf parse panic: %v", domain.ErrExtraction, rec)
		}
	}()

	if !mimetype.Detect(data).Is("application/pdf") {
		return domain.ExtractedDocument{}, fmt.Errorf("%w: not a pdf", domain.ErrExtraction)
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return domain.ExtractedDocument{}, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}
	if r.NumPage() == 0 {
		return domain.ExtractedDocument{}, fmt.Errorf("%w: zero pages", domain.ErrExtraction)
	}

	tr, err := r.GetPlainText()
	if err != nil {
		return domain.ExtractedDocument{}, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, tr); err != nil {
		return domain.ExtractedDocument{}, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}

	return domain.ExtractedDocument{
		Text:       textx.CollapseWhitespace(textx.SanitizeText(buf.String())),
		AuthorHint: author(r),
	}, nil
}

func author(r *pdf.Reader) string {
	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}
	v := info.Key("Author")
	if v.Kind() != pdf.String {
		return ""
	}
	return textx.SanitizeText(v.Text())
}
