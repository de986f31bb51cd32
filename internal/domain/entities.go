// Package domain holds the core entities, ports and error taxonomy.
package domain

import (
	"context"
	"errors"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrExtraction      = errors.New("extraction failed")
	ErrSchemaInvalid   = errors.New("schema invalid")
	ErrGrading         = errors.New("grading failed")
	ErrDelivery        = errors.New("delivery failed")
	ErrInternal        = errors.New("internal error")
)

// Grade is the letter grade assigned to a resume. S is best, C is worst.
type Grade string

// Grade values, ordered best to worst.
const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
)

// Valid reports whether g is one of the four defined letters.
func (g Grade) Valid() bool {
	switch g {
	case GradeS, GradeA, GradeB, GradeC:
		return true
	}
	return false
}

// SourceKind enumerates where resume bytes came from.
type SourceKind string

// Source kinds.
const (
	SourceUpload   SourceKind = "upload"
	SourceRemote   SourceKind = "remote_url"
	SourceTemplate SourceKind = "template"
)

// GradeRequest is one incoming grading call. Not persisted.
// TemplateKey is set only for SourceTemplate and doubles as the cache key.
type GradeRequest struct {
	Source      []byte
	Kind        SourceKind
	TemplateKey string
}

// ExtractedDocument is the text and metadata pulled out of a PDF.
// AuthorHint is best-effort: empty when the document carries no author field.
type ExtractedDocument struct {
	Text       string
	AuthorHint string
}

// GradeResult is the structured output of the grading engine.
// Each flag is at most 280 characters; the validate tags are the single
// schema contract enforced at the engine boundary.
type GradeResult struct {
	Grade       Grade    `json:"grade" validate:"required,oneof=S A B C"`
	RedFlags    []string `json:"red_flags" validate:"dive,max=280"`
	YellowFlags []string `json:"yellow_flags" validate:"dive,max=280"`
}

// Clone returns a deep copy so cached results stay immutable.
func (r GradeResult) Clone() GradeResult {
	out := GradeResult{Grade: r.Grade}
	if r.RedFlags != nil {
		out.RedFlags = append([]string(nil), r.RedFlags...)
	}
	if r.YellowFlags != nil {
		out.YellowFlags = append([]string(nil), r.YellowFlags...)
	}
	return out
}

// GradeExample pairs a reference resume with its hand-authored gold result.
// Examples are loaded once at startup and shared read-only across requests.
type GradeExample struct {
	Name     string
	Document []byte
	Gold     GradeResult
}

// Chat roles used in assembled prompts.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ContentPart is one piece of a chat message: plain text or an attached PDF.
// Exactly one of Text/File is set.
type ContentPart struct {
	Text string
	File []byte
}

// ChatMessage is one entry of the ordered message sequence sent to the
// grading engine.
type ChatMessage struct {
	Role  string
	Parts []ContentPart
}

// TextMessage builds a single-part text message.
func TextMessage(role, text string) ChatMessage {
	return ChatMessage{Role: role, Parts: []ContentPart{{Text: text}}}
}

// Feedback carries a user's feedback submission to the maintainers.
type Feedback struct {
	Description string
	Grade       string
	RedFlags    []string
	YellowFlags []string
	URL         string
	Resume      []byte
}

// Ports

// DocumentExtractor converts a PDF byte buffer into text plus metadata.
type DocumentExtractor interface {
	Extract(ctx Context, data []byte) (ExtractedDocument, error)
}

// GradingEngine runs the assembled message sequence against the external
// model and returns a schema-valid result or fails as a whole. No partial
// results are ever returned.
type GradingEngine interface {
	Grade(ctx Context, msgs []ChatMessage) (GradeResult, error)
}

// Mailer delivers a feedback submission to the maintainer addresses.
type Mailer interface {
	SendFeedback(ctx Context, fb Feedback) error
}

// Context is an alias so the domain package stays decoupled from call sites.
type Context = context.Context
