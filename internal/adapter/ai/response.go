// Package ai holds the single validation boundary for grading engine output.
//
// Raw model content is cleaned, parsed and schema-checked here; callers
// receive either a valid domain.GradeResult or an error. Malformed output is
// never patched up beyond markdown fence stripping.
package ai

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/silver-dev/resume-checker/internal/domain"
)

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

// CleanResponse strips markdown code fences that models wrap around JSON.
func CleanResponse(s string) string {
	clean := strings.TrimSpace(s)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// ParseResult converts raw model content into a GradeResult. Any parse or
// schema failure returns domain.ErrSchemaInvalid: flags over 280 characters
// are rejected, not truncated, so a bad engine response fails the request
// as a whole.
func ParseResult(content string) (domain.GradeResult, error) {
	clean := CleanResponse(content)
	if clean == "" {
		return domain.GradeResult{}, fmt.Errorf("%w: empty response", domain.ErrSchemaInvalid)
	}
	var res domain.GradeResult
	if err := json.Unmarshal([]byte(clean), &res); err != nil {
		return domain.GradeResult{}, fmt.Errorf("%w: %v", domain.ErrSchemaInvalid, err)
	}
	if err := getValidator().Struct(res); err != nil {
		return domain.GradeResult{}, fmt.Errorf("%w: %v", domain.ErrSchemaInvalid, err)
	}
	return res, nil
}
