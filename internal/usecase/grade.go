// Package usecase wires the grading pipeline and feedback delivery behind
// transport-agnostic services.
package usecase

import (
	"fmt"
	"log/slog"

	"github.com/silver-dev/resume-checker/internal/adapter/observability"
	"github.com/silver-dev/resume-checker/internal/cache"
	"github.com/silver-dev/resume-checker/internal/domain"
	"github.com/silver-dev/resume-checker/internal/examples"
	"github.com/silver-dev/resume-checker/internal/prompt"
	"github.com/silver-dev/resume-checker/internal/sanitize"
)

// GradeService runs the full pipeline: extract, assemble the few-shot
// prompt, grade, sanitize. Template submissions additionally go through the
// result cache keyed by template path.
type GradeService struct {
	extractor domain.DocumentExtractor
	engine    domain.GradingEngine
	builder   *prompt.Builder
	store     *examples.Store
	results   *cache.ResultCache
}

// NewGradeService constructs a GradeService.
func NewGradeService(extractor domain.DocumentExtractor, engine domain.GradingEngine, builder *prompt.Builder, store *examples.Store, results *cache.ResultCache) *GradeService {
	return &GradeService{
		extractor: extractor,
		engine:    engine,
		builder:   builder,
		store:     store,
		results:   results,
	}
}

// Grade grades one resume. Results for template submissions are cached;
// uploads and remote fetches always hit the engine.
func (s *GradeService) Grade(ctx domain.Context, req domain.GradeRequest) (domain.GradeResult, error) {
	if len(req.Source) == 0 {
		return domain.GradeResult{}, fmt.Errorf("op=usecase.Grade: %w: empty document", domain.ErrInvalidArgument)
	}

	cacheable := req.Kind == domain.SourceTemplate && req.TemplateKey != ""
	if cacheable {
		if res, ok := s.results.Get(req.TemplateKey); ok {
			observability.CacheRequestsTotal.WithLabelValues("hit").Inc()
			slog.Debug("template result served from cache", slog.String("template", req.TemplateKey))
			return res, nil
		}
		observability.CacheRequestsTotal.WithLabelValues("miss").Inc()
	}

	doc, err := s.extractor.Extract(ctx, req.Source)
	if err != nil {
		return domain.GradeResult{}, fmt.Errorf("op=usecase.Grade: %w", err)
	}

	msgs, err := s.builder.Messages(doc, req.Source, s.store.All())
	if err != nil {
		return domain.GradeResult{}, fmt.Errorf("op=usecase.Grade: %w", err)
	}

	raw, err := s.engine.Grade(ctx, msgs)
	if err != nil {
		return domain.GradeResult{}, fmt.Errorf("op=usecase.Grade: %w", err)
	}

	res := sanitize.Result(raw)
	if removed := flagCount(raw) - flagCount(res); removed > 0 {
		observability.SanitizedFlagsTotal.Add(float64(removed))
		slog.Info("contradictory flags removed", slog.Int("count", removed))
	}
	observability.GradesTotal.WithLabelValues(string(res.Grade)).Inc()
	observability.FlagsPerResult.WithLabelValues("red").Observe(float64(len(res.RedFlags)))
	observability.FlagsPerResult.WithLabelValues("yellow").Observe(float64(len(res.YellowFlags)))

	if cacheable {
		s.results.Put(req.TemplateKey, res)
	}
	return res, nil
}

func flagCount(r domain.GradeResult) int {
	return len(r.RedFlags) + len(r.YellowFlags)
}
