package usecase

import (
	"fmt"
	"strings"

	"github.com/silver-dev/resume-checker/internal/domain"
)

// FeedbackService forwards user feedback to the maintainers.
type FeedbackService struct {
	mailer domain.Mailer
}

// NewFeedbackService constructs a FeedbackService.
func NewFeedbackService(mailer domain.Mailer) *FeedbackService {
	return &FeedbackService{mailer: mailer}
}

// Submit validates and delivers one feedback submission.
func (s *FeedbackService) Submit(ctx domain.Context, fb domain.Feedback) error {
	if strings.TrimSpace(fb.Description) == "" {
		return fmt.Errorf("op=usecase.Submit: %w: description required", domain.ErrInvalidArgument)
	}
	if err := s.mailer.SendFeedback(ctx, fb); err != nil {
		return fmt.Errorf("op=usecase.Submit: %w", err)
	}
	return nil
}
