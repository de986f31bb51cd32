// Package resendmail delivers feedback submissions through the Resend API.
package resendmail

import (
	"fmt"
	"html"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/silver-dev/resume-checker/internal/adapter/observability"
	"github.com/silver-dev/resume-checker/internal/config"
	"github.com/silver-dev/resume-checker/internal/domain"
)

// Mailer implements domain.Mailer.
type Mailer struct {
	client *resend.Client
	from   string
	to     []string
}

// New constructs a Mailer from configuration.
func New(cfg config.Config) *Mailer {
	return &Mailer{
		client: resend.NewClient(cfg.ResendAPIKey),
		from:   cfg.FeedbackFrom,
		to:     cfg.FeedbackTo,
	}
}

// SendFeedback emails the submission to the maintainer addresses, attaching
// the resume PDF when one was included. Any provider failure maps to
// domain.ErrDelivery.
func (m *Mailer) SendFeedback(ctx domain.Context, fb domain.Feedback) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      m.to,
		Subject: "Resume checker feedback",
		Html:    renderBody(fb),
	}
	if len(fb.Resume) > 0 {
		params.Attachments = []*resend.Attachment{{
			Filename: "resume.pdf",
			Content:  fb.Resume,
		}}
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		observability.FeedbackTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrDelivery, err)
	}
	observability.FeedbackTotal.WithLabelValues("ok").Inc()
	return nil
}

func renderBody(fb domain.Feedback) string {
	var b strings.Builder
	b.WriteString("<h2>Resume checker feedback</h2>")
	section(&b, "Description", fb.Description)
	section(&b, "Grade", fb.Grade)
	section(&b, "Resume URL", fb.URL)
	flagList(&b, "Red flags", fb.RedFlags)
	flagList(&b, "Yellow flags", fb.YellowFlags)
	return b.String()
}

func section(b *strings.Builder, title, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "<h3>%s</h3><p>%s</p>", title, html.EscapeString(value))
}

func flagList(b *strings.Builder, title string, flags []string) {
	if len(flags) == 0 {
		return
	}
	fmt.Fprintf(b, "<h3>%s</h3><ul>", title)
	for _, f := range flags {
		fmt.Fprintf(b, "<li>%s</li>", html.EscapeString(f))
	}
	b.WriteString("</ul>")
}
