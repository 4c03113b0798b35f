// Package email composes the notification sent to the site owner for a contact submission.
package email

import (
	"fmt"
	"html"

	"github.com/osteele/liquid"

	"github.com/mateoroldos/personal-blog/shared/domain"
)

// DefaultTemplate escapes both bindings; custom templates must pipe visitor
// input through escape themselves.
const DefaultTemplate = "{{ email | escape }}: {{ message | escape }}"

type Composer struct {
	from     string
	to       []string
	subject  string
	template *liquid.Template
}

// New parses body once; it is rendered with the bindings "email" and "message".
func New(from string, to []string, subject, body string) (*Composer, error) {
	if body == "" {
		body = DefaultTemplate
	}
	engine := liquid.NewEngine()
	engine.RegisterFilter("escape", func(s string) string {
		return html.EscapeString(s)
	})
	tpl, err := engine.ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("parse email template: %w", err)
	}
	return &Composer{
		from:     from,
		to:       append([]string(nil), to...),
		subject:  subject,
		template: tpl,
	}, nil
}

// Compose renders the owner notification. The submitted text is passed through
// unchanged; escaping is up to the template.
func (c *Composer) Compose(s domain.ContactSubmission) (domain.OutgoingEmail, error) {
	html, err := c.template.RenderString(map[string]any{
		"email":   s.Email,
		"message": s.Message,
	})
	if err != nil {
		return domain.OutgoingEmail{}, fmt.Errorf("render email template: %w", err)
	}
	return domain.OutgoingEmail{
		From:    c.from,
		To:      append([]string(nil), c.to...),
		Subject: c.subject,
		HTML:    html,
	}, nil
}
