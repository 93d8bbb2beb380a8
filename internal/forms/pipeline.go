package forms

import (
	"context"
	"fmt"
	"time"

	"github.com/truenorthmaterials/intake/internal/logging"
	"github.com/truenorthmaterials/intake/internal/mailer"
)

// User-facing outcome messages.
const (
	MsgInvalidFormType  = "Invalid form type."
	MsgValidationFailed = "Validation failed. Please check your input."
	MsgInternalError    = "An unexpected error occurred. Please try again."
)

// dispatchTimeout bounds the single notification attempt per submission.
const dispatchTimeout = 10 * time.Second

// Request is a raw form submission: a declared form type plus the flat
// field map as posted by the website.
type Request struct {
	FormType string
	Fields   map[string]string
}

// Outcome is the caller-facing result of a submission. Errors is populated
// only for validation failures.
type Outcome struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Pipeline validates submissions and dispatches notification emails.
// A nil sender means email is not configured; dispatch is then skipped
// silently. Pipelines are stateless and safe for concurrent use.
type Pipeline struct {
	sender mailer.Sender
	rcpt   mailer.Recipients
	logger *logging.Logger
}

// NewPipeline creates a pipeline. sender may be nil when no email credential
// is configured.
func NewPipeline(sender mailer.Sender, rcpt mailer.Recipients) *Pipeline {
	return &Pipeline{
		sender: sender,
		rcpt:   rcpt,
		logger: logging.GetLogger(),
	}
}

// Submit validates the request against the schema selected by its form type
// and, on success, attempts to email the submission to the configured
// recipients. Dispatch is best-effort: its failure never changes the outcome
// returned to the caller.
func (p *Pipeline) Submit(ctx context.Context, req Request) (out Outcome) {
	schema, ok := SchemaFor(FormType(req.FormType))
	if !ok {
		return Outcome{Success: false, Message: MsgInvalidFormType}
	}

	// Callers always get a well-formed outcome, never a raw fault.
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Panic while processing %q submission: %v", req.FormType, r)
			out = Outcome{Success: false, Message: MsgInternalError}
		}
	}()

	result := schema.Validate(req.Fields)
	if !result.Valid() {
		return Outcome{
			Success: false,
			Message: MsgValidationFailed,
			Errors:  result.FieldErrors,
		}
	}

	p.dispatch(ctx, schema, result.Data)

	return Outcome{
		Success: true,
		Message: fmt.Sprintf("Thank you for your %s submission! We'll be in touch within 24-48 hours.", schema.Type),
	}
}

// newNotification builds the outbound message for a validated submission.
var newNotification = func(schema *Schema, data map[string]string, rcpt mailer.Recipients) *mailer.Message {
	return &mailer.Message{
		From:    rcpt.From,
		To:      []string{rcpt.To},
		Cc:      []string{rcpt.Cc},
		Subject: Subject(schema.Type, data),
		HTML:    BodyHTML(schema, data),
	}
}

// dispatch sends the notification email for a validated submission. The
// result is logged and deliberately discarded.
func (p *Pipeline) dispatch(ctx context.Context, schema *Schema, data map[string]string) {
	if p.sender == nil {
		p.logger.Warn("Email sender not configured. Skipping notification for %q submission", schema.Type)
		return
	}

	msg := newNotification(schema, data, p.rcpt)

	ctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()

	id, err := p.send(ctx, msg)
	if err != nil {
		p.logger.Error("Failed to send notification for %q submission: %v", schema.Type, err)
		return
	}
	p.logger.Info("Notification %s sent for %q submission", id, schema.Type)
}

// send performs the single delivery attempt. A panicking sender is treated
// the same as a returned error, so delivery faults of any kind stay confined
// to the dispatch step.
func (p *Pipeline) send(ctx context.Context, msg *mailer.Message) (id string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mail sender panic: %v", r)
		}
	}()
	return p.sender.Send(ctx, msg)
}
