package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/truenorthmaterials/intake/internal/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records dispatched messages and returns a canned result.
type fakeSender struct {
	sent []*mailer.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg *mailer.Message) (string, error) {
	f.sent = append(f.sent, msg)
	if f.err != nil {
		return "", f.err
	}
	return "msg_123", nil
}

var testRecipients = mailer.Recipients{
	From: "TrueNorth Platform <tobias@truenorthmaterials.com>",
	To:   "tobias@truenorthmaterials.com",
	Cc:   "peti@truenorthmaterials.com",
}

func TestSubmit_ContactUsExample(t *testing.T) {
	sender := &fakeSender{}
	p := NewPipeline(sender, testRecipients)

	out := p.Submit(context.Background(), Request{
		FormType: "Contact Us",
		Fields:   map[string]string{"name": "Ada", "email": "ada@example.com", "message": "Hello"},
	})

	assert.True(t, out.Success)
	assert.Equal(t, "Thank you for your Contact Us submission! We'll be in touch within 24-48 hours.", out.Message)
	assert.Nil(t, out.Errors)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "New Submission: Contact Us - Ada", msg.Subject)
	assert.Equal(t, []string{"tobias@truenorthmaterials.com"}, msg.To)
	assert.Equal(t, []string{"peti@truenorthmaterials.com"}, msg.Cc)
	assert.Contains(t, msg.HTML, "Hello")
}

func TestSubmit_AllTypesSucceed(t *testing.T) {
	for ft := range schemas {
		t.Run(string(ft), func(t *testing.T) {
			p := NewPipeline(&fakeSender{}, testRecipients)
			out := p.Submit(context.Background(), Request{
				FormType: string(ft),
				Fields:   validFields(ft),
			})
			require.True(t, out.Success, "errors: %v", out.Errors)
			assert.Contains(t, out.Message, string(ft))
		})
	}
}

func TestSubmit_UnknownFormType(t *testing.T) {
	sender := &fakeSender{}
	p := NewPipeline(sender, testRecipients)

	out := p.Submit(context.Background(), Request{FormType: "Not A Real Type"})

	assert.False(t, out.Success)
	assert.Equal(t, MsgInvalidFormType, out.Message)
	assert.Nil(t, out.Errors)
	assert.Empty(t, sender.sent, "no dispatch for unknown form types")
}

func TestSubmit_ValidationFailure(t *testing.T) {
	sender := &fakeSender{}
	p := NewPipeline(sender, testRecipients)

	out := p.Submit(context.Background(), Request{
		FormType: "Industry Partnership",
		Fields:   map[string]string{"companyName": "Acme"},
	})

	assert.False(t, out.Success)
	assert.Equal(t, MsgValidationFailed, out.Message)
	assert.Len(t, out.Errors, 9)
	assert.NotContains(t, out.Errors, "companyName")
	assert.Empty(t, sender.sent, "no dispatch for invalid submissions")
}

func TestSubmit_DispatchFailureIsolated(t *testing.T) {
	sender := &fakeSender{err: errors.New("provider unavailable")}
	p := NewPipeline(sender, testRecipients)

	out := p.Submit(context.Background(), Request{
		FormType: "Contact Us",
		Fields:   validFields(FormTypeContactUs),
	})

	// Dispatch failure never reaches the caller.
	assert.True(t, out.Success)
	assert.Len(t, sender.sent, 1)
}

// panicSender models a mail capability that throws instead of returning an
// error.
type panicSender struct{}

func (panicSender) Send(context.Context, *mailer.Message) (string, error) {
	panic("provider client blew up")
}

func TestSubmit_DispatchPanicIsolated(t *testing.T) {
	p := NewPipeline(panicSender{}, testRecipients)

	out := p.Submit(context.Background(), Request{
		FormType: "Contact Us",
		Fields:   validFields(FormTypeContactUs),
	})

	// A throwing sender is no different from one returning an error: the
	// submission still succeeds.
	assert.True(t, out.Success)
	assert.Equal(t, "Thank you for your Contact Us submission! We'll be in touch within 24-48 hours.", out.Message)
	assert.Nil(t, out.Errors)
}

func TestSubmit_InternalFault(t *testing.T) {
	orig := newNotification
	newNotification = func(*Schema, map[string]string, mailer.Recipients) *mailer.Message {
		panic("formatting fault")
	}
	defer func() { newNotification = orig }()

	sender := &fakeSender{}
	p := NewPipeline(sender, testRecipients)

	out := p.Submit(context.Background(), Request{
		FormType: "Contact Us",
		Fields:   validFields(FormTypeContactUs),
	})

	assert.False(t, out.Success)
	assert.Equal(t, MsgInternalError, out.Message)
	assert.Nil(t, out.Errors)
	assert.Empty(t, sender.sent)
}

func TestSubmit_NoSenderSkipsDispatch(t *testing.T) {
	p := NewPipeline(nil, testRecipients)

	out := p.Submit(context.Background(), Request{
		FormType: "Contact Us",
		Fields:   validFields(FormTypeContactUs),
	})

	assert.True(t, out.Success)
}

func TestSubmit_Idempotent(t *testing.T) {
	p := NewPipeline(nil, testRecipients)
	req := Request{
		FormType: "Canadian Partnerships",
		Fields:   map[string]string{"organizationName": "X", "email": "bad"},
	}

	first := p.Submit(context.Background(), req)
	second := p.Submit(context.Background(), req)
	assert.Equal(t, first, second)
}
