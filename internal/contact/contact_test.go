package contact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

var choices = []string{"ai-seo", "web-development", "analytics", "other"}

func TestPrefill(t *testing.T) {
	t.Parallel()

	q, err := url.ParseQuery("name=Jane+Doe&email=jane%40example.com&service=ai-seo")
	require.NoError(t, err)
	require.Equal(t, Form{Name: "Jane Doe", Email: "jane@example.com", Service: "ai-seo"}, Prefill(q))
	require.Equal(t, Form{}, Prefill(nil))
}

func TestParseFormNormalises(t *testing.T) {
	t.Parallel()

	body := url.Values{
		"name":    {"  Jane \t Doe "},
		"email":   {" Jane@Example.COM "},
		"service": {"analytics"},
		"message": {"Hello <b>team</b>,\r\n\r\nwe need help.\x07  "},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := ParseForm(req)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", form.Name)
	require.Equal(t, "jane@example.com", form.Email)
	require.Equal(t, "analytics", form.Service)
	require.Equal(t, "Hello team,\n\nwe need help.", form.Message)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Form{Name: "Jane", Email: "jane@example.com", Message: "Hi"}
	tests := []struct {
		name string
		form Form
		want FieldErrors
	}{
		{name: "valid without service", form: valid},
		{name: "valid with other", form: Form{Name: "Jane", Email: "jane@example.com", Service: "other", Message: "Hi"}},
		{name: "all missing", form: Form{}, want: FieldErrors{
			"name": "contact.error.name", "email": "contact.error.email", "message": "contact.error.message",
		}},
		{name: "email without tld", form: Form{Name: "Jane", Email: "jane@example", Message: "Hi"}, want: FieldErrors{"email": "contact.error.email"}},
		{name: "double at", form: Form{Name: "Jane", Email: "a@b@c.d", Message: "Hi"}, want: FieldErrors{"email": "contact.error.email"}},
		{name: "unknown service", form: Form{Name: "Jane", Email: "jane@example.com", Service: "hosting", Message: "Hi"}, want: FieldErrors{"service": "contact.error.service"}},
		{name: "message too long", form: Form{Name: "Jane", Email: "jane@example.com", Message: strings.Repeat("x", maxMessageLength+1)}, want: FieldErrors{"message": "contact.error.message"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.form.Validate(choices))
		})
	}
}

type recordingNotifier struct {
	subs []Submission
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, sub Submission) error {
	n.subs = append(n.subs, sub)
	return n.err
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	svc, err := NewService(ServiceDeps{
		Notifier: notifier,
		Choices:  choices,
		Clock:    func() time.Time { return now },
	})
	require.NoError(t, err)

	form := Form{Name: "Jane", Email: "jane@example.com", Service: "ai-seo", Message: "Hi"}
	sub, err := svc.Submit(context.Background(), form, "cs")
	require.NoError(t, err)
	_, err = ulid.ParseStrict(sub.Reference)
	require.NoError(t, err)
	require.Equal(t, now.UTC(), sub.ReceivedAt)
	require.Equal(t, "cs", sub.Lang)
	require.Len(t, notifier.subs, 1)
	require.Equal(t, form, notifier.subs[0].Form)
}

func TestSubmitRejectsInvalid(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	svc, err := NewService(ServiceDeps{Notifier: notifier, Choices: choices})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), Form{Name: "Jane"}, "en")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "email")
	require.Equal(t, "contact: invalid fields [email, message]", err.Error())
	require.Empty(t, notifier.subs)
}

func TestSubmitWrapsNotifierError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	svc, err := NewService(ServiceDeps{
		Notifier:    &recordingNotifier{err: boom},
		Choices:     choices,
		IDGenerator: func() string { return "REF" },
	})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), Form{Name: "Jane", Email: "jane@example.com", Message: "Hi"}, "en")
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "REF")
}

func TestNewServiceRequiresDeps(t *testing.T) {
	t.Parallel()

	_, err := NewService(ServiceDeps{Choices: choices})
	require.Error(t, err)
	_, err = NewService(ServiceDeps{Notifier: LogNotifier{}})
	require.Error(t, err)
}

type fakeMail struct {
	from, subject, text string
	to                  []string
	sendErr             error
	sent                int
	deadline            time.Duration
}

func (f *fakeMail) NewMessage(from, subject, text string, to ...string) *mailgun.Message {
	f.from, f.subject, f.text, f.to = from, subject, text, to
	return mailgun.NewMailgun("mg.example.com", "key").NewMessage(from, subject, text, to...)
}

func (f *fakeMail) Send(ctx context.Context, _ *mailgun.Message) (string, string, error) {
	f.sent++
	if d, ok := ctx.Deadline(); ok {
		f.deadline = time.Until(d)
	}
	return "Queued", "<id@mg.example.com>", f.sendErr
}

func TestMailgunNotifier(t *testing.T) {
	t.Parallel()

	mail := &fakeMail{}
	n := NewMailgunNotifierWithClient(mail, "Seothon <site@example.com>", "team@example.com")
	sub := Submission{
		Reference:  "01HZX",
		Form:       Form{Name: "Jane", Email: "jane@example.com", Message: "Hello there"},
		ReceivedAt: time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, n.Notify(context.Background(), sub))
	require.Equal(t, 1, mail.sent)
	require.Equal(t, []string{"team@example.com"}, mail.to)
	require.Equal(t, "[01HZX] Enquiry from Jane (general)", mail.subject)
	require.Contains(t, mail.text, "Email: jane@example.com\n")
	require.Contains(t, mail.text, "Received: 2025-04-01T10:00:00Z\n")
	require.True(t, strings.HasSuffix(mail.text, "Hello there\n"))

	mail.sendErr = errors.New("rejected")
	require.ErrorContains(t, n.Notify(context.Background(), sub), "rejected")
}

func TestMailgunNotifierSendTimeout(t *testing.T) {
	t.Parallel()

	sub := Submission{Reference: "01HZX", Form: Form{Name: "Jane", Email: "jane@example.com", Message: "Hello there"}}

	mail := &fakeMail{}
	require.NoError(t, NewMailgunNotifierWithClient(mail, "site@example.com", "team@example.com").Notify(context.Background(), sub))
	require.Positive(t, mail.deadline)
	require.LessOrEqual(t, mail.deadline, 10*time.Second)

	mail = &fakeMail{}
	n := NewMailgunNotifierWithClient(mail, "site@example.com", "team@example.com").WithTimeout(2 * time.Second)
	require.NoError(t, n.Notify(context.Background(), sub))
	require.Positive(t, mail.deadline)
	require.LessOrEqual(t, mail.deadline, 2*time.Second)

	// a tighter request deadline wins over the send timeout
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	require.NoError(t, n.Notify(ctx, sub))
	require.LessOrEqual(t, mail.deadline, 500*time.Millisecond)
}

func TestLogNotifier(t *testing.T) {
	t.Parallel()

	require.NoError(t, LogNotifier{}.Notify(context.Background(), Submission{Reference: "R"}))
}
