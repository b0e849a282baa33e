package contact

import (
	"html"
	"net/http"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"seothon.dev/web/internal/site"
)

const (
	maxNameLength    = 200
	maxEmailLength   = 254
	maxMessageLength = 5000
)

var (
	emailPattern = regexp.MustCompile(site.EmailPattern)
	stripTags    = bluemonday.StrictPolicy()
)

// Form is an enquiry as entered by a visitor or prefilled by an AI agent.
type Form struct {
	Name    string
	Email   string
	Service string
	Message string
}

// Prefill reads name, email, service and message from a query string. Missing keys become "".
func Prefill(q url.Values) Form {
	return Form{
		Name:    q.Get("name"),
		Email:   q.Get("email"),
		Service: q.Get("service"),
		Message: q.Get("message"),
	}
}

// ParseForm reads a submitted form body, normalising whitespace and dropping markup.
func ParseForm(r *http.Request) (Form, error) {
	if err := r.ParseForm(); err != nil {
		return Form{}, err
	}
	return Form{
		Name:    singleLine(r.PostForm.Get("name")),
		Email:   strings.ToLower(singleLine(r.PostForm.Get("email"))),
		Service: singleLine(r.PostForm.Get("service")),
		Message: sanitizeMessage(r.PostForm.Get("message")),
	}, nil
}

// FieldErrors maps a form field to the message key describing what is wrong with it.
type FieldErrors map[string]string

// Validate checks required fields, the email shape and that service is one of choices
// (empty is allowed).
func (f Form) Validate(choices []string) FieldErrors {
	errs := FieldErrors{}
	if f.Name == "" || utf8.RuneCountInString(f.Name) > maxNameLength {
		errs["name"] = "contact.error.name"
	}
	if len(f.Email) > maxEmailLength || !emailPattern.MatchString(f.Email) {
		errs["email"] = "contact.error.email"
	}
	if f.Service != "" && !slices.Contains(choices, f.Service) {
		errs["service"] = "contact.error.service"
	}
	if f.Message == "" || utf8.RuneCountInString(f.Message) > maxMessageLength {
		errs["message"] = "contact.error.message"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func singleLine(s string) string {
	s = html.UnescapeString(stripTags.Sanitize(s))
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

func sanitizeMessage(s string) string {
	s = strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
	s = html.UnescapeString(stripTags.Sanitize(s))
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		line = strings.Map(func(r rune) rune {
			if unicode.IsControl(r) {
				return -1
			}
			return r
		}, line)
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
