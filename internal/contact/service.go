package contact

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Submission is an accepted enquiry. Submissions are handed to a Notifier and not stored.
type Submission struct {
	Reference  string
	Form       Form
	Lang       string
	ReceivedAt time.Time
}

// Notifier delivers a submission to whoever answers enquiries.
type Notifier interface {
	Notify(ctx context.Context, sub Submission) error
}

// ValidationError reports the fields that failed validation.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	return fmt.Sprintf("contact: invalid fields [%s]", strings.Join(keys, ", "))
}

// ServiceDeps wires a Service. Notifier and Choices are required.
type ServiceDeps struct {
	Notifier    Notifier
	Choices     []string
	Clock       func() time.Time
	IDGenerator func() string
}

type Service struct {
	notifier Notifier
	choices  []string
	clock    func() time.Time
	newID    func() string
}

func NewService(deps ServiceDeps) (*Service, error) {
	if deps.Notifier == nil {
		return nil, errors.New("contact service: notifier is required")
	}
	if len(deps.Choices) == 0 {
		return nil, errors.New("contact service: service choices are required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = func() string { return ulid.Make().String() }
	}
	return &Service{
		notifier: deps.Notifier,
		choices:  slices.Clone(deps.Choices),
		clock:    func() time.Time { return clock().UTC() },
		newID:    idGen,
	}, nil
}

// Choices returns the accepted service ids.
func (s *Service) Choices() []string { return slices.Clone(s.choices) }

// Submit validates form, assigns a reference and notifies. Validation failures are
// returned as *ValidationError.
func (s *Service) Submit(ctx context.Context, form Form, lang string) (Submission, error) {
	if errs := form.Validate(s.choices); errs != nil {
		return Submission{}, &ValidationError{Fields: errs}
	}
	sub := Submission{
		Reference:  s.newID(),
		Form:       form,
		Lang:       lang,
		ReceivedAt: s.clock(),
	}
	if err := s.notifier.Notify(ctx, sub); err != nil {
		return Submission{}, fmt.Errorf("contact: notify %s: %w", sub.Reference, err)
	}
	return sub, nil
}
