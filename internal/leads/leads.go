// Package leads accepts trial and subscription requests submitted from the modal form.
package leads

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"hypertech.group/hypersystem-web/internal/locale"
	"hypertech.group/hypersystem-web/internal/pricing"
)

// Form is the raw modal submission.
type Form struct {
	Brand   string `form:"brand" validate:"required,max=120"`
	Contact string `form:"contact" validate:"required,max=80"`
	Phone   string `form:"phone" validate:"required,max=32,phone"`
	Plan    string `form:"plan" validate:"omitempty,oneof=free starter pro enterprise"`
}

// FormFromRequest reads the urlencoded modal form.
func FormFromRequest(r *http.Request) Form {
	return Form{
		Brand:   strings.TrimSpace(r.PostFormValue("brand")),
		Contact: strings.TrimSpace(r.PostFormValue("contact")),
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
		Plan:    strings.TrimSpace(r.PostFormValue("plan")),
	}
}

// Lead is an accepted submission.
type Lead struct {
	ID         uuid.UUID
	Locale     locale.Locale
	Brand      string
	Contact    string
	Phone      string
	Plan       pricing.Key
	ReceivedAt time.Time
}

// Problem classifies a rejected field.
type Problem string

const (
	ProblemRequired Problem = "required"
	ProblemTooLong  Problem = "too_long"
	ProblemInvalid  Problem = "invalid"
)

// ValidationError lists rejected fields keyed by form name.
type ValidationError struct {
	Fields map[string]Problem
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+string(e.Fields[name]))
	}
	return "leads: invalid form (" + strings.Join(parts, ", ") + ")"
}

// Sink receives accepted leads.
type Sink interface {
	Submit(ctx context.Context, lead Lead) error
}

// Intake validates, sanitizes and forwards submissions to a Sink.
type Intake struct {
	validate *validator.Validate
	policy   *bluemonday.Policy
	sink     Sink
	now      func() time.Time
}

// NewIntake returns an Intake delivering to sink.
func NewIntake(sink Sink) *Intake {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	_ = v.RegisterValidation("phone", validPhone)
	return &Intake{
		validate: v,
		policy:   bluemonday.StrictPolicy(),
		sink:     sink,
		now:      time.Now,
	}
}

// Submit accepts f for locale l. A rejected form returns *ValidationError.
func (in *Intake) Submit(ctx context.Context, l locale.Locale, f Form) (Lead, error) {
	f = in.sanitize(f)
	if err := in.validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return Lead{}, newValidationError(verrs)
		}
		return Lead{}, fmt.Errorf("leads: validate: %w", err)
	}
	plan, _ := pricing.ParseKey(f.Plan)
	lead := Lead{
		ID:         uuid.New(),
		Locale:     l,
		Brand:      f.Brand,
		Contact:    f.Contact,
		Phone:      f.Phone,
		Plan:       plan,
		ReceivedAt: in.now().UTC(),
	}
	if err := in.sink.Submit(ctx, lead); err != nil {
		return Lead{}, fmt.Errorf("leads: submit %s: %w", lead.ID, err)
	}
	return lead, nil
}

// sanitize strips markup; entities escaped by the policy are decoded again since
// templates escape on output.
func (in *Intake) sanitize(f Form) Form {
	clean := func(s string) string {
		return strings.TrimSpace(html.UnescapeString(in.policy.Sanitize(s)))
	}
	f.Brand = clean(f.Brand)
	f.Contact = clean(f.Contact)
	f.Phone = clean(f.Phone)
	f.Plan = strings.ToLower(clean(f.Plan))
	return f
}

func newValidationError(errs validator.ValidationErrors) *ValidationError {
	out := &ValidationError{Fields: map[string]Problem{}}
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			out.Fields[fe.Field()] = ProblemRequired
		case "max":
			out.Fields[fe.Field()] = ProblemTooLong
		default:
			out.Fields[fe.Field()] = ProblemInvalid
		}
	}
	return out
}

// validPhone accepts digits with an optional leading + and common separators,
// with at least seven digits.
func validPhone(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	digits := 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 7
}

// LogSink writes leads to the structured log.
type LogSink struct {
	Logger *zap.Logger
}

func (s LogSink) Submit(_ context.Context, lead Lead) error {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("lead received",
		zap.String("lead_id", lead.ID.String()),
		zap.String("locale", string(lead.Locale)),
		zap.String("brand", lead.Brand),
		zap.String("contact", lead.Contact),
		zap.String("phone", maskPhone(lead.Phone)),
		zap.String("plan", string(lead.Plan)),
		zap.Time("received_at", lead.ReceivedAt),
	)
	return nil
}

func maskPhone(p string) string {
	if len(p) <= 3 {
		return "***"
	}
	return strings.Repeat("*", len(p)-3) + p[len(p)-3:]
}

// MemorySink keeps leads in memory.
type MemorySink struct {
	mu    sync.Mutex
	leads []Lead
}

func (s *MemorySink) Submit(_ context.Context, lead Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, lead)
	return nil
}

// Leads returns a copy of the received leads.
func (s *MemorySink) Leads() []Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Lead(nil), s.leads...)
}
