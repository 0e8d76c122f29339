// Package validation holds the field rules shared by the registration wizard
// and the contact form, backed by go-playground/validator.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/aaywp/portal/internal/client/models"
	"github.com/go-playground/validator/v10"
)

var (
	cnicPattern    = regexp.MustCompile(`^\d{5}-\d{7}-\d{1}$`)
	pkPhonePattern = regexp.MustCompile(`^\+92\d{10}$`)
)

const (
	MinFamilyMembers = 1
	MaxFamilyMembers = 50
)

// FieldError is a user-facing complaint about one field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// Errors collects complaints in field order.
type Errors []FieldError

func (es Errors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Err returns nil for an empty list so callers can write `if err := ...; err != nil`.
func (es Errors) Err() error {
	if len(es) == 0 {
		return nil
	}
	return es
}

// Message returns the complaint for field, if any.
func (es Errors) Message(field string) (string, bool) {
	for _, e := range es {
		if e.Field == field {
			return e.Message, true
		}
	}
	return "", false
}

type Validator struct {
	v     *validator.Validate
	rules map[string]Rule
	now   func() time.Time
}

// New returns a Validator with the registration rules and the custom tags
// cnic, pkphone, province, headcount, membership and pastdate registered.
func New() *Validator {
	vd := &Validator{
		v:     validator.New(validator.WithRequiredStructEnabled()),
		rules: make(map[string]Rule, len(registrationRules)),
		now:   time.Now,
	}
	for _, r := range registrationRules {
		vd.rules[r.Field] = r
	}

	vd.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	must(vd.v.RegisterValidation("cnic", matches(cnicPattern)))
	must(vd.v.RegisterValidation("pkphone", matches(pkPhonePattern)))
	must(vd.v.RegisterValidation("province", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.Provinces, fl.Field().String())
	}))
	must(vd.v.RegisterValidation("headcount", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		return err == nil && n >= MinFamilyMembers && n <= MaxFamilyMembers
	}))
	must(vd.v.RegisterValidation("membership", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.MembershipTypes, models.NormalizeMembership(fl.Field().String()))
	}))
	must(vd.v.RegisterValidation("pastdate", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(models.DateLayout, fl.Field().String())
		return err == nil && !d.After(vd.now())
	}))

	return vd
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Rule returns the rule for a registration field.
func (vd *Validator) Rule(field string) (Rule, bool) {
	r, ok := vd.rules[field]
	return r, ok
}

// Field checks a single registration field. Unknown fields are rejected.
func (vd *Validator) Field(field, value string) error {
	r, ok := vd.rules[field]
	if !ok {
		return FieldError{Field: field, Message: "unknown field"}
	}

	err := vd.v.Var(strings.TrimSpace(value), r.Tag)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return FieldError{Field: field, Message: r.message(ves[0].Tag())}
	}
	return FieldError{Field: field, Message: err.Error()}
}

// Fields checks the named fields against values and returns every failure,
// in the order the fields were given.
func (vd *Validator) Fields(fields []string, values map[string]string) Errors {
	var out Errors
	for _, f := range fields {
		if err := vd.Field(f, values[f]); err != nil {
			var fe FieldError
			if errors.As(err, &fe) {
				out = append(out, fe)
			}
		}
	}
	return out
}

// Contact validates a contact form submission.
func (vd *Validator) Contact(req models.ContactRequest) Errors {
	return vd.structErrors(req, contactMessages)
}

func (vd *Validator) structErrors(s any, messages map[string]map[string]string) Errors {
	err := vd.v.Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return Errors{{Message: err.Error()}}
	}

	out := make(Errors, 0, len(ves))
	for _, fe := range ves {
		out = append(out, FieldError{Field: fe.Field(), Message: lookup(messages[fe.Field()], fe.Tag(), fe.Field())})
	}
	return out
}

func lookup(m map[string]string, tag, field string) string {
	if msg, ok := m[tag]; ok {
		return msg
	}
	if msg, ok := m["*"]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", field)
}
