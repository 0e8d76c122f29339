package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aaywp/portal/internal/client/models"
	v "github.com/aaywp/portal/internal/client/validation"
	"github.com/aaywp/portal/internal/client/wizard"
)

// clearValue empties an optional field that already has a value.
const clearValue = "-"

var fieldHints = map[string]string{
	v.FieldCNIC:               "12345-1234567-1",
	v.FieldDateOfBirth:        "YYYY-MM-DD",
	v.FieldGender:             strings.Join(models.Strings(models.Genders), "/"),
	v.FieldFamilyMembersCount: "1-50",
	v.FieldEducation:          strings.Join(models.Strings(models.Educations), "/"),
	v.FieldPhone:              "+92XXXXXXXXXX",
	v.FieldWhatsApp:           "+92XXXXXXXXXX",
	v.FieldProvince:           strings.Join(models.Provinces, ", "),
	v.FieldMaritalStatus:      strings.Join(models.Strings(models.MaritalStatuses), "/"),
	v.FieldMembershipType:     strings.Join(models.Strings(models.MembershipTypes), "/"),
	v.FieldProfilePhoto:       "path to an image file",
}

// Register walks the registration wizard. Leaving with "cancel" keeps the
// draft, so the next "register" resumes where the user stopped.
func (a *App) Register(ctx context.Context) error {
	for {
		st := a.wizard.State()
		fmt.Fprintf(a.out, "\nStep %d of %d: %s\n", int(st.Step)+1, len(wizard.Steps), st.Step)

		if err := a.fillStep(st); err != nil {
			return err
		}

		action, err := getSimpleText(a.reader, a.actionPrompt(st.Step), a.out)
		if err != nil {
			return err
		}

		switch strings.ToLower(action) {
		case "", "n", "next":
			if st.Step == wizard.AdditionalInfo {
				fmt.Fprintln(a.out, "This is the last step, use 'submit'")
				continue
			}
			if _, err := a.wizard.Advance(); err != nil {
				printlnFn("Error:", describe(err))
			}

		case "b", "back":
			a.wizard.Retreat()

		case "s", "submit":
			done, err := a.submitRegistration(ctx)
			if err != nil || done {
				return err
			}

		case "c", "cancel":
			fmt.Fprintln(a.out, "Registration paused, type 'register' to continue")
			return nil

		case "r", "reset":
			a.wizard.Reset()
			fmt.Fprintln(a.out, "Form cleared")

		default:
			fmt.Fprintln(a.out, "Unknown action:", action)
		}
	}
}

func (a *App) actionPrompt(step wizard.Step) string {
	if step == wizard.AdditionalInfo {
		return "[s]ubmit, [b]ack, [r]eset, [c]ancel"
	}
	if step == wizard.PersonalInfo {
		return "[n]ext, [r]eset, [c]ancel"
	}
	return "[n]ext, [b]ack, [r]eset, [c]ancel"
}

// fillStep prompts for every field of the current step. An empty answer
// keeps the current value.
func (a *App) fillStep(st wizard.State) error {
	for _, field := range st.Step.Fields() {
		current := st.Inputs[field]

		val, err := getSimpleText(a.reader, a.fieldPrompt(field, current), a.out)
		if err != nil {
			return err
		}
		switch {
		case val == clearValue:
			val = ""
		case val == "":
			continue
		}
		if err := a.wizard.Set(field, val); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) fieldPrompt(field, current string) string {
	label, required := field, false
	if r, ok := a.validator.Rule(field); ok {
		label, required = r.Label, r.Required
	}

	var b strings.Builder
	b.WriteString(label)
	if !required {
		b.WriteString(" (optional)")
	}
	if hint, ok := fieldHints[field]; ok {
		fmt.Fprintf(&b, " <%s>", hint)
	}
	if current != "" {
		fmt.Fprintf(&b, " [%s]", current)
	}
	return b.String()
}

// submitRegistration reports done=true once the wizard accepted the
// submission. Backend failures have already been shown by the notifier.
func (a *App) submitRegistration(ctx context.Context) (bool, error) {
	err := a.wizard.Submit(ctx)
	var verrs v.Errors
	switch {
	case err == nil:
		return true, nil
	case errors.As(err, &verrs):
		printlnFn("Error:", describe(err))
		return false, nil
	case errors.Is(err, wizard.ErrSubmitInFlight):
		fmt.Fprintln(a.out, "A submission is already in progress")
		return false, nil
	default:
		a.log.Warn(ctx, "registration failed", "error", err)
		return false, nil
	}
}
