package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aaywp/portal/internal/client/models"
	"github.com/aaywp/portal/internal/client/services"
	"github.com/aaywp/portal/internal/client/validation"
)

// Contact collects the contact form and sends it. Invalid input is
// reported without contacting the server.
func (a *App) Contact(ctx context.Context) error {
	var req models.ContactRequest

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Your name", &req.Name},
		{"Email", &req.Email},
		{"Phone (+92XXXXXXXXXX)", &req.Phone},
		{"Subject", &req.Subject},
	}
	for _, p := range prompts {
		val, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = val
	}

	msg, err := GetMultiline(a.reader, "Message", a.out)
	if err != nil {
		return err
	}
	req.Message = msg

	err = a.contact.Submit(ctx, req)
	var verrs validation.Errors
	switch {
	case err == nil:
		fmt.Fprintln(a.out, services.MsgContactSent)
		return nil
	case errors.As(err, &verrs):
		return err
	default:
		a.log.Warn(ctx, "contact form failed", "error", err)
		fmt.Fprintln(a.out, services.MsgContactFailed)
		return nil
	}
}
