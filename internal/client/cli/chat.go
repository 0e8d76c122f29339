package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aaywp/portal/internal/client/chat"
)

const chatHelp = "Type a message, a suggestion number to pick it, '/lang en|ur' to switch language, '/quit' to leave"

// Chat runs the assistant conversation until "/quit". The transcript
// survives between visits.
func (a *App) Chat(ctx context.Context) error {
	fmt.Fprintln(a.out, chatHelp)
	a.printTranscript(0)

	for {
		a.printSuggestions()

		prompt := a.chat.Placeholder()
		if pending := a.chat.Input(); pending != "" {
			prompt = fmt.Sprintf("%s [Enter sends: %s]", prompt, pending)
		}
		line, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}

		switch {
		case line == "/quit" || line == "/exit":
			return nil

		case strings.HasPrefix(line, "/lang"):
			lang := strings.TrimSpace(strings.TrimPrefix(line, "/lang"))
			if !chat.Supported(lang) {
				fmt.Fprintln(a.out, "Supported languages: en, ur")
				continue
			}
			a.chat.SetLanguage(lang)
			a.printTranscript(0)

		case line == "":
			if pending := a.chat.Input(); pending != "" {
				a.send(ctx, pending)
			}

		default:
			if n, err := strconv.Atoi(line); err == nil && len(a.chat.Suggestions()) > 0 {
				if _, err := a.chat.PickSuggestion(n - 1); err != nil {
					fmt.Fprintln(a.out, err)
				}
				continue
			}
			a.send(ctx, line)
		}
	}
}

func (a *App) send(ctx context.Context, text string) {
	before := len(a.chat.Transcript())
	if err := a.chat.Send(ctx, text); err != nil {
		a.log.Debug(ctx, "chat send failed", "error", err)
	}
	// the user's own turn is already on screen
	a.printTranscript(before + 1)
}

func (a *App) printTranscript(from int) {
	msgs := a.chat.Transcript()
	for i := from; i < len(msgs); i++ {
		who := "assistant"
		if msgs[i].From == chat.FromUser {
			who = "you"
		}
		fmt.Fprintf(a.out, "%s: %s\n", who, msgs[i].Text)
	}
}

func (a *App) printSuggestions() {
	for i, s := range a.chat.Suggestions() {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, s)
	}
}
