package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aaywp/portal/internal/client/models"
	"github.com/aaywp/portal/internal/client/services"
)

const dashboardHelp = `Dashboard commands:
  stats                      - totals
  members                    - list members (current search and filter)
  search <text>              - search by name or email, empty clears
  filter <all|status>        - filter members by status
  messages                   - list contact messages
  setstatus <id> <status>    - change a member's status
  delmember <id>             - delete a member
  delmessage <id>            - delete a contact message
  export <file.csv>          - save the filtered members
  reload                     - fetch everything again
  back                       - leave the dashboard`

type dashboardView struct {
	snap   *services.Snapshot
	search string
	status string
}

func (d *dashboardView) members() []models.Member {
	return services.FilterMembers(d.snap.Members, d.search, d.status)
}

// Dashboard forgets any stored session, asks for admin credentials and
// loads the dashboard. A failed load shows nothing.
func (a *App) Dashboard(ctx context.Context) error {
	if err := a.dashboard.Open(ctx); err != nil {
		return err
	}
	a.userName = ""

	fmt.Fprintln(a.out, "Admin sign-in required")
	if err := a.Login(ctx); err != nil {
		return err
	}

	view := &dashboardView{status: services.StatusAll}
	if err := a.reloadDashboard(ctx, view); err != nil {
		return err
	}
	a.printStats(view.snap)
	fmt.Fprintln(a.out, dashboardHelp)

	for {
		line, err := getSimpleText(a.reader, "dashboard", a.out)
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, dashboardHelp)
		case "stats":
			a.printStats(view.snap)
		case "members":
			a.printMembers(view.members())
		case "search":
			view.search = strings.Join(args, " ")
			a.printMembers(view.members())
		case "filter":
			if len(args) != 1 {
				fmt.Fprintln(a.out, "Usage: filter <all|"+strings.Join(services.MemberStatuses, "|")+">")
				continue
			}
			view.status = strings.ToLower(args[0])
			a.printMembers(view.members())
		case "messages":
			a.printMessages(view.snap.Messages)
		case "setstatus":
			if len(args) != 2 {
				fmt.Fprintln(a.out, "Usage: setstatus <id> <status>")
				continue
			}
			report(a.mutate(ctx, view, "Status updated", func() error {
				return a.dashboard.SetMemberStatus(ctx, models.ID(args[0]), args[1])
			}))
		case "delmember":
			if len(args) != 1 {
				fmt.Fprintln(a.out, "Usage: delmember <id>")
				continue
			}
			report(a.confirmAndMutate(ctx, view, "Delete member "+args[0]+"?", "Member deleted", func() error {
				return a.dashboard.DeleteMember(ctx, models.ID(args[0]))
			}))
		case "delmessage":
			if len(args) != 1 {
				fmt.Fprintln(a.out, "Usage: delmessage <id>")
				continue
			}
			report(a.confirmAndMutate(ctx, view, "Delete message "+args[0]+"?", "Message deleted", func() error {
				return a.dashboard.DeleteMessage(ctx, models.ID(args[0]))
			}))
		case "export":
			if len(args) != 1 {
				fmt.Fprintln(a.out, "Usage: export <file.csv>")
				continue
			}
			report(a.exportMembers(args[0], view.members()))
		case "reload":
			report(a.reloadDashboard(ctx, view))
		case "back", "exit", "quit":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown dashboard command:", cmd)
		}
	}
}

func (a *App) reloadDashboard(ctx context.Context, view *dashboardView) error {
	snap, err := a.dashboard.Load(ctx)
	if err != nil {
		return err
	}
	view.snap = snap
	fmt.Fprintf(a.out, "Loaded %d members and %d messages at %s\n",
		len(snap.Members), len(snap.Messages), snap.LoadedAt.Local().Format(timeLayout))
	return nil
}

func (a *App) mutate(ctx context.Context, view *dashboardView, done string, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, done)
	return a.reloadDashboard(ctx, view)
}

func (a *App) confirmAndMutate(ctx context.Context, view *dashboardView, question, done string, fn func() error) error {
	ok, err := Confirm(a.reader, question, a.out)
	if err != nil || !ok {
		return err
	}
	return a.mutate(ctx, view, done, fn)
}

func (a *App) exportMembers(path string, members []models.Member) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := services.ExportCSV(f, members); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exported %d members to %s\n", len(members), path)
	return nil
}

func (a *App) printStats(s *services.Snapshot) {
	fmt.Fprintf(a.out, "Users: %d total, %d active, %d inactive, %d admins, %d members\n",
		s.Stats.TotalUsers, s.Stats.ActiveUsers, s.Stats.InactiveUsers, s.Stats.AdminUsers, s.Stats.MemberUsers)
	fmt.Fprintf(a.out, "Community strength: %d\n", s.CommunityStrength)
	fmt.Fprintf(a.out, "Directory entries: %d, contact messages: %d\n", len(s.Members), len(s.Messages))
}

func (a *App) printMembers(members []models.Member) {
	if len(members) == 0 {
		fmt.Fprintln(a.out, "No members")
		return
	}
	for _, m := range members {
		fmt.Fprintf(a.out, "%-8s %-28s %-28s %-14s %-10s %s\n",
			m.ID, m.FullName, m.Email, m.Phone, m.Status, m.Province)
	}
}

func (a *App) printMessages(msgs []models.ContactMessage) {
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, "No messages")
		return
	}
	for _, m := range msgs {
		fmt.Fprintf(a.out, "%-8s [%s] %s <%s>: %s\n", m.ID, m.Status(), m.Name, m.Email, m.Subject)
	}
}
