package cli

import (
	"context"
	"fmt"
)

// Count prints the home screen counters.
func (a *App) Count(ctx context.Context) error {
	c, err := a.home.Counters(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered members: %d\n", c.Registered)
	fmt.Fprintf(a.out, "Community strength: %d\n", c.CommunityStrength)
	return nil
}
