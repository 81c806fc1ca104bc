package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"pt/internal/placement"
)

// crossCmd returns the cross command.
func crossCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("cross", flag.ContinueOnError),
		Usage: "cross <id>",
		Short: "Toggle strike-through on an entry",
		Long: "Toggle the strike-through mark on an entry. Crossing is a visual\n" +
			"flag only; it does not complete the entry. <id> may be a unique prefix.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execCross(o, a, args)
		},
	}
}

func execCross(o *IO, a *app, args []string) error {
	if len(args) == 0 {
		return placement.ErrIDRequired
	}

	id, err := a.store.ResolveID(args[0])
	if err != nil {
		return err
	}

	entry, _, err := a.store.ToggleCross(id)
	if err != nil {
		return err
	}

	if entry.Crossed {
		o.Println("Crossed", entry.ID)
	} else {
		o.Println("Uncrossed", entry.ID)
	}

	return nil
}
