package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"pt/internal/placement"
)

// rmCmd returns the rm command.
func rmCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("rm", flag.ContinueOnError),
		Usage: "rm <id>",
		Short: "Delete an entry",
		Long:  "Delete an entry permanently. There is no undo.\n<id> may be a unique prefix.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execRm(o, a, args)
		},
	}
}

func execRm(o *IO, a *app, args []string) error {
	if len(args) == 0 {
		return placement.ErrIDRequired
	}

	id, err := a.store.ResolveID(args[0])
	if err != nil {
		return err
	}

	removed, err := a.store.Remove(id)
	if err != nil {
		return err
	}

	if removed {
		o.Println("Removed", id)
	}

	return nil
}
