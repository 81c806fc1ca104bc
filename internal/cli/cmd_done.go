package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"pt/internal/placement"
)

// doneCmd returns the done command.
func doneCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("done", flag.ContinueOnError),
		Usage: "done <id>",
		Short: "Mark an entry completed",
		Long: "Mark an entry completed. Completion also crosses the entry and is\n" +
			"one-way: completing an already-completed entry changes nothing.\n" +
			"<id> may be a unique prefix.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execDone(o, a, args)
		},
	}
}

func execDone(o *IO, a *app, args []string) error {
	if len(args) == 0 {
		return placement.ErrIDRequired
	}

	id, err := a.store.ResolveID(args[0])
	if err != nil {
		return err
	}

	entry, changed, err := a.store.Complete(id)
	if err != nil {
		return err
	}

	if !changed {
		o.Println("Already completed:", entry.ID)

		return nil
	}

	o.Println("Completed", entry.ID)

	return nil
}
