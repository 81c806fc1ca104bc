package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"pt/internal/placement"
)

// showCmd returns the show command.
func showCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("show", flag.ContinueOnError),
		Usage: "show <id>",
		Short: "Show entry details",
		Long:  "Display all fields of one entry. <id> may be a unique prefix.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execShow(o, a, args)
		},
	}
}

func execShow(o *IO, a *app, args []string) error {
	if len(args) == 0 {
		return placement.ErrIDRequired
	}

	id, err := a.store.ResolveID(args[0])
	if err != nil {
		return err
	}

	entry, _ := a.store.Get(id)

	crossed := "no"
	if entry.Crossed {
		crossed = "yes"
	}

	o.Println("ID:      ", entry.ID)
	o.Println("Company: ", entry.Company)
	o.Println("Role:    ", entry.Role)
	o.Println("CTC:     ", entry.CTC)
	o.Println("Round:   ", entry.Round)
	o.Println("Date:    ", entry.Date)
	o.Println("Link:    ", entry.Link)
	o.Println("Status:  ", entry.Status)
	o.Println("Crossed: ", crossed)
	o.Println("Created: ", entry.CreatedAt)

	if entry.UpdatedAt != "" {
		o.Println("Updated: ", entry.UpdatedAt)
	}

	return nil
}
