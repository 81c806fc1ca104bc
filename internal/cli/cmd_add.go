package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"pt/internal/placement"
)

// addCmd returns the add command.
func addCmd(a *app) *Command {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.String("company", "", "Company name (required)")
	fs.String("role", "", "Role title (required)")
	fs.String("date", "", "Date, YYYY-MM-DD (required)")
	fs.String("ctc", "", "Compensation (CTC)")
	fs.String("round", "", "Current round")
	fs.String("link", "", "Registration / JD link")
	fs.BoolP("prompt", "p", false, "Prompt for fields interactively")

	return &Command{
		Flags: fs,
		Usage: "add [flags]",
		Short: "Add a placement entry",
		Long:  "Add a placement entry. Company, role, and date are required.\nPrints the new entry ID on success.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execAdd(o, a, fs)
		},
	}
}

func execAdd(o *IO, a *app, fs *flag.FlagSet) error {
	var input placement.Input

	usePrompt, _ := fs.GetBool("prompt")
	if usePrompt {
		var err error

		input, err = promptInput(a.in, a.out, placement.Input{})
		if err != nil {
			return err
		}
	} else {
		input = inputFromFlags(fs)
	}

	// Reject incomplete input at the boundary, before the store sees it.
	if err := input.Validate(); err != nil {
		return err
	}

	entry, err := a.store.Create(input)
	if err != nil {
		return err
	}

	o.Println(entry.ID)

	return nil
}

func inputFromFlags(fs *flag.FlagSet) placement.Input {
	company, _ := fs.GetString("company")
	role, _ := fs.GetString("role")
	date, _ := fs.GetString("date")
	ctc, _ := fs.GetString("ctc")
	round, _ := fs.GetString("round")
	link, _ := fs.GetString("link")

	return placement.Input{
		Company: company,
		Role:    role,
		CTC:     ctc,
		Round:   round,
		Date:    date,
		Link:    link,
	}
}
