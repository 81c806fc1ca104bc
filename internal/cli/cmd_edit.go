package cli

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"pt/internal/placement"
)

var (
	errNothingToEdit = errors.New("nothing to edit (pass field flags or --prompt)")
	errEmptyValue    = errors.New("empty value not allowed")
)

// editCmd returns the edit command.
func editCmd(a *app) *Command {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.String("company", "", "Company name")
	fs.String("role", "", "Role title")
	fs.String("date", "", "Date, YYYY-MM-DD")
	fs.String("ctc", "", "Compensation (CTC)")
	fs.String("round", "", "Current round")
	fs.String("link", "", "Registration / JD link")
	fs.BoolP("prompt", "p", false, "Re-prompt all fields, prefilled with current values")

	return &Command{
		Flags: fs,
		Usage: "edit <id> [flags]",
		Short: "Edit fields of an entry",
		Long: "Edit an entry. Only the fields passed as flags change; status,\n" +
			"crossed, and creation time are preserved. <id> may be a unique prefix.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execEdit(o, a, fs, args)
		},
	}
}

func execEdit(o *IO, a *app, fs *flag.FlagSet, args []string) error {
	if len(args) == 0 {
		return placement.ErrIDRequired
	}

	id, err := a.store.ResolveID(args[0])
	if err != nil {
		return err
	}

	usePrompt, _ := fs.GetBool("prompt")

	var patch placement.Patch

	if usePrompt {
		current, _ := a.store.Get(id)

		input, promptErr := promptInput(a.in, a.out, placement.Input{
			Company: current.Company,
			Role:    current.Role,
			CTC:     current.CTC,
			Round:   current.Round,
			Date:    current.Date,
			Link:    current.Link,
		})
		if promptErr != nil {
			return promptErr
		}

		if validateErr := input.Validate(); validateErr != nil {
			return validateErr
		}

		patch = placement.PatchAll(input)
	} else {
		// Required fields may change but never to empty.
		for _, name := range []string{"company", "role", "date"} {
			if err := validateNotEmpty(fs, name); err != nil {
				return err
			}
		}

		patch = patchFromFlags(fs)
		if patch == (placement.Patch{}) {
			return errNothingToEdit
		}
	}

	entry, err := a.store.Update(id, patch)
	if err != nil {
		return err
	}

	o.Println("Updated", entry.ID)

	return nil
}

func patchFromFlags(fs *flag.FlagSet) placement.Patch {
	var patch placement.Patch

	set := func(name string, dst **string) {
		if fs.Changed(name) {
			value, _ := fs.GetString(name)
			*dst = &value
		}
	}

	set("company", &patch.Company)
	set("role", &patch.Role)
	set("ctc", &patch.CTC)
	set("round", &patch.Round)
	set("date", &patch.Date)
	set("link", &patch.Link)

	return patch
}

func validateNotEmpty(fs *flag.FlagSet, name string) error {
	if !fs.Changed(name) {
		return nil
	}

	value, _ := fs.GetString(name)
	if value == "" {
		return fmt.Errorf("%w: --%s", errEmptyValue, name)
	}

	return nil
}
