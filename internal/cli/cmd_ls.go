package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	flag "github.com/spf13/pflag"

	"pt/internal/placement"
)

var (
	errOnlyDayNeedsDay   = errors.New("--only-day requires --day")
	errConflictingTables = errors.New("--completed and --all cannot be used together")
)

const shortIDLen = 8

// lsCmd returns the ls command.
func lsCmd(a *app) *Command {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.StringP("search", "s", "", "Filter by substring of company, role, round, or CTC")
	fs.String("day", "", "Selected day (YYYY-MM-DD)")
	fs.Bool("only-day", false, "Restrict the active table to the selected day")
	fs.Bool("completed", false, "Show the completed table instead of the active one")
	fs.Bool("all", false, "Show both tables")

	return &Command{
		Flags: fs,
		Usage: "ls [flags]",
		Short: "List entries",
		Long: "List entries. Active entries sort by date ascending; completed\n" +
			"entries sort by last update descending. The day filter only ever\n" +
			"applies to the active table.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execLs(o, a, fs)
		},
	}
}

func execLs(o *IO, a *app, fs *flag.FlagSet) error {
	query, _ := fs.GetString("search")
	day, _ := fs.GetString("day")
	onlyDay, _ := fs.GetBool("only-day")
	showCompleted, _ := fs.GetBool("completed")
	showAll, _ := fs.GetBool("all")

	if onlyDay && day == "" {
		return errOnlyDayNeedsDay
	}

	if showCompleted && showAll {
		return errConflictingTables
	}

	entries := a.store.Entries()

	// Required fields can only go missing through hand edits of the data
	// file; flag them instead of failing the listing.
	for _, e := range entries {
		if e.Company == "" || e.Role == "" || e.Date == "" {
			o.Warn(
				fmt.Sprintf("entry %s is missing required fields", shortID(e.ID)),
				"fix the data file or remove the entry with pt rm",
			)
		}
	}

	active, completed := a.store.Totals()

	o.Printf("Active: %d  Completed: %d\n", active, completed)

	if !showCompleted {
		printTable(o, "ACTIVE", placement.ActiveView(entries, query, day, onlyDay))
	}

	if showCompleted || showAll {
		printTable(o, "COMPLETED", placement.CompletedView(entries, query))
	}

	return nil
}

var lsHeader = []string{"ID", "X", "COMPANY", "ROLE", "CTC", "ROUND", "DATE", "LINK"}

func printTable(o *IO, title string, entries []placement.Entry) {
	o.Println()
	o.Println(title)

	if len(entries) == 0 {
		o.Println("  no entries")

		return
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, entryRow(e))
	}

	widths := columnWidths(lsHeader, rows)

	o.Println("  " + formatRow(lsHeader, widths))

	for _, row := range rows {
		o.Println("  " + formatRow(row, widths))
	}
}

func entryRow(e placement.Entry) []string {
	crossed := ""
	if e.Crossed {
		crossed = "x"
	}

	return []string{
		shortID(e.ID),
		crossed,
		e.Company,
		e.Role,
		e.CTC,
		e.Round,
		placement.DayKey(e.Date),
		e.Link,
	}
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}

	return id[:shortIDLen]
}

// columnWidths sizes each column to its widest cell. Widths use display
// cells, not bytes, so CJK company names stay aligned.
func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))

	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = runewidth.FillRight(cell, widths[i])
	}

	return strings.TrimRight(strings.Join(padded, "  "), " ")
}
