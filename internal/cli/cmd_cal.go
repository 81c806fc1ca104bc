package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"pt/internal/placement"
)

// calCmd returns the cal command.
func calCmd(a *app) *Command {
	fs := flag.NewFlagSet("cal", flag.ContinueOnError)
	fs.String("month", "", "Month to show (YYYY-MM, default current)")
	fs.String("day", "", "Highlight a selected day (YYYY-MM-DD)")

	return &Command{
		Flags: fs,
		Usage: "cal [flags]",
		Short: "Show the month calendar",
		Long: "Show a month grid. Days with at least one active entry carry a *\n" +
			"marker; per-day counts follow the grid. Completed entries never\n" +
			"produce markers.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execCal(o, a, fs)
		},
	}
}

func execCal(o *IO, a *app, fs *flag.FlagSet) error {
	monthFlag, _ := fs.GetString("month")
	selected, _ := fs.GetString("day")

	month := time.Now()

	if monthFlag != "" {
		parsed, err := time.Parse("2006-01", monthFlag)
		if err != nil {
			return fmt.Errorf("invalid --month %q (want YYYY-MM)", monthFlag)
		}

		month = parsed
	}

	if selected != "" {
		if _, err := time.Parse("2006-01-02", selected); err != nil {
			return fmt.Errorf("invalid --day %q (want YYYY-MM-DD)", selected)
		}
	}

	active, _ := placement.Partition(a.store.Entries())
	counts := placement.DotCounts(active)

	printMonth(o, month, counts, selected)

	return nil
}

const calCellWidth = 5

func printMonth(o *IO, month time.Time, counts map[string]int, selected string) {
	year, m := month.Year(), month.Month()
	first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	daysIn := first.AddDate(0, 1, -1).Day()
	startDay := int(first.Weekday()) // 0 Sun - 6 Sat

	o.Println(first.Format("January 2006"))
	o.Println(" Sun  Mon  Tue  Wed  Thu  Fri  Sat")

	day := 1 - startDay
	for day <= daysIn {
		var row strings.Builder

		for col := 0; col < 7; col++ {
			row.WriteString(calCell(year, m, day, daysIn, counts, selected))
			day++
		}

		o.Println(strings.TrimRight(row.String(), " "))
	}

	printMonthCounts(o, year, m, daysIn, counts)
}

// calCell renders one fixed-width cell: the day number, brackets when the
// day is selected, and a * when the day has active entries. Days outside
// the month render blank.
func calCell(year int, m time.Month, day, daysIn int, counts map[string]int, selected string) string {
	if day < 1 || day > daysIn {
		return strings.Repeat(" ", calCellWidth)
	}

	key := fmt.Sprintf("%04d-%02d-%02d", year, m, day)

	cell := fmt.Sprintf("%3d", day)
	if key == selected {
		cell = fmt.Sprintf("[%2d]", day)
	}

	if counts[key] > 0 {
		cell += "*"
	}

	return cell + strings.Repeat(" ", calCellWidth-len(cell))
}

func printMonthCounts(o *IO, year int, m time.Month, daysIn int, counts map[string]int) {
	var days []string

	for day := 1; day <= daysIn; day++ {
		key := fmt.Sprintf("%04d-%02d-%02d", year, m, day)
		if counts[key] > 0 {
			days = append(days, key)
		}
	}

	o.Println()

	if len(days) == 0 {
		o.Println("no active entries this month")

		return
	}

	sort.Strings(days)

	for _, key := range days {
		noun := "entries"
		if counts[key] == 1 {
			noun = "entry"
		}

		o.Printf("%s  %d active %s\n", key, counts[key], noun)
	}
}
