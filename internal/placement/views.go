package placement

import (
	"sort"
	"strings"
)

// Derived views are pure functions of a collection snapshot. Nothing here
// mutates its input; sorts copy first. Views recompute from scratch on every
// read, which is cheap at this scale and keeps the store the single source
// of truth.

// dayKeyLen is the YYYY-MM-DD prefix of an ISO-8601 string.
const dayKeyLen = 10

// Partition splits entries by lifecycle state. Anything not explicitly
// completed counts as active, so an unrecognized status read from an old
// data file still shows up rather than vanishing.
func Partition(entries []Entry) (active, completed []Entry) {
	for _, e := range entries {
		if e.Status == StatusCompleted {
			completed = append(completed, e)
		} else {
			active = append(active, e)
		}
	}

	return active, completed
}

// DayKey truncates a stored date to its calendar-day component. Truncation
// is textual (first 10 characters), never timezone-converted: converting
// would shift dates near midnight by a day.
func DayKey(date string) string {
	if len(date) <= dayKeyLen {
		return date
	}

	return date[:dayKeyLen]
}

// DotCounts maps day keys to the number of active entries on that day.
// Completed entries never produce dots, and days with no entries are absent
// from the map. Call with the active partition.
func DotCounts(active []Entry) map[string]int {
	counts := make(map[string]int)

	for _, e := range active {
		key := DayKey(e.Date)
		if key == "" {
			continue
		}

		counts[key]++
	}

	return counts
}

// searchFields returns the four searchable fields of an entry.
func searchFields(e Entry) [4]string {
	return [4]string{e.Company, e.Role, e.Round, e.CTC}
}

// Search keeps entries where the lowercased query is a substring of
// company, role, round, or ctc. A blank or whitespace-only query matches
// everything and returns the input unchanged.
func Search(entries []Entry, query string) []Entry {
	if strings.TrimSpace(query) == "" {
		return entries
	}

	q := strings.ToLower(query)

	var out []Entry

	for _, e := range entries {
		for _, field := range searchFields(e) {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, e)

				break
			}
		}
	}

	return out
}

// FilterByDay keeps entries whose day key equals day (YYYY-MM-DD).
func FilterByDay(entries []Entry, day string) []Entry {
	var out []Entry

	for _, e := range entries {
		if DayKey(e.Date) == day {
			out = append(out, e)
		}
	}

	return out
}

// SortActive returns entries ordered by date ascending. Comparison is
// lexicographic on the ISO string; an empty date sorts first.
func SortActive(entries []Entry) []Entry {
	out := append([]Entry(nil), entries...)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})

	return out
}

// SortCompleted returns entries ordered by effective timestamp descending,
// where each entry's effective timestamp is updatedAt if set, else date.
func SortCompleted(entries []Entry) []Entry {
	out := append([]Entry(nil), entries...)

	sort.SliceStable(out, func(i, j int) bool {
		return effectiveTimestamp(out[i]) > effectiveTimestamp(out[j])
	})

	return out
}

func effectiveTimestamp(e Entry) string {
	if e.UpdatedAt != "" {
		return e.UpdatedAt
	}

	return e.Date
}

// ActiveView composes the active table: partition, search filter, day
// filter when the restrict-to-day toggle is on and a day is selected, then
// date ascending.
func ActiveView(entries []Entry, query, day string, onlyDay bool) []Entry {
	active, _ := Partition(entries)
	active = Search(active, query)

	if onlyDay && day != "" {
		active = FilterByDay(active, day)
	}

	return SortActive(active)
}

// CompletedView composes the completed table: partition, search filter,
// effective timestamp descending. The day filter never applies here.
func CompletedView(entries []Entry, query string) []Entry {
	_, completed := Partition(entries)

	return SortCompleted(Search(completed, query))
}
