package placement

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// tickingClock returns a clock that advances one second per call.
func tickingClock(start time.Time) func() time.Time {
	t := start

	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestStore(t *testing.T, seed []Entry) *Store {
	t.Helper()

	st := NewStore(seed, nil)
	st.now = tickingClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	return st
}

func TestCreate_PrependsNewest(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)

	first, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
	require.NoError(t, err)

	second, err := st.Create(Input{Company: "Globex", Role: "SRE", Date: "2024-03-12"})
	require.NoError(t, err)

	entries := st.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, second.ID, entries[0].ID, "newest creation sits at the front")
	require.Equal(t, first.ID, entries[1].ID)

	require.Equal(t, StatusActive, first.Status)
	require.False(t, first.Crossed)
	require.NotEmpty(t, first.CreatedAt)
	require.Empty(t, first.UpdatedAt)
}

func TestCreate_UniqueIDs(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		entry, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
		require.NoError(t, err)
		require.False(t, seen[entry.ID], "id %s minted twice", entry.ID)

		seen[entry.ID] = true
	}
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		input   Input
		wantErr error
	}{
		{"missing company", Input{Role: "SWE", Date: "2024-03-10"}, ErrCompanyRequired},
		{"missing role", Input{Company: "Acme", Date: "2024-03-10"}, ErrRoleRequired},
		{"missing date", Input{Company: "Acme", Role: "SWE"}, ErrDateRequired},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := newTestStore(t, nil)

			_, err := st.Create(tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			require.Empty(t, st.Entries(), "rejected input must not reach the collection")
		})
	}
}

// Scenario: update(id, {ctc:"12"}) sets ctc, leaves company/role/date
// untouched, and stamps updatedAt later than createdAt.
func TestUpdate_PartialPatch(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)

	created, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
	require.NoError(t, err)

	ctc := "12"

	updated, err := st.Update(created.ID, Patch{CTC: &ctc})
	require.NoError(t, err)

	require.Equal(t, "12", updated.CTC)
	require.Equal(t, "Acme", updated.Company)
	require.Equal(t, "SWE", updated.Role)
	require.Equal(t, "2024-03-10", updated.Date)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.Greater(t, updated.UpdatedAt, updated.CreatedAt)
}

func TestUpdate_PreservesIdentityAndOrder(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)

	older, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
	require.NoError(t, err)

	newer, err := st.Create(Input{Company: "Globex", Role: "SRE", Date: "2024-03-12"})
	require.NoError(t, err)

	_, err = st.Update(older.ID, PatchAll(Input{
		Company: "Acme Corp", Role: "SWE II", CTC: "14", Round: "HR", Date: "2024-03-11", Link: "https://example.com",
	}))
	require.NoError(t, err)

	entries := st.Entries()
	require.Equal(t, newer.ID, entries[0].ID, "update must not reorder the collection")
	require.Equal(t, older.ID, entries[1].ID)
	require.Equal(t, "Acme Corp", entries[1].Company)
	require.Equal(t, StatusActive, entries[1].Status)
	require.False(t, entries[1].Crossed)
}

func TestUpdate_UnknownID(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)

	_, err := st.Update("missing", Patch{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestToggleCross_FlipsOnly(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)

	created, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
	require.NoError(t, err)

	crossed, ok, err := st.ToggleCross(created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, crossed.Crossed)
	require.Equal(t, StatusActive, crossed.Status)
	require.Empty(t, crossed.UpdatedAt, "cross-toggle must not stamp updatedAt")

	uncrossed, ok, err := st.ToggleCross(created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, uncrossed.Crossed)
}

func TestToggleCross_UnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)

	_, ok, err := st.ToggleCross("missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestComplete_ForcesCross(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)

	created, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
	require.NoError(t, err)

	completed, changed, err := st.Complete(created.ID)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, StatusCompleted, completed.Status)
	require.True(t, completed.Crossed, "completion forces the cross flag in the same mutation")
	require.NotEmpty(t, completed.UpdatedAt)
}

func TestComplete_Idempotent(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)

	created, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
	require.NoError(t, err)

	first, changed, err := st.Complete(created.ID)
	require.NoError(t, err)
	require.True(t, changed)

	// The clock keeps ticking, so a second effective mutation would show up
	// as a different updatedAt.
	second, changed, err := st.Complete(created.ID)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, first.Status, second.Status)
	require.Equal(t, first.Crossed, second.Crossed)
	require.Equal(t, first.UpdatedAt, second.UpdatedAt)
}

func TestComplete_Monotonic(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)

	created, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
	require.NoError(t, err)

	_, _, err = st.Complete(created.ID)
	require.NoError(t, err)

	// No later mutation short of removal brings the entry back to active.
	ctc := "12"
	_, err = st.Update(created.ID, Patch{CTC: &ctc})
	require.NoError(t, err)

	_, _, err = st.ToggleCross(created.ID)
	require.NoError(t, err)

	entry, ok := st.Get(created.ID)
	require.True(t, ok)
	require.Equal(t, StatusCompleted, entry.Status)
}

func TestComplete_UnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)

	_, changed, err := st.Complete("missing")
	require.NoError(t, err)
	require.False(t, changed)
}

// Scenario: remove(id) then partition - the id appears in neither list.
func TestRemove(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)

	created, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
	require.NoError(t, err)

	removed, err := st.Remove(created.ID)
	require.NoError(t, err)
	require.True(t, removed)

	active, completed := Partition(st.Entries())
	for _, e := range append(active, completed...) {
		require.NotEqual(t, created.ID, e.ID)
	}

	removed, err = st.Remove(created.ID)
	require.NoError(t, err)
	require.False(t, removed, "absent id is a silent no-op")
}

// recordingSaver captures every snapshot the store mirrors out.
type recordingSaver struct {
	saves [][]Entry
}

func (r *recordingSaver) Save(entries []Entry) error {
	r.saves = append(r.saves, entries)
	return nil
}

func TestWriteThrough_EveryMutationSaves(t *testing.T) {
	t.Parallel()

	saver := &recordingSaver{}
	st := NewStore(nil, saver)
	st.now = tickingClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	created, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
	require.NoError(t, err)

	_, _, err = st.ToggleCross(created.ID)
	require.NoError(t, err)

	_, _, err = st.Complete(created.ID)
	require.NoError(t, err)

	_, err = st.Remove(created.ID)
	require.NoError(t, err)

	require.Len(t, saver.saves, 4)
	require.Empty(t, saver.saves[3], "last save reflects the last mutation")
}

func TestWriteThrough_NoopsDoNotSave(t *testing.T) {
	t.Parallel()

	saver := &recordingSaver{}
	st := NewStore(nil, saver)
	st.now = tickingClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	created, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
	require.NoError(t, err)

	_, _, err = st.Complete(created.ID)
	require.NoError(t, err)

	baseline := len(saver.saves)

	_, changed, err := st.Complete(created.ID) // already completed
	require.NoError(t, err)
	require.False(t, changed)

	_, ok, err := st.ToggleCross("missing")
	require.NoError(t, err)
	require.False(t, ok)

	removed, err := st.Remove("missing")
	require.NoError(t, err)
	require.False(t, removed)

	require.Len(t, saver.saves, baseline, "no-op mutations must not trigger saves")
}

type failingSaver struct{}

var errDiskFull = errors.New("disk full")

func (failingSaver) Save([]Entry) error { return errDiskFull }

func TestSaveFailure_KeepsInMemoryState(t *testing.T) {
	t.Parallel()

	st := NewStore(nil, failingSaver{})
	st.now = tickingClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	created, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
	require.ErrorIs(t, err, errDiskFull)

	// The mutation already succeeded logically; only durability failed.
	_, ok := st.Get(created.ID)
	require.True(t, ok)
}

func TestSubscribe_FiresPerMutation(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)

	fired := 0
	st.Subscribe(func() { fired++ })

	created, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
	require.NoError(t, err)
	require.Equal(t, 1, fired)

	_, _, err = st.Complete(created.ID)
	require.NoError(t, err)
	require.Equal(t, 2, fired)

	_, _, err = st.Complete(created.ID) // no-op
	require.NoError(t, err)
	require.Equal(t, 2, fired, "no-op must not notify")
}

func TestSubscribe_CallbackMayReadStore(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)

	var seen [][]Entry
	st.Subscribe(func() { seen = append(seen, st.Entries()) })

	created, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
	require.NoError(t, err)

	require.Len(t, seen, 1)
	require.Len(t, seen[0], 1)
	require.Equal(t, created.ID, seen[0][0].ID, "callback observes the mutated state")

	// The other store readers must be usable from a callback too.
	st.Subscribe(func() {
		_, _ = st.Get(created.ID)
		_, _ = st.Totals()
	})

	removed, err := st.Remove(created.ID)
	require.NoError(t, err)
	require.True(t, removed)
	require.Len(t, seen, 2)
	require.Empty(t, seen[1])
}

func TestResolveID(t *testing.T) {
	t.Parallel()

	st := NewStore([]Entry{
		{ID: "aaaa1111", Company: "Acme"},
		{ID: "aaab2222", Company: "Globex"},
	}, nil)

	id, err := st.ResolveID("aaaa1111")
	if err != nil || id != "aaaa1111" {
		t.Fatalf("exact match: got (%q, %v)", id, err)
	}

	id, err = st.ResolveID("aaab")
	if err != nil || id != "aaab2222" {
		t.Fatalf("unique prefix: got (%q, %v)", id, err)
	}

	_, err = st.ResolveID("aaa")
	require.ErrorIs(t, err, ErrAmbiguousID)

	_, err = st.ResolveID("zzz")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = st.ResolveID("")
	require.ErrorIs(t, err, ErrIDRequired)
}

func TestTotals(t *testing.T) {
	t.Parallel()

	st := newTestStore(t, nil)

	for i := 0; i < 3; i++ {
		_, err := st.Create(Input{Company: "Acme", Role: "SWE", Date: "2024-03-10"})
		require.NoError(t, err)
	}

	created, err := st.Create(Input{Company: "Globex", Role: "SRE", Date: "2024-03-12"})
	require.NoError(t, err)

	_, _, err = st.Complete(created.ID)
	require.NoError(t, err)

	active, completed := st.Totals()
	require.Equal(t, 3, active)
	require.Equal(t, 1, completed)
}
