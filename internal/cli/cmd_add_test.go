package cli_test

import (
	"strings"
	"testing"

	"pt/internal/cli"
)

func Test_Add_Command_Validation(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{
			name:       "missing company",
			args:       []string{"add", "--role", "SWE", "--date", "2024-03-10"},
			wantStderr: "company is required",
		},
		{
			name:       "missing role",
			args:       []string{"add", "--company", "Acme", "--date", "2024-03-10"},
			wantStderr: "role is required",
		},
		{
			name:       "missing date",
			args:       []string{"add", "--company", "Acme", "--role", "SWE"},
			wantStderr: "date is required",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)

			stderr := c.MustFail(tt.args...)
			cli.AssertContains(t, stderr, tt.wantStderr)
		})
	}
}

func Test_Add_Creates_And_Persists_Entry(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add",
		"--company", "Acme", "--role", "SWE", "--date", "2024-03-10",
		"--ctc", "12", "--round", "OA", "--link", "https://example.com/jd")

	if id == "" {
		t.Fatal("add did not print an entry id")
	}

	entries := c.ReadEntries()
	if len(entries) != 1 {
		t.Fatalf("persisted %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.ID != id || e.Company != "Acme" || e.Role != "SWE" || e.Date != "2024-03-10" {
		t.Errorf("persisted entry = %+v", e)
	}

	if e.Status != "active" || e.Crossed {
		t.Errorf("new entry must start active and uncrossed, got %+v", e)
	}

	if e.CreatedAt == "" || e.UpdatedAt != "" {
		t.Errorf("timestamps: createdAt=%q updatedAt=%q", e.CreatedAt, e.UpdatedAt)
	}
}

func Test_Add_Prepends_Newest_First(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	first := c.MustRun("add", "--company", "Acme", "--role", "SWE", "--date", "2024-03-10")
	second := c.MustRun("add", "--company", "Globex", "--role", "SRE", "--date", "2024-03-12")

	entries := c.ReadEntries()
	if len(entries) != 2 {
		t.Fatalf("persisted %d entries, want 2", len(entries))
	}

	if entries[0].ID != second || entries[1].ID != first {
		t.Errorf("order = [%s %s], want newest first", entries[0].ID, entries[1].ID)
	}
}

func Test_Add_Prompt_Mode(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	input := strings.Join([]string{"Acme", "SWE", "12", "OA", "2024-03-10", ""}, "\n") + "\n"

	_, stderr, code := c.RunWithInput(input, "add", "--prompt")
	if code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, stderr)
	}

	entries := c.ReadEntries()
	if len(entries) != 1 {
		t.Fatalf("persisted %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.Company != "Acme" || e.Role != "SWE" || e.CTC != "12" || e.Round != "OA" || e.Date != "2024-03-10" || e.Link != "" {
		t.Errorf("prompted entry = %+v", e)
	}
}

func Test_Add_Prompt_Mode_Missing_Required(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	// Company left blank.
	input := strings.Join([]string{"", "SWE", "", "", "2024-03-10", ""}, "\n") + "\n"

	_, stderr, code := c.RunWithInput(input, "add", "--prompt")
	if code == 0 {
		t.Fatal("add --prompt with blank company should fail")
	}

	cli.AssertContains(t, stderr, "company is required")
}
