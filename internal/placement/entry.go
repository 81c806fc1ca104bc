// Package placement holds the placement-tracker domain core: the entry
// model, the in-memory item store, the derived-view functions, and the
// JSON file mirror the store writes through to.
package placement

import (
	"time"

	"github.com/google/uuid"
)

// Status constants.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Entry is one placement-application record. The JSON field names are the
// persisted layout and must not change.
type Entry struct {
	ID        string `json:"id"`
	Company   string `json:"company"`
	Role      string `json:"role"`
	CTC       string `json:"ctc"`
	Round     string `json:"round"`
	Date      string `json:"date"`
	Link      string `json:"link"`
	Crossed   bool   `json:"crossed"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Input is the raw form record for a create or a full edit.
type Input struct {
	Company string
	Role    string
	CTC     string
	Round   string
	Date    string
	Link    string
}

// Validate checks the presence of the three required fields.
// CTC, round, and link are free-text and optional.
func (in Input) Validate() error {
	if in.Company == "" {
		return ErrCompanyRequired
	}

	if in.Role == "" {
		return ErrRoleRequired
	}

	if in.Date == "" {
		return ErrDateRequired
	}

	return nil
}

// Patch is a partial update. Nil fields are left untouched; id, status,
// crossed, and createdAt can never be patched.
type Patch struct {
	Company *string
	Role    *string
	CTC     *string
	Round   *string
	Date    *string
	Link    *string
}

// PatchAll builds a patch that overwrites all six editable fields,
// the shape the edit form submits.
func PatchAll(in Input) Patch {
	return Patch{
		Company: &in.Company,
		Role:    &in.Role,
		CTC:     &in.CTC,
		Round:   &in.Round,
		Date:    &in.Date,
		Link:    &in.Link,
	}
}

func (p Patch) apply(e *Entry) {
	if p.Company != nil {
		e.Company = *p.Company
	}

	if p.Role != nil {
		e.Role = *p.Role
	}

	if p.CTC != nil {
		e.CTC = *p.CTC
	}

	if p.Round != nil {
		e.Round = *p.Round
	}

	if p.Date != nil {
		e.Date = *p.Date
	}

	if p.Link != nil {
		e.Link = *p.Link
	}
}

// GenerateID mints a new entry id. The only contract is uniqueness for the
// lifetime of the collection; UUIDv4 clears that bar without coordination.
func GenerateID() string {
	return uuid.NewString()
}

// Timestamp formats t the way entry timestamps are persisted.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
