package placement

import "errors"

// Error variables for store and config operations.
var (
	ErrCompanyRequired = errors.New("company is required")
	ErrRoleRequired    = errors.New("role is required")
	ErrDateRequired    = errors.New("date is required")
	ErrNotFound        = errors.New("entry not found")
	ErrIDRequired      = errors.New("entry ID is required")
	ErrAmbiguousID     = errors.New("ID prefix matches multiple entries")

	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrDataDirEmpty       = errors.New("data_dir cannot be empty")
	ErrFlagRequiresArg    = errors.New("flag requires an argument")
	ErrUnknownFlag        = errors.New("unknown flag")
)
