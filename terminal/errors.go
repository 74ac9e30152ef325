package terminal

import "errors"

// Error categories for settings file handling. All are terminal for a run;
// callers match with errors.Is.
var (
	// ErrConfigNotFound means the settings file does not exist at the given
	// path. Kept separate from ErrConfigRead so the caller can suggest
	// launching Windows Terminal once to generate it.
	ErrConfigNotFound = errors.New("terminal: settings file not found")

	// ErrConfigRead means the settings file exists but could not be read or
	// parsed as JSON (after comment stripping).
	ErrConfigRead = errors.New("terminal: settings file could not be parsed")

	// ErrConfigShape means the document parsed but a key this tool relies on
	// has an unexpected type, e.g. "profiles" holding an array. The document
	// is never coerced or overwritten in that case.
	ErrConfigShape = errors.New("terminal: settings document has unexpected shape")

	// ErrConfigWrite means saving the mutated document failed. The file on
	// disk is whatever it was before the attempt.
	ErrConfigWrite = errors.New("terminal: settings file could not be written")
)
