// Package terminal patches the Windows Terminal settings document so a theme
// (background image + contrast foreground) can be applied or removed while
// every unrelated setting in the file is preserved.
//
// The document is handled as raw JSON text and mutated with path operations
// rather than being decoded into a map, so sibling profiles, actions and any
// user settings pass through untouched and in their original order. Comments
// (// and /* */), which Windows Terminal permits, are stripped on load and not
// written back; this is a documented limitation of the tool.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const (
	profilesKey  = "profiles"
	defaultsPath = "profiles.defaults"

	backgroundImagePath = defaultsPath + ".backgroundImage"
	foregroundPath      = defaultsPath + ".foreground"

	// colorScheme takes precedence over a raw foreground in Windows
	// Terminal, so it must be dropped whenever foreground is set.
	colorSchemePath = defaultsPath + ".colorScheme"
)

// Document is an opaque handle to a loaded settings file. The profiles.defaults
// shape assumptions live entirely in this package; callers only see the theme
// operations.
type Document struct {
	raw []byte
}

// Load reads and parses the settings file at path. Comments are stripped with
// awareness of string literal boundaries, so values containing "//" survive.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigRead, path, err)
	}

	raw := jsonc.ToJSON(data)
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: %s: invalid JSON", ErrConfigRead, path)
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return nil, fmt.Errorf("%w: %s: top level is not an object", ErrConfigShape, path)
	}
	return &Document{raw: raw}, nil
}

// Parse builds a Document from raw settings text without touching the
// filesystem. Used by tests and anything that already holds the bytes.
func Parse(data []byte) (*Document, error) {
	raw := jsonc.ToJSON(data)
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrConfigRead)
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrConfigShape)
	}
	return &Document{raw: raw}, nil
}

// JSON returns the current document content as JSON text.
func (d *Document) JSON() []byte {
	out := make([]byte, len(d.raw))
	copy(out, d.raw)
	return out
}

// EnsureDefaults makes sure profiles.defaults exists as an object, creating
// empty objects as needed. It never coerces: an existing profiles or defaults
// value of any other type (including the legacy array form of profiles) is
// reported as ErrConfigShape. Calling it repeatedly is a no-op after the
// first call.
func (d *Document) EnsureDefaults() error {
	profiles := gjson.GetBytes(d.raw, profilesKey)
	if profiles.Exists() && !profiles.IsObject() {
		return fmt.Errorf("%w: %q is not an object", ErrConfigShape, profilesKey)
	}
	defaults := profiles.Get("defaults")
	if defaults.Exists() && !defaults.IsObject() {
		return fmt.Errorf("%w: %q is not an object", ErrConfigShape, defaultsPath)
	}
	if defaults.Exists() {
		return nil
	}

	// sjson creates the missing parents, so this covers both an absent
	// profiles object and an absent defaults block.
	raw, err := sjson.SetRawBytes(d.raw, defaultsPath, []byte(`{}`))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigShape, err)
	}
	d.raw = raw
	return nil
}

// ApplyTheme sets backgroundImage and foreground in profiles.defaults and
// removes colorScheme in the same mutation pass, so no state with both a
// scheme and a raw foreground ever reaches disk.
func (d *Document) ApplyTheme(imagePath, foreground string) error {
	if err := d.EnsureDefaults(); err != nil {
		return err
	}

	raw, err := sjson.SetBytes(d.raw, backgroundImagePath, imagePath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigShape, err)
	}
	raw, err = sjson.SetBytes(raw, foregroundPath, foreground)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigShape, err)
	}
	if gjson.GetBytes(raw, colorSchemePath).Exists() {
		raw, err = sjson.DeleteBytes(raw, colorSchemePath)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrConfigShape, err)
		}
	}
	d.raw = raw
	return nil
}

// ClearTheme removes backgroundImage and foreground from profiles.defaults.
// Missing keys are not an error, so the operation is idempotent. A previously
// removed colorScheme is not restored; the tool keeps no record of it.
func (d *Document) ClearTheme() error {
	if err := d.EnsureDefaults(); err != nil {
		return err
	}

	raw := d.raw
	for _, path := range []string{backgroundImagePath, foregroundPath} {
		if !gjson.GetBytes(raw, path).Exists() {
			continue
		}
		var err error
		raw, err = sjson.DeleteBytes(raw, path)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrConfigShape, err)
		}
	}
	d.raw = raw
	return nil
}

// Save reformats the document (4-space indent, key order preserved) and
// replaces the file at path atomically via a temp file and rename. No backup
// is kept.
func Save(path string, d *Document) error {
	out := pretty.PrettyOptions(d.raw, &pretty.Options{Width: 80, Indent: "    "})

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, out, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}
	return nil
}
