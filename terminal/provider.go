package terminal

import "os"

// Provider ties the patch operations to a concrete settings file. The path is
// injected so the provider can be pointed at a synthetic document in tests.
type Provider struct {
	settingsPath string
}

// NewProvider returns a provider operating on the given settings file.
func NewProvider(settingsPath string) *Provider {
	return &Provider{settingsPath: settingsPath}
}

// SettingsPath returns the settings file this provider operates on.
func (p *Provider) SettingsPath() string {
	return p.settingsPath
}

// Apply loads the settings document, applies the theme and writes the result
// back. The document on disk is untouched when any step fails.
func (p *Provider) Apply(imagePath, foreground string) error {
	doc, err := Load(p.settingsPath)
	if err != nil {
		return err
	}
	if err := doc.ApplyTheme(imagePath, foreground); err != nil {
		return err
	}
	return Save(p.settingsPath, doc)
}

// Clear loads the settings document, removes the theme keys and writes the
// result back.
func (p *Provider) Clear() error {
	doc, err := Load(p.settingsPath)
	if err != nil {
		return err
	}
	if err := doc.ClearTheme(); err != nil {
		return err
	}
	return Save(p.settingsPath, doc)
}

// IsCompatible reports whether the current process runs inside a Windows
// Terminal session.
func IsCompatible() bool {
	_, ok := os.LookupEnv("WT_SESSION")
	return ok
}
