//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder starts from the production defaults.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings entities.Settings
}

// NewSettingsBuilder creates a builder seeded with NewDefaultSettings.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		settings:    *entities.NewDefaultSettings(),
	}
}

// WithWorkDir sets the working directory.
func (b *SettingsBuilder) WithWorkDir(workDir string) *SettingsBuilder {
	b.settings.WorkDir = workDir
	return b
}

// WithCredentialMode sets the credential mode.
func (b *SettingsBuilder) WithCredentialMode(mode entities.CredentialMode) *SettingsBuilder {
	b.settings.CredentialMode = mode
	return b
}

// WithMaskToken toggles the secret prompt.
func (b *SettingsBuilder) WithMaskToken(mask bool) *SettingsBuilder {
	b.settings.MaskToken = mask
	return b
}

// WithCleanupOnExit toggles removal of the clone when the session ends.
func (b *SettingsBuilder) WithCleanupOnExit(cleanup bool) *SettingsBuilder {
	b.settings.CleanupOnExit = cleanup
	return b
}

// WithEmailDomain sets the synthesized email domain.
func (b *SettingsBuilder) WithEmailDomain(domain string) *SettingsBuilder {
	b.settings.EmailDomain = domain
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := b.settings
	settings.QuitCommands = append([]string(nil), b.settings.QuitCommands...)
	return &settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.settings = *entities.NewDefaultSettings()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		settings:    *b.BuildSettings(),
	}
}
