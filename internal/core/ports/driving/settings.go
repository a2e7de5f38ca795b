package driving

import "github.com/custodia-labs/oddart/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting from its string form, e.g.
	// ("pipeline.min_records", "5"). Unknown keys are rejected.
	Set(key, value string) error

	// Unset restores a single setting to its default.
	Unset(key string) error

	// Keys returns all recognised setting keys.
	Keys() []string

	// Validate checks the current settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
