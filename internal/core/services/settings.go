package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driven"
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyRetainFields      = "pipeline.retain_fields"
	keyTargetDepartments = "pipeline.target_departments"
	keyMinRecords        = "pipeline.min_records"
	keyURLBase           = "pipeline.url_base"
	keyMultiValueMode    = "pipeline.multi_value_mode"
	keyInputPath         = "paths.input"
	keyIndexPath         = "paths.index"
	keyQuizSeed          = "quiz.seed"
	keyMuseumEnabled     = "museum.enabled"
	keyMuseumRateLimit   = "museum.rate_limit"
	keyMuseumTimeout     = "museum.timeout_seconds"
)

// settingKeys lists every recognised key in display order.
var settingKeys = []string{
	keyRetainFields,
	keyTargetDepartments,
	keyMinRecords,
	keyURLBase,
	keyMultiValueMode,
	keyInputPath,
	keyIndexPath,
	keyQuizSeed,
	keyMuseumEnabled,
	keyMuseumRateLimit,
	keyMuseumTimeout,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings. Missing or malformed values
// fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Pipeline: domain.PipelineSettings{
			RetainFields:      s.getStringSlice(keyRetainFields, defaults.Pipeline.RetainFields),
			TargetDepartments: s.getStringSlice(keyTargetDepartments, defaults.Pipeline.TargetDepartments),
			MinRecords:        s.getInt(keyMinRecords, defaults.Pipeline.MinRecords),
			URLBase:           s.getString(keyURLBase, defaults.Pipeline.URLBase),
			MultiValueMode:    s.getMultiValueMode(defaults.Pipeline.MultiValueMode),
		},
		Paths: domain.PathSettings{
			Input: s.getString(keyInputPath, defaults.Paths.Input),
			Index: s.getString(keyIndexPath, defaults.Paths.Index),
		},
		Museum: domain.MuseumSettings{
			Enabled:   s.getBool(keyMuseumEnabled, defaults.Museum.Enabled),
			RateLimit: s.getFloat(keyMuseumRateLimit, defaults.Museum.RateLimit),
			Timeout:   time.Duration(s.getInt(keyMuseumTimeout, int(defaults.Museum.Timeout/time.Second))) * time.Second,
		},
	}

	if _, ok := s.configStore.Get(keyQuizSeed); ok {
		settings.Quiz = domain.QuizSettings{
			Seed:   uint64(s.configStore.GetInt(keyQuizSeed)),
			Seeded: true,
		}
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyRetainFields, settings.Pipeline.RetainFields},
		{keyTargetDepartments, settings.Pipeline.TargetDepartments},
		{keyMinRecords, settings.Pipeline.MinRecords},
		{keyURLBase, settings.Pipeline.URLBase},
		{keyMultiValueMode, settings.Pipeline.MultiValueMode.String()},
		{keyInputPath, settings.Paths.Input},
		{keyIndexPath, settings.Paths.Index},
		{keyMuseumEnabled, settings.Museum.Enabled},
		{keyMuseumRateLimit, settings.Museum.RateLimit},
		{keyMuseumTimeout, int(settings.Museum.Timeout / time.Second)},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	if settings.Quiz.Seeded {
		if err := s.configStore.Set(keyQuizSeed, int64(settings.Quiz.Seed)); err != nil {
			return fmt.Errorf("save %s: %w", keyQuizSeed, err)
		}
	} else if err := s.configStore.Delete(keyQuizSeed); err != nil {
		return fmt.Errorf("clear %s: %w", keyQuizSeed, err)
	}

	return nil
}

// Set parses value for key and stores it. Lists are comma separated.
//
//nolint:gocyclo // one case per setting key
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var parsed any
	switch key {
	case keyRetainFields, keyTargetDepartments:
		list := splitList(value)
		if len(list) == 0 {
			return fmt.Errorf("%w: %s needs at least one value", domain.ErrInvalidInput, key)
		}
		parsed = list

	case keyMinRecords, keyMuseumTimeout:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = n

	case keyQuizSeed:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = n

	case keyMuseumRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%w: %s must be a positive number, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = f

	case keyMuseumEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = b

	case keyMultiValueMode:
		if !domain.MultiValueMode(value).IsValid() {
			return fmt.Errorf("%w: unknown multi-value mode %q", domain.ErrInvalidInput, value)
		}
		parsed = value

	case keyURLBase, keyInputPath, keyIndexPath:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
		parsed = value

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Unset restores key to its default.
func (s *SettingsService) Unset(key string) error {
	if !isSettingKey(key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	return s.configStore.Delete(key)
}

// Keys returns all recognised setting keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func isSettingKey(key string) bool {
	for _, k := range settingKeys {
		if k == key {
			return true
		}
	}
	return false
}

func splitList(value string) []string {
	var list []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getMultiValueMode(defaultVal domain.MultiValueMode) domain.MultiValueMode {
	val := s.configStore.GetString(keyMultiValueMode)
	if val == "" {
		return defaultVal
	}
	mode := domain.MultiValueMode(val)
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}
