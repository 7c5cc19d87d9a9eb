package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/termdock/internal/domain"
)

// Manual order backends
const (
	OrderBackendBolt   = "bolt"
	OrderBackendSQLite = "sqlite"
)

// Settings represents the structure of ~/.termdock/settings.json
type Settings struct {
	CurrentWorkspace string      `json:"current_workspace,omitempty"`
	Debug            *bool       `json:"debug,omitempty"`
	DefaultSortBy    string      `json:"default_sort_by,omitempty"`
	DefaultSortOrder string      `json:"default_sort_order,omitempty"`
	DefaultTemplates StringArray `json:"default_templates,omitempty"`
	MaxLogFiles      *int        `json:"max_log_files,omitempty"`
	OrderBackend     string      `json:"order_backend,omitempty"`
}

// Validate rejects values the list commands cannot use
func (s *Settings) Validate() error {
	switch s.OrderBackend {
	case "", OrderBackendSQLite, OrderBackendBolt:
	default:
		return fmt.Errorf("invalid order_backend %q (expected %s or %s)", s.OrderBackend, OrderBackendSQLite, OrderBackendBolt)
	}
	switch domain.SortBy(s.DefaultSortBy) {
	case "", domain.SortByCreated, domain.SortByStatus, domain.SortByTitle:
	default:
		return fmt.Errorf("invalid default_sort_by %q", s.DefaultSortBy)
	}
	switch domain.SortOrder(s.DefaultSortOrder) {
	case "", domain.SortAsc, domain.SortDesc:
	default:
		return fmt.Errorf("invalid default_sort_order %q", s.DefaultSortOrder)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files must not be negative")
	}
	return nil
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $TERMDOCK_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $TERMDOCK_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
