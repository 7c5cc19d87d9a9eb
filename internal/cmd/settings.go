package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/renato0307/termdock/internal/config"
	"github.com/renato0307/termdock/internal/theme"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table, json or toml" enum:"table,json,toml" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	switch s.Format {
	case formatJSON:
		return writeJSON(os.Stdout, map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	case formatTOML:
		return writeTOML(os.Stdout, map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	t := newTable("KEY", "EXAMPLE")
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		t.Row(key, valueStr)
	}
	fmt.Println(t.Render())

	fmt.Println()
	fmt.Println(theme.MutedStyle.Render("Create or edit this file to configure termdock."))
	fmt.Println(theme.MutedStyle.Render("All settings are optional and have sensible defaults."))

	return nil
}
