package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the campaign bundle.
// Search order: customPath -> ~/.escape/configs/campaign.yaml ->
// ./configs/campaign.yaml -> embedded default -> hardcoded default.
func Load(customPath string) (Bundle, error) {
	var b Bundle

	// A custom path is authoritative: failures there are reported, not
	// silently papered over with defaults.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return b, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &b); err != nil {
			return b, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return b, nil
	}

	if userCfgPath := userConfigPath("campaign.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &b); err == nil {
				return b, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/campaign.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &b); err == nil {
			return b, nil
		}
	}

	if err := yaml.Unmarshal(defaultCampaignYAML, &b); err != nil {
		return DefaultBundle(), nil
	}
	return b, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".escape", "configs", filename)
}
