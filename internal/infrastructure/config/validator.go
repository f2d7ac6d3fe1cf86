package config

import "fmt"

// Validate checks a loaded profile for mistakes that would otherwise
// surface as confusing panel behavior. It does not check that plugin
// types exist; unknown types are a load-time concern.
func (p *Profile) Validate() error {
	if p.Refresh <= 0 {
		return fmt.Errorf("refresh interval must be positive")
	}
	for i, entry := range p.Plugins {
		if entry.Type == "" {
			return fmt.Errorf("plugin %d has no type", i+1)
		}
		if entry.Padding < 0 {
			return fmt.Errorf("plugin %d (%s): padding cannot be negative", i+1, entry.Type)
		}
		if entry.Border < 0 {
			return fmt.Errorf("plugin %d (%s): border cannot be negative", i+1, entry.Type)
		}
	}
	return nil
}
