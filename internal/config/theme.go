package config

// Theme holds the configurable colors as ANSI/hex values understood by
// lipgloss
type Theme struct {
	Accent   string `yaml:"accent"`
	Success  string `yaml:"success"`
	Muted    string `yaml:"muted"`
	Error    string `yaml:"error"`
	Selected string `yaml:"selected"`
}

// DefaultTheme returns the default color scheme
func DefaultTheme() Theme {
	return Theme{
		Accent:   "12",
		Success:  "42",
		Muted:    "8",
		Error:    "9",
		Selected: "13",
	}
}

// applyDefaults fills in any unset colors
func (t *Theme) applyDefaults() {
	defaults := DefaultTheme()
	if t.Accent == "" {
		t.Accent = defaults.Accent
	}
	if t.Success == "" {
		t.Success = defaults.Success
	}
	if t.Muted == "" {
		t.Muted = defaults.Muted
	}
	if t.Error == "" {
		t.Error = defaults.Error
	}
	if t.Selected == "" {
		t.Selected = defaults.Selected
	}
}
