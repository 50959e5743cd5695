package config

// Default returns the repository default configuration. Paths are expanded
// during Load's normalize step, not here.
func Default() Config {
	return Config{
		DatabasePath: "~/.local/share/harmonia/settings.db",
		SettingsFile: "",
		LogLevel:     "info",
		LogFormat:    "console",
	}
}
