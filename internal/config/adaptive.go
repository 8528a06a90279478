package config

import "os"

// Presentation resolution chain (highest priority first):
//   1. --no-color / --quiet flags
//   2. KATA_NO_COLOR / KATA_QUIET and the config file
//   3. NO_COLOR convention and terminal detection (this file)

// ApplyTerminalDefaults adjusts presentation settings to the environment the
// process runs in. Colour is disabled when NO_COLOR is set or stderr is not a
// terminal. It never re-enables a setting the user turned off.
func ApplyTerminalDefaults(cfg AppConfig, stderrIsTerminal bool) AppConfig {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}
	if !stderrIsTerminal {
		cfg.NoColor = true
	}
	return cfg
}
