// Package config provides the configuration system for pdfsketch.
//
// Configuration is resolved from several sources, higher sources
// overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← PDFSKETCH_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← .toml, .yaml or .yml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Command line flags are applied by the caller; this package handles the
// other three layers plus validation and live reload.
//
// # Basic Usage
//
//	cfg, err := config.Load("pdfsketch.toml")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// # Live Reload
//
// Watcher monitors the config file with fsnotify and hands every
// successfully or unsuccessfully reloaded configuration to a handler:
//
//	w, err := config.NewWatcher(path, func(cfg *config.Config, err error) {
//	    // apply cfg
//	})
//	defer w.Close()
package config
