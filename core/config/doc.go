// Package config provides configuration management for the comparator.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags on each
// section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Compare: comparison run defaults (delimiter, search budget, workers,
//     punctuation normalization, encoding fallback list)
//   - Report: output folder and file size warning threshold
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Compare.Delimiter)
package config
