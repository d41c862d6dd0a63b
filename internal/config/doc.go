// Package config provides centralized configuration management for the
// grahabala scoring engine. It handles loading configuration from multiple
// sources, validation, and a type-safe view of every tunable the engine
// exposes.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. An optional YAML overlay file
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern GRAHA_* for namespacing and
// compose section and field names:
//
//	GRAHA_SCORING_HOUSE_SCALE=2.6
//	GRAHA_SCORING_BATCH_CONCURRENCY=8
//	GRAHA_LOGGING_LEVEL=debug
//	GRAHA_OBSERVABILITY_SAMPLE_RATIO=0.1
//
// The overlay file is named by GRAHA_CONFIG_FILE; when unset, config.yaml
// and configs/config.yaml are probed relative to the working directory.
//
// # Scoring Tunables
//
// The Scoring section carries the calibrated parameters of the strength
// model: the house baseline and spread scale, the five primary house layer
// weights, the three calibration anchors of the planet score curve, the
// soft clamp bounds, and the batch concurrency limit. These values were
// fitted against a reference corpus of charts; changing them shifts every
// score the engine produces, so Validate enforces the structural rules the
// combiners rely on (weights summing to one, anchors strictly increasing,
// ordered clamp bounds).
//
// # Usage
//
// Load configuration once at startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Tests that need a known-good baseline use config.Default() directly and
// mutate the copy they own.
package config
