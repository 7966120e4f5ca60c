// Package config loads the optional settings file that tunes how examples
// are harvested.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/apparentlymart/text2rasa/harvest"
	"gopkg.in/yaml.v3"
)

// Config holds the settings that can be given in a YAML settings file.
type Config struct {
	// IncludePronouns allows lone pronouns such as "I" to become utterances.
	IncludePronouns bool `yaml:"include_pronouns"`

	// IncludeSentences adds each whole sentence as an utterance too.
	IncludeSentences bool `yaml:"include_sentences"`

	// SkipPhrases are never added as utterances, regardless of case.
	SkipPhrases []string `yaml:"skip_phrases"`

	// MediaType overrides format detection for the input file, as if it
	// had been given with --media-type.
	MediaType string `yaml:"media_type"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		IncludePronouns: true,
	}
}

// Load reads settings from the given YAML file, with any settings it
// doesn't mention taking their default values. An empty filename returns
// the defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(cfg)
	if err == io.EOF {
		// An empty file just means no overrides.
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", filename, err)
	}
	return cfg, nil
}

// HarvestOptions returns the subset of the settings that harvest.Harvest
// understands.
func (c *Config) HarvestOptions() harvest.Options {
	return harvest.Options{
		IncludeSentences: c.IncludeSentences,
		SkipPhrases:      c.SkipPhrases,
	}
}
