package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/apparentlymart/text2rasa/harvest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "text2rasa.yaml")
	require.NoError(t, ioutil.WriteFile(filename, []byte(src), 0644))
	return filename
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.IncludePronouns)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	filename := writeConfig(t, `
include_pronouns: false
include_sentences: true
skip_phrases:
  - I
  - you
media_type: text/markdown
`)

	cfg, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		IncludePronouns:  false,
		IncludeSentences: true,
		SkipPhrases:      []string{"I", "you"},
		MediaType:        "text/markdown",
	}, cfg)
	assert.Equal(t, harvest.Options{
		IncludeSentences: true,
		SkipPhrases:      []string{"I", "you"},
	}, cfg.HarvestOptions())
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	filename := writeConfig(t, "include_sentences: true\n")

	cfg, err := Load(filename)
	require.NoError(t, err)
	assert.True(t, cfg.IncludePronouns)
	assert.True(t, cfg.IncludeSentences)
}

func TestLoad_UnknownKey(t *testing.T) {
	filename := writeConfig(t, "include_nouns: true\n")

	_, err := Load(filename)
	assert.Error(t, err)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
