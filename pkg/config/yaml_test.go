package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gmi2html/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies slices", func(t *testing.T) {
		original := &config.Config{
			Extensions: []string{".gmi"},
			Ignore:     []string{"drafts/**"},
			Jobs:       4,
			DryRun:     true,
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)
		assert.Equal(t, original, clone)

		clone.Ignore[0] = "changed"
		clone.Extensions[0] = ".txt"
		assert.Equal(t, "drafts/**", original.Ignore[0])
		assert.Equal(t, ".gmi", original.Extensions[0])
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
extensions: [".gmi"]
output_dir: public
output_extension: ".htm"
close_containers: true
ignore:
  - "drafts/**"
backups:
  enabled: true
  mode: sidecar
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, []string{".gmi"}, cfg.Extensions)
	assert.Equal(t, "public", cfg.OutputDir)
	assert.Equal(t, ".htm", cfg.OutputExtension)
	assert.True(t, cfg.CloseContainers)
	assert.Equal(t, []string{"drafts/**"}, cfg.Ignore)
	assert.True(t, cfg.Backups.Enabled)
	assert.Equal(t, "sidecar", cfg.Backups.Mode)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("extensions: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestToYAML_SkipsCLIFields(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.DryRun = true
	cfg.Jobs = 8

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "output_extension:")
	assert.NotContains(t, text, "dry")
	assert.NotContains(t, text, "jobs")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Extensions, parsed.Extensions)
	assert.Zero(t, parsed.Jobs)
}

func TestBackupsEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *config.Config
		want bool
	}{
		{"nil", nil, false},
		{"defaults", config.NewConfig(), false},
		{"enabled", &config.Config{Backups: config.BackupsConfig{Enabled: true, Mode: "sidecar"}}, true},
		{"mode none", &config.Config{Backups: config.BackupsConfig{Enabled: true, Mode: "none"}}, false},
		{"no-backups flag", &config.Config{NoBackups: true, Backups: config.BackupsConfig{Enabled: true}}, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, testCase.cfg.BackupsEnabled())
		})
	}
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("minimal parses to defaults", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateOptions{})
		require.NoError(t, err)
		assert.Contains(t, string(data), "# gmi2html configuration")

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultExtensions(), cfg.Extensions)
		assert.Equal(t, config.DefaultOutputExtension, cfg.OutputExtension)
	})

	t.Run("full includes every key", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
		require.NoError(t, err)

		for _, key := range []string{"extensions:", "ignore:", "output_dir:", "close_containers:", "backups:"} {
			assert.Contains(t, string(data), key)
		}

		_, err = config.FromYAML(data)
		require.NoError(t, err)
	})
}
