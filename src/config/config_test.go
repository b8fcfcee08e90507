package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
	assert.Equal(t, DefaultTitlePrefix, cfg.TitlePrefix)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("JTOPPLOT_LOG_LEVEL", "debug")
	t.Setenv("JTOPPLOT_WIDTH", "1200")
	t.Setenv("JTOPPLOT_HEIGHT", "900")
	t.Setenv("JTOPPLOT_TITLE_PREFIX", "Bench run")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 900, cfg.Height)
	assert.Equal(t, "Bench run", cfg.TitlePrefix)
}

func TestLoad_RejectsSmallGeometry(t *testing.T) {
	t.Setenv("JTOPPLOT_HEIGHT", "300")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid height 300")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{Width: DefaultWidth, Height: DefaultHeight}, false},
		{"narrow", Config{Width: 100, Height: DefaultHeight}, true},
		{"short", Config{Width: DefaultWidth, Height: 7 * MinPanelHeight}, true},
		{"minimum", Config{Width: MinWidth, Height: 7*MinPanelHeight + 80}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
