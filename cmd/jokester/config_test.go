package jokester

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mistweaverco/jokester/internal/config"
	"github.com/mistweaverco/jokester/internal/lib/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("JOKESTER_HOME", home)
	files.ResetDependencies()
	return home
}

func TestConfigCommandStructure(t *testing.T) {
	names := []string{}
	for _, c := range configCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"show", "path", "init"}, names)
}

func TestConfigShow(t *testing.T) {
	stubResolve(t, config.ConfigFlags{
		APIURL:  "http://mirror/joke",
		Timeout: 5 * time.Second,
		Color:   config.ColorModeAuto,
		Output:  config.OutputModeRich,
	}, nil)

	var out bytes.Buffer
	configShowCmd.SetOut(&out)
	defer configShowCmd.SetOut(nil)

	require.NoError(t, configShowCmd.RunE(configShowCmd, []string{}))
	assert.Contains(t, out.String(), "api_url: http://mirror/joke")
	assert.Contains(t, out.String(), "timeout: 5s")
	assert.Contains(t, out.String(), "color: auto")
}

func TestConfigPath(t *testing.T) {
	home := useTempHome(t)

	var out bytes.Buffer
	configPathCmd.SetOut(&out)
	defer configPathCmd.SetOut(nil)

	require.NoError(t, configPathCmd.RunE(configPathCmd, []string{}))
	assert.Equal(t, filepath.Join(home, "config.yaml")+"\n", out.String())
}

func TestConfigInit(t *testing.T) {
	prevAsk := askConfigFn
	defer func() { askConfigFn = prevAsk }()

	t.Run("writes answers to the config file", func(t *testing.T) {
		home := useTempHome(t)
		stubResolve(t, config.Defaults(), nil)
		askConfigFn = func(current config.ConfigFlags) (config.ConfigFlags, error) {
			current.APIURL = "http://mirror/joke"
			current.Color = config.ColorModeNever
			return current, nil
		}

		var out bytes.Buffer
		configInitCmd.SetOut(&out)
		defer configInitCmd.SetOut(nil)

		require.NoError(t, configInitCmd.RunE(configInitCmd, []string{}))
		assert.Contains(t, out.String(), "Wrote")

		saved, err := config.LoadFile(filepath.Join(home, "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "http://mirror/joke", saved.APIURL)
		assert.Equal(t, config.ColorModeNever, saved.Color)
	})

	t.Run("aborted form writes nothing", func(t *testing.T) {
		home := useTempHome(t)
		stubResolve(t, config.Defaults(), nil)
		askConfigFn = func(current config.ConfigFlags) (config.ConfigFlags, error) {
			return current, errors.New("user aborted")
		}

		err := configInitCmd.RunE(configInitCmd, []string{})
		assert.ErrorContains(t, err, "user aborted")
		assert.False(t, files.FileExists(filepath.Join(home, "config.yaml")))
	})
}

func TestValidateTimeout(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"5s", false},
		{"1m30s", false},
		{"soon", true},
		{"-1s", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validateTimeout(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
