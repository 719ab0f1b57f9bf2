package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mistweaverco/jokester/internal/lib/files"
	"github.com/mistweaverco/jokester/internal/lib/jokeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("JOKESTER_HOME", home)
	t.Setenv("JOKESTER_API_URL", "")
	files.ResetDependencies()
	return home
}

func TestConfig(t *testing.T) {
	t.Run("new config creation", func(t *testing.T) {
		flags := ConfigFlags{
			Version: true,
			Timeout: 5 * time.Second,
		}
		cfg := NewConfig(Config{Flags: flags})

		assert.Equal(t, true, cfg.Flags.Version)
		assert.Equal(t, 5*time.Second, cfg.Flags.Timeout)
	})

	t.Run("get config flags", func(t *testing.T) {
		cfg := Config{Flags: ConfigFlags{APIURL: "http://localhost"}}
		assert.Equal(t, "http://localhost", cfg.GetConfigFlags().APIURL)
	})

	t.Run("defaults", func(t *testing.T) {
		d := Defaults()
		assert.Equal(t, jokeapi.DefaultURL, d.APIURL)
		assert.Equal(t, time.Duration(0), d.Timeout)
		assert.Equal(t, ColorModeAuto, d.Color)
		assert.Equal(t, OutputModeRich, d.Output)
	})
}

func TestColorMode(t *testing.T) {
	var c ColorMode
	assert.Equal(t, "auto", c.String())
	require.NoError(t, c.Set("never"))
	assert.Equal(t, ColorModeNever, c)
	assert.Error(t, c.Set("sometimes"))
	assert.Equal(t, "string", c.Type())
}

func TestOutputMode(t *testing.T) {
	var o OutputMode
	assert.Equal(t, "rich", o.String())
	require.NoError(t, o.Set("json"))
	assert.Equal(t, OutputModeJSON, o)
	assert.Error(t, o.Set("xml"))
}

func TestMerge(t *testing.T) {
	set := ConfigFlags{APIURL: "http://flag"}
	fallback := ConfigFlags{APIURL: "http://file", Timeout: time.Second, Color: ColorModeNever}

	merged := set.Merge(fallback)
	assert.Equal(t, "http://flag", merged.APIURL)
	assert.Equal(t, time.Second, merged.Timeout)
	assert.Equal(t, ColorModeNever, merged.Color)
	assert.Equal(t, OutputMode(""), merged.Output)

	explicitZero := ConfigFlags{TimeoutSet: true}.Merge(fallback)
	assert.Zero(t, explicitZero.Timeout)
	assert.True(t, explicitZero.TimeoutSet)
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file yields empty flags", func(t *testing.T) {
		home := useTempHome(t)
		flags, err := LoadFile(filepath.Join(home, "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, ConfigFlags{}, flags)
	})

	t.Run("valid file", func(t *testing.T) {
		home := useTempHome(t)
		path := filepath.Join(home, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api_url: http://mirror\ntimeout: 3s\ncolor: never\noutput: plain\n"), 0644))

		flags, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "http://mirror", flags.APIURL)
		assert.Equal(t, 3*time.Second, flags.Timeout)
		assert.Equal(t, ColorModeNever, flags.Color)
		assert.Equal(t, OutputModePlain, flags.Output)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		home := useTempHome(t)
		path := filepath.Join(home, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api_url: [unterminated"), 0644))

		_, err := LoadFile(path)
		assert.ErrorContains(t, err, "error decoding config file")
	})

	t.Run("invalid value", func(t *testing.T) {
		home := useTempHome(t)
		path := filepath.Join(home, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("color: rainbow\n"), 0644))

		_, err := LoadFile(path)
		assert.ErrorContains(t, err, "invalid color mode")
	})
}

func TestSaveFileRoundTrip(t *testing.T) {
	home := useTempHome(t)
	path := filepath.Join(home, "nested", "config.yaml")

	want := ConfigFlags{APIURL: "http://mirror", Timeout: 2 * time.Second, TimeoutSet: true, Color: ColorModeAlways, Output: OutputModeJSON}
	require.NoError(t, SaveFile(path, want))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolvePrecedence(t *testing.T) {
	home := useTempHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("api_url: http://file\ncolor: never\n"), 0644))

	t.Run("file over defaults", func(t *testing.T) {
		flags, err := Resolve(ConfigFlags{})
		require.NoError(t, err)
		assert.Equal(t, "http://file", flags.APIURL)
		assert.Equal(t, ColorModeNever, flags.Color)
		assert.Equal(t, OutputModeRich, flags.Output)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("JOKESTER_API_URL", "http://env")
		flags, err := Resolve(ConfigFlags{})
		require.NoError(t, err)
		assert.Equal(t, "http://env", flags.APIURL)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("JOKESTER_API_URL", "http://env")
		flags, err := Resolve(ConfigFlags{APIURL: "http://flag", Color: ColorModeAlways})
		require.NoError(t, err)
		assert.Equal(t, "http://flag", flags.APIURL)
		assert.Equal(t, ColorModeAlways, flags.Color)
	})

	t.Run("timeout from file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("timeout: 5s\n"), 0644))
		flags, err := Resolve(ConfigFlags{})
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, flags.Timeout)
	})

	t.Run("explicit zero timeout over file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("timeout: 5s\n"), 0644))
		flags, err := Resolve(ConfigFlags{Timeout: 0, TimeoutSet: true})
		require.NoError(t, err)
		assert.Zero(t, flags.Timeout)
	})
}
