// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	f, err := Load(writeConfig(t, "capacity_words: 128\nprint_rate: 1024\nquiet: true\n"))
	require.NoError(t, err)
	require.NotNil(t, f.CapacityWords)
	require.Equal(t, 128, *f.CapacityWords)
	require.Nil(t, f.HeadroomWords)
	require.NotNil(t, f.PrintRate)
	require.Equal(t, uint64(1024), *f.PrintRate)
	require.NotNil(t, f.Quiet)
	require.True(t, *f.Quiet)
}

func TestLoadEmpty(t *testing.T) {
	f, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.Nil(t, f.CapacityWords)
	require.Nil(t, f.Quiet)
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"unknown key", "capacity_words: 1\nspeed: fast\n"},
		{"wrong type", "capacity_words: lots\n"},
		{"not yaml", "{{{{\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			require.Error(t, err)
			require.True(t, ErrConfig.Has(err))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.True(t, ErrConfig.Has(err))
}
