package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AmalFalah/expense-tracker/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name    string
		viperV  string
		envV    string
		want    string
		wantErr bool
	}{
		{
			name: "default when nothing configured",
			want: DefaultBaseURL,
		},
		{
			name:   "viper takes precedence",
			viperV: "https://expenses.example.com",
			envV:   "http://ignored:9999",
			want:   "https://expenses.example.com",
		},
		{
			name: "environment fallback",
			envV: "http://backend:8002",
			want: "http://backend:8002",
		},
		{
			name:   "trailing slash trimmed",
			viperV: "http://localhost:8002/",
			want:   "http://localhost:8002",
		},
		{
			name:    "invalid scheme rejected",
			viperV:  "ftp://somewhere",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			if tt.viperV != "" {
				viper.Set("api.base_url", tt.viperV)
			}
			t.Setenv("EXPENSE_TRACKER_URL", tt.envV)

			cfg, err := LoadAPIConfig()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.BaseURL)
		})
	}
}

func TestValidate_SentinelErrors(t *testing.T) {
	missing := &API{}
	assert.ErrorIs(t, missing.Validate(), common.ErrMissingConfig)

	badScheme := &API{BaseURL: "ftp://somewhere"}
	assert.ErrorIs(t, badScheme.Validate(), common.ErrInvalidConfig)

	ok := &API{BaseURL: "https://expenses.example.com"}
	assert.NoError(t, ok.Validate())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config"), ExpandPath("~/.config"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Empty(t, ExpandPath(""))

	t.Setenv("SPEND_TEST_DIR", "/tmp/spend")
	assert.Equal(t, "/tmp/spend/session.json", ExpandPath("$SPEND_TEST_DIR/session.json"))
}

func TestSessionPath(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	assert.Empty(t, SessionPath())

	viper.Set("session.file", "/tmp/spend-state.json")
	assert.Equal(t, "/tmp/spend-state.json", SessionPath())
}
