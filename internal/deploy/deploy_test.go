package deploy

import (
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/jon4hz/cookbook/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell commands not available on windows")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found")
	}
}

func TestNew_Disabled(t *testing.T) {
	assert.Nil(t, New(nil))
	assert.Nil(t, New(&config.WebhookConfig{Enabled: false, Commands: [][]string{{"true"}}}))
}

func TestRefresh_CollectsOutput(t *testing.T) {
	requireShell(t)

	r := New(&config.WebhookConfig{
		Enabled: true,
		WorkDir: t.TempDir(),
		Commands: [][]string{
			{"sh", "-c", "echo pulled"},
			{"sh", "-c", "echo chmod done"},
		},
	})
	require.NotNil(t, r)

	out, err := r.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pulled\nchmod done\n", out)
}

func TestRefresh_StopsOnFailure(t *testing.T) {
	requireShell(t)

	r := New(&config.WebhookConfig{
		Enabled: true,
		Commands: [][]string{
			{"sh", "-c", "echo first; exit 3"},
			{"sh", "-c", "echo never"},
		},
	})

	out, err := r.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, "first\n", out)
}
