package configs

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDuration(t *testing.T) {
	t.Setenv("REMOTE_TIMEOUT", "3s")
	assert.Equal(t, 3*time.Second, getDuration("REMOTE_TIMEOUT", time.Second))

	t.Setenv("REMOTE_TIMEOUT", "soon")
	assert.Equal(t, time.Second, getDuration("REMOTE_TIMEOUT", time.Second))

	t.Setenv("REMOTE_TIMEOUT", "")
	assert.Equal(t, time.Second, getDuration("REMOTE_TIMEOUT", time.Second))
}

func TestLoadEnvFallbacks(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("SYNC_NAMESPACE", "")
	t.Setenv("LOCAL_STORE_DIR", "")
	t.Setenv("DB_NAME", "shop")

	env := LoadEnv()
	assert.Equal(t, "8080", env.Port)
	assert.Equal(t, "figurine", env.SyncNamespace)
	assert.Equal(t, "./data", env.LocalStoreDir)
	assert.Equal(t, 10*time.Second, env.RemoteTimeout)
	assert.Contains(t, env.DSN(), "/shop?")
	assert.Contains(t, env.DSN(), "clientFoundRows=true")
}

func TestGenerateAndLoadSessionKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.new_keys")
	var out bytes.Buffer
	require.NoError(t, GenerateSessionKeys(&out, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var env ENV
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		require.True(t, ok)
		switch key {
		case "APP_AUTH_KEY":
			env.AppAuthKey = value
		case "APP_ENC_KEY":
			env.AppEncKey = value
		}
	}

	keys, err := LoadSessionKeys(env)
	require.NoError(t, err)
	assert.Len(t, keys.AuthKey, 64)
	assert.Len(t, keys.EncKey, 32)
}

func TestLoadSessionKeysMissing(t *testing.T) {
	_, err := LoadSessionKeys(ENV{})
	assert.Error(t, err)
}
