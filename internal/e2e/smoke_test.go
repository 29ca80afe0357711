package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	server := newSimulationServer(t, http.StatusOK)

	stdout, stderr, err := runSimsync(t, binaryPath, home, "session", "--json", "--base-url", server.URL)
	require.NoError(t, err, "stderr: %s", stderr)

	var session map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &session))
	assert.EqualValues(t, 2, session["total_steps"])

	stdout, stderr, err = runSimsync(t, binaryPath, home, "run", "--plain", "--quiet", "--interval", "1ms", "--base-url", server.URL)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "simulation completed at step 2/2")
}

func TestMachineOutputStaysCleanWithoutLogLevel(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	server := newSimulationServer(t, http.StatusInternalServerError)

	stdout, stderr, err := runSimsync(t, binaryPath, home, "session", "--json", "--base-url", server.URL)
	require.NoError(t, err, "stderr: %s", stderr)

	var session map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &session), "stdout: %s", stdout)
	assert.EqualValues(t, 2, session["total_steps"])

	stdout, stderr, err = runSimsync(t, binaryPath, home, "step", "--agent", "0", "--json", "--base-url", server.URL)
	require.NoError(t, err, "stderr: %s", stderr)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &record), "stdout: %s", stdout)
}

func TestLogLevelFlagRoutesLogsToStdout(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	server := newSimulationServer(t, http.StatusInternalServerError)

	stdout, stderr, err := runSimsync(t, binaryPath, home, "session", "--log-level", "warn", "--base-url", server.URL)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "simulation reset failed")
}

func newSimulationServer(t *testing.T, resetStatus int) *httptest.Server {
	t.Helper()

	var (
		mu     sync.Mutex
		clockT int
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/simulation/reset", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		clockT = 0
		mu.Unlock()
		if resetStatus != http.StatusOK {
			http.Error(w, "reset unavailable", resetStatus)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/session", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"gridX":5,"gridY":5,"totalSteps":2,"trucks":[{"id":0,"pos":[0,0],"load":0}],"containers":[]}`))
	})
	mux.HandleFunc("/step/next", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		clockT++
		_, _ = fmt.Fprintf(w, `{"t":%d,"x":%d,"y":0,"carrying":0,"action":"move","done":%t}`, clockT, clockT, clockT >= 2)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "simsync-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/simsync")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build simsync binary: %s", string(output))
	return binaryPath
}

func runSimsync(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(cleanEnv(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// cleanEnv drops the caller's logging variables so the binary runs with its
// own defaults.
func cleanEnv() []string {
	env := make([]string, 0, len(os.Environ()))
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "LOG_LEVEL=") || strings.HasPrefix(kv, "LOG_FORMAT=") || strings.HasPrefix(kv, "SIMSYNC_") {
			continue
		}
		env = append(env, kv)
	}
	return env
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
