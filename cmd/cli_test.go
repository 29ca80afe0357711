package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sessionFixture = `{
  "gridX": 10,
  "gridY": 10,
  "totalSteps": 3,
  "trucks": [
    {"id": 1, "pos": [4, 4], "load": 0},
    {"id": 0, "pos": [0, 0], "load": 950}
  ],
  "containers": [
    {"pos": [2, 3], "fill": 80},
    {"pos": [7, 7], "fill": 10}
  ]
}`

type fakeSimulation struct {
	mu      sync.Mutex
	resets  int
	clockT  int
	polls   map[int]int
	session string
}

func newFakeSimulation(t *testing.T) (*fakeSimulation, *httptest.Server) {
	t.Helper()

	sim := &fakeSimulation{polls: map[int]int{}, session: sessionFixture}
	mux := http.NewServeMux()
	mux.HandleFunc("/simulation/reset", func(w http.ResponseWriter, r *http.Request) {
		sim.mu.Lock()
		defer sim.mu.Unlock()
		sim.resets++
		sim.clockT = 0
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/session", func(w http.ResponseWriter, r *http.Request) {
		sim.mu.Lock()
		defer sim.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sim.session))
	})
	mux.HandleFunc("/step/next", func(w http.ResponseWriter, r *http.Request) {
		sim.mu.Lock()
		defer sim.mu.Unlock()

		id, err := strconv.Atoi(r.URL.Query().Get("robot_id"))
		if err != nil {
			http.Error(w, "bad robot_id", http.StatusBadRequest)
			return
		}
		sim.polls[id]++

		if id != 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		sim.clockT++
		done := sim.clockT >= 3
		_, _ = fmt.Fprintf(w, `{"t":%d,"x":%d,"y":0,"carrying":960,"action":"collect","done":%t}`, sim.clockT, sim.clockT, done)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return sim, server
}

func TestRunPlainSynchronizesUntilClockAgentIsDone(t *testing.T) {
	home := t.TempDir()
	sim, server := newFakeSimulation(t)

	stdout, _, err := executeCLI(t, home, "run", "--plain", "--base-url", server.URL, "--interval", "1ms")
	require.NoError(t, err)

	assert.Contains(t, stdout, "placed agent 0 at (0,0)")
	assert.Contains(t, stdout, "placed agent 1 at (4,4)")
	assert.Contains(t, stdout, "placed container 0 at (2,3) fill 80")
	assert.Contains(t, stdout, "agent 0 moved to (1,0)")
	assert.Contains(t, stdout, "step 1/3")
	assert.Contains(t, stdout, "step 3/3")
	assert.Contains(t, stdout, "simulation completed at step 3/3")
	assert.NotContains(t, stdout, "agent 1 moved")
	assert.Contains(t, stdout, "phase: ended")
	assert.Contains(t, stdout, "[completed]")

	sim.mu.Lock()
	defer sim.mu.Unlock()
	assert.Equal(t, 1, sim.resets)
	assert.Equal(t, 3, sim.polls[0])
	assert.Equal(t, 2, sim.polls[1])
}

func TestRunPlainQuietPrintsProgressOnly(t *testing.T) {
	home := t.TempDir()
	_, server := newFakeSimulation(t)

	stdout, _, err := executeCLI(t, home, "run", "--plain", "--quiet", "--no-reset", "--base-url", server.URL, "--interval", "1ms")
	require.NoError(t, err)
	assert.Equal(t, "step 1/3\nstep 2/3\nstep 3/3\nsimulation completed at step 3/3\n", stdout)
}

func TestRunFailsWhenSessionCannotBeFetched(t *testing.T) {
	home := t.TempDir()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	_, _, err := executeCLI(t, home, "run", "--plain", "--base-url", server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bootstrap failed")
}

func TestRunFailsWhenClockAgentIsMissing(t *testing.T) {
	home := t.TempDir()
	_, server := newFakeSimulation(t)

	_, _, err := executeCLI(t, home, "run", "--plain", "--base-url", server.URL, "--clock-agent", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clock agent")
}

func TestSessionJSONOutput(t *testing.T) {
	home := t.TempDir()
	sim, server := newFakeSimulation(t)

	stdout, _, err := executeCLI(t, home, "session", "--json", "--no-reset", "--base-url", server.URL)
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))

	var view sessionView
	require.NoError(t, json.Unmarshal([]byte(stdout), &view))
	assert.Equal(t, 10, view.GridWidth)
	assert.Equal(t, 3, view.TotalSteps)
	require.Len(t, view.Agents, 2)
	assert.Equal(t, 0, view.Agents[0].ID)
	assert.Equal(t, "full", view.Agents[0].Status)
	assert.Equal(t, "overflowing", view.Containers[0].Status)
	assert.Equal(t, "normal", view.Containers[1].Status)

	sim.mu.Lock()
	defer sim.mu.Unlock()
	assert.Equal(t, 0, sim.resets)
}

func TestSessionYAMLOutput(t *testing.T) {
	home := t.TempDir()
	_, server := newFakeSimulation(t)

	stdout, _, err := executeCLI(t, home, "session", "--yaml", "--base-url", server.URL)
	require.NoError(t, err)

	var view sessionView
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &view))
	assert.Equal(t, 10, view.GridHeight)
	require.Len(t, view.Containers, 2)
	assert.Equal(t, 80, view.Containers[0].Fill)
	assert.Contains(t, stdout, "total_steps: 3")
}

func TestSessionRejectsJSONAndYAMLTogether(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "session", "--json", "--yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestSessionTextOutput(t *testing.T) {
	home := t.TempDir()
	_, server := newFakeSimulation(t)

	stdout, _, err := executeCLI(t, home, "session", "--base-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, stdout, "grid: 10x10")
	assert.Contains(t, stdout, "total steps: 3")
	assert.Contains(t, stdout, "agent 1 at (4,4) load 0 empty")
	assert.Contains(t, stdout, "container 0 at (2,3) fill 80 overflowing")
}

func TestStepCommand(t *testing.T) {
	home := t.TempDir()
	_, server := newFakeSimulation(t)

	stdout, _, err := executeCLI(t, home, "step", "--agent", "0", "--base-url", server.URL)
	require.NoError(t, err)
	assert.Equal(t, "agent 0: t=1 at (1,0) carrying 960 action collect\n", stdout)

	stdout, _, err = executeCLI(t, home, "step", "--agent", "1", "--base-url", server.URL)
	require.NoError(t, err)
	assert.Equal(t, "agent 1: no step available\n", stdout)

	stdout, _, err = executeCLI(t, home, "step", "--agent", "0", "--json", "--base-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"t\": 2")
	assert.Contains(t, stdout, "\"available\": true")
}

func TestStepRequiresAgentFlag(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "step")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"agent\" not set")
}

func TestStepReportsTransportFailure(t *testing.T) {
	home := t.TempDir()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	_, _, err := executeCLI(t, home, "step", "--agent", "2", "--base-url", server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poll agent 2")
	assert.Contains(t, err.Error(), "502")
}

func TestResetCommand(t *testing.T) {
	home := t.TempDir()
	sim, server := newFakeSimulation(t)

	stdout, _, err := executeCLI(t, home, "reset", "--base-url", server.URL)
	require.NoError(t, err)
	assert.Equal(t, "simulation reset\n", stdout)

	sim.mu.Lock()
	defer sim.mu.Unlock()
	assert.Equal(t, 1, sim.resets)
}

func TestConfigInitWritesFileOnce(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "init", "--base-url", "http://sim.local:9000", "--clock-agent", "2")
	require.NoError(t, err)

	path := filepath.Join(home, ".simsync", "config.toml")
	assert.Equal(t, "wrote "+path+"\n", stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "http://sim.local:9000")
	assert.Contains(t, string(data), "clock_agent_id = 2")

	_, _, err = executeCLI(t, home, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = executeCLI(t, home, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigShowUsesFileAndFlags(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, `
[api]
base_url = "http://from-file:8000"

[sync]
diagnostic_every = 7
`))

	stdout, _, err := executeCLI(t, home, "config", "show", "--interval", "2s")
	require.NoError(t, err)
	assert.Contains(t, stdout, "http://from-file:8000")
	assert.Contains(t, stdout, "diagnostic_every = 7")
	assert.Contains(t, stdout, "2s")
}

func TestInvalidConfigFailsBeforeCommandRuns(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, `
[display]
truck_capacity = 0
`))

	_, _, err := executeCLI(t, home, "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.truck_capacity")
}

func TestZeroIntervalIsRejected(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "config", "show", "--interval", "0s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync.round_interval")
}

func TestVersionSkipsConfig(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, "not = [valid"))

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfigFixture(home, contents string) error {
	configDir := filepath.Join(home, ".simsync")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(contents), 0o644)
}
