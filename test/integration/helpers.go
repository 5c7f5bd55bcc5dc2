//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	BaseURL      string
	AccessToken  string
	ClientSecret string
	FortiePath   string
	Verbose      bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		BaseURL:      os.Getenv("FORTIE_BASE_URL"),
		AccessToken:  os.Getenv("FORTIE_ACCESS_TOKEN"),
		ClientSecret: os.Getenv("FORTIE_CLIENT_SECRET"),
		FortiePath:   getFortiePath(),
		Verbose:      os.Getenv("FORTIE_VERBOSE") == "true",
	}
}

// getFortiePath determines the path to the fortie binary.
func getFortiePath() string {
	if path := os.Getenv("FORTIE_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../fortie",
		"./fortie",
		"../fortie",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "fortie"
}

// SkipIfMissingConfig skips the test unless a Fortnox account is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.AccessToken == "" || config.ClientSecret == "" {
		t.Skip("FORTIE_ACCESS_TOKEN or FORTIE_CLIENT_SECRET not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.FortiePath); err != nil {
		t.Skipf("fortie binary not found at %s, skipping integration test", config.FortiePath)
	}
}

// CommandRunner runs the fortie binary against a scratch config file.
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a command runner with its own config file.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes a fortie command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a fortie command with stdin input.
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--config", runner.configFile}, args...)

	// #nosec G204 -- the binary path comes from the test environment
	cmd := exec.Command(runner.config.FortiePath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.FortiePath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// Login stores the configured credentials, verifying them against the API.
func (runner *CommandRunner) Login() error {
	if runner.config.BaseURL != "" {
		_, stderr, err := runner.Run("config", "set", "base_url", runner.config.BaseURL)
		if err != nil {
			return fmt.Errorf("failed to set base URL: %s", stderr)
		}
	}

	_, stderr, err := runner.Run("login",
		"--access-token", runner.config.AccessToken,
		"--client-secret", runner.config.ClientSecret)
	if err != nil {
		return fmt.Errorf("failed to log in: %s", stderr)
	}

	return nil
}

// GenerateTestName creates a unique test record name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// CleanupResource attempts to delete a test record.
func (runner *CommandRunner) CleanupResource(resource, id string) {
	stdout, stderr, err := runner.Run(resource, "delete", id, "--force")
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %s: %s\nStderr: %s", resource, id, stdout, stderr)
	}
}

// DecodeJSONOutput decodes command output printed with --output json.
func DecodeJSONOutput(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var decoded map[string]interface{}

	require.NoError(t, json.Unmarshal([]byte(output), &decoded), "output is not JSON: %s", output)

	return decoded
}

// AssertYAMLOutput verifies command output looks like YAML.
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if strings.Contains(output, "---") || strings.Contains(output, ":") {
		return
	}

	t.Errorf("Output does not appear to be YAML: %s", output)
}
