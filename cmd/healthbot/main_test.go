package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestStartupLine(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		unsetenv(t, "ENV")
		code, out, _ := execute(t)
		assert.Equal(t, 0, code)
		assert.Equal(t, "Running Healthcare Chatbot in development mode...\n", out)
	})
	t.Run("production", func(t *testing.T) {
		t.Setenv("ENV", "production")
		code, out, _ := execute(t)
		assert.Equal(t, 0, code)
		assert.Equal(t, "Running Healthcare Chatbot in production mode...\n", out)
	})
	t.Run("empty", func(t *testing.T) {
		t.Setenv("ENV", "")
		code, out, _ := execute(t)
		assert.Equal(t, 0, code)
		assert.Equal(t, "Running Healthcare Chatbot in  mode...\n", out)
	})
}

func TestStartupLineIdempotent(t *testing.T) {
	t.Setenv("ENV", "qa")
	_, first, _ := execute(t)
	_, second, _ := execute(t)
	assert.Equal(t, first, second)
}

func TestLogLevelKeepsStdoutClean(t *testing.T) {
	t.Setenv("ENV", "production")
	code, out, errOut := execute(t, "--log-level=debug")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Running Healthcare Chatbot in production mode...\n", out)
	assert.Contains(t, errOut, `"message":"config resolved"`)
	assert.Contains(t, errOut, `"boot_id"`)
}

func TestQuietByDefault(t *testing.T) {
	t.Setenv("ENV", "production")
	unsetenv(t, "LOG_LEVEL")
	_, _, errOut := execute(t)
	assert.Empty(t, errOut)
}

func TestEnvFile(t *testing.T) {
	unsetenv(t, "ENV")
	path := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(path, []byte("ENV=staging\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("ENV") })

	code, out, _ := execute(t, "--env-file", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Running Healthcare Chatbot in staging mode...\n", out)
}

func TestMissingEnvFileStillReports(t *testing.T) {
	t.Setenv("ENV", "production")
	unsetenv(t, "LOG_LEVEL")
	code, out, errOut := execute(t, "--env-file", filepath.Join(t.TempDir(), "nope.env"))
	assert.Equal(t, 0, code)
	assert.Equal(t, "Running Healthcare Chatbot in production mode...\n", out)
	assert.Contains(t, errOut, "env file ignored")
}

func TestVersion(t *testing.T) {
	code, out, _ := execute(t, "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "healthbot "+version+"\n", out)
}

func TestAboutListThemes(t *testing.T) {
	code, out, _ := execute(t, "about", "--list-themes")
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"catppuccin", "dracula", "gruvbox", "solarized_dark"}, strings.Fields(out))
}

func TestAbout(t *testing.T) {
	t.Setenv("ENV", "production")
	code, out, _ := execute(t, "about", "--style", "notty", "--theme", "gruvbox")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Healthcare Chatbot")
	assert.Contains(t, out, "production")
	assert.Contains(t, out, "theme: gruvbox")
}

func TestAboutThemeFromEnvironment(t *testing.T) {
	t.Setenv("HEALTHBOT_THEME", "solarized_dark")
	code, out, _ := execute(t, "about", "--style", "notty")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "theme: solarized_dark")
}

func TestThemeFlagReachesSubcommandConfig(t *testing.T) {
	t.Setenv("HEALTHBOT_THEME", "dracula")
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	about, _, err := root.Find([]string{"about"})
	require.NoError(t, err)
	require.NoError(t, about.ParseFlags([]string{"--theme", "gruvbox", "--log-level", "error"}))

	cfg := loadConfig(about, "", &stderr)
	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, version, cfg.Version)
}

func TestAboutBadStyle(t *testing.T) {
	code, out, errOut := execute(t, "about", "--style", "no-such-style")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `"component":"about"`)
	assert.Contains(t, errOut, "render failed")
}

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestStdoutWriteFailureStillExitsZero(t *testing.T) {
	t.Setenv("ENV", "production")
	var errOut bytes.Buffer
	code := run(nil, closedWriter{}, &errOut)
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut.String(), `"component":"main"`)
	assert.Contains(t, errOut.String(), "startup report failed")
}

func TestUnknownCommand(t *testing.T) {
	code, out, _ := execute(t, "chat")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
}
