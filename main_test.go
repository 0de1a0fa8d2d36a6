package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videogpt/config"
	"videogpt/pipeline"
	"videogpt/summary"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestExecuteRequiresURL(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error:")
}

func TestExecuteMissingCredential(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv(config.SupadataEnv, "")
	t.Setenv(config.AnthropicEnv, "")

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"https://youtu.be/dQw4w9WgXcQ"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), config.SupadataEnv)
	assert.Empty(t, stdout.String())

	_, err := os.Stat(filepath.Join(dir, "gpts"))
	assert.True(t, os.IsNotExist(err))
}

func TestExecuteRejectsUnknownLevel(t *testing.T) {
	chdirTemp(t)
	t.Setenv(config.SupadataEnv, "s")
	t.Setenv(config.AnthropicEnv, "a")

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"https://youtu.be/dQw4w9WgXcQ", "-l", "medium"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unknown level")
}

func TestApplyFlags(t *testing.T) {
	cfg := &config.Config{Provider: "anthropic", Level: "low"}
	cfg.Output.Folder = "from-file"

	applyFlags(cfg, flags{provider: "openai", level: "high"})
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "high", cfg.Level)
	assert.Equal(t, "from-file", cfg.Output.Folder)

	applyFlags(cfg, flags{folder: "guides"})
	assert.Equal(t, "guides", cfg.Output.Folder)
}

func TestProgressDescribesStage(t *testing.T) {
	var buf bytes.Buffer
	progress := NewProgress(&buf)

	progress.Update(pipeline.Summarizing)
	assert.Equal(t, pipeline.Summarizing, progress.current)
	assert.Contains(t, buf.String(), "Summarizing...")

	progress.Clear()
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Fetching transcript", capitalize("fetching transcript"))
	assert.Equal(t, "", capitalize(""))
}

const testVideoURL = "https://youtu.be/dQw4w9WgXcQ"

type stubClient struct {
	document string
	calls    int
}

func (c *stubClient) CreateMessage(context.Context, summary.Request) (*summary.Response, error) {
	c.calls++
	return &summary.Response{Segments: []summary.Segment{{Kind: summary.TextSegment, Text: c.document}}}, nil
}

func (c *stubClient) String() string { return "stub" }

// setupRun points the command at a local transcript server and a stub LLM
// client, and returns the config file path and the output folder.
func setupRun(t *testing.T, document string) (string, string, *stubClient) {
	t.Helper()
	dir := chdirTemp(t)
	t.Setenv(config.SupadataEnv, "s")
	t.Setenv(config.AnthropicEnv, "a")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":"spoken words","lang":"en"}`))
	}))
	t.Cleanup(srv.Close)

	client := &stubClient{document: document}
	original := newClient
	newClient = func(summary.ServiceType, string) (summary.Client, error) { return client, nil }
	t.Cleanup(func() { newClient = original })

	folder := filepath.Join(dir, "guides")
	configPath := filepath.Join(dir, "videogpt.yaml")
	content := "supadata:\n  base_url: " + srv.URL + "\noutput:\n  folder: " + folder + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	return configPath, folder, client
}

func TestExecuteSavesGuide(t *testing.T) {
	configPath, folder, client := setupRun(t, "# My Great Guide\n\nbody")

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{testVideoURL, "-c", configPath}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	path := filepath.Join(folder, "my-great-guide.md")
	assert.Equal(t, "Saved at: "+path+"\nCompleted.\n", stdout.String())
	assert.Equal(t, 1, client.calls)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Video URL: "+testVideoURL+"\n\n\n# My Great Guide\n\nbody", string(got))
}

func TestExecuteStdoutWritesNothing(t *testing.T) {
	configPath, folder, _ := setupRun(t, "# Printed Guide\n\nbody")

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{testVideoURL, "-c", configPath, "--stdout"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Equal(t, "# Printed Guide\n\nbody\nCompleted.\n", stdout.String())
	assert.NotContains(t, stdout.String(), "Saved at:")

	_, err := os.Stat(folder)
	assert.True(t, os.IsNotExist(err))
}

func TestExecuteWriteFailureStillReportsPath(t *testing.T) {
	configPath, folder, _ := setupRun(t, "# Title")
	require.NoError(t, os.MkdirAll(filepath.Join(folder, "taken.md"), 0755))

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{testVideoURL, "-c", configPath, "-o", "taken.md"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	path := filepath.Join(folder, "taken.md")
	assert.Equal(t, "Saved at: "+path+"\n", stdout.String())
	assert.NotContains(t, stdout.String(), "Completed.")
	assert.Contains(t, stderr.String(), "Error: writing:")
}
