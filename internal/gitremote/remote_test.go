package gitremote

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midwire/configure-docs/internal/model"
)

// setupTestRepo creates a temporary directory with an initialized Git
// repository. Remote lookups do not need any commits.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	runTestGit(t, dir, "init")
	return dir
}

// runTestGit runs a git command in dir and fails the test on a non-zero exit.
func runTestGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, string(output))
	return string(output)
}

// TestParseRemoteURL covers the URL syntaxes git accepts.
func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Remote
	}{
		{"scp-like", "git@github.com:midwire/configure.git", Remote{"github.com", "midwire", "configure"}},
		{"scp-like without user", "github.com:midwire/configure", Remote{"github.com", "midwire", "configure"}},
		{"https", "https://github.com/midwire/configure.git", Remote{"github.com", "midwire", "configure"}},
		{"https without suffix", "https://github.com/midwire/configure", Remote{"github.com", "midwire", "configure"}},
		{"https with user and trailing slash", "https://me@github.com/midwire/configure/", Remote{"github.com", "midwire", "configure"}},
		{"https with port", "https://git.local:8443/team/app.git", Remote{"git.local:8443", "team", "app"}},
		{"ssh with port", "ssh://git@git.local:2222/team/app.git", Remote{"git.local", "team", "app"}},
		{"nested groups", "git@gitlab.com:group/sub/app.git", Remote{"gitlab.com", "group/sub", "app"}},
		{"surrounding whitespace", "  https://github.com/a/b.git\n", Remote{"github.com", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRemoteURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParseRemoteURL_Invalid covers inputs without a host or org/repo path.
func TestParseRemoteURL_Invalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"/srv/git/app.git",
		"./relative/app",
		"file:///srv/git/app.git",
		"https://github.com/only-one-segment",
		"git@github.com:",
		"https://github.com/org/",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseRemoteURL(raw)
			assert.Error(t, err)
		})
	}
}

// TestDetect verifies the end-to-end lookup through the git CLI.
func TestDetect(t *testing.T) {
	repo := setupTestRepo(t)
	runTestGit(t, repo, "remote", "add", "origin", "git@github.com:acme/widget.git")
	runTestGit(t, repo, "remote", "add", "upstream", "https://gitlab.com/upstream-org/widget.git")

	m := NewManager()

	r, err := m.Detect(repo, "")
	require.NoError(t, err)
	assert.Equal(t, Remote{Host: "github.com", Org: "acme", Repo: "widget"}, r)

	r, err = m.Detect(repo, "upstream")
	require.NoError(t, err)
	assert.Equal(t, "upstream-org", r.Org)
	assert.Equal(t, "gitlab.com", r.Host)
}

// TestDetect_Errors verifies that git failures carry the git exit code.
func TestDetect_Errors(t *testing.T) {
	m := NewManager()

	t.Run("no such remote", func(t *testing.T) {
		_, err := m.Detect(setupTestRepo(t), "origin")
		require.Error(t, err)

		var cliErr *model.CLIError
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, model.ExitGitError, cliErr.Code)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := m.Detect(t.TempDir(), "origin")
		assert.Error(t, err)
	})

	t.Run("unparseable remote", func(t *testing.T) {
		repo := setupTestRepo(t)
		runTestGit(t, repo, "remote", "add", "origin", "/srv/git/local.git")

		_, err := m.Detect(repo, "origin")
		require.Error(t, err)
		var cliErr *model.CLIError
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, model.ExitGitError, cliErr.Code)
	})
}

// TestGetRepoRoot verifies that a subdirectory resolves to the working tree root.
func TestGetRepoRoot(t *testing.T) {
	repo := setupTestRepo(t)
	sub := filepath.Join(repo, "docs")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	root, err := NewManager().GetRepoRoot(sub)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(repo)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
