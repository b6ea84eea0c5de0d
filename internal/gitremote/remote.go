package gitremote

import (
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"github.com/midwire/configure-docs/internal/model"
)

// DefaultRemote is the remote consulted when none is specified.
const DefaultRemote = "origin"

// Remote is the hosting location parsed from a remote URL.
type Remote struct {
	// Host is the code host, including a port for HTTP(S) remotes that
	// specify one (e.g. "github.com", "git.local:8443").
	Host string

	// Org is the owning user or organization. For hosts with nested groups
	// it contains every group segment ("group/subgroup").
	Org string

	// Repo is the repository name without a ".git" suffix.
	Repo string
}

// Manager provides Git remote lookups by invoking the git CLI.
//
// It is stateless; every method receives the repository path.
type Manager struct{}

// NewManager creates a new Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// GetRepoRoot returns the absolute path to the top-level directory of the
// Git working tree containing the given path.
func (m *Manager) GetRepoRoot(path string) (string, error) {
	output, err := runGit(path, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// RemoteURL returns the fetch URL of the named remote, after git has
// applied any url.<base>.insteadOf rewrites.
func (m *Manager) RemoteURL(repoPath, remote string) (string, error) {
	if remote == "" {
		remote = DefaultRemote
	}
	output, err := runGit(repoPath, "remote", "get-url", remote)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// Detect looks up the named remote of the repository at repoPath and
// parses it into a Remote.
func (m *Manager) Detect(repoPath, remote string) (Remote, error) {
	raw, err := m.RemoteURL(repoPath, remote)
	if err != nil {
		return Remote{}, err
	}
	r, err := ParseRemoteURL(raw)
	if err != nil {
		return Remote{}, model.WrapCLIError(model.ExitGitError, "unsupported remote URL", err)
	}
	return r, nil
}

// ParseRemoteURL understands the URL forms git accepts for remotes:
//
//	https://github.com/acme/widget.git
//	ssh://git@github.com:22/acme/widget.git
//	git@github.com:acme/widget.git   (scp-like)
//
// Local paths and file:// URLs have no host and are rejected.
func ParseRemoteURL(raw string) (Remote, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Remote{}, fmt.Errorf("empty remote URL")
	}

	var host, path string
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return Remote{}, fmt.Errorf("parsing remote URL %q: %w", raw, err)
		}
		switch u.Scheme {
		case "http", "https":
			// The derived project URLs are HTTPS, so a web port is kept.
			host = u.Host
		case "ssh", "git", "git+ssh", "ssh+git":
			host = u.Hostname()
		default:
			return Remote{}, fmt.Errorf("remote URL %q: unsupported scheme %q", raw, u.Scheme)
		}
		path = u.Path
	} else {
		// scp-like syntax: [user@]host:path. A colon is required, and a
		// slash before it means a local path.
		hostPart, pathPart, ok := strings.Cut(raw, ":")
		if !ok || strings.Contains(hostPart, "/") {
			return Remote{}, fmt.Errorf("remote URL %q has no host", raw)
		}
		if at := strings.LastIndex(hostPart, "@"); at >= 0 {
			hostPart = hostPart[at+1:]
		}
		host = hostPart
		path = pathPart
	}

	if host == "" {
		return Remote{}, fmt.Errorf("remote URL %q has no host", raw)
	}

	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, ".git")
	idx := strings.LastIndex(path, "/")
	if idx <= 0 || idx == len(path)-1 {
		return Remote{}, fmt.Errorf("remote URL %q: expected <org>/<repo> path, got %q", raw, path)
	}

	return Remote{Host: host, Org: path[:idx], Repo: path[idx+1:]}, nil
}

// runGit executes a git command with the given arguments in the specified directory.
//
// On success it returns stdout. On failure, it returns a model.CLIError with
// ExitGitError code, including the stderr output in the error message.
func runGit(repoPath string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)

	// #nosec G204: args are constructed internally, not from user input
	cmd := exec.Command("git", fullArgs...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		message := fmt.Sprintf("git %s failed", strings.Join(args, " "))
		if stderrStr != "" {
			message = fmt.Sprintf("%s: %s", message, stderrStr)
		}
		return "", model.WrapCLIError(model.ExitGitError, message, err)
	}

	return stdout.String(), nil
}
