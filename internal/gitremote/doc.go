// Package gitremote reads the hosting location of a project from its Git
// remotes.
//
// All Git operations are performed via os/exec calls to the git binary,
// rather than using a Git library like go-git. This approach:
//   - Avoids CGO dependencies (libgit2)
//   - Uses the exact same Git configuration (url.insteadOf rewrites,
//     includes) the user sees in their terminal
//
// The Manager resolves a remote URL such as git@github.com:acme/widget.git
// into a Remote (host "github.com", org "acme", repo "widget"), which the
// CLI uses to derive project URLs instead of the configured defaults.
package gitremote
