package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/midwire/configure-docs/internal/model"
)

// BuiltinOrigin is the Origin reported by the embedded template set.
const BuiltinOrigin = "(built-in)"

// templatePattern matches top-level markdown files only. "*" never crosses
// a path separator, so subdirectories are not searched.
const templatePattern = "*.md"

//go:embed builtin/*.md builtin/.rubocop.yml
var builtinFS embed.FS

// Source is a flat collection of templates and auxiliary files.
type Source struct {
	fsys   fs.FS
	origin string
}

// Origin describes where the source was loaded from: a directory path or
// BuiltinOrigin.
func (s Source) Origin() string {
	return s.origin
}

// FS exposes the underlying file system.
func (s Source) FS() fs.FS {
	return s.fsys
}

// Builtin returns the template set compiled into the binary.
func Builtin() Source {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "builtin" is valid.
		panic(fmt.Sprintf("templates: builtin sub-fs: %v", err))
	}
	return Source{fsys: sub, origin: BuiltinOrigin}
}

// FromDir returns a Source reading from dir. The directory must exist.
func FromDir(dir string) (Source, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Source{}, fmt.Errorf("resolving templates directory %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Source{}, fmt.Errorf("templates directory %s: %w", abs, err)
	}
	if !info.IsDir() {
		return Source{}, fmt.Errorf("templates directory %s is not a directory", abs)
	}
	return Source{fsys: os.DirFS(abs), origin: abs}, nil
}

// Resolve picks the template source for a run.
//
// A non-empty dir is used as-is. Otherwise the directory holding the
// running executable is used if it contains at least one template, and the
// built-in set is the final fallback.
func Resolve(dir string) (Source, error) {
	if dir != "" {
		return FromDir(dir)
	}
	if exeDir, err := executableDir(); err == nil {
		if src, err := FromDir(exeDir); err == nil {
			if names, err := src.List(); err == nil && len(names) > 0 {
				return src, nil
			}
		}
	}
	return Builtin(), nil
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// List returns the names of the templates to render, sorted. Only regular
// *.md files at the top level are returned. Hidden files (leading dot) and
// README.md (exact, case-sensitive match) are always skipped.
func (s Source) List() ([]string, error) {
	matches, err := doublestar.Glob(s.fsys, templatePattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("listing templates in %s: %w", s.origin, err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		// doublestar's "*" also matches dotfiles, unlike a shell glob.
		if strings.HasPrefix(m, ".") || m == model.ReservedTemplate {
			continue
		}
		names = append(names, m)
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the raw contents of a file in the source.
func (s Source) Read(name string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s from %s: %w", name, s.origin, err)
	}
	return data, nil
}
