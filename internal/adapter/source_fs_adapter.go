// Package adapter contains filesystem and diff adapters for the codemod CLI.
package adapter

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	m "codemod.dev/pkg/codemod/internal/model"
)

const (
	globSeparator = '/'
	globMeta      = `*?[{\`
	recursiveDir  = "**/"
)

// SourceFSAdapter abstracts the filesystem access the rewrites rely on, so the
// workflow can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	// Hidden entries below root are skipped.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// Glob returns the regular files under root whose root-relative,
	// slash-separated path matches pattern. "**/" matches zero or more
	// directories.
	Glob(root m.Path, pattern string) ([]m.Path, error)

	// ReadSource loads a file together with its permission bits.
	ReadSource(path m.Path) (m.SourceFile, error)

	// WriteSource replaces the file content, keeping its permission bits.
	WriteSource(file m.SourceFile) error
}

// FilepathWalkFunc mirrors the callback shape used by filepath.WalkDir. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, entry fs.DirEntry, err error) error

// LocalSourceFSAdapter is the os backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over entries under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.WalkDir(rootStr, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fn(path, entry, err)
		}

		if path == rootStr {
			return fn(path, entry, nil)
		}

		if isHidden(entry.Name()) || (entry.IsDir() && !recursive) {
			if entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		return fn(path, entry, nil)
	})
}

// Glob walks the static directory prefix of pattern and matches every file
// below it. Entries that cannot be read are logged and skipped; only an
// invalid pattern is an error.
func (a *LocalSourceFSAdapter) Glob(root m.Path, pattern string) ([]m.Path, error) {
	matchers, err := compileGlob(pattern)
	if err != nil {
		return nil, err
	}

	start := a.JoinPath(string(root), filepath.FromSlash(staticPrefix(pattern)))

	info, err := a.FileInfo(start)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Skipping unreadable glob root", "path", start, "error", err)
		}

		return nil, nil
	}

	if !info.IsDir() {
		return nil, nil
	}

	var matches []m.Path

	err = a.Walk(start, true, a.globVisitor(root, matchers, &matches))
	if err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i] < matches[j]
	})

	return matches, nil
}

// globVisitor collects the files under root matching any of matchers into
// matches.
func (a *LocalSourceFSAdapter) globVisitor(root m.Path, matchers []glob.Glob, matches *[]m.Path) FilepathWalkFunc {
	return func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("Skipping unreadable path", "path", path, "error", err)

			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(string(root), path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)
		for _, matcher := range matchers {
			if matcher.Match(rel) {
				*matches = append(*matches, a.JoinPath(string(root), filepath.FromSlash(rel)))
				break
			}
		}

		return nil
	}
}

// ReadSource loads file contents and mode from disk.
func (a *LocalSourceFSAdapter) ReadSource(path m.Path) (m.SourceFile, error) {
	info, err := a.FileInfo(path)
	if err != nil {
		return m.SourceFile{}, err
	}

	if info.IsDir() {
		return m.SourceFile{}, fmt.Errorf("%s is a directory", path)
	}

	// #nosec G304 - path comes from the operator's glob or config
	content, err := os.ReadFile(string(path))
	if err != nil {
		return m.SourceFile{}, err
	}

	return m.SourceFile{
		Path:    path,
		Content: string(content),
		Mode:    info.Mode().Perm(),
	}, nil
}

// WriteSource writes the file content back with its original permissions.
func (a *LocalSourceFSAdapter) WriteSource(file m.SourceFile) error {
	perm := file.Mode.Perm()
	if perm == 0 {
		perm = 0o644
	}

	return os.WriteFile(string(file.Path), []byte(file.Content), perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// compileGlob compiles pattern plus, when it contains "**/", the variant in
// which those directories are empty. gobwas' "**" needs the surrounding
// separators to be present, the shell style recursive glob does not.
func compileGlob(pattern string) ([]glob.Glob, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("empty glob pattern")
	}

	variants := []string{pattern}
	if strings.Contains(pattern, recursiveDir) {
		variants = append(variants, strings.ReplaceAll(pattern, recursiveDir, ""))
	}

	matchers := make([]glob.Glob, 0, len(variants))

	for _, variant := range variants {
		g, err := glob.Compile(variant, globSeparator)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		matchers = append(matchers, g)
	}

	return matchers, nil
}

// staticPrefix returns the leading directories of pattern that contain no
// glob syntax.
func staticPrefix(pattern string) string {
	segments := strings.Split(pattern, "/")

	static := make([]string, 0, len(segments))
	for _, segment := range segments[:len(segments)-1] {
		if strings.ContainsAny(segment, globMeta) {
			break
		}

		static = append(static, segment)
	}

	if len(static) == 0 {
		return "."
	}

	return strings.Join(static, "/")
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
