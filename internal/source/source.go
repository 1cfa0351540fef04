// Package source locates the default gateway source and target directories.
package source

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	// FallbackTargetDir is used when Ruby's binary directory cannot be determined.
	FallbackTargetDir = "/usr/local/bin"

	gemBinary  = "gem"
	rubyBinary = "ruby"
	netIRCLib  = "net/irc"
)

// Resolver locates the default gateway source directory.
// ok is false when no source could be detected; that is not an error.
type Resolver interface {
	Resolve(ctx context.Context) (path string, ok bool, err error)
}

// System abstracts the process and filesystem calls made by resolvers.
type System interface {
	LookPath(file string) (string, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	Stat(name string) (os.FileInfo, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// LookPath searches for an executable named file in the directories named by the PATH environment variable.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Output runs name with args and returns its standard output.
func (RealSystem) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Static resolves to a fixed path. An empty Path resolves to nothing.
type Static struct {
	Path string
}

// Resolve returns the fixed path.
func (s Static) Resolve(context.Context) (string, bool, error) {
	if strings.TrimSpace(s.Path) == "" {
		return "", false, nil
	}
	return s.Path, true, nil
}

// GemResolver finds the examples directory shipped with the net-irc gem.
type GemResolver struct {
	System System
}

// Resolve asks RubyGems where net/irc lives and returns the gem's examples directory.
// A missing gem binary or an uninstalled net-irc gem resolves to nothing.
func (r GemResolver) Resolve(ctx context.Context) (string, bool, error) {
	sys := r.System
	if sys == nil {
		sys = RealSystem{}
	}
	lib, ok := firstLine(ctx, sys, gemBinary, "which", netIRCLib)
	if !ok {
		return "", false, ctx.Err()
	}
	if _, err := sys.Stat(lib); err != nil {
		return "", false, nil
	}
	// <gem>/lib/net/irc.rb -> <gem>/examples
	gemRoot := filepath.Dir(filepath.Dir(filepath.Dir(lib)))
	return filepath.Join(gemRoot, "examples"), true, nil
}

// DefaultTargetDir returns Ruby's binary install directory, or FallbackTargetDir when
// Ruby is unavailable.
func DefaultTargetDir(ctx context.Context, sys System) string {
	if sys == nil {
		sys = RealSystem{}
	}
	dir, ok := firstLine(ctx, sys, rubyBinary, "-rrbconfig", "-e", "print RbConfig::CONFIG['bindir']")
	if !ok {
		return FallbackTargetDir
	}
	return dir
}

// firstLine runs name and returns the first non-empty line of its output.
func firstLine(ctx context.Context, sys System, name string, args ...string) (string, bool) {
	if _, err := sys.LookPath(name); err != nil {
		return "", false
	}
	out, err := sys.Output(ctx, name, args...)
	if err != nil {
		return "", false
	}
	for _, line := range strings.Split(string(out), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, true
		}
	}
	return "", false
}
