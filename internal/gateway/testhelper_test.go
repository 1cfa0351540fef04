package gateway

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/conn-castle/xig/internal/testutil"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// faultSystem is a test helper that allows deterministic error injection for the
// gateway System interface without chmod-based permission tricks.
type faultSystem struct {
	base        System
	statErrs    map[string]error
	readDirErrs map[string]error
	createErrs  map[string]error
	removeErrs  map[string]error
	writableErr error
}

func newFaultSystem(base System) *faultSystem {
	return &faultSystem{
		base:        base,
		statErrs:    map[string]error{},
		readDirErrs: map[string]error{},
		createErrs:  map[string]error{},
		removeErrs:  map[string]error{},
	}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *faultSystem) ReadDir(name string) ([]os.DirEntry, error) {
	if err, ok := f.readDirErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.ReadDir(name)
}

func (f *faultSystem) ReadFile(name string) ([]byte, error) {
	return f.base.ReadFile(name)
}

func (f *faultSystem) Open(name string) (io.ReadCloser, error) {
	return f.base.Open(name)
}

func (f *faultSystem) Create(name string, perm os.FileMode) (io.WriteCloser, error) {
	if err, ok := f.createErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Create(name, perm)
}

func (f *faultSystem) Chmod(name string, mode os.FileMode) error {
	return f.base.Chmod(name, mode)
}

func (f *faultSystem) Chtimes(name string, atime time.Time, mtime time.Time) error {
	return f.base.Chtimes(name, atime, mtime)
}

func (f *faultSystem) Remove(name string) error {
	if err, ok := f.removeErrs[normalizePath(name)]; ok {
		return err
	}
	return f.base.Remove(name)
}

func (f *faultSystem) Writable(dir string) error {
	if f.writableErr != nil {
		return f.writableErr
	}
	return f.base.Writable(dir)
}

type fixture struct {
	source string
	target string
}

// newFixture creates a source directory holding the named gateways and an empty target.
func newFixture(t *testing.T, names ...string) fixture {
	t.Helper()
	fx := fixture{source: t.TempDir(), target: t.TempDir()}
	for _, name := range names {
		testutil.WriteGateway(t, fx.source, name, "# "+name+"\n", baseTime)
	}
	return fx
}

func (fx fixture) options(sys System) Options {
	if sys == nil {
		sys = RealSystem{}
	}
	return Options{SourceDir: fx.source, TargetDir: fx.target, System: sys}
}

func (fx fixture) executor(t *testing.T) *Executor {
	t.Helper()
	exec, err := NewExecutor(fx.options(nil))
	if err != nil {
		t.Fatalf("NewExecutor: %v", err)
	}
	return exec
}

func (fx fixture) targetNames(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(fx.target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
