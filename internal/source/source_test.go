package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/xig/internal/testutil"
)

type stubSystem struct {
	RealSystem
	paths   map[string]bool
	outputs map[string]string
	errs    map[string]error
}

func (s stubSystem) LookPath(file string) (string, error) {
	if s.paths[file] {
		return "/stub/" + file, nil
	}
	return "", errors.New("not found")
}

func (s stubSystem) Output(_ context.Context, name string, _ ...string) ([]byte, error) {
	if err, ok := s.errs[name]; ok {
		return nil, err
	}
	return []byte(s.outputs[name]), nil
}

func TestStaticResolver(t *testing.T) {
	path, ok, err := Static{}.Resolve(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, path)

	path, ok, err = Static{Path: "/srv/gateways"}.Resolve(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/srv/gateways", path)
}

func TestGemResolverFindsExamples(t *testing.T) {
	gemRoot := filepath.Join(t.TempDir(), "net-irc-0.0.9")
	lib := filepath.Join(gemRoot, "lib", "net", "irc.rb")
	require.NoError(t, os.MkdirAll(filepath.Dir(lib), 0o755))
	require.NoError(t, os.WriteFile(lib, []byte("# net/irc\n"), 0o644))

	bin := t.TempDir()
	testutil.WriteStubOutput(t, bin, "gem", lib)
	t.Setenv("PATH", bin)

	path, ok, err := GemResolver{}.Resolve(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(gemRoot, "examples"), path)
}

func TestGemResolverGemFails(t *testing.T) {
	bin := t.TempDir()
	testutil.WriteStubWithExit(t, bin, "gem", 1)
	t.Setenv("PATH", bin)

	_, ok, err := GemResolver{}.Resolve(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGemResolverWithoutGemBinary(t *testing.T) {
	_, ok, err := GemResolver{System: stubSystem{}}.Resolve(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGemResolverReportedPathMissing(t *testing.T) {
	sys := stubSystem{
		paths:   map[string]bool{"gem": true},
		outputs: map[string]string{"gem": filepath.Join(t.TempDir(), "lib", "net", "irc.rb") + "\n"},
	}
	_, ok, err := GemResolver{System: sys}.Resolve(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGemResolverCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sys := stubSystem{
		paths: map[string]bool{"gem": true},
		errs:  map[string]error{"gem": context.Canceled},
	}
	_, ok, err := GemResolver{System: sys}.Resolve(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultTargetDir(t *testing.T) {
	sys := stubSystem{
		paths:   map[string]bool{"ruby": true},
		outputs: map[string]string{"ruby": "/opt/ruby/bin"},
	}
	assert.Equal(t, "/opt/ruby/bin", DefaultTargetDir(context.Background(), sys))
	assert.Equal(t, FallbackTargetDir, DefaultTargetDir(context.Background(), stubSystem{}))

	sys.errs = map[string]error{"ruby": errors.New("boom")}
	assert.Equal(t, FallbackTargetDir, DefaultTargetDir(context.Background(), sys))
}
