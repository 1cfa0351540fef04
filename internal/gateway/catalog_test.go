package gateway

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/xig/internal/testutil"
)

func TestMatch(t *testing.T) {
	cases := map[string]bool{
		"tig.rb":       true,
		"mig.rb":       true,
		"twitterig.rb": true,
		"ig.rb":        true,
		"tig.rbx":      false,
		"tig.py":       false,
		"tag.rb":       false,
		".tig.rb":      false,
		"README":       false,
	}
	for name, want := range cases {
		assert.Equal(t, want, Match(name), name)
	}
}

func TestNewCatalogRequiresSystemAndTarget(t *testing.T) {
	_, err := NewCatalog(Options{TargetDir: t.TempDir()})
	require.Error(t, err)

	_, err = NewCatalog(Options{System: RealSystem{}})
	require.Error(t, err)
}

func TestListAvailableFiltersByGlob(t *testing.T) {
	fx := newFixture(t, "tig.rb", "mig.rb")
	testutil.WriteGateway(t, fx.source, "README", "readme\n", baseTime)
	testutil.WriteGateway(t, fx.source, "helper.rb", "# helper\n", baseTime)
	require.NoError(t, os.Mkdir(filepath.Join(fx.source, "dirig.rb"), 0o755))

	catalog, err := NewCatalog(fx.options(nil))
	require.NoError(t, err)

	available, err := catalog.ListAvailable()
	require.NoError(t, err)
	assert.Equal(t, []string{"mig.rb", "tig.rb"}, available)
}

func TestListAvailableWithoutSource(t *testing.T) {
	catalog, err := NewCatalog(Options{TargetDir: t.TempDir(), System: RealSystem{}})
	require.NoError(t, err)

	_, err = catalog.ListAvailable()
	assert.ErrorIs(t, err, ErrSourceNotAvailable)
}

func TestListAvailableMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	catalog, err := NewCatalog(Options{SourceDir: missing, TargetDir: t.TempDir(), System: RealSystem{}})
	require.NoError(t, err)

	_, err = catalog.ListAvailable()
	assert.ErrorIs(t, err, ErrDirectoryNotFound)

	_, err = catalog.ListAvailableIn(filepath.Join(t.TempDir(), "target"))
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
}

func TestListAvailableEmptySourceIsNotAnError(t *testing.T) {
	fx := newFixture(t)
	catalog, err := NewCatalog(fx.options(nil))
	require.NoError(t, err)

	available, err := catalog.ListAvailable()
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestListAvailableReadDirError(t *testing.T) {
	fx := newFixture(t, "tig.rb")
	sys := newFaultSystem(RealSystem{})
	sys.readDirErrs[fx.source] = os.ErrPermission

	catalog, err := NewCatalog(fx.options(sys))
	require.NoError(t, err)

	_, err = catalog.ListAvailable()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.NotErrorIs(t, err, ErrDirectoryNotFound)
}

func TestIsInstalled(t *testing.T) {
	fx := newFixture(t, "tig.rb")
	catalog, err := NewCatalog(fx.options(nil))
	require.NoError(t, err)

	installed, err := catalog.IsInstalled("tig.rb")
	require.NoError(t, err)
	assert.False(t, installed)

	testutil.WriteGateway(t, fx.target, "tig.rb", "# tig.rb\n", baseTime)
	installed, err = catalog.IsInstalled("tig.rb")
	require.NoError(t, err)
	assert.True(t, installed)

	// Names outside the glob never count as installed.
	testutil.WriteGateway(t, fx.target, "tig.sh", "#!/bin/sh\n", baseTime)
	installed, err = catalog.IsInstalled("tig.sh")
	require.NoError(t, err)
	assert.False(t, installed)
}

func TestIsOutdated(t *testing.T) {
	fx := newFixture(t, "tig.rb")
	catalog, err := NewCatalog(fx.options(nil))
	require.NoError(t, err)

	outdated, err := catalog.IsOutdated("tig.rb")
	require.NoError(t, err)
	assert.True(t, outdated, "missing installed copy counts as outdated")

	installedPath := testutil.WriteGateway(t, fx.target, "tig.rb", "# tig.rb\n", baseTime)
	outdated, err = catalog.IsOutdated("tig.rb")
	require.NoError(t, err)
	assert.False(t, outdated)

	// An older source still counts: any drift is outdated.
	testutil.Touch(t, installedPath, baseTime.Add(time.Hour))
	outdated, err = catalog.IsOutdated("tig.rb")
	require.NoError(t, err)
	assert.True(t, outdated)

	testutil.Touch(t, installedPath, baseTime.Add(-time.Hour))
	outdated, err = catalog.IsOutdated("tig.rb")
	require.NoError(t, err)
	assert.True(t, outdated)
}

func TestIsOutdatedMissingSource(t *testing.T) {
	fx := newFixture(t)
	testutil.WriteGateway(t, fx.target, "tig.rb", "# tig.rb\n", baseTime)
	catalog, err := NewCatalog(fx.options(nil))
	require.NoError(t, err)

	_, err = catalog.IsOutdated("tig.rb")
	assert.ErrorIs(t, err, ErrSourceNotAvailable)
}

func TestIsOutdatedStatError(t *testing.T) {
	fx := newFixture(t, "tig.rb")
	sys := newFaultSystem(RealSystem{})
	sys.statErrs[filepath.Join(fx.target, "tig.rb")] = errors.New("io failure")
	catalog, err := NewCatalog(fx.options(sys))
	require.NoError(t, err)

	_, err = catalog.IsOutdated("tig.rb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "io failure")
}

func TestListInstalledAndUpdatable(t *testing.T) {
	fx := newFixture(t, "tig.rb", "mig.rb", "wig.rb")
	testutil.WriteGateway(t, fx.target, "tig.rb", "# tig.rb\n", baseTime)
	testutil.WriteGateway(t, fx.target, "mig.rb", "# old\n", baseTime.Add(-time.Minute))
	// Installed but no longer available in the source.
	testutil.WriteGateway(t, fx.target, "gone_ig.rb", "# gone\n", baseTime)

	catalog, err := NewCatalog(fx.options(nil))
	require.NoError(t, err)

	installed, err := catalog.ListInstalled()
	require.NoError(t, err)
	assert.Equal(t, []string{"mig.rb", "tig.rb"}, installed)

	updatable, err := catalog.ListUpdatable()
	require.NoError(t, err)
	assert.Equal(t, []string{"mig.rb"}, updatable)

	statuses, err := catalog.Statuses()
	require.NoError(t, err)
	assert.Equal(t, []Status{
		{Name: "mig.rb", Installed: true, Outdated: true},
		{Name: "tig.rb", Installed: true, Outdated: false},
		{Name: "wig.rb"},
	}, statuses)
}

func TestListInstalledMissingTarget(t *testing.T) {
	fx := newFixture(t, "tig.rb")
	opts := fx.options(nil)
	opts.TargetDir = filepath.Join(fx.target, "missing")
	catalog, err := NewCatalog(opts)
	require.NoError(t, err)

	_, err = catalog.ListInstalled()
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
}

func TestCatalogReflectsExternalChanges(t *testing.T) {
	fx := newFixture(t, "tig.rb")
	catalog, err := NewCatalog(fx.options(nil))
	require.NoError(t, err)

	available, err := catalog.ListAvailable()
	require.NoError(t, err)
	assert.Equal(t, []string{"tig.rb"}, available)

	testutil.WriteGateway(t, fx.source, "mig.rb", "# mig.rb\n", baseTime)
	available, err = catalog.ListAvailable()
	require.NoError(t, err)
	assert.Equal(t, []string{"mig.rb", "tig.rb"}, available)
}
