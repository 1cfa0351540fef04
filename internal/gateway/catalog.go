// Package gateway discovers gateway scripts in a source directory, classifies them
// against a target directory, and installs, upgrades, or uninstalls them.
//
// Installation state is never stored. Every query lists and stats the two
// directories again, so results always reflect the live filesystem.
package gateway

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/conn-castle/xig/internal/messages"
)

// Glob is the file name pattern that identifies a gateway script.
const Glob = "*ig.rb"

// Match reports whether name is a gateway file name.
// Hidden files never match, as with a shell glob.
func Match(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	ok, err := filepath.Match(Glob, name)
	return err == nil && ok
}

// Options configures a Catalog or Executor.
type Options struct {
	// SourceDir is the gateway source directory. Empty means no source is configured.
	SourceDir string
	// TargetDir receives installed gateways.
	TargetDir string
	// LogWriter, when set, receives a trace line for each copy and removal.
	LogWriter    io.Writer
	DiffMaxLines int
	System       System
}

// Status is the installation state of one available gateway.
type Status struct {
	Name      string
	Installed bool
	Outdated  bool
}

// Catalog enumerates and classifies gateway files.
type Catalog struct {
	sourceDir string
	targetDir string
	sys       System
}

// NewCatalog returns a Catalog over the directories in opts.
func NewCatalog(opts Options) (*Catalog, error) {
	if opts.System == nil {
		return nil, errors.New(messages.GatewaySystemRequired)
	}
	if strings.TrimSpace(opts.TargetDir) == "" {
		return nil, errors.New(messages.GatewayTargetDirRequired)
	}
	return &Catalog{
		sourceDir: opts.SourceDir,
		targetDir: opts.TargetDir,
		sys:       opts.System,
	}, nil
}

// SourceDir returns the configured source directory, or "" when none is configured.
func (c *Catalog) SourceDir() string {
	return c.sourceDir
}

// TargetDir returns the target directory.
func (c *Catalog) TargetDir() string {
	return c.targetDir
}

// ListAvailable returns the gateways in the source directory, sorted by name.
// It fails with ErrSourceNotAvailable when no source is configured, so callers can
// tell "no source" apart from "source with no gateways".
func (c *Catalog) ListAvailable() ([]string, error) {
	if c.sourceDir == "" {
		return nil, ErrSourceNotAvailable
	}
	return c.ListAvailableIn(c.sourceDir)
}

// ListAvailableIn returns the gateways in dir, sorted by name.
func (c *Catalog) ListAvailableIn(dir string) ([]string, error) {
	return c.glob(dir)
}

// IsInstalled reports whether name is present in the target directory.
func (c *Catalog) IsInstalled(name string) (bool, error) {
	installed, err := c.glob(c.targetDir)
	if err != nil {
		return false, err
	}
	return slices.Contains(installed, name), nil
}

// IsOutdated reports whether the installed copy of name needs to be synced with the source.
// A missing installed copy counts as outdated. Otherwise any difference in modification
// time counts, whichever file is newer.
func (c *Catalog) IsOutdated(name string) (bool, error) {
	if c.sourceDir == "" {
		return false, ErrSourceNotAvailable
	}
	srcPath := filepath.Join(c.sourceDir, name)
	src, err := c.sys.Stat(srcPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf(messages.GatewayDirectoryFmt, ErrSourceNotAvailable, srcPath)
		}
		return false, fmt.Errorf(messages.GatewayStatFmt, srcPath, err)
	}
	dstPath := filepath.Join(c.targetDir, name)
	dst, err := c.sys.Stat(dstPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf(messages.GatewayStatFmt, dstPath, err)
	}
	return !src.ModTime().Equal(dst.ModTime()), nil
}

// ListInstalled returns the available gateways that are present in the target directory.
func (c *Catalog) ListInstalled() ([]string, error) {
	available, err := c.ListAvailable()
	if err != nil {
		return nil, err
	}
	present, err := c.glob(c.targetDir)
	if err != nil {
		return nil, err
	}
	installed := make([]string, 0, len(available))
	for _, name := range available {
		if slices.Contains(present, name) {
			installed = append(installed, name)
		}
	}
	return installed, nil
}

// ListUpdatable returns the installed gateways whose modification time differs from the source.
func (c *Catalog) ListUpdatable() ([]string, error) {
	installed, err := c.ListInstalled()
	if err != nil {
		return nil, err
	}
	updatable := make([]string, 0, len(installed))
	for _, name := range installed {
		outdated, err := c.IsOutdated(name)
		if err != nil {
			return nil, err
		}
		if outdated {
			updatable = append(updatable, name)
		}
	}
	return updatable, nil
}

// Statuses returns one row per available gateway.
func (c *Catalog) Statuses() ([]Status, error) {
	available, err := c.ListAvailable()
	if err != nil {
		return nil, err
	}
	present, err := c.glob(c.targetDir)
	if err != nil {
		return nil, err
	}
	rows := make([]Status, 0, len(available))
	for _, name := range available {
		row := Status{Name: name}
		if slices.Contains(present, name) {
			row.Installed = true
			outdated, err := c.IsOutdated(name)
			if err != nil {
				return nil, err
			}
			row.Outdated = outdated
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// glob lists the gateway names directly inside dir.
func (c *Catalog) glob(dir string) ([]string, error) {
	entries, err := c.sys.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf(messages.GatewayDirectoryFmt, ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf(messages.GatewayListDirFmt, dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !Match(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
