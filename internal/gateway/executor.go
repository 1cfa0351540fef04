package gateway

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/conn-castle/xig/internal/messages"
)

// Executor validates requested gateway names against the catalog and then copies or
// removes files. Validation always finishes before the first mutation.
type Executor struct {
	catalog      *Catalog
	sys          System
	logWriter    io.Writer
	diffMaxLines int
}

// NewExecutor returns an Executor over the directories in opts.
func NewExecutor(opts Options) (*Executor, error) {
	catalog, err := NewCatalog(opts)
	if err != nil {
		return nil, err
	}
	return &Executor{
		catalog:      catalog,
		sys:          opts.System,
		logWriter:    opts.LogWriter,
		diffMaxLines: normalizeDiffMaxLines(opts.DiffMaxLines),
	}, nil
}

// Catalog returns the catalog the executor validates against.
func (e *Executor) Catalog() *Catalog {
	return e.catalog
}

// Install copies the named gateways into the target directory, or every available
// gateway when names is empty. If any name is not available it returns a NamesError
// wrapping ErrInvalidTarget and copies nothing.
func (e *Executor) Install(names []string) ([]string, error) {
	available, err := e.catalog.ListAvailable()
	if err != nil {
		return nil, err
	}
	targets := available
	if len(names) > 0 {
		targets = unique(names)
		if missing := difference(targets, available); len(missing) > 0 {
			return nil, &NamesError{Kind: ErrInvalidTarget, Names: missing}
		}
	}
	return e.copyAll(messages.GatewayOpInstall, targets)
}

// Upgrade reinstalls the named gateways that are installed and outdated, or every
// outdated installed gateway when names is empty. Names that are not installed are
// skipped. It returns only the names actually copied.
func (e *Executor) Upgrade(names []string) ([]string, error) {
	var candidates []string
	if len(names) == 0 {
		installed, err := e.catalog.ListInstalled()
		if err != nil {
			return nil, err
		}
		candidates = installed
	} else {
		for _, name := range unique(names) {
			installed, err := e.catalog.IsInstalled(name)
			if err != nil {
				return nil, err
			}
			if installed {
				candidates = append(candidates, name)
			}
		}
	}

	outdated := make([]string, 0, len(candidates))
	for _, name := range candidates {
		needsSync, err := e.catalog.IsOutdated(name)
		if err != nil {
			return nil, err
		}
		if needsSync {
			outdated = append(outdated, name)
		}
	}
	return e.copyAll(messages.GatewayOpUpgrade, outdated)
}

// Uninstall removes the named gateways from the target directory, or every installed
// gateway when names is empty. If any name is not installed it returns a NamesError
// wrapping ErrNotInstalled and removes nothing.
func (e *Executor) Uninstall(names []string) ([]string, error) {
	installed, err := e.catalog.ListInstalled()
	if err != nil {
		return nil, err
	}
	targets := installed
	if len(names) > 0 {
		targets = unique(names)
		if missing := difference(targets, installed); len(missing) > 0 {
			return nil, &NamesError{Kind: ErrNotInstalled, Names: missing}
		}
	}
	if len(targets) == 0 {
		return []string{}, nil
	}
	if err := e.checkWritable(); err != nil {
		return nil, err
	}

	removed := make([]string, 0, len(targets))
	for _, name := range targets {
		path := filepath.Join(e.catalog.targetDir, name)
		e.trace(messages.GatewayTraceRemoveFmt, path)
		if err := e.sys.Remove(path); err != nil {
			return removed, &BatchError{
				Op:   messages.GatewayOpUninstall,
				Done: removed,
				Name: name,
				Err:  fmt.Errorf(messages.GatewayRemoveFmt, path, err),
			}
		}
		removed = append(removed, name)
	}
	return removed, nil
}

// copyAll copies each name in order and stops at the first failure.
func (e *Executor) copyAll(op string, names []string) ([]string, error) {
	if len(names) == 0 {
		return []string{}, nil
	}
	if err := e.checkWritable(); err != nil {
		return nil, err
	}
	copied := make([]string, 0, len(names))
	for _, name := range names {
		if err := e.copyGateway(name); err != nil {
			return copied, &BatchError{Op: op, Done: copied, Name: name, Err: err}
		}
		copied = append(copied, name)
	}
	return copied, nil
}

// copyGateway copies one gateway and then restores its permission bits and modification time.
func (e *Executor) copyGateway(name string) error {
	src := filepath.Join(e.catalog.sourceDir, name)
	dst := filepath.Join(e.catalog.targetDir, name)
	e.trace(messages.GatewayTraceCopyFmt, src, dst)

	info, err := e.sys.Stat(src)
	if err != nil {
		return fmt.Errorf(messages.GatewayStatFmt, src, err)
	}
	in, err := e.sys.Open(src)
	if err != nil {
		return fmt.Errorf(messages.GatewayOpenFmt, src, err)
	}
	defer func() {
		_ = in.Close()
	}()

	// Opening dst truncates it, which would wipe src when both name the same file.
	if dstInfo, err := e.sys.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return fmt.Errorf(messages.GatewaySameFileFmt, ErrSameFile, src, dst)
	}

	out, err := e.sys.Create(dst, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf(messages.GatewayCreateFmt, dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf(messages.GatewayCopyFmt, src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf(messages.GatewayCopyFmt, src, dst, err)
	}

	// Create only applies perm to new files and is subject to umask.
	if err := e.sys.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf(messages.GatewayChmodFmt, dst, err)
	}
	if err := e.sys.Chtimes(dst, time.Time{}, info.ModTime()); err != nil {
		return fmt.Errorf(messages.GatewayChtimesFmt, dst, err)
	}
	return nil
}

func (e *Executor) checkWritable() error {
	if err := e.sys.Writable(e.catalog.targetDir); err != nil {
		return fmt.Errorf(messages.GatewayTargetWritableFmt, ErrTargetNotWritable, e.catalog.targetDir, err)
	}
	return nil
}

func (e *Executor) trace(format string, args ...any) {
	if e.logWriter == nil {
		return
	}
	_, _ = fmt.Fprintf(e.logWriter, format, args...)
}

// unique drops repeated names, keeping the first occurrence.
func unique(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// difference returns the names not present in set, in request order.
func difference(names []string, set []string) []string {
	var missing []string
	for _, name := range names {
		if !slices.Contains(set, name) {
			missing = append(missing, name)
		}
	}
	return missing
}
