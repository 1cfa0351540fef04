package gateway

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/xig/internal/messages"
)

// DefaultDiffMaxLines is the default maximum number of diff lines shown per gateway.
const DefaultDiffMaxLines = 40

// DiffPreview is a unified diff from the installed copy of a gateway to its source copy.
// UnifiedDiff is empty when only the timestamps differ.
type DiffPreview struct {
	Name        string
	UnifiedDiff string
	Truncated   bool
}

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

// Diff renders previews for the named installed gateways, or for every outdated
// installed gateway when names is empty. Names that are not installed are rejected
// with a NamesError wrapping ErrNotInstalled before anything is read.
func (e *Executor) Diff(names []string) ([]DiffPreview, error) {
	var targets []string
	if len(names) == 0 {
		updatable, err := e.catalog.ListUpdatable()
		if err != nil {
			return nil, err
		}
		targets = updatable
	} else {
		installed, err := e.catalog.ListInstalled()
		if err != nil {
			return nil, err
		}
		targets = unique(names)
		if missing := difference(targets, installed); len(missing) > 0 {
			return nil, &NamesError{Kind: ErrNotInstalled, Names: missing}
		}
	}

	previews := make([]DiffPreview, 0, len(targets))
	for _, name := range targets {
		preview, err := e.diffOne(name)
		if err != nil {
			return nil, err
		}
		previews = append(previews, preview)
	}
	return previews, nil
}

func (e *Executor) diffOne(name string) (DiffPreview, error) {
	installedPath := filepath.Join(e.catalog.targetDir, name)
	sourcePath := filepath.Join(e.catalog.sourceDir, name)
	installed, err := e.sys.ReadFile(installedPath)
	if err != nil {
		return DiffPreview{}, fmt.Errorf(messages.GatewayReadFmt, installedPath, err)
	}
	source, err := e.sys.ReadFile(sourcePath)
	if err != nil {
		return DiffPreview{}, fmt.Errorf(messages.GatewayReadFmt, sourcePath, err)
	}
	rendered, truncated := renderTruncatedUnifiedDiff(installedPath, sourcePath, string(installed), string(source), e.diffMaxLines)
	return DiffPreview{
		Name:        name,
		UnifiedDiff: rendered,
		Truncated:   truncated,
	}, nil
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizeDiffMaxLines(maxLines)
	lines := splitDiffLines(udiff.Unified(fromName, toName, fromContent, toContent))
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	return ensureTrailingNewline(strings.Join(lines[:limit], "\n")), true
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
