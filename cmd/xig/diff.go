package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/xig/internal/gateway"
	"github.com/conn-castle/xig/internal/messages"
)

func newDiffCmd(flags *rootFlags) *cobra.Command {
	var maxLines int

	cmd := &cobra.Command{
		Use:               messages.DiffUse,
		Short:             messages.DiffShort,
		ValidArgsFunction: completeGateways(flags, (*gateway.Catalog).ListInstalled),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxLines < 0 {
				return errors.New(messages.DiffNegativeLines)
			}
			settings, err := flags.settings(cmd)
			if err != nil {
				return err
			}
			if maxLines > 0 {
				settings.DiffMaxLines = maxLines
			}
			executor, err := newExecutor(cmd, settings)
			if err != nil {
				return err
			}
			previews, err := executor.Diff(args)
			if err != nil {
				return withSuggestions(err, executor.Catalog())
			}
			return printDiffs(cmd.OutOrStdout(), previews)
		},
	}
	cmd.Flags().IntVar(&maxLines, "diff-lines", 0, messages.DiffFlagMaxLines)
	return cmd
}

func printDiffs(out io.Writer, previews []gateway.DiffPreview) error {
	if len(previews) == 0 {
		_, err := fmt.Fprintln(out, messages.DiffNothing)
		return err
	}
	for _, preview := range previews {
		if preview.UnifiedDiff == "" {
			if _, err := fmt.Fprintf(out, messages.DiffIdenticalFmt, preview.Name); err != nil {
				return err
			}
			continue
		}
		for _, line := range strings.SplitAfter(preview.UnifiedDiff, "\n") {
			if line == "" {
				continue
			}
			if _, err := fmt.Fprint(out, colorDiffLine(line)); err != nil {
				return err
			}
		}
		if preview.Truncated {
			if _, err := fmt.Fprintln(out, color.YellowString(messages.DiffTruncated)); err != nil {
				return err
			}
		}
	}
	return nil
}

func colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return color.New(color.Bold).Sprint(line)
	case strings.HasPrefix(line, "@@"):
		return color.CyanString("%s", line)
	case strings.HasPrefix(line, "+"):
		return color.GreenString("%s", line)
	case strings.HasPrefix(line, "-"):
		return color.RedString("%s", line)
	default:
		return line
	}
}
