package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/xig/internal/gateway"
	"github.com/conn-castle/xig/internal/messages"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:       messages.ListUse,
		Short:     messages.ListShort,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: append(gateway.ListKinds(), gateway.ListHelp),
		RunE: func(cmd *cobra.Command, args []string) error {
			executor, err := flags.executor(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			names, err := gateway.Dispatch(executor, gateway.CommandList, args)
			if err != nil {
				return err
			}
			if long && (len(args) == 0 || args[0] != gateway.ListHelp) {
				statuses, err := executor.Catalog().Statuses()
				if err != nil {
					return err
				}
				return printStatuses(out, statuses, names)
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, messages.ListFlagLong)
	return cmd
}

// printStatuses prints the status rows for names, aligned on the longest name.
func printStatuses(out io.Writer, statuses []gateway.Status, names []string) error {
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	for _, status := range statuses {
		if !slices.Contains(names, status.Name) {
			continue
		}
		label := messages.ListStatusNone
		switch {
		case status.Outdated:
			label = color.YellowString(messages.ListStatusOld)
		case status.Installed:
			label = color.GreenString(messages.ListStatusOK)
		}
		if _, err := fmt.Fprintf(out, messages.ListStatusFmt, width, status.Name, label); err != nil {
			return err
		}
	}
	return nil
}
