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

func newInstallCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:               messages.InstallUse,
		Short:             messages.InstallShort,
		ValidArgsFunction: completeGateways(flags, (*gateway.Catalog).ListAvailable),
		RunE: func(cmd *cobra.Command, args []string) error {
			executor, err := flags.executor(cmd)
			if err != nil {
				return err
			}
			return runMutation(cmd.OutOrStdout(), executor, gateway.CommandInstall, messages.ResultInstalledFmt, args)
		},
	}
}

func newUpgradeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:               messages.UpgradeUse,
		Short:             messages.UpgradeShort,
		ValidArgsFunction: completeGateways(flags, (*gateway.Catalog).ListUpdatable),
		RunE: func(cmd *cobra.Command, args []string) error {
			executor, err := flags.executor(cmd)
			if err != nil {
				return err
			}
			return runMutation(cmd.OutOrStdout(), executor, gateway.CommandUpgrade, messages.ResultUpgradedFmt, args)
		},
	}
}

// runMutation dispatches a mutating command and reports the names it acted upon.
// On a mid-batch failure the completed names are still printed before the error is returned.
func runMutation(out io.Writer, executor *gateway.Executor, command string, resultFmt string, args []string) error {
	done, err := gateway.Dispatch(executor, command, args)
	if perr := printResults(out, command, resultFmt, done, err == nil); perr != nil {
		return perr
	}
	if err != nil {
		return withSuggestions(err, executor.Catalog())
	}
	return nil
}

func printResults(out io.Writer, command string, resultFmt string, names []string, succeeded bool) error {
	if len(names) == 0 {
		if !succeeded {
			return nil
		}
		_, err := fmt.Fprintf(out, messages.ResultNothingFmt, command)
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprint(out, color.GreenString(resultFmt, name)); err != nil {
			return err
		}
	}
	return nil
}

// completeGateways offers shell completions from a catalog query.
func completeGateways(flags *rootFlags, list func(*gateway.Catalog) ([]string, error)) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		executor, err := flags.executor(cmd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		names, err := list(executor.Catalog())
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		candidates := make([]string, 0, len(names))
		for _, name := range names {
			if !slices.Contains(args, name) {
				candidates = append(candidates, name)
			}
		}
		return candidates, cobra.ShellCompDirectiveNoFileComp
	}
}
