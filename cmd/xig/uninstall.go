package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/xig/internal/gateway"
	"github.com/conn-castle/xig/internal/messages"
)

func newUninstallCmd(flags *rootFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:               messages.UninstallUse,
		Short:             messages.UninstallShort,
		ValidArgsFunction: completeGateways(flags, (*gateway.Catalog).ListInstalled),
		RunE: func(cmd *cobra.Command, args []string) error {
			executor, err := flags.executor(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 && !yes && isTerminal() {
				proceed, err := confirmUninstallAll(executor)
				if err != nil {
					return err
				}
				if !proceed {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), messages.UninstallCancelled)
					return &SilentExitError{Code: 1}
				}
			}
			return runMutation(cmd.OutOrStdout(), executor, gateway.CommandUninstall, messages.ResultUninstalledFmt, args)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, messages.UninstallFlagYes)
	return cmd
}

// confirmUninstallAll asks before removing every installed gateway.
// Nothing installed means nothing to confirm.
func confirmUninstallAll(executor *gateway.Executor) (bool, error) {
	installed, err := executor.Catalog().ListInstalled()
	if err != nil {
		return false, err
	}
	if len(installed) == 0 {
		return true, nil
	}
	prompt := fmt.Sprintf(messages.UninstallAllPromptFmt, len(installed), executor.Catalog().TargetDir())
	return newConfirmer().Confirm(prompt)
}
