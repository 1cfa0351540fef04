package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/xig/internal/messages"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.VersionUse,
		Short: messages.VersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), messages.VersionFmt, cmd.Root().Name(), versionString())
			return err
		},
	}
}
