package main

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/xig/internal/config"
	"github.com/conn-castle/xig/internal/gateway"
	"github.com/conn-castle/xig/internal/messages"
	"github.com/conn-castle/xig/internal/source"
	"github.com/conn-castle/xig/internal/terminal"
)

var (
	configSystem   config.System  = config.RealSystem{}
	gatewaySystem  gateway.System = gateway.RealSystem{}
	sourceResolver                = func() source.Resolver {
		return source.GemResolver{System: source.RealSystem{}}
	}
	defaultTargetDir = func(ctx context.Context) string {
		return source.DefaultTargetDir(ctx, source.RealSystem{})
	}
	isTerminal   = terminal.IsInteractive
	newConfirmer = func() terminal.Confirmer { return terminal.NewHuhConfirmer() }
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	target  string
	gateway string
	config  string
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.target, "target", "t", "", messages.FlagTarget)
	pf.StringVarP(&flags.gateway, "gateway", "g", "", messages.FlagGateway)
	pf.StringVar(&flags.config, "config", "", messages.FlagConfig)
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, messages.FlagVerbose)
	pf.BoolVar(&flags.noColor, "no-color", false, messages.FlagNoColor)

	cmd.AddCommand(
		newListCmd(flags),
		newInstallCmd(flags),
		newUpgradeCmd(flags),
		newUninstallCmd(flags),
		newDiffCmd(flags),
		newDoctorCmd(flags),
		newVersionCmd(),
	)
	return cmd
}

// settings resolves the configuration layers for one invocation and applies the color choice.
func (f *rootFlags) settings(cmd *cobra.Command) (config.Settings, error) {
	settings, err := config.Resolve(commandContext(cmd), config.Options{
		Overrides: config.Overrides{
			TargetDir:  f.target,
			GatewayDir: f.gateway,
			ConfigPath: f.config,
			Verbose:    f.verbose,
			NoColor:    f.noColor,
		},
		System:           configSystem,
		Resolver:         sourceResolver(),
		DefaultTargetDir: defaultTargetDir,
	})
	if err != nil {
		return config.Settings{}, err
	}
	if !settings.Color {
		color.NoColor = true
	}
	return settings, nil
}

// executor builds a gateway executor from the resolved settings.
// Verbose mode traces file operations to stderr.
func (f *rootFlags) executor(cmd *cobra.Command) (*gateway.Executor, error) {
	settings, err := f.settings(cmd)
	if err != nil {
		return nil, err
	}
	return newExecutor(cmd, settings)
}

func newExecutor(cmd *cobra.Command, settings config.Settings) (*gateway.Executor, error) {
	opts := gateway.Options{
		SourceDir:    settings.GatewayDir,
		TargetDir:    settings.TargetDir,
		DiffMaxLines: settings.DiffMaxLines,
		System:       gatewaySystem,
	}
	if settings.Verbose {
		opts.LogWriter = cmd.ErrOrStderr()
	}
	return gateway.NewExecutor(opts)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
