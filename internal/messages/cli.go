package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "xig"
	// RootShort is the short description for the root command.
	RootShort = "Install net-irc gateway scripts"
	RootLong  = "Discover, install, upgrade, and uninstall gateway scripts (*ig.rb) from a gateway source directory into a target directory."

	FlagTarget  = "target directory"
	FlagGateway = "gateway source directory"
	FlagConfig  = "path to config.toml (default $XDG_CONFIG_HOME/xig/config.toml)"
	FlagVerbose = "Print each file copy and removal"
	FlagNoColor = "Disable colored output"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Name}} ver.{{.Version}}\n"
	VersionFmt       = "%s ver.%s\n"

	VersionUse   = "version"
	VersionShort = "Print version and exit"

	// ListUse is the list command usage.
	ListUse        = "list [available|installed|update]"
	ListShort      = "show gateway list"
	ListFlagLong   = "Show install and update status for each gateway"
	ListStatusFmt  = "%-*s  %s\n"
	ListStatusNone = "-"
	ListStatusOK   = "installed"
	ListStatusOld  = "outdated"

	InstallUse   = "install [gateway...]"
	InstallShort = "install specified or all gateways"

	UpgradeUse   = "upgrade [gateway...]"
	UpgradeShort = "upgrade specified or all gateways if need"

	UninstallUse     = "uninstall [gateway...]"
	UninstallShort   = "uninstall specified or all gateways"
	UninstallFlagYes = "Uninstall every installed gateway without prompting"
	// UninstallAllPromptFmt asks before removing every installed gateway.
	UninstallAllPromptFmt = "Uninstall all %d installed gateways from %s?"
	UninstallCancelled    = "Uninstall cancelled."

	DiffUse           = "diff [gateway...]"
	DiffShort         = "show differences between installed and source gateways"
	DiffFlagMaxLines  = "Maximum diff lines shown per gateway"
	DiffIdenticalFmt  = "%s: contents identical (timestamps differ)\n"
	DiffTruncated     = "... diff truncated; re-run with --diff-lines N to see more"
	DiffNothing       = "All installed gateways are up to date."
	DiffNegativeLines = "--diff-lines must not be negative"

	// ResultInstalledFmt reports a gateway copied into the target directory.
	ResultInstalledFmt   = "installed %s\n"
	ResultUpgradedFmt    = "upgraded %s\n"
	ResultUninstalledFmt = "uninstalled %s\n"
	ResultNothingFmt     = "Nothing to %s.\n"

	// ErrorSuggestionFmt appends fuzzy-matched suggestions to name errors.
	ErrorSuggestionFmt = "%s (did you mean %s?)"

	// PromptRequiresTerminal indicates a confirmation could not be shown.
	PromptRequiresTerminal = "confirmation requires an interactive terminal; re-run with --yes"
)
