package messages

// Gateway catalog and executor messages.
const (
	// GatewayDirectoryNotFound is the ErrDirectoryNotFound sentinel text.
	GatewayDirectoryNotFound  = "directory not found"
	GatewaySourceNotAvailable = "gateway source is not available (net-irc is not installed; use --gateway DIR)"
	GatewayInvalidTarget      = "gateway not available"
	GatewayNotInstalled       = "gateway not installed"
	GatewayCommandNotExist    = "command does not exist"
	GatewayTargetNotWritable  = "target directory is not writable"
	GatewaySameFile           = "source and destination are the same file"

	GatewaySystemRequired     = "gateway system is required"
	GatewayTargetDirRequired  = "target directory is required"
	GatewayDirectoryFmt       = "%w: %s"
	GatewayNamesFmt           = "%s: %s"
	GatewayBatchFmt           = "%s %s: %v"
	GatewayCommandNotExistFmt = "%w: %s"

	GatewayListDirFmt        = "failed to list %s: %w"
	GatewayStatFmt           = "failed to stat %s: %w"
	GatewayReadFmt           = "failed to read %s: %w"
	GatewayOpenFmt           = "failed to open %s: %w"
	GatewayCreateFmt         = "failed to create %s: %w"
	GatewayCopyFmt           = "failed to copy %s to %s: %w"
	GatewayChmodFmt          = "failed to set permissions on %s: %w"
	GatewayChtimesFmt        = "failed to set modification time on %s: %w"
	GatewayRemoveFmt         = "failed to remove %s: %w"
	GatewaySameFileFmt       = "%w: %s and %s"
	GatewayTargetWritableFmt = "%w: %s: %v"

	// GatewayTraceCopyFmt echoes a copy in verbose mode.
	GatewayTraceCopyFmt   = "cp -p %s %s\n"
	GatewayTraceRemoveFmt = "rm %s\n"

	GatewayOpInstall   = "install"
	GatewayOpUpgrade   = "upgrade"
	GatewayOpUninstall = "uninstall"
)
