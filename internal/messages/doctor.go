package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the gateway source, target directory, and configuration"

	DoctorHealthCheckFmt = "Checking xig setup...\n"

	DoctorCheckNameConfig   = "Config"
	DoctorCheckNameSource   = "Source"
	DoctorCheckNameTarget   = "Target"
	DoctorCheckNameGateways = "Gateways"

	DoctorConfigLoadFailedFmt = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend = "Check config.toml and .env under $XDG_CONFIG_HOME/xig, the XIG_* environment, and the --target/--gateway flags."
	DoctorConfigLoaded        = "Configuration loaded successfully"

	DoctorSourceMissing          = "No gateway source configured or detected"
	DoctorSourceMissingRecommend = "Install the net-irc gem, or pass --gateway DIR (or set XIG_GATEWAY_DIR)."
	DoctorSourceNotDirFmt        = "Gateway source is not a directory: %s"
	DoctorSourceFoundFmt         = "Gateway source: %s"

	DoctorTargetMissingFmt           = "Target directory does not exist: %s"
	DoctorTargetMissingRecommend     = "Create the directory or pass --target DIR (or set XIG_TARGET_DIR)."
	DoctorTargetNotWritableFmt       = "Target directory is not writable: %s"
	DoctorTargetNotWritableRecommend = "Re-run with sufficient permissions or choose a writable --target."
	DoctorTargetFoundFmt             = "Target directory: %s"
	DoctorGatewaysFailedFmt          = "Failed to inspect gateways: %v"
	DoctorGatewaysNone               = "No gateways found in the source directory"
	DoctorGatewaysNoneRecommend      = "Gateway scripts are named *ig.rb; check that --gateway points at the net-irc examples directory."
	DoctorGatewaysSummaryFmt         = "%d available, %d installed"
	DoctorGatewaysOutdatedFmt        = "%d installed gateways are outdated: %s"
	DoctorGatewaysOutdatedRecommend  = "Run `xig upgrade` to sync them, or `xig diff` to review the changes first."

	DoctorFailureSummary = "Some checks failed. Please address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "All checks passed."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       -> "
	DoctorRecommendationIndent = "          "
)
