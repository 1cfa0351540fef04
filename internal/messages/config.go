package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt    = "missing config file %s: %w"
	ConfigReadFileFmt       = "failed to read config file %s: %w"
	ConfigInvalidConfigFmt  = "invalid config %s: %w"
	ConfigUnknownKeysFmt    = "config %s contains unrecognized keys: %w"
	ConfigInvalidEnvFileFmt = "invalid env file %s: %w"
	ConfigInvalidBoolFmt    = "invalid %s value %q: %w"
	ConfigResolveHomeFmt    = "resolve home dir: %w"
	ConfigExpandPathFmt     = "expand path %s: %w"
	ConfigDirectoryFmt      = "%w: %s"
	ConfigNotDirectoryFmt   = "%w: %s is not a directory"
	ConfigResolveSourceFmt  = "resolve gateway source: %w"
	ConfigNegativeDiffLines = "output.diff_max_lines must not be negative"
	ConfigSystemRequired    = "config system is required"
)
