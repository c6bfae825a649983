package scaffer

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate files from naming-convention templates"
	MsgGenerateShort   = "Render a template into the current directory"
	MsgListShort       = "List available templates"
	MsgShowShort       = "Show a template's variables and README"
	MsgAddShort        = "Add a directory to the global template roots"
	MsgSetupShort      = "Create a scaffer.json in the current directory"
	MsgPullShort       = "Fetch remote templates into the cache"
	MsgBarrelShort     = "Write an index.ts re-exporting a directory"
	MsgGitignoreShort  = "Write a standard .gitignore"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgSelectTemplate = "Select a template"
	MsgNoTemplates    = "No templates found. Run 'scaffer setup' to configure template directories."
	MsgSetupStart     = "Setting up scaffer configuration..."
	MsgDownloading    = "Downloading template from %s..."
	MsgManWritten     = "Man pages written to %s"

	// Error messages
	MsgErrNoTemplate   = "no template given and no terminal to choose one"
	MsgErrWriteFailed  = "%d file(s) could not be written"
	MsgErrPullFailed   = "%d template(s) could not be pulled"
	MsgErrNoCommand    = "no command specified"
	MsgErrUnknownShell = "unknown shell: %s"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (--verbose INFO, twice DEBUG, three times TRACE)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagConfig   = "Global config file (default ~/.scaffer.json)"
	MsgFlagVar      = "Set a variable, key=value (repeatable)"
	MsgFlagForce    = "Overwrite existing files"
	MsgFlagDry      = "Show what would be written without writing"
	MsgFlagPrefix   = "Placeholder prefix (default from config, else scf)"
	MsgFlagOut      = "Destination directory"
	MsgFlagNoInput  = "Never prompt; fail when a variable has no value"
	MsgFlagRefresh  = "Download remote templates even when cached"
	MsgFlagTOML     = "Write scaffer.toml instead of scaffer.json"
	MsgFlagGitForce = "Replace an existing .gitignore"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/pull-long.txt
	msgPullLongRaw string
	MsgPullLong    = strings.TrimSpace(msgPullLongRaw)

	//go:embed msgs/setup-long.txt
	msgSetupLongRaw string
	MsgSetupLong    = strings.TrimSpace(msgSetupLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
