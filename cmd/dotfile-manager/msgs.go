package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Install and wire up a repository of dotfile projects"
	MsgInstallShort    = "Run the install scripts of one or all projects"
	MsgSetupShort      = "Create symlinks, export binaries and generate the source script"
	MsgListShort       = "List the projects of the repository"
	MsgConfigShort     = "Print the effective repository settings"
	MsgDocsShort       = "Show the dotfile_manager.yaml reference"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDotfiles       = "Repository root (default $DOTFILES, then the current directory)"
	MsgFlagOS             = "Operating system to resolve configs for (default: detected)"
	MsgFlagNoColor        = "Disable colored output"
	MsgFlagVerboseScripts = "Stream install script output instead of capturing it"

	MsgProjectsHeader = "Projects in %s (%s)"
	MsgNoProjects     = "no projects found"
	MsgProjectEnabled = "%s"
	MsgProjectOff     = "%s (disabled)"
	MsgProjectReqs    = "%s requires %s"
	MsgConfigComment  = "# repository: %s\n# settings: %s\n# os: %s\n\n"
	MsgVersionFormat  = "{{.Name}} {{.Version}}\n"

	MsgErrorFormat = "Error: %v"
	MsgErrorDetail = "  %s: %v\n"
)

// Long messages
var (
	MsgRootLong = strings.TrimSpace(`
dotfile-manager installs a repository of dotfile projects.

Every immediate subdirectory of the repository that contains a
dotfile_manager.yaml is a project. A project can run install scripts,
link files into place, export binaries into generated/bin and contribute
files to generated/sources.zsh. Each of these can be declared once for all
operating systems or separately per operating system.

Run "dotfile-manager docs" for the config file reference.`)

	MsgInstallLong = strings.TrimSpace(`
Install runs the install scripts configured for the current operating system.

Without an argument every enabled project is installed in alphabetical
order, stopping at the first failing script. With a project name only that
project is installed. Disabled projects are skipped.`)

	MsgSetupLong = strings.TrimSpace(`
Setup wires every enabled project into the system, in three steps:

  1. create the configured symlinks, replacing existing files
  2. rebuild generated/bin with links to the configured binaries
  3. regenerate generated/sources.zsh with the configured source files

Source the generated script from your shell's rc file and add the bin
directory to PATH.`)

	//go:embed docs/config-format.md
	MsgConfigFormat string
)
