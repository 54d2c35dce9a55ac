// Package paths provides centralized path handling for dotfile-manager.
//
// It handles:
//
//   - Repository root discovery (explicit path, $DOTFILES, working directory)
//   - Home directory expansion of "~" destinations
//   - Locations of the generated artifacts (binary directory, source script)
//
// # Environment Variables
//
//   - DOTFILES: default repository root when no explicit path is given
//   - HOME: home directory used for "~" expansion
//
// # Generated layout
//
// With the default layout the generated artifacts live under the repository:
//
//	<root>/generated/bin/          flat symlinks to exported binaries
//	<root>/generated/sources.zsh   aggregate script sourcing project files
package paths
