// Package config handles configuration for dotfile-manager.
//
// Two kinds of configuration live here:
//
//   - ProjectConfig: the per-project dotfile_manager.yaml, resolved against
//     the selected operating system. Every field may be given generically or
//     keyed by OS name, e.g.
//
//     install:
//     macos: [install_macos.sh]
//     ubuntu: [install_ubuntu.sh]
//
//   - Settings: repository-wide settings (generated artifact layout, shell
//     dialect) loaded with koanf from embedded defaults, the optional
//     .dotfile_manager.toml at the repository root and DOTFILE_MANAGER_*
//     environment variables.
package config
