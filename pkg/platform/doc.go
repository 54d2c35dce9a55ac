// Package platform identifies the operating system projects are resolved
// against.
//
// Identifiers are the keys used in dotfile_manager.yaml: "macos" on Darwin,
// the os-release ID on Linux ("ubuntu", "debian", "arch", ...), and the Go
// GOOS value elsewhere.
package platform
