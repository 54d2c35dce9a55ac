// Package project implements the operations of a single dotfile project:
// running its install scripts, linking its files into place, exporting its
// binaries and collecting the shell files it wants sourced.
//
// Every operation reads the config resolved for the operating system the
// project was loaded with. An absent or empty key means there is nothing to
// do, which is reported but is not an error.
package project
