// Package cli implements the etdoc command: parsing flags, validating user
// input, reading files or stdin and mapping failures to exit codes. Every
// subcommand is a thin layer over the etdoc package.
package cli
