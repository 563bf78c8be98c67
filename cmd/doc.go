// SPDX-License-Identifier: MIT

// Package cmd builds the lae command line.
//
//	lae [flags] <threads> <input> <output>
//
// Flags may also come from LAE_* environment variables or a TOML file given
// with --config; an explicit flag wins over the environment, which wins over
// the file.
package cmd
