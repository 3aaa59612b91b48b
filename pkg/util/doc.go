// Package util provides small string helpers shared by the fmatch CLI.
//
//   - Truncate caps captured values for one-line text output
package util
