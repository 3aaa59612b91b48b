// Package cli implements the fmatch command line: matching JSON documents
// against the named patterns of a catalog.
//
// Commands are cobra commands registered on a shared root in their init
// functions. Main runs the root command and maps the outcome to an exit
// status: 0 when everything matched, 1 when an input did not match, 2 on
// errors.
package cli
