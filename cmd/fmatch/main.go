// fmatch CLI - match JSON documents against structural patterns
package main

import "github.com/nene/f-matches/pkg/cli"

func main() {
	cli.Execute()
}
