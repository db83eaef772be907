// Package main is the entry point for the loldash CLI tool, which loads a
// star-schema match-history export and computes player performance analytics.
package main

import "github.com/redgreenblue444/lol-dashboard/cmd"

func main() {
	cmd.Execute()
}
