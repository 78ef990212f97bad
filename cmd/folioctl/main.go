// Package main provides folioctl, a terminal client for the portfolio
// backend. It drives the same contact, meeting, and chat endpoints the
// web frontend uses, keeping drafts and saved contact info on disk
// between invocations.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
