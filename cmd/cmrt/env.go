package main

import (
	"github.com/spf13/cobra"

	"omibyte.io/cortexrt/builder"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the build environment",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		builder.Environment().Print()
	},
}
