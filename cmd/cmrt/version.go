package main

import (
	"fmt"

	"github.com/coreos/go-semver/semver"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"omibyte.io/cortexrt/builder"
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cmrt version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := semver.NewVersion(builder.Version)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "cmrt %s.%s.%s\n",
			versionMajorColor.Sprint(v.Major),
			versionMinorColor.Sprint(v.Minor),
			versionPatchColor.Sprint(v.Patch))
		return nil
	},
}
