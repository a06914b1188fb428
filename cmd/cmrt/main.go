package main

import (
	"flag"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"k8s.io/klog"

	"omibyte.io/cortexrt/builder"
)

var rootCmd = &cobra.Command{
	Use:   "cmrt",
	Short: "Cortex-M runtime build tool",
	Long: `cmrt prepares the Cortex-M runtime for a firmware build: it assembles the
runtime's assembly sources into libarm.a and composes the link.x linker script
for the selected device.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	klog.InitFlags(nil)
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.Version = builder.Version
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(versionCmd)

	err := rootCmd.Execute()
	klog.Flush()
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
