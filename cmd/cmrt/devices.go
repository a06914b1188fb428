package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"omibyte.io/cortexrt/builder"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the supported devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, name := range builder.Devices() {
			dev, err := builder.LookupDevice(name)
			if err != nil {
				return err
			}
			desc := dev.Describe()
			fpu := "soft-float"
			if desc.FPU {
				fpu = "fpu"
			}
			fmt.Fprintf(w, "%-12s %-22s %-8s %s\n", desc.Name, desc.ABI, desc.Target, fpu)
		}
		return nil
	},
}
