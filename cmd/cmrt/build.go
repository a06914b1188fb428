package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"omibyte.io/cortexrt/builder"
)

var (
	buildOpts = struct {
		config string
		device string
		outDir string
		target string
		root   string
		jobs   int
		force  bool
	}{}

	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Assemble the runtime and compose the linker script",
		Long: `Assemble the runtime for a device and write arm.s, libarm.a and link.x to the
output directory. The directives for the firmware build are printed to stdout.

Settings are taken from flags, then the environment (DEVICE, OUT_DIR, TARGET,
CC, AR, CMRTROOT), then cmrt.toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := builder.LoadConfig(buildOpts.config)
			if err != nil {
				return err
			}

			opts, err := builder.NewOptions(cfg, builder.Environment())
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("device") {
				opts.Device = buildOpts.device
			}
			if flags.Changed("out-dir") {
				opts.OutDir = buildOpts.outDir
			}
			if flags.Changed("target") {
				opts.Target = buildOpts.target
			}
			if flags.Changed("root") {
				opts.Root = buildOpts.root
			}
			if flags.Changed("jobs") {
				opts.Jobs = buildOpts.jobs
			}
			opts.Force = buildOpts.force

			result, err := builder.Build(cmd.Context(), opts)
			if err != nil {
				return err
			}

			for _, line := range result.Directives() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
)

func init() {
	buildCmd.Flags().StringVarP(&buildOpts.config, "config", "c", builder.ConfigFile, "project configuration file")
	buildCmd.Flags().StringVarP(&buildOpts.device, "device", "d", "", "target device (default "+builder.DefaultDevice+")")
	buildCmd.Flags().StringVarP(&buildOpts.outDir, "out-dir", "o", "", "output directory")
	buildCmd.Flags().StringVar(&buildOpts.target, "target", "", "firmware target triple")
	buildCmd.Flags().StringVar(&buildOpts.root, "root", "", "read asm/ and devices/ from this directory instead of the embedded copies")
	buildCmd.Flags().IntVarP(&buildOpts.jobs, "jobs", "j", 0, "number of concurrent build steps")
	buildCmd.Flags().BoolVarP(&buildOpts.force, "force", "f", false, "rebuild even when the outputs are up to date")
}
