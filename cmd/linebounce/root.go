package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/linebounce/config"
)

type rootOptions struct {
	configFile string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	v := viper.New()

	root := &cobra.Command{
		Use:           "linebounce",
		Short:         "Circles fall under gravity and bounce off a grid of rotating lines",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v, opts)
			if err != nil {
				return err
			}
			return runSimulation(cmd.Context(), cfg)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (default is ./linebounce.yaml when present)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable file logging at debug level and fail fast on physics faults")
	root.PersistentFlags().Int64("seed", 0, "seed for initial segment angles, 0 picks one per run")

	root.AddCommand(newConfigCmd(v, opts))
	return root
}

func newConfigCmd(v *viper.Viper, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v, opts)
			if err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

// loadConfig layers defaults, file, environment, then flags
func loadConfig(cmd *cobra.Command, v *viper.Viper, opts *rootOptions) (*config.Config, error) {
	if err := config.Prepare(v, opts.configFile); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("seed", cmd.Flags().Lookup("seed")); err != nil {
		return nil, err
	}
	if opts.debug {
		v.Set("log.enabled", true)
		v.Set("log.level", "debug")
		v.Set("physics.strict", true)
	}
	return config.NewConfigFromViper(v)
}
