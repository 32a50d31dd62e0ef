package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gopatterns/internal/demo"
	"gopatterns/logging"
	"gopatterns/patterns/factory"
)

func newCommandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "command",
		Short: "Drive a grid robot through an invoker with undo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.RunCommand(cmd.OutOrStdout(), logging.GetLogger())
		},
	}
}

func newFactoryCmd() *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "factory",
		Short: "Print the products of the selected factories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]factory.FactoryID, 0, len(names))
			for _, name := range names {
				id, err := factory.ParseFactoryID(name)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			return demo.RunFactory(cmd.OutOrStdout(), ids...)
		},
	}
	cmd.Flags().StringSliceVar(&names, "id", factory.FactoryIDNames, "factories to run, in order (A, B)")
	return cmd
}

type stateFlags struct {
	presses int
	seed    uint64
}

func (f *stateFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.presses, "presses", demo.DefaultConfig().Presses, "number of button presses")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed for the die (overrides "+demo.EnvDiceSeed+")")
}

// config 默认值 < 环境变量 < 命令行参数
func (f *stateFlags) config(cmd *cobra.Command) (demo.Config, error) {
	cfg := demo.DefaultConfig()
	if err := cfg.LoadFromEnv(nil); err != nil {
		return cfg, err
	}
	cfg.Presses = f.presses
	if cmd.Flags().Changed("seed") {
		cfg.Seed, cfg.HasSeed = f.seed, true
	}
	return cfg, nil
}

func newStateCmd() *cobra.Command {
	var flags stateFlags

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Press the single button of an electronic die",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			return demo.RunState(cmd.Context(), cmd.OutOrStdout(), cfg, cfg.RandomSource(), logging.GetLogger())
		},
	}
	flags.register(cmd)
	return cmd
}

func newAllCmd() *cobra.Command {
	var flags stateFlags

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every demo in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "== command")
			if err := demo.RunCommand(out, logging.GetLogger()); err != nil {
				return err
			}
			fmt.Fprintln(out, "== state")
			if err := demo.RunState(cmd.Context(), out, cfg, cfg.RandomSource(), logging.GetLogger()); err != nil {
				return err
			}
			fmt.Fprintln(out, "== factory")
			return demo.RunFactory(out)
		},
	}
	flags.register(cmd)
	return cmd
}
