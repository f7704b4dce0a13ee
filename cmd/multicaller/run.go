package main

import (
	"github.com/0xsequence/multicaller"
	"github.com/0xsequence/multicaller/config"
	"github.com/0xsequence/multicaller/encoder"
	"github.com/spf13/cobra"
)

func NewRootCmd(options ...encoder.Option) *cobra.Command {
	run := &run{options: options}
	cmd := &cobra.Command{
		Use:   "multicaller",
		Short: "Encode the multi_contract_caller constructor from the accumulator, subber and adder build artifacts",
		Long: "multicaller " + version() + "\n\n" +
			"Reads source.hash from <directory>/{accumulator,subber,adder}/*.json and runs\n" +
			"`cargo contract encode` for <directory>/multi_contract_caller.json.\n\n" +
			"Environment: MULTICALLER_DIRECTORY, MULTICALLER_TOOL, MULTICALLER_LOG_LEVEL",
		Args: cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run.Run,
	}

	cmd.Flags().String(config.DirectoryField, config.DefaultDirectory, "base directory containing the contract build artifacts")

	return cmd
}

type run struct {
	options []encoder.Option
}

func (c *run) Run(cmd *cobra.Command, args []string) error {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	log := cfg.Logger()
	if _, err := cfg.Level(); err != nil {
		log.Warnf("%v, using %s", err, config.DefaultLogLevel)
	}

	options := []encoder.Option{
		encoder.WithTool(cfg.Tool),
		encoder.WithLogger(log),
		encoder.WithRunner(&encoder.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}),
	}
	options = append(options, c.options...)

	// The outcome is advisory only, every failure has already been printed.
	multicaller.Run(cmd.Context(), cmd.OutOrStdout(), multicaller.Options{
		Directory: cfg.Directory,
		Encoder:   encoder.NewEncoder(cfg.Directory, options...),
		Logger:    log,
	})
	return nil
}
