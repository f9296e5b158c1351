package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errStale is returned by check when the file on disk differs from a fresh
// generation.
var errStale = errors.New("generated bindings are out of date")

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fail if the generated bindings on disk are out of date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, src, _, err := opts.load(output)
			if err != nil {
				return err
			}
			current, err := os.ReadFile(cfg.Output)
			if err != nil {
				return fmt.Errorf("read %s: %w", cfg.Output, err)
			}
			if !bytes.Equal(current, src) {
				return fmt.Errorf("%s: %w; run bindgen generate", cfg.Output, errStale)
			}
			opts.log.WithField("output", cfg.Output).Info("bindings up to date")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "override the configured output path")
	return cmd
}
