package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the generated bindings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, src, _, err := opts.load(output)
			if err != nil {
				return err
			}
			if cfg.Output == "" {
				return errors.New("no output path configured")
			}
			if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", cfg.Output, err)
			}
			opts.log.WithField("output", cfg.Output).Info("bindings written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "override the configured output path")
	return cmd
}
