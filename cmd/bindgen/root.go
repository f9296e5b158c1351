package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jamesprial/jianshu-mcp/internal/config"
	"github.com/jamesprial/jianshu-mcp/internal/logging"
	"github.com/jamesprial/jianshu-mcp/internal/projector"
)

type rootOptions struct {
	configPath string
	logLevel   string
	log        *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "bindgen",
		Short:         "Generate Go bindings for the Jianshu GraphQL operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.log = logging.NewWithWriter(config.LogConfig{Level: opts.logLevel, Format: "text"}, cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "bindgen.yaml", "bindgen config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug|info|warn|error")

	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newDocumentCmd(opts))
	return cmd
}

// load reads the config and renders the bindings. A non-empty output
// overrides the configured output path.
func (o *rootOptions) load(output string) (*projector.Config, []byte, *projector.Package, error) {
	cfg, err := projector.LoadConfig(o.configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if output != "" {
		cfg.Output = output
	}
	src, pkg, err := projector.Generate(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	o.log.WithFields(logrus.Fields{
		"operations": len(pkg.Operations),
		"fragments":  len(pkg.Fragments),
		"enums":      len(pkg.Enums),
	}).Debug("projected bindings")
	return cfg, src, pkg, nil
}
