// Command scanner runs resume scans from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-scanner/internal/bootstrap"
	"resume-scanner/internal/scans"
	"resume-scanner/internal/shared/config"
	"resume-scanner/internal/shared/telemetry"
	"resume-scanner/internal/taxonomy"
)

type rootOptions struct {
	taxonomyFile string
	nlp          bool
	logLevel     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "scanner",
		Short:         "Resume skill scanner",
		Long:          "Extracts skills from PDF, DOCX or TXT resumes and scores them against a job description.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !telemetry.SetLevel(opts.logLevel) {
				return fmt.Errorf("unknown log level %q", opts.logLevel)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.taxonomyFile, "taxonomy", "", "YAML taxonomy file (overrides TAXONOMY_FILE)")
	cmd.PersistentFlags().BoolVar(&opts.nlp, "nlp", true, "Collect candidate terms with the entity and noun pass (overrides NLP_ENABLED)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "Log level: debug, info, warn or error")

	cmd.AddCommand(newScanCmd(opts), newTaxonomyCmd(opts))
	return cmd
}

// loadConfig applies flag overrides on top of the environment.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if o.taxonomyFile != "" {
		cfg.TaxonomyFile = o.taxonomyFile
	}
	if cmd.Flags().Changed("nlp") {
		cfg.NLPEnabled = o.nlp
	}
	return cfg, nil
}

func (o *rootOptions) service(cmd *cobra.Command) (*scans.Service, *taxonomy.Taxonomy, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	return bootstrap.BuildService(cfg)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
