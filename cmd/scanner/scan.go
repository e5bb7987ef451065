package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-scanner/internal/match"
	"resume-scanner/internal/scans"
)

type scanOptions struct {
	file           string
	jobDescription string
	jobFile        string
	explain        bool
}

type explainOutput struct {
	Scan      scans.ScanResponse `json:"scan"`
	Breakdown match.Result       `json:"breakdown"`
}

func newScanCmd(root *rootOptions) *cobra.Command {
	opts := &scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a resume file and print the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd, root, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Resume file (.pdf, .docx or .txt)")
	cmd.Flags().StringVarP(&opts.jobDescription, "job-description", "j", "", "Job description text")
	cmd.Flags().StringVar(&opts.jobFile, "job-file", "", "File containing the job description")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "Include the per-skill score breakdown")
	_ = cmd.MarkFlagRequired("file")
	cmd.MarkFlagsMutuallyExclusive("job-description", "job-file")
	return cmd
}

func runScan(cmd *cobra.Command, root *rootOptions, opts *scanOptions) error {
	data, err := os.ReadFile(opts.file)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}

	jd := opts.jobDescription
	if opts.jobFile != "" {
		raw, err := os.ReadFile(opts.jobFile)
		if err != nil {
			return fmt.Errorf("read job description: %w", err)
		}
		jd = string(raw)
	}

	svc, _, err := root.service(cmd)
	if err != nil {
		return err
	}

	report, err := svc.Scan(cmd.Context(), filepath.Base(opts.file), data, jd)
	if err != nil {
		return err
	}

	var out any = report.Response()
	if opts.explain {
		out = explainOutput{Scan: report.Response(), Breakdown: report.Match}
	}
	return writeJSON(cmd, out)
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
