package scans

import (
	"context"
	"time"
	"unicode/utf8"

	"resume-scanner/internal/extract"
	"resume-scanner/internal/match"
	"resume-scanner/internal/shared/metrics"
	"resume-scanner/internal/shared/telemetry"
	"resume-scanner/internal/skills"
	"resume-scanner/internal/summary"
)

// ExtractFunc turns an uploaded document into plain text.
type ExtractFunc func(ctx context.Context, format extract.Format, data []byte) (string, error)

// Report is everything one scan produces.
type Report struct {
	Filename   string
	Skills     skills.Skills
	Candidates []string
	Match      match.Result
	Summary    summary.Summary
	TextLength int
}

// Service runs the extract, skills, score and summary pipeline. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	Extractor  *skills.Extractor
	Scorer     *match.Scorer
	Summarizer *summary.Summarizer
	// Extract defaults to extract.ExtractText.
	Extract ExtractFunc
}

// Analyze scans resume text supplied directly.
func (s *Service) Analyze(ctx context.Context, text, jobDescription string) (Report, error) {
	if text == "" {
		return Report{}, ErrMissingInput
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	start := time.Now()
	metrics.IncScansStarted()

	report := s.run(text, jobDescription)
	s.complete("text", report, start)
	return report, nil
}

// Scan extracts text from an uploaded document and scans it. The format is
// resolved from fileName before any decoding, so unsupported files are never read.
func (s *Service) Scan(ctx context.Context, fileName string, data []byte, jobDescription string) (Report, error) {
	if fileName == "" {
		return Report{}, ErrMissingInput
	}
	format, err := extract.FormatFromFileName(fileName)
	if err != nil {
		return Report{}, err
	}

	start := time.Now()
	metrics.IncScansStarted()

	text, err := s.extractFn()(ctx, format, data)
	if err != nil {
		metrics.IncScansFailed()
		telemetry.Warn("scan.extract_failed", map[string]any{
			"filename": fileName,
			"format":   string(format),
			"error":    err,
		})
		return Report{}, err
	}

	report := s.run(text, jobDescription)
	report.Filename = fileName
	s.complete("upload", report, start)
	return report, nil
}

func (s *Service) run(text, jobDescription string) Report {
	ext := s.Extractor.Extract(text)
	return Report{
		Skills:     ext.Skills,
		Candidates: ext.Candidates,
		Match:      s.Scorer.Evaluate(ext.Skills, jobDescription),
		Summary:    s.Summarizer.Summarize(text, ext.Skills),
		TextLength: utf8.RuneCountInString(text),
	}
}

func (s *Service) complete(source string, r Report, start time.Time) {
	elapsed := time.Since(start)
	metrics.IncScansCompleted()
	metrics.ObserveScanDuration(elapsed)

	fields := map[string]any{
		"source":       source,
		"total_skills": r.Skills.Total(),
		"categories":   r.Skills.Len(),
		"score":        r.Match.Score,
		"text_length":  r.TextLength,
		"duration_ms":  float64(elapsed.Microseconds()) / 1000.0,
	}
	if r.Filename != "" {
		fields["filename"] = r.Filename
	}
	telemetry.Info("scan.complete", fields)
}

func (s *Service) extractFn() ExtractFunc {
	if s.Extract != nil {
		return s.Extract
	}
	return extract.ExtractText
}
