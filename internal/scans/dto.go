package scans

import (
	"resume-scanner/internal/skills"
	"resume-scanner/internal/summary"
)

// ScanResponse is the success envelope shared by both scan endpoints.
type ScanResponse struct {
	Success             bool            `json:"success"`
	Filename            string          `json:"filename,omitempty"`
	Skills              skills.Skills   `json:"skills"`
	JobMatchScore       float64         `json:"job_match_score"`
	Summary             summary.Summary `json:"summary"`
	ExtractedTextLength int             `json:"extracted_text_length"`
	CandidateTerms      []string        `json:"candidate_terms,omitempty"`
}

type analyzeTextRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

// Response converts a report to the HTTP envelope.
func (r Report) Response() ScanResponse {
	return ScanResponse{
		Success:             true,
		Filename:            r.Filename,
		Skills:              r.Skills,
		JobMatchScore:       r.Match.Score,
		Summary:             r.Summary,
		ExtractedTextLength: r.TextLength,
		CandidateTerms:      r.Candidates,
	}
}
