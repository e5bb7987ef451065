package scans

import "errors"

// ErrMissingInput is returned when there is no resume text or file to scan.
var ErrMissingInput = errors.New("missing input")

const (
	ErrorCodeValidation        = "validation_error"
	ErrorCodeUnsupportedFormat = "unsupported_format"
	ErrorCodeExtraction        = "extraction_failed"
	ErrorCodeTooLarge          = "payload_too_large"
	ErrorCodeInternal          = "internal_error"
)

const (
	msgNoFile         = "No resume file provided"
	msgNoFileSelected = "No file selected"
	msgNoText         = "No resume text provided"
	msgInvalidJSON    = "Invalid JSON body"
	msgUnsupported    = "Unsupported file format. Please use PDF, DOCX, or TXT."
	msgTooLarge       = "File too large"
	msgInternalPrefix = "An error occurred: "
)
