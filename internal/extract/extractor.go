// Package extract turns resume documents into plain text. PDF and
// plain-text files are handled natively; Word documents are sent to a
// Tika server when one is configured.
package extract

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/vansh2503/JobNest/internal/config"
	"github.com/vansh2503/JobNest/internal/errors"
	"github.com/vansh2503/JobNest/internal/utils"

	"github.com/dslipak/pdf"
)

// Extractor produces plain text from a single document format.
type Extractor interface {
	ExtractText(ctx context.Context, r io.Reader, name string) (string, error)
}

// Service dispatches each file to the extractor for its format.
type Service struct {
	plain *PlainTextExtractor
	pdf   *PDFExtractor
	tika  *TikaExtractor
}

// NewService builds the extraction service. Word support is only
// available when a Tika URL is configured.
func NewService(cfg *config.Config, logger *errors.Logger) *Service {
	s := &Service{
		plain: &PlainTextExtractor{},
		pdf:   &PDFExtractor{},
	}
	if cfg.TikaEnabled() {
		s.tika = NewTikaExtractor(cfg.Extraction.Tika, logger)
	}
	return s
}

// ForFile returns the extractor responsible for the named file, by
// extension.
func (s *Service) ForFile(name string) (Extractor, error) {
	switch {
	case utils.IsPDFFile(name):
		return s.pdf, nil
	case utils.IsWordFile(name):
		if s.tika == nil {
			return nil, errors.NewExtractionError(errors.ErrCodeUnsupportedFormat,
				"Word documents require a Tika server; none is configured", nil).
				WithContext("file", name)
		}
		return s.tika, nil
	case utils.IsTextFile(name):
		return s.plain, nil
	default:
		return nil, errors.NewExtractionError(errors.ErrCodeUnsupportedFormat,
			"Unsupported resume format", nil).
			WithContext("file", name).
			WithContext("extension", utils.GetFileExtension(name))
	}
}

// ExtractText extracts plain text from the named document, choosing
// the extractor by file extension.
func (s *Service) ExtractText(ctx context.Context, r io.Reader, name string) (string, error) {
	extractor, err := s.ForFile(name)
	if err != nil {
		return "", err
	}

	text, err := extractor.ExtractText(ctx, r, name)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.NewExtractionError(errors.ErrCodeEmptyDocument,
			"Document contains no extractable text", nil).
			WithContext("file", name)
	}
	return text, nil
}

// PlainTextExtractor reads the document as-is.
type PlainTextExtractor struct{}

func (e *PlainTextExtractor) ExtractText(_ context.Context, r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"Failed to read document", err).WithContext("file", name)
	}
	return string(data), nil
}

// PDFExtractor pulls text out of PDF documents.
type PDFExtractor struct{}

func (e *PDFExtractor) ExtractText(_ context.Context, r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"Failed to read document", err).WithContext("file", name)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeInvalidFormat,
			"Failed to parse PDF document", err).WithContext("file", name)
	}

	content, err := reader.GetPlainText()
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"Failed to extract text from PDF", err).WithContext("file", name)
	}

	var buf strings.Builder
	if _, err := io.Copy(&buf, content); err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"Failed to read PDF text stream", err).WithContext("file", name)
	}
	return buf.String(), nil
}
