package common

import (
	"context"

	"github.com/vansh2503/JobNest/internal/ats"
	"github.com/vansh2503/JobNest/internal/errors"
)

// RunAnalysisCommand encapsulates the common logic of the analysis
// commands: validate the inputs, read the job description, run the
// analyzer, and hand the result to the output handler.
func RunAnalysisCommand(
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	maxFileSize int64,
	resumePath, jobPath string,
	analyzer *ats.Analyzer,
) error {
	fileProcessor := NewFileProcessor(logger, maxFileSize)
	outputHandler := NewOutputHandler(logger)

	// The resume may be a binary document; only the analyzer's
	// extractor knows how to read it.
	if err := fileProcessor.ValidateFile(resumePath); err != nil {
		return err
	}

	jobContents, err := fileProcessor.ValidateAndReadFiles(jobPath)
	if err != nil {
		return err
	}

	logger.Info("Starting resume analysis",
		"resume", resumePath,
		"job_description", jobPath,
		"output_format", cmdConfig.OutputFormat)

	result, err := analyzer.AnalyzeFile(ctx, resumePath, jobContents[0])
	if err != nil {
		return err
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
