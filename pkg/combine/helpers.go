// File: pkg/combine/helpers.go
package combine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"dirclip/pkg/clipboard"

	"go.uber.org/zap"
)

// WriteCombinedFile writes the snapshot text to the output file.
func WriteCombinedFile(outputPath string, text string, logger *zap.Logger) error {
	logger.Debug("Writing combined content to output file", zap.String("combinedFile", outputPath))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(outFile)
	if _, err := writer.WriteString(text); err != nil {
		logger.Error("Failed to write combined file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to write content: %w", err)
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

// Deliver hands text to the destination named by output: the clipboard
// writer, stdout, or a file path.
func Deliver(ctx context.Context, text, output string, clip clipboard.Writer, stdout io.Writer, logger *zap.Logger) error {
	switch output {
	case OutputClipboard:
		if err := clip.Write(ctx, text); err != nil {
			logger.Error("Failed to copy to clipboard", zap.Error(err))
			return err
		}
		return nil
	case OutputStdout:
		if _, err := io.WriteString(stdout, text); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	default:
		return WriteCombinedFile(output, text, logger)
	}
}
