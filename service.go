package textstore

import (
	"context"
	"fmt"
)

// FileStorage defines the file operations the service relies on.
//
// Implementations do not coordinate concurrent appends; each append must be
// issued as a single write so the platform's atomic-append guarantee holds
// for small values.
type FileStorage interface {
	// Append adds text followed by a newline to the end of filename,
	// creating the storage directory and the file when absent.
	Append(ctx context.Context, filename, text string) (AppendResult, error)

	// Read returns the full contents of filename. A missing file yields
	// a ReadResult with Found set to false and a nil error.
	Read(ctx context.Context, filename string) (ReadResult, error)

	// Exists reports whether filename is present as a regular file.
	Exists(ctx context.Context, filename string) (bool, error)
}

// TextService applies the filename policy on top of a FileStorage.
type TextService struct {
	storage   FileStorage
	writeFile string
}

// NewTextService creates a service that appends to writeFile.
// It returns ErrInvalidFilename if writeFile does not satisfy the filename policy.
func NewTextService(storage FileStorage, writeFile string) (*TextService, error) {
	if storage == nil {
		return nil, fmt.Errorf("new text service: %w: storage is required", ErrInvalidInput)
	}

	if !IsValidFilename(writeFile) {
		return nil, fmt.Errorf("new text service: %w: %q", ErrInvalidFilename, writeFile)
	}

	return &TextService{
		storage:   storage,
		writeFile: writeFile,
	}, nil
}

// WriteFile returns the filename appends are written to.
func (s *TextService) WriteFile() string {
	return s.writeFile
}

// Append adds text as a new line to the write file.
func (s *TextService) Append(ctx context.Context, text string) (AppendResult, error) {
	if text == "" {
		return AppendResult{}, ErrMissingText
	}

	res, err := s.storage.Append(ctx, s.writeFile, text)
	if err != nil {
		return AppendResult{}, fmt.Errorf("append: %w", err)
	}

	return res, nil
}

// Read returns the contents of filename after trimming and validating it.
func (s *TextService) Read(ctx context.Context, filename string) (ReadResult, error) {
	filename = NormalizeFilename(filename)
	if filename == "" {
		return ReadResult{}, ErrMissingFilename
	}

	if !IsValidFilename(filename) {
		return ReadResult{}, ErrInvalidFilename
	}

	exists, err := s.storage.Exists(ctx, filename)
	if err != nil {
		return ReadResult{}, fmt.Errorf("read: %w", err)
	}

	if !exists {
		return ReadResult{Filename: filename}, nil
	}

	res, err := s.storage.Read(ctx, filename)
	if err != nil {
		return ReadResult{}, fmt.Errorf("read: %w", err)
	}
	res.Filename = filename

	return res, nil
}
