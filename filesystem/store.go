// Package filesystem provides a file system storage backend for textstore.
// All access is scoped to a single storage directory through os.Root, which
// rejects any name that would escape it.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/sagarc03/textstore"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// Store provides file system storage operations.
type Store struct {
	dir string
}

// NewFileStorage creates a new Store rooted at dir.
// The directory does not need to exist yet; it is created on first append.
func NewFileStorage(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// openRoot opens the storage directory. With create set, the directory is
// created first. A missing directory is reported as fs.ErrNotExist.
func (s *Store) openRoot(create bool) (*os.Root, error) {
	if create {
		if err := os.MkdirAll(s.dir, dirPerm); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	root, err := os.OpenRoot(s.dir)
	if err != nil {
		return nil, fmt.Errorf("open storage root: %w", err)
	}

	return root, nil
}

// Append writes text and a trailing newline to the end of filename in a single
// write call, creating the directory and file when needed.
func (s *Store) Append(ctx context.Context, filename, text string) (textstore.AppendResult, error) {
	if err := ctx.Err(); err != nil {
		return textstore.AppendResult{}, err
	}

	root, err := s.openRoot(true)
	if err != nil {
		return textstore.AppendResult{}, err
	}
	defer func() { _ = root.Close() }()

	f, err := root.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return textstore.AppendResult{}, fmt.Errorf("open file for append: %w", err)
	}

	n, writeErr := f.Write([]byte(text + "\n"))
	closeErr := f.Close()

	if writeErr != nil {
		return textstore.AppendResult{}, fmt.Errorf("append to file: %w", writeErr)
	}
	if closeErr != nil {
		return textstore.AppendResult{}, fmt.Errorf("close file: %w", closeErr)
	}

	return textstore.AppendResult{
		Filename:     filename,
		Text:         text,
		BytesWritten: int64(n),
	}, nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *ctxReader) Read(p []byte) (n int, err error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}

// Read returns the whole content of filename. A missing file, a missing
// storage directory, or a name that is not a regular file all yield
// Found == false with a nil error.
func (s *Store) Read(ctx context.Context, filename string) (textstore.ReadResult, error) {
	if err := ctx.Err(); err != nil {
		return textstore.ReadResult{}, err
	}

	notFound := textstore.ReadResult{Filename: filename}

	root, err := s.openRoot(false)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notFound, nil
		}
		return textstore.ReadResult{}, err
	}
	defer func() { _ = root.Close() }()

	f, err := root.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notFound, nil
		}
		return textstore.ReadResult{}, fmt.Errorf("open file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("failed to close file", "filename", filename, "err", closeErr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return textstore.ReadResult{}, fmt.Errorf("stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return notFound, nil
	}

	content, err := io.ReadAll(&ctxReader{ctx: ctx, r: f})
	if err != nil {
		return textstore.ReadResult{}, fmt.Errorf("read file: %w", err)
	}

	return textstore.ReadResult{
		Filename: filename,
		Found:    true,
		Content:  content,
	}, nil
}

// Exists reports whether filename is a regular file in the storage directory.
func (s *Store) Exists(ctx context.Context, filename string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	root, err := s.openRoot(false)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = root.Close() }()

	info, err := root.Stat(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat file: %w", err)
	}

	return info.Mode().IsRegular(), nil
}
