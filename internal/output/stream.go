package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmagro/termlog/internal/textwidth"
)

// FileStream appends every line it is sent to a file, without escape
// sequences. It is safe for concurrent use.
type FileStream struct {
	mu   sync.Mutex
	file *os.File
}

// OpenFileStream opens (creating parent directories) path for appending.
func OpenFileStream(path string) (*FileStream, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create stream directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open stream file: %w", err)
	}
	return &FileStream{file: file}, nil
}

// Send writes line followed by a newline.
func (f *FileStream) Send(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.file.WriteString(textwidth.Strip(line) + "\n"); err != nil {
		return fmt.Errorf("stream write: %w", err)
	}
	return nil
}

// Stream returns Send as a Stream.
func (f *FileStream) Stream() Stream {
	return f.Send
}

// Close closes the file.
func (f *FileStream) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file.Close()
}
