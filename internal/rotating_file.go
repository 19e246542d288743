package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// RotatingFile is an io.WriteCloser appending to a log file. Once a write
// would push the file past maxBytes, the file is renamed to name.1, older
// backups shift by one, and writing continues in a fresh file. At most
// backups old files are kept. Rotation is disabled when either maxBytes or
// backups is zero.
type RotatingFile struct {
	mu       sync.Mutex
	name     string
	maxBytes int64
	backups  int
	file     *os.File
	size     int64
}

func OpenRotatingFile(name string, maxBytes int64, backups int) (*RotatingFile, error) {
	r := &RotatingFile{name: name, maxBytes: maxBytes, backups: backups}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.shouldRotate(len(p)) {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.Close()
}

func (r *RotatingFile) shouldRotate(n int) bool {
	return r.maxBytes > 0 && r.backups > 0 && r.size > 0 && r.size+int64(n) > r.maxBytes
}

func (r *RotatingFile) open() error {
	f, err := os.OpenFile(r.name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

func (r *RotatingFile) rotate() error {
	if err := r.file.Close(); err != nil {
		return err
	}
	for i := r.backups - 1; i > 0; i-- {
		if err := rename(backupName(r.name, i), backupName(r.name, i+1)); err != nil {
			return err
		}
	}
	if err := rename(r.name, backupName(r.name, 1)); err != nil {
		return err
	}
	return r.open()
}

func backupName(name string, i int) string {
	return fmt.Sprintf("%s.%d", name, i)
}

func rename(from, to string) error {
	err := os.Rename(from, to)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
