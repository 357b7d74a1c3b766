package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/chronolabs/chronolog/core"
	"github.com/chronolabs/chronolog/formatter"
)

// FileHandler writes log entries synchronously to a file, rotating it
// once MaxBytes is reached and retaining at most BackupCount rotated
// files.
type FileHandler struct {
	filename        string
	file            *os.File
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
	maxBytes        int64
	backupCount     int
	currentSize     int64
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MaxBytes is the maximum size in bytes before rotation (0 = no rotation)
	MaxBytes int64
	// BackupCount is the maximum number of rotated files to retain
	// (0 = keep all)
	BackupCount int
}

// NewFileHandler creates a new file handler
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	// Open file
	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	// Get file size
	info, err := file.Stat()
	if err != nil {
		if closeErr := file.Close(); closeErr != nil {
			return nil, closeErr
		}
		return nil, err
	}

	h := &FileHandler{
		filename:    cfg.Filename,
		file:        file,
		formatter:   cfg.Formatter,
		maxBytes:    cfg.MaxBytes,
		backupCount: cfg.BackupCount,
		currentSize: info.Size(),
	}

	// Cache WriterFormatter for the zero-alloc path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h, nil
}

// Handle formats and writes an entry
func (h *FileHandler) Handle(entry *core.Entry) error {
	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// Check if rotation is needed
	if err := h.rotateIfNeeded(); err != nil {
		return err
	}

	n, err := h.file.Write(data)
	if err == nil {
		h.currentSize += int64(n)
	}

	return err
}

// rotateIfNeeded checks and performs rotation if needed
func (h *FileHandler) rotateIfNeeded() error {
	if h.maxBytes <= 0 || h.currentSize < h.maxBytes {
		return nil
	}
	return h.rotate()
}

// rotate performs the actual file rotation
func (h *FileHandler) rotate() error {
	// Sync and close current file
	if err := h.file.Sync(); err != nil {
		return err
	}
	if err := h.file.Close(); err != nil {
		return err
	}

	// Rename current file with timestamp. Nanoseconds keep the name
	// unique when rotations land within the same second.
	timestamp := time.Now().Format("2006-01-02T15-04-05.000000000")
	rotatedName := fmt.Sprintf("%s.%s", h.filename, timestamp)

	if err := os.Rename(h.filename, rotatedName); err != nil {
		// If rename fails, try to reopen the original file
		file, openErr := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		h.file = file
		return err
	}

	// Clean up old backups if needed
	if h.backupCount > 0 {
		h.cleanupOldBackups()
	}

	// Open new file
	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	h.file = file
	h.currentSize = 0

	return nil
}

// cleanupOldBackups removes rotated files beyond BackupCount, oldest first
func (h *FileHandler) cleanupOldBackups() {
	dir := filepath.Dir(h.filename)
	base := filepath.Base(h.filename)

	// Find all backup files
	pattern := filepath.Join(dir, base+".*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return
	}

	// Filter to only timestamp-based backups
	var backups []string
	for _, match := range matches {
		if strings.HasPrefix(filepath.Base(match), base+".") {
			backups = append(backups, match)
		}
	}

	// Sort by modification time (oldest first)
	sort.Slice(backups, func(i, j int) bool {
		infoI, errI := os.Stat(backups[i])
		infoJ, errJ := os.Stat(backups[j])
		if errI != nil || errJ != nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	// Remove oldest files if we exceed BackupCount
	if len(backups) > h.backupCount {
		toRemove := backups[:len(backups)-h.backupCount]
		for _, file := range toRemove {
			if err := os.Remove(file); err != nil {
				return
			}
		}
	}
}

// Close syncs and closes the underlying file
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}
	if err := h.file.Sync(); err != nil {
		h.file.Close()
		h.file = nil
		return err
	}
	err := h.file.Close()
	h.file = nil
	return err
}
