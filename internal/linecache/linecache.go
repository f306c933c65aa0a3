// Package linecache provides random access to lines of text files by
// 1-based line number, caching file contents after the first read.
package linecache

import (
	"bufio"
	"fmt"
	"os"
	"sync"
)

// LineNotFoundError reports a request for a line number outside the file.
// Given correct indexing upstream this signals an internal bug, not bad input.
type LineNotFoundError struct {
	Path string
	Line int
}

func (e *LineNotFoundError) Error() string {
	return fmt.Sprintf("line %d not found in %s", e.Line, e.Path)
}

// Cache reads files once and serves individual lines from memory.
// Safe for concurrent use.
type Cache struct {
	mu    sync.RWMutex
	files map[string][]string
}

// New creates an empty line cache.
func New() *Cache {
	return &Cache{files: make(map[string][]string)}
}

// ReadLine returns the text of the given 1-based line, without its trailing
// newline. The file is read and cached in full on first access.
func (c *Cache) ReadLine(path string, line int) (string, error) {
	lines, err := c.lines(path)
	if err != nil {
		return "", err
	}
	if line < 1 || line > len(lines) {
		return "", &LineNotFoundError{Path: path, Line: line}
	}
	return lines[line-1], nil
}

// LineCount returns the number of lines in the file, loading it if needed.
func (c *Cache) LineCount(path string) (int, error) {
	lines, err := c.lines(path)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

// Invalidate drops a cached file so the next access re-reads it.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.files, path)
	c.mu.Unlock()
}

func (c *Cache) lines(path string) ([]string, error) {
	c.mu.RLock()
	lines, ok := c.files[path]
	c.mu.RUnlock()
	if ok {
		return lines, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Re-check under the write lock: another goroutine may have loaded it.
	if lines, ok := c.files[path]; ok {
		return lines, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lines = []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	c.files[path] = lines
	return lines, nil
}
