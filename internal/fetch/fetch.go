// Package fetch obtains local copies of remote log files. The engine treats
// this as an external collaborator: it only requires that Fetch returns a
// path to a line-oriented text file and that repeated calls are cheap.
package fetch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Error reports a failure to materialize a remote file locally.
type Error struct {
	Source     string
	RemotePath string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch failed for source %q (%s): %v", e.Source, e.RemotePath, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Fetcher materializes a source's remote log file as a local text file.
// Implementations must be idempotent: calling Fetch again with the same
// arguments is safe and cheap once the first call has succeeded.
type Fetcher interface {
	Fetch(source, remotePath string) (localPath string, err error)
}

// Stager copies remote files into a local staging directory, decompressing
// gzip'd logs transparently. A file already staged is not copied again.
type Stager struct {
	root string // prefix for relative remote paths, may be empty
	dir  string // local staging directory
}

// NewStager creates a Stager that resolves relative remote paths against
// root and stages copies under dir.
func NewStager(root, dir string) *Stager {
	return &Stager{root: root, dir: dir}
}

// Fetch stages the remote file for the given source and returns the local
// path. The staged copy is named after the source, one file per source.
func (s *Stager) Fetch(source, remotePath string) (string, error) {
	src := remotePath
	if !filepath.IsAbs(src) && s.root != "" {
		src = filepath.Join(s.root, src)
	}

	local := filepath.Join(s.dir, source+".log")
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &Error{Source: source, RemotePath: remotePath, Err: err}
	}

	in, err := os.Open(src)
	if err != nil {
		return "", &Error{Source: source, RemotePath: remotePath, Err: err}
	}
	defer in.Close()

	var reader io.Reader = in
	if strings.HasSuffix(src, ".gz") {
		gz, err := gzip.NewReader(in)
		if err != nil {
			return "", &Error{Source: source, RemotePath: remotePath, Err: err}
		}
		defer gz.Close()
		reader = gz
	}

	// Stage through a temp file so a partial copy never masquerades as a
	// completed fetch.
	tmp, err := os.CreateTemp(s.dir, "."+source+"-*")
	if err != nil {
		return "", &Error{Source: source, RemotePath: remotePath, Err: err}
	}
	tmpName := tmp.Name()
	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", &Error{Source: source, RemotePath: remotePath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", &Error{Source: source, RemotePath: remotePath, Err: err}
	}
	if err := os.Rename(tmpName, local); err != nil {
		os.Remove(tmpName)
		return "", &Error{Source: source, RemotePath: remotePath, Err: err}
	}
	return local, nil
}
