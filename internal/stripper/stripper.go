// Package stripper applies the comment filter to files and streams.
package stripper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/seanhalberthal/jsoncstrip/internal/config"
	"github.com/seanhalberthal/jsoncstrip/internal/jsonc"
	"github.com/seanhalberthal/jsoncstrip/internal/types"
)

// Stripper strips and checks JSON-with-comments input.
type Stripper struct {
	cfg *config.Config
}

// New creates a new stripper. A nil cfg means config.Default().
func New(cfg *config.Config) *Stripper {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Stripper{cfg: cfg}
}

// Config returns the configuration the stripper was built with.
func (s *Stripper) Config() *config.Config {
	return s.cfg
}

// Stats counts what a single strip pass saw.
type Stats struct {
	Bytes   int64
	Blanked int64
}

// StripTo copies r to w with every comment blanked out.
// Bytes before a lexical error have already been written when it returns.
func (s *Stripper) StripTo(w io.Writer, r io.Reader) (Stats, error) {
	cr := jsonc.NewReader(r)
	n, err := io.Copy(w, cr)
	return Stats{Bytes: n, Blanked: cr.Blanked()}, err
}

// StripFile strips the file at path and returns its content.
func (s *Stripper) StripFile(path string) (*types.StripResult, error) {
	// #nosec G304 -- path is supplied by the caller on purpose
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	stats, err := s.StripTo(&buf, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &types.StripResult{
		Path:    path,
		Content: buf.String(),
		Bytes:   stats.Bytes,
		Blanked: stats.Blanked,
	}, nil
}

// StripString strips an in-memory document.
func (s *Stripper) StripString(content string) (*types.StripResult, error) {
	var buf bytes.Buffer
	buf.Grow(len(content))
	stats, err := s.StripTo(&buf, strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	return &types.StripResult{
		Content: buf.String(),
		Bytes:   stats.Bytes,
		Blanked: stats.Blanked,
	}, nil
}

// WriteFile strips the file at path in place. The original is only
// replaced once the whole file has been stripped successfully.
func (s *Stripper) WriteFile(path string) (Stats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Stats{}, err
	}

	// #nosec G304 -- path is supplied by the caller on purpose
	src, err := os.Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer func() { _ = src.Close() }()

	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsoncstrip-*")
	if err != nil {
		return Stats{}, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	stats, err := s.StripTo(tmp, src)
	if err != nil {
		cleanup()
		return stats, fmt.Errorf("%s: %w", path, err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		cleanup()
		return stats, err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return stats, err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return stats, err
	}
	return stats, nil
}

// CheckOptions configures a check run.
type CheckOptions struct {
	Path      string
	Recursive bool
	Validate  bool
	// Progress, if set, is called after each file with the number of files
	// done so far and the total. It may be called from several goroutines.
	Progress func(done, total int)
}

// Check strips every file under opts.Path and reports per-file results.
// opts.Path may name a single file or a directory.
func (s *Stripper) Check(ctx context.Context, opts CheckOptions) (*types.CheckResult, error) {
	info, err := os.Stat(opts.Path)
	if err != nil {
		return nil, err
	}

	files := []string{opts.Path}
	if info.IsDir() {
		files, err = FindFiles(s.cfg, opts.Path, opts.Recursive)
		if err != nil {
			return nil, err
		}
	}

	results := make([]types.FileResult, len(files))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.checkFile(path, opts.Validate)
			if opts.Progress != nil {
				opts.Progress(int(done.Add(1)), len(files))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	result := &types.CheckResult{Files: results}
	for _, fr := range results {
		result.Summary.FilesChecked++
		if !fr.OK {
			result.Summary.FilesFailed++
		}
		result.Summary.TotalBytes += fr.Bytes
		result.Summary.TotalBlanked += fr.Blanked
	}
	return result, nil
}

// checkFile strips one file and, if validate is set, decodes the output.
func (s *Stripper) checkFile(path string, validate bool) types.FileResult {
	fr := types.FileResult{Path: path}

	// #nosec G304 -- path comes from FindFiles or the caller
	f, err := os.Open(path)
	if err != nil {
		fr.Kind = types.KindIO
		fr.Error = err.Error()
		return fr
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	var sink io.Writer = io.Discard
	if validate {
		sink = &buf
	}

	stats, err := s.StripTo(sink, f)
	fr.Bytes = stats.Bytes
	fr.Blanked = stats.Blanked
	if err != nil {
		fr.Kind = ErrorKind(err)
		fr.Error = err.Error()
		var synErr *jsonc.SyntaxError
		if errors.As(err, &synErr) {
			fr.Line = synErr.Line
			fr.Column = synErr.Column
		}
		return fr
	}

	if validate {
		if err := validateJSON(buf.Bytes()); err != nil {
			fr.Kind = types.KindInvalidJSON
			fr.Error = err.Error()
			var synErr *json.SyntaxError
			if errors.As(err, &synErr) {
				fr.Line, fr.Column = lineCol(buf.Bytes(), synErr.Offset)
			}
			return fr
		}
	}

	fr.OK = true
	return fr
}

// validateJSON reports whether data holds exactly one JSON value.
func validateJSON(data []byte) error {
	if json.Valid(data) {
		return nil
	}
	var v any
	return json.Unmarshal(data, &v)
}

// lineCol converts a byte offset into a 1-based line and column.
func lineCol(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col = 1, 1
	for _, c := range data[:offset] {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// ErrorKind maps an error to one of the types.Kind* identifiers.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, jsonc.ErrIncompleteString):
		return types.KindIncompleteString
	case errors.Is(err, jsonc.ErrIncompleteComment):
		return types.KindIncompleteComment
	case errors.Is(err, jsonc.ErrUnexpectedForwardSlash):
		return types.KindUnexpectedForwardSlash
	default:
		return types.KindIO
	}
}
