// Package export writes the site configuration in the forms the static-site
// generator and other tooling read.
package export

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/javanotes/sitenav/internal/config"
	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/logfields"
	"github.com/javanotes/sitenav/internal/metrics"
	"github.com/javanotes/sitenav/internal/site"
)

// FileName returns the primary file a format is written to.
func FileName(format config.Format) string {
	switch format {
	case config.FormatYAML:
		return "site.yaml"
	case config.FormatJSON:
		return "site.json"
	case config.FormatVitePress:
		return "config.mts"
	case config.FormatHugo:
		return "hugo.yaml"
	default:
		return ""
	}
}

// Write renders cfg in format to w. For Hugo only hugo.yaml is written; the
// head partial comes from RenderHead.
func Write(cfg *site.Config, format config.Format, w io.Writer) error {
	switch format {
	case config.FormatYAML:
		data, err := cfg.EncodeYAML()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case config.FormatJSON:
		data, err := cfg.EncodeJSON()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case config.FormatVitePress:
		return writeVitePress(cfg, w)
	case config.FormatHugo:
		return writeHugo(cfg, w)
	default:
		return ferrors.ExportError("unsupported export format").
			WithContext("format", string(format)).
			Build()
	}
}

// Option customizes WriteAll.
type Option func(*options)

type options struct {
	recorder metrics.Recorder
}

// WithRecorder reports export durations to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WriteAll writes every format into dir and returns the files written.
func WriteAll(cfg *site.Config, dir string, formats []config.Format, opts ...Option) ([]string, error) {
	o := options{recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(&o)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, ferrors.FileSystemError("create output directory").
			WithCause(err).
			WithContext("path", dir).
			Build()
	}

	var written []string
	for _, format := range formats {
		start := time.Now()
		var buf bytes.Buffer
		if err := Write(cfg, format, &buf); err != nil {
			return written, err
		}
		target := filepath.Join(dir, FileName(format))
		if err := writeFileAtomic(target, buf.Bytes()); err != nil {
			return written, err
		}
		written = append(written, target)

		if format == config.FormatHugo {
			partial, err := RenderHead(cfg.Head())
			if err != nil {
				return written, err
			}
			partialPath := filepath.Join(dir, filepath.FromSlash(HeadPartialPath))
			if err := writeFileAtomic(partialPath, []byte(partial)); err != nil {
				return written, err
			}
			written = append(written, partialPath)
		}

		o.recorder.ObserveExportDuration(string(format), time.Since(start))
		slog.Info("Exported site configuration", logfields.Format(string(format)), logfields.Path(target), logfields.Since(start))
	}
	return written, nil
}

// writeFileAtomic writes data next to path and renames it into place so
// that a watching generator never reads a partial file.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return ferrors.FileSystemError("create directory").WithCause(err).WithContext("path", path).Build()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return ferrors.FileSystemError("create temp file").WithCause(err).WithContext("path", path).Build()
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return ferrors.FileSystemError("write file").WithCause(err).WithContext("path", path).Build()
	}
	if err := tmp.Close(); err != nil {
		return ferrors.FileSystemError("close file").WithCause(err).WithContext("path", path).Build()
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return ferrors.FileSystemError("chmod file").WithCause(err).WithContext("path", path).Build()
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return ferrors.FileSystemError("rename file").WithCause(err).WithContext("path", path).Build()
	}
	return nil
}
