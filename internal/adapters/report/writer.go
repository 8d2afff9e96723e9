package report

import (
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/kiryu-dev/xors/internal/domain"
	"github.com/pkg/errors"
)

const stdoutPath = "-"

type writer struct {
	path   string
	stdout io.Writer
}

// New writes reports to path; "-" means standard output.
func New(path string) writer {
	return writer{
		path:   path,
		stdout: os.Stdout,
	}
}

func (w writer) Write(result domain.GameResult) error {
	body, err := jsoniter.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.WithMessage(err, "marshal game report")
	}
	body = append(body, '\n')
	if w.path == stdoutPath {
		if _, err := w.stdout.Write(body); err != nil {
			return errors.WithMessage(err, "write game report")
		}
		return nil
	}
	if err := os.WriteFile(w.path, body, 0o644); err != nil {
		return errors.WithMessagef(err, "write game report to '%s'", w.path)
	}
	return nil
}
