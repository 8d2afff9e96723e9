package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

type reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewReader(in io.Reader, out io.Writer) *reader {
	return &reader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine blocks until a full line is read; ctx is only checked before
// prompting.
func (r *reader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(r.out, prompt); err != nil {
		return "", errors.WithMessage(err, "write prompt")
	}
	if ok := r.scanner.Scan(); !ok {
		if err := r.scanner.Err(); err != nil {
			return "", errors.WithMessage(err, "scan input")
		}
		return "", errors.WithStack(io.EOF)
	}
	return r.scanner.Text(), nil
}
