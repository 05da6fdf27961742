package loader

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/arefin-khan/loglens/internal/model"
	"github.com/arefin-khan/loglens/internal/parser"
)

// Warning records one skipped malformed line. The loader never prints;
// rendering warnings is the caller's concern.
type Warning struct {
	Line string
	Err  error
}

// Result is the outcome of a full load: successfully parsed records and
// the warnings for every line that reached the parser and failed.
type Result struct {
	Records  []model.Record
	Warnings []Warning
}

// Load reads the source line by line and parses each one. Blank lines are
// skipped silently; a malformed line is collected as a Warning and never
// aborts the load. Only a read failure on the source itself is returned
// as an error.
func Load(r io.Reader) (Result, error) {
	var res Result

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()

		rec, err := parser.Parse(line)
		if err != nil {
			// Blank lines are expected and not worth a warning.
			if errors.Is(err, parser.ErrEmptyLine) {
				continue
			}
			res.Warnings = append(res.Warnings, Warning{Line: line, Err: err})
			continue
		}
		res.Records = append(res.Records, rec)
	}
	if err := sc.Err(); err != nil {
		return Result{}, errors.Wrap(err, "reading log source")
	}

	return res, nil
}

// LoadFile opens the file at path and loads it. Open and read failures
// (not-found, permission denied, other I/O errors) are fatal to the run
// and returned to the caller; the file is closed on every exit path.
func LoadFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return Result{}, errors.Wrapf(err, "file %q not found", path)
		case os.IsPermission(err):
			return Result{}, errors.Wrapf(err, "permission denied for file %q", path)
		default:
			return Result{}, errors.Wrapf(err, "opening file %q", path)
		}
	}
	defer f.Close()

	return Load(f)
}
