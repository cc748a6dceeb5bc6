package sentence

import (
	"bufio"
	"io"
	"strings"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/pkg/errors"
)

// MaxLineSize is the length in bytes of the longest line that can be read
const MaxLineSize = 16 * 1024 * 1024

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	return scanner
}

/*
ReadLabelled takes an io.Reader with a labelled line per sentence and an
Extractor and returns a set with a sample for every non-blank line, in
order. An error naming the line is returned if a line cannot be parsed.
*/
func ReadLabelled(r io.Reader, e *Extractor) (*dataset.Set, error) {
	var samples []dataset.Sample
	scanner := newScanner(r)
	for l := 1; scanner.Scan(); l++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		s, err := e.ExtractLabelled(line)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing line %d", l)
		}
		samples = append(samples, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading labelled sentences")
	}
	return dataset.New(e.Features(), samples)
}

/*
ReadSentences takes an io.Reader and returns its non-blank lines
*/
func ReadSentences(r io.Reader) ([]string, error) {
	var lines []string
	scanner := newScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading sentences")
	}
	return lines, nil
}
