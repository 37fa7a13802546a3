// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reviews

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/review-engine/pkg/types"
)

// nameDelim separates the restaurant name from the review body in a flat
// source line. Only the first occurrence splits; the review text may
// contain further periods.
const nameDelim = ". "

// FileSource reads reviews from a newline-delimited text file where each
// line is "<restaurant name>. <review text>".
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string { return "file" }

// Reviews scans the file line by line and collects the review text of
// every line whose name segment matches. Lines without the delimiter are
// malformed and skipped silently.
func (s *FileSource) Reviews(name string) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.Path)
		}
		return nil, fmt.Errorf("opening review source %s: %w", s.Path, err)
	}
	defer f.Close()

	want := strings.ToLower(name)
	var found []string

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		rec, ok := parseLine(sc.Text())
		if !ok {
			continue
		}
		if strings.ToLower(rec.Restaurant) == want {
			found = append(found, rec.Text)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading review source %s: %w", s.Path, err)
	}

	return found, nil
}

// parseLine splits a source line at the first ". " into a Review record.
// ok is false when the line has no delimiter.
func parseLine(line string) (types.Review, bool) {
	line = strings.TrimSpace(line)
	name, text, ok := strings.Cut(line, nameDelim)
	if !ok {
		return types.Review{}, false
	}
	return types.Review{Restaurant: name, Text: text}, true
}
