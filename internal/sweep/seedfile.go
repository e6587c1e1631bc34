package sweep

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// SeedTable is a plain-text file holding one opaque seed value per line,
// addressed by 1-indexed line number.
type SeedTable struct {
	path string
}

func NewSeedTable(path string) *SeedTable {
	return &SeedTable{path: path}
}

// Lookup returns the content of line index (1-indexed) with line terminators
// trimmed. Indexes beyond the file's line count are an error rather than an
// empty seed.
func (t *SeedTable) Lookup(index int) (string, error) {
	if index < 1 {
		return "", errors.Errorf("seed index must be positive, got %d", index)
	}

	file, err := os.Open(t.path)
	if err != nil {
		return "", errors.Wrapf(err, "error opening seed file %s", t.path)
	}
	defer file.Close()

	line := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line++
		if line == index {
			return scanner.Text(), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrapf(err, "error reading seed file %s", t.path)
	}
	return "", errors.Errorf("seed file %s has %d lines, no line %d", t.path, line, index)
}
