package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"atelier/internal/pipeline"
)

// Record is one validated catalog row. It is a value type, never mutated
// after parsing, and is not persisted directly.
type Record struct {
	ExternalID  uint64
	Name        string
	Years       string
	Genre       string
	Nationality string
	Bio         string
	Wikipedia   string
	// Paintings is the painting count claimed by the catalog. It is
	// advisory only; the filesystem is authoritative.
	Paintings uint64
}

// expectedHeader is the exact column set a catalog file must carry, in order.
var expectedHeader = []string{"id", "name", "years", "genre", "nationality", "bio", "wikipedia", "paintings"}

// Read parses the catalog file at path into records. The path must be a
// regular file; any row that does not match the expected column set fails
// the whole read with its line number attached.
func Read(path string) ([]Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrInput, "", "read catalog", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, pipeline.Wrap(pipeline.ErrInput, "", "read catalog", fmt.Sprintf("%s is not a regular file", path), nil)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrInput, "", "read catalog", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(expectedHeader)

	header, err := reader.Read()
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrInput, "", "read catalog", "reading header", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrInput, "", "read catalog", path, err)
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, pipeline.Wrap(pipeline.ErrInput, "", "read catalog", fmt.Sprintf("line %d", line), err)
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, pipeline.Wrap(pipeline.ErrInput, "", "read catalog", fmt.Sprintf("line %d", line), err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func validateHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("header has %d columns, expected %d", len(header), len(expectedHeader))
	}
	for i, name := range expectedHeader {
		if header[i] != name {
			return fmt.Errorf("header column %d is %q, expected %q", i+1, header[i], name)
		}
	}
	return nil
}

func parseRow(row []string) (Record, error) {
	externalID, err := strconv.ParseUint(row[0], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("id column: %w", err)
	}
	paintings, err := strconv.ParseUint(row[7], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("paintings column: %w", err)
	}
	if row[1] == "" {
		return Record{}, errors.New("name column is empty")
	}
	return Record{
		ExternalID:  externalID,
		Name:        row[1],
		Years:       row[2],
		Genre:       row[3],
		Nationality: row[4],
		Bio:         row[5],
		Wikipedia:   row[6],
		Paintings:   paintings,
	}, nil
}
