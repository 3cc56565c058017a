package venue

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Dataset lines are "longitude, latitude, name, ..., phone".
// The name is the third field and the phone number the last.
const minFields = 4

// ParseFields builds a venue from the fields of one dataset line.
func ParseFields(fields []string) (*Venue, error) {
	if len(fields) < minFields {
		return nil, fmt.Errorf("%w: want at least %d fields, got %d", ErrMalformedLine, minFields, len(fields))
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: longitude: %v", ErrMalformedLine, err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: latitude: %v", ErrMalformedLine, err)
	}
	v := New(strings.TrimSpace(fields[2]), strings.TrimSpace(fields[len(fields)-1]), lat, lon)
	if err := Validate(v); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseLine parses a single dataset line.
func ParseLine(line string) (*Venue, error) {
	return ParseFields(strings.Split(line, ","))
}

// ReadCSV reads every venue from r. Blank lines are skipped.
// The first bad line stops the read, and its line number is part of the error.
func ReadCSV(r io.Reader) ([]*Venue, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	venues := []*Venue{}
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return venues, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read venues: %w", err)
		}
		line, _ := cr.FieldPos(0)
		v, err := ParseFields(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		venues = append(venues, v)
	}
}

// LoadFile reads a venue dataset. Files ending in .zst are zstd compressed.
func LoadFile(path string) ([]*Venue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		defer dec.Close()
		r = dec
	}
	return ReadCSV(r)
}
