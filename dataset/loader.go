package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/YuminosukeSato/housing/pkg/errors"
	"github.com/YuminosukeSato/housing/pkg/log"
)

// Load reads the file at path fully into memory and parses it with schema.
//
// It fails with *errors.NotFoundError when path does not exist and with
// *errors.ParseError on the first row that has the wrong number of tokens or
// a numeric token that is not a finite number.
func Load(path string, schema Schema) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Dataset{}, errors.NewNotFoundError(path)
		}
		return Dataset{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	return LoadReader(f, path, schema)
}

// LoadReader parses delimited text from r. name only labels log records
// and warnings.
func LoadReader(r io.Reader, name string, schema Schema) (Dataset, error) {
	if err := validateBindings(schema); err != nil {
		return Dataset{}, err
	}

	start := time.Now()
	logger := log.GetLogger().With(log.ComponentKey, "dataset")

	reader := csv.NewReader(r)
	reader.Comma = schema.Delimiter
	if reader.Comma == 0 {
		reader.Comma = ','
	}
	// Field counts are checked per row so the error carries the row index.
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	var (
		records []HousingRecord
		row     int
		skipped int
		header  = schema.HasHeader
	)
	for {
		tokens, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return Dataset{}, errors.NewRowParseError(row, csvErr.Line, csvErr.Err.Error())
			}
			return Dataset{}, errors.Wrapf(err, "read %s", name)
		}
		line, _ := reader.FieldPos(0)

		if header {
			header = false
			continue
		}

		rec, complete, err := parseRow(schema, tokens, row, line)
		if err != nil {
			return Dataset{}, err
		}
		row++
		if !complete {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		errors.Warn(errors.NewDataQualityWarning(name, skipped, "empty numeric field"))
	}
	logger.Info("Dataset loaded",
		log.OperationKey, log.OperationLoad,
		log.PathKey, name,
		log.SamplesKey, len(records),
		log.SkippedKey, skipped,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	return Dataset{records: records}, nil
}

// parseRow converts one row of tokens. complete is false when the row has an
// empty numeric token and the schema allows skipping it.
func parseRow(schema Schema, tokens []string, row, line int) (rec HousingRecord, complete bool, err error) {
	if len(tokens) != schema.Len() {
		return rec, false, errors.NewRowParseError(row, line,
			fmt.Sprintf("expected %d fields, got %d", schema.Len(), len(tokens)))
	}

	for col, field := range schema.Fields {
		token := tokens[col]
		switch field.Kind {
		case Categorical:
			categoricalSetters[field.Name](&rec, token)
		case Numeric:
			trimmed := strings.TrimSpace(token)
			if trimmed == "" {
				if schema.SkipIncomplete {
					return rec, false, nil
				}
				return rec, false, errors.NewParseError(row, line, col, field.Name, token, "empty numeric field")
			}
			v, perr := strconv.ParseFloat(trimmed, 64)
			if perr != nil {
				return rec, false, errors.NewParseError(row, line, col, field.Name, token, "not a number")
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return rec, false, errors.NewParseError(row, line, col, field.Name, token, "non-finite value")
			}
			numericSetters[field.Name](&rec, v)
		}
	}
	return rec, true, nil
}
