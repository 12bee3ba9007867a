// Package dataset reads the labelled training data from CSV files.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cancer_api/internal/domain"
	"cancer_api/internal/domain/entity"
	"cancer_api/internal/domain/value"
	"cancer_api/pkg/errcodes"
)

const columnDiagnosis = "diagnosis"

// CSVSource loads a dataset with a header row. Columns are matched by name,
// so their order and any extra columns (id, *_se, *_worst) do not matter.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) CSVSource {
	return CSVSource{Path: path}
}

func (s CSVSource) Name() string {
	return "csv:" + s.Path
}

func (s CSVSource) Load(ctx context.Context) (entity.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return entity.Dataset{}, fmt.Errorf("ctx.Err: %w", err)
	}

	fh, err := os.Open(s.Path)
	if err != nil {
		return entity.Dataset{}, domain.WrapError(err, errcodes.DatasetInvalid, "open dataset")
	}

	defer fh.Close()

	ds, err := Parse(fh)
	if err != nil {
		return entity.Dataset{}, fmt.Errorf("Parse(%s): %w", s.Path, err)
	}

	return ds, nil
}

// Parse reads a dataset from CSV.
func Parse(r io.Reader) (entity.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return entity.Dataset{}, domain.NewError(errcodes.DatasetEmpty, "dataset has no header")
		}

		return entity.Dataset{}, domain.WrapError(err, errcodes.DatasetInvalid, "read header")
	}

	columns, err := locate(header)
	if err != nil {
		return entity.Dataset{}, err
	}

	reader.FieldsPerRecord = len(header)

	var samples []entity.Sample

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return entity.Dataset{}, domain.WrapError(err, errcodes.DatasetInvalid, "read row")
		}

		sample, err := parseRecord(record, columns)
		if err != nil {
			return entity.Dataset{}, domain.WrapError(err, errcodes.DatasetInvalid, fmt.Sprintf("line %d", line))
		}

		samples = append(samples, sample)
	}

	if len(samples) == 0 {
		return entity.Dataset{}, domain.NewError(errcodes.DatasetEmpty, "dataset has no rows")
	}

	return entity.Dataset{Samples: samples}, nil
}

type columnIndex struct {
	features  map[value.Feature]int
	diagnosis int
}

func locate(header []string) (columnIndex, error) {
	byName := make(map[string]int, len(header))

	for i, name := range header {
		byName[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}

	columns := columnIndex{features: make(map[value.Feature]int, len(value.Features()))}

	for _, f := range value.Features() {
		i, ok := byName[f.String()]
		if !ok {
			return columnIndex{}, domain.NewError(errcodes.DatasetInvalid, fmt.Sprintf("column %s is missing", f))
		}

		columns.features[f] = i
	}

	i, ok := byName[columnDiagnosis]
	if !ok {
		return columnIndex{}, domain.NewError(errcodes.DatasetInvalid, "column diagnosis is missing")
	}

	columns.diagnosis = i

	return columns, nil
}

func parseRecord(record []string, columns columnIndex) (entity.Sample, error) {
	var sample entity.Sample

	for f, i := range columns.features {
		v, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
		if err != nil {
			return entity.Sample{}, fmt.Errorf("%s: %w", f, err)
		}

		sample.Cell.Set(f, v)
	}

	if err := sample.Cell.Validate(); err != nil {
		return entity.Sample{}, err
	}

	diagnosis, err := value.ParseDiagnosis(record[columns.diagnosis])
	if err != nil {
		return entity.Sample{}, fmt.Errorf("value.ParseDiagnosis: %w", err)
	}

	sample.Diagnosis = diagnosis

	return sample, nil
}

// Write stores ds as CSV with an id column and the model features.
func Write(w io.Writer, ds entity.Dataset) error {
	writer := csv.NewWriter(w)

	header := []string{"id", columnDiagnosis}
	for _, f := range value.Features() {
		header = append(header, f.String())
	}

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writer.Write: %w", err)
	}

	for i, sample := range ds.Samples {
		row := []string{strconv.Itoa(i + 1), sample.Diagnosis.Code()}
		for _, v := range sample.Cell.Vector() {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writer.Write: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("writer.Flush: %w", err)
	}

	return nil
}
