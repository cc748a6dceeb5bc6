/*
Package csv reads and writes sets of samples as CSV.

The header or first row holds the names of the features followed by the
label column "res". Every other row holds the boolean values of a sample
for each column.
*/
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
)

/*
Writer is a dataset.Writer that writes samples as CSV rows
*/
type Writer struct {
	count    int
	features []feature.Feature
	w        *csv.Writer
}

/*
ReadSet takes an io.Reader for a CSV stream and returns a dataset.Set with the
features in the header and the samples parsed from the rows, or an error.
*/
func ReadSet(reader io.Reader) (*dataset.Set, error) {
	var features []feature.Feature
	var samples []dataset.Sample
	err := ReadSetBySample(reader, func(fs []feature.Feature) {
		features = fs
	}, func(_ int, s dataset.Sample) (bool, error) {
		samples = append(samples, s)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(features, samples)
}

/*
ReadSetBySample takes an io.Reader for a CSV stream, a function to call with
the features parsed from the header and a lambda function on an integer and
a dataset.Sample that returns a boolean value.
It parses the samples from the reader and for each it calls the lambda function
with the sample and its index as parameters. If the lambda function returns true,
it will continue processing the next sample, otherwise it will stop. An error is
returned if something goes wrong when reading the stream or parsing a sample.
*/
func ReadSetBySample(reader io.Reader, onHeader func([]feature.Feature), lambda func(int, dataset.Sample) (bool, error)) error {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading header: %v", err)
	}
	features, err := parseFeaturesFromCSVHeader(header)
	if err != nil {
		return err
	}
	if onHeader != nil {
		onHeader(features)
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		sample, err := parseSampleFromCSVRow(row, header)
		if err != nil {
			return fmt.Errorf("parsing line %d: %v", l, err)
		}
		ok, err := lambda(l-2, sample)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadSetFromFilePath takes a filepath string, opens the file to which it points
and uses ReadSet to return a dataset.Set or an error read from it. If the
filepath is empty, os.Stdin is read instead.
*/
func ReadSetFromFilePath(filepath string) (*dataset.Set, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading set: %v", err)
		}
		defer f.Close()
	}
	set, err := ReadSet(f)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return set, err
}

/*
NewWriter takes an io.Writer and a slice of feature.Features and
returns a Writer that will write any samples on the io.Writer,
after writing the header.
*/
func NewWriter(writer io.Writer, features []feature.Feature) (*Writer, error) {
	w := csv.NewWriter(writer)
	record := make([]string, 0, len(features)+1)
	for _, f := range features {
		record = append(record, f.Name())
	}
	record = append(record, feature.LabelName)
	err := w.Write(record)
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &Writer{features: features, w: w}, nil
}

/*
WriteSet takes a context, an io.Writer and a dataset.Set and dumps the set
to the writer in CSV format. It returns an error if something went wrong
when writing to the writer.
*/
func WriteSet(ctx context.Context, writer io.Writer, s *dataset.Set) error {
	cw, err := NewWriter(writer, s.Features())
	if err != nil {
		return err
	}
	if _, err = dataset.Dump(ctx, s, cw); err != nil {
		return err
	}
	return cw.Flush()
}

func parseFeaturesFromCSVHeader(header []string) ([]feature.Feature, error) {
	if len(header) == 0 || header[len(header)-1] != feature.LabelName {
		return nil, fmt.Errorf("parsing header: last column must be %s", feature.LabelName)
	}
	features := make([]feature.Feature, 0, len(header)-1)
	for _, name := range header[:len(header)-1] {
		features = append(features, feature.NewBooleanFeature(name))
	}
	if err := feature.ValidateSchema(features); err != nil {
		return nil, fmt.Errorf("parsing header: %v", err)
	}
	return features, nil
}

func parseSampleFromCSVRow(row []string, header []string) (dataset.Sample, error) {
	featureValues := make(map[string]bool, len(header))
	for i, name := range header {
		v, err := strconv.ParseBool(row[i])
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for %s: %v", row[i], name, err)
		}
		featureValues[name] = v
	}
	return dataset.NewSample(featureValues), nil
}

// Count returns the total number of samples written to the writer
func (cw *Writer) Count() int {
	return cw.count
}

/*
Write writes the given samples as CSV rows and returns the number of samples
written and an error if not all of them could be written.
*/
func (cw *Writer) Write(ctx context.Context, samples []dataset.Sample) (int, error) {
	for n, s := range samples {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if err := cw.WriteSample(s); err != nil {
			return n, err
		}
	}
	return len(samples), nil
}

// WriteSample writes a single sample as a CSV row
func (cw *Writer) WriteSample(sample dataset.Sample) error {
	record := make([]string, 0, len(cw.features)+1)
	for _, f := range cw.features {
		v, err := sample.ValueFor(f)
		if err != nil {
			return err
		}
		record = append(record, strconv.FormatBool(v))
	}
	label, err := sample.ValueFor(feature.Label)
	if err != nil {
		return err
	}
	record = append(record, strconv.FormatBool(label))
	err = cw.w.Write(record)
	if err != nil {
		return fmt.Errorf("writing CSV row for sample %d: %v", cw.count+1, err)
	}
	cw.count++
	return nil
}

// Flush ensures written rows reach the underlying io.Writer
func (cw *Writer) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
