package dataset

import (
	"context"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/pkg/errors"
)

/*
Reader is an interface for storage from which samples can be
sequentially read.

Its Read method returns a channel on which samples are sent in their
storage order and a channel on which an error is sent if the reading
fails. Both channels are closed when reading is over.
*/
type Reader interface {
	Read(context.Context) (<-chan Sample, <-chan error)
}

/*
Writer is an interface for storage to which samples can be written.

Its Write method will attempt to write the given samples and will return
the number of samples actually written and an error if not all of them
could be written.
*/
type Writer interface {
	Write(context.Context, []Sample) (int, error)
}

/*
Collect takes a context, a feature schema and a Reader and returns a Set
with all the samples read, in the order they were read, or an error if
reading fails or the samples do not fit the schema.
*/
func Collect(ctx context.Context, features []feature.Feature, r Reader) (*Set, error) {
	var samples []Sample
	sampleStream, errStream := r.Read(ctx)
	for s := range sampleStream {
		samples = append(samples, s)
	}
	if err := <-errStream; err != nil {
		return nil, errors.Wrap(err, "reading samples")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return New(features, samples)
}

/*
Dump takes a context, a Set and a Writer and writes every sample in the set
onto the writer.
*/
func Dump(ctx context.Context, s *Set, w Writer) (int, error) {
	n, err := w.Write(ctx, s.Samples())
	if err != nil {
		return n, errors.Wrapf(err, "writing sample #%d", n)
	}
	return n, nil
}
