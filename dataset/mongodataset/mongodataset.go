/*
Package mongodataset provides a dataset.Reader and dataset.Writer
that use a MongoDB database as backend.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	samplesCollectionName = "samples"
	seqField              = "_seq"
)

/*
Set is a dataset.Reader and dataset.Writer over the samples collection
of the default database for a MongoDB session.
*/
type Set struct {
	session  *mgo.Session
	features []feature.Feature
}

/*
Open takes a MongoDB database session and the features of the samples
and returns a Set that works on the default database for
that session or an error if it fails to prepare its collection.
*/
func Open(ctx context.Context, session *mgo.Session, features []feature.Feature) (*Set, error) {
	if err := feature.ValidateSchema(features); err != nil {
		return nil, err
	}
	mds := &Set{session, append([]feature.Feature(nil), features...)}
	err := mds.ensureIndexes()
	if err != nil {
		return nil, err
	}
	return mds, nil
}

// Count returns the number of stored samples
func (mds *Set) Count(context.Context) (int, error) {
	return mds.samplesCollection().Count()
}

/*
Write stores the given samples, labels included, after any already stored
and returns the number of samples stored.
*/
func (mds *Set) Write(ctx context.Context, samples []dataset.Sample) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	next, err := mds.samplesCollection().Count()
	if err != nil {
		return 0, err
	}
	docs := make([]interface{}, 0, len(samples))
	for i, s := range samples {
		doc, err := mds.document(s)
		if err != nil {
			return 0, fmt.Errorf("sample #%d: %v", i, err)
		}
		doc[seqField] = next + i
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return 0, nil
	}
	err = mds.samplesCollection().Insert(docs...)
	if err != nil {
		return 0, err
	}
	return len(samples), nil
}

/*
Read sends every stored sample, in the order they were written, on the
returned sample channel.
*/
func (mds *Set) Read(ctx context.Context) (<-chan dataset.Sample, <-chan error) {
	samples := make(chan dataset.Sample)
	errs := make(chan error, 1)
	go func() {
		defer close(errs)
		defer close(samples)
		var doc bson.M
		var err error
		iter := mds.samplesCollection().Find(nil).Sort(seqField).Iter()
	loop:
		for iter.Next(&doc) {
			var s dataset.Sample
			s, err = sampleFrom(doc)
			if err != nil {
				break
			}
			select {
			case <-ctx.Done():
				err = ctx.Err()
				break loop
			case samples <- s:
			}
			doc = nil
		}
		if cerr := iter.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			errs <- err
		}
	}()
	return samples, errs
}

// Load reads every stored sample into a dataset.Set
func (mds *Set) Load(ctx context.Context) (*dataset.Set, error) {
	return dataset.Collect(ctx, mds.features, mds)
}

func (mds *Set) document(s dataset.Sample) (bson.M, error) {
	doc := make(bson.M, len(mds.features)+2)
	for _, f := range mds.features {
		value, err := s.ValueFor(f)
		if err != nil {
			return nil, err
		}
		doc[f.Name()] = value
	}
	label, err := s.ValueFor(feature.Label)
	if err != nil {
		return nil, err
	}
	doc[feature.LabelName] = label
	return doc, nil
}

func sampleFrom(doc bson.M) (dataset.Sample, error) {
	values := make(map[string]bool, len(doc))
	for k, v := range doc {
		if k == "_id" || k == seqField {
			continue
		}
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("field %q holds a %T instead of a bool", k, v)
		}
		values[k] = b
	}
	return dataset.NewSample(values), nil
}

func (mds *Set) ensureIndexes() error {
	for _, f := range mds.features {
		fName := f.Name()
		if fName == "_id" || fName == seqField {
			return fmt.Errorf("invalid feature name %q: reserved collection field", fName)
		}
		if strings.ContainsAny(fName, ".$") {
			return fmt.Errorf("invalid feature name %q: contains reserved characters %q or %q", fName, ".", "$")
		}
	}
	return mds.samplesCollection().EnsureIndex(mgo.Index{
		Key:        []string{seqField},
		Background: true,
	})
}

func (mds *Set) samplesCollection() *mgo.Collection {
	return mds.session.DB("").C(samplesCollectionName)
}
