package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset/csv"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset/mongodataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset/sqldataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset/sqldataset/pgadapter"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset/sqldataset/sqlite3adapter"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/model"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/model/redisstore"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/sentence"
	"github.com/spf13/afero"
	mgo "gopkg.in/mgo.v2"
)

func isPostgreSQL(location string) bool {
	return strings.HasPrefix(location, "postgresql://") || strings.HasPrefix(location, "postgres://")
}

func isMongoDB(location string) bool {
	return strings.HasPrefix(location, "mongodb://")
}

/*
labelledSet reads the set of labelled samples at input: a labelled corpus
(the default, read from stdin when input is empty), a CSV (.csv) or
SQLite3 (.db) file, or a PostgreSQL or MongoDB URL.
*/
func (rcc *rootCmdConfig) labelledSet(ctx context.Context, input string, stdin io.Reader, e *sentence.Extractor, maxDBConns int) (*dataset.Set, error) {
	switch {
	case input == "":
		rcc.Logf("Reading labelled sentences from STDIN...")
		return sentence.ReadLabelled(stdin, e)
	case isPostgreSQL(input):
		rcc.Logf("Creating PostgreSQL adapter for url %s to read samples...", input)
		adapter, err := pgadapter.New(input)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return loadSQLSet(ctx, adapter, e.Features())
	case isMongoDB(input):
		rcc.Logf("Connecting to MongoDB at %s to read samples...", input)
		session, err := mgo.Dial(input)
		if err != nil {
			return nil, fmt.Errorf("connecting to %s: %v", input, err)
		}
		defer session.Close()
		mds, err := mongodataset.Open(ctx, session, e.Features())
		if err != nil {
			return nil, err
		}
		return mds.Load(ctx)
	case strings.HasSuffix(input, ".db"):
		rcc.Logf("Creating SQLite3 adapter for file %s to read samples...", input)
		adapter, err := sqlite3adapter.New(input, maxDBConns)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return loadSQLSet(ctx, adapter, e.Features())
	case strings.HasSuffix(input, ".csv"):
		rcc.Logf("Reading samples from CSV file %s...", input)
		return csv.ReadSetFromFilePath(input)
	}
	rcc.Logf("Reading labelled sentences from %s...", input)
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening labelled sentences at %s: %v", input, err)
	}
	defer f.Close()
	return sentence.ReadLabelled(f, e)
}

func loadSQLSet(ctx context.Context, adapter sqldataset.Adapter, features []feature.Feature) (*dataset.Set, error) {
	s, err := sqldataset.Open(ctx, adapter, features)
	if err != nil {
		return nil, err
	}
	return s.Load(ctx)
}

/*
dumpSet writes the samples of the set to output: a CSV file (the default,
written to STDOUT when output is empty), an SQLite3 (.db) file, or a
PostgreSQL or MongoDB URL.
*/
func (rcc *rootCmdConfig) dumpSet(ctx context.Context, output string, stdout io.Writer, s *dataset.Set) (int, error) {
	switch {
	case output == "":
		return s.Count(), csv.WriteSet(ctx, stdout, s)
	case isPostgreSQL(output):
		rcc.Logf("Creating PostgreSQL adapter for url %s to write samples...", output)
		adapter, err := pgadapter.New(output)
		if err != nil {
			return 0, err
		}
		defer adapter.Close()
		return dumpSQLSet(ctx, adapter, s)
	case isMongoDB(output):
		rcc.Logf("Connecting to MongoDB at %s to write samples...", output)
		session, err := mgo.Dial(output)
		if err != nil {
			return 0, fmt.Errorf("connecting to %s: %v", output, err)
		}
		defer session.Close()
		mds, err := mongodataset.Open(ctx, session, s.Features())
		if err != nil {
			return 0, err
		}
		return dataset.Dump(ctx, s, mds)
	case strings.HasSuffix(output, ".db"):
		rcc.Logf("Creating SQLite3 adapter for file %s to write samples...", output)
		adapter, err := sqlite3adapter.New(output, 0)
		if err != nil {
			return 0, err
		}
		defer adapter.Close()
		return dumpSQLSet(ctx, adapter, s)
	}
	rcc.Logf("Writing samples to CSV file %s...", output)
	f, err := os.Create(output)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	if err = csv.WriteSet(ctx, f, s); err != nil {
		return 0, err
	}
	return s.Count(), f.Close()
}

func dumpSQLSet(ctx context.Context, adapter sqldataset.Adapter, s *dataset.Set) (int, error) {
	sqls, err := sqldataset.Create(ctx, adapter, s.Features())
	if err != nil {
		return 0, err
	}
	return dataset.Dump(ctx, s, sqls)
}

/*
modelStore returns the store and name for a model location: a
redis://host:port/db?key=name URL or a file path.
*/
func (rcc *rootCmdConfig) modelStore(location string) (model.Store, string, func() error, error) {
	if strings.HasPrefix(location, "redis://") {
		loc, err := redisstore.ParseLocation(location)
		if err != nil {
			return nil, "", nil, err
		}
		rcc.Logf("Connecting to Redis at %s...", loc.Options.Addr)
		st, err := loc.Open()
		if err != nil {
			return nil, "", nil, err
		}
		return st, loc.Name, st.Close, nil
	}
	dir, name := filepath.Split(location)
	if dir == "" {
		dir = "."
	}
	return model.NewFileStore(afero.NewOsFs(), dir), name, func() error { return nil }, nil
}

func (rcc *rootCmdConfig) loadModel(ctx context.Context, location string) (*model.Model, error) {
	st, name, closeStore, err := rcc.modelStore(location)
	if err != nil {
		return nil, err
	}
	defer closeStore()
	m, err := st.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("loading model from %s: %v", location, err)
	}
	return m, nil
}

func (rcc *rootCmdConfig) saveModel(ctx context.Context, location string, m *model.Model) error {
	st, name, closeStore, err := rcc.modelStore(location)
	if err != nil {
		return err
	}
	defer closeStore()
	if err = st.Save(ctx, name, m); err != nil {
		return fmt.Errorf("saving model to %s: %v", location, err)
	}
	return nil
}
