package model

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

/*
Store is an interface for storage of named models.

Its Load method returns an error wrapping ErrModelNotFound when
there is no model under the given name.
*/
type Store interface {
	Save(ctx context.Context, name string, m *Model) error
	Load(ctx context.Context, name string) (*Model, error)
}

/*
FileStore is a Store keeping every model as a JSON file named after
it in a directory of a filesystem.
*/
type FileStore struct {
	fs  afero.Fs
	dir string
}

// NewFileStore returns a FileStore on the dir directory of fs
func NewFileStore(fs afero.Fs, dir string) *FileStore {
	return &FileStore{fs, dir}
}

// Save writes the model to the file for name, creating the directory if needed
func (fst *FileStore) Save(ctx context.Context, name string, m *Model) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	if err = fst.fs.MkdirAll(fst.dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating model directory %s", fst.dir)
	}
	if err = afero.WriteFile(fst.fs, fst.path(name), data, 0o644); err != nil {
		return errors.Wrapf(err, "saving model %s", name)
	}
	return nil
}

// Load reads the model in the file for name
func (fst *FileStore) Load(ctx context.Context, name string) (*Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(fst.fs, fst.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(ErrModelNotFound, "%s", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading model %s", name)
	}
	m, err := Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading model %s", name)
	}
	return m, nil
}

func (fst *FileStore) path(name string) string {
	return filepath.Join(fst.dir, name)
}
