/*
Package redisstore provides a model.Store that keeps
serialized models in a Redis database.
*/
package redisstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/model"
	"github.com/pkg/errors"
	"gopkg.in/redis.v5"
)

// DefaultPrefix is the key prefix used by locations that do not set one
const DefaultPrefix = "taal"

/*
Store is a model.Store keeping every model as its JSON
serialization under the key <prefix>:<name>
*/
type Store struct {
	rc     *redis.Client
	prefix string
}

// New builds a Store backed by a redis DB
func New(rc *redis.Client, prefix string) *Store {
	return &Store{rc, prefix}
}

/*
Location is the parsed form of a model location in a Redis database:
redis://[:password@]host:port[/db]?key=name[&prefix=prefix]
*/
type Location struct {
	Options *redis.Options
	Prefix  string
	Name    string
}

// ParseLocation parses a redis:// model location
func ParseLocation(raw string) (*Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing redis location %q", raw)
	}
	if u.Scheme != "redis" {
		return nil, errors.Errorf("parsing redis location %q: scheme must be redis", raw)
	}
	if u.Host == "" {
		return nil, errors.Errorf("parsing redis location %q: missing host", raw)
	}
	opts := &redis.Options{Network: "tcp", Addr: u.Host}
	if u.Port() == "" {
		opts.Addr = u.Host + ":6379"
	}
	if u.User != nil {
		opts.Password, _ = u.User.Password()
	}
	if db := u.Path; db != "" && db != "/" {
		opts.DB, err = strconv.Atoi(db[1:])
		if err != nil {
			return nil, errors.Errorf("parsing redis location %q: invalid database %q", raw, db[1:])
		}
	}
	q := u.Query()
	loc := &Location{Options: opts, Prefix: q.Get("prefix"), Name: q.Get("key")}
	if loc.Name == "" {
		return nil, errors.Errorf("parsing redis location %q: missing key", raw)
	}
	if loc.Prefix == "" {
		loc.Prefix = DefaultPrefix
	}
	return loc, nil
}

// Open connects to the database of the location and returns a Store on it
func (l *Location) Open() (*Store, error) {
	rc := redis.NewClient(l.Options)
	if err := rc.Ping().Err(); err != nil {
		rc.Close()
		return nil, errors.Wrapf(err, "connecting to redis at %s", l.Options.Addr)
	}
	return New(rc, l.Prefix), nil
}

// Save stores the serialization of the model under the key for name
func (rs *Store) Save(ctx context.Context, name string, m *model.Model) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := rs.keyFor(name)
	data, err := model.Marshal(m)
	if err != nil {
		return errors.Wrapf(err, "storing model %q: encoding model", key)
	}
	_, err = rs.rc.Set(key, data, 0).Result()
	if err != nil {
		return errors.Wrapf(err, "storing model %q in redis", key)
	}
	return nil
}

// Load retrieves the model stored under the key for name
func (rs *Store) Load(ctx context.Context, name string) (*model.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := rs.keyFor(name)
	data, err := rs.rc.Get(key).Bytes()
	if err == redis.Nil {
		return nil, errors.Wrapf(model.ErrModelNotFound, "%q", key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving model %q", key)
	}
	m, err := model.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving model %q", key)
	}
	return m, nil
}

// Delete removes the model stored under the key for name
func (rs *Store) Delete(ctx context.Context, name string) error {
	key := rs.keyFor(name)
	_, err := rs.rc.Del(key).Result()
	if err != nil {
		return errors.Wrapf(err, "deleting model %q from redis", key)
	}
	return nil
}

// Close closes the connection to the database
func (rs *Store) Close() error {
	return rs.rc.Close()
}

func (rs *Store) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, name)
}
