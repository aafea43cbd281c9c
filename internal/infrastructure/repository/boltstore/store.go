package boltstore

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	bolt "go.etcd.io/bbolt"
)

const (
	bucketSuspensions = string(docstore.CollectionSuspensions)
	bucketMatches     = string(docstore.CollectionMatches)
	bucketPlayers     = string(docstore.CollectionPlayers)
)

// Store keeps every collection in its own bucket of a single bolt file.
// Documents are JSON encoded.
type Store struct {
	db *bolt.DB
}

func Open(path string, timeout time.Duration) (*Store, error) {
	if timeout <= 0 {
		timeout = time.Second
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, wrap(err, "open bolt database %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{bucketSuspensions, bucketMatches, bucketPlayers} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, wrap(err, "init bolt buckets")
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Suspensions() *SuspensionRepository {
	return &SuspensionRepository{db: s.db}
}

func (s *Store) Matches() *MatchRepository {
	return &MatchRepository{db: s.db}
}

func (s *Store) Roster() *RosterRepository {
	return &RosterRepository{db: s.db}
}

// stored wraps a document with its insertion sequence so listings keep save
// order regardless of key order.
type stored[T any] struct {
	Seq uint64 `json:"seq"`
	Doc T      `json:"doc"`
}

func get[T any](b *bolt.Bucket, key string) (stored[T], bool, error) {
	var out stored[T]
	data := b.Get([]byte(key))
	if data == nil {
		return out, false, nil
	}
	if err := sonic.Unmarshal(data, &out); err != nil {
		return out, false, docstore.OperationFailed(err, "decode %s", key)
	}
	return out, true, nil
}

func put[T any](b *bolt.Bucket, key string, item stored[T]) error {
	data, err := sonic.Marshal(item)
	if err != nil {
		return docstore.OperationFailed(err, "encode %s", key)
	}
	return b.Put([]byte(key), data)
}

// insert stores doc under key with the next bucket sequence. It fails when
// the key is taken.
func insert[T any](b *bolt.Bucket, key string, doc T) error {
	if b.Get([]byte(key)) != nil {
		return docstore.OperationFailed(nil, "insert %s: key already exists", key)
	}
	seq, err := b.NextSequence()
	if err != nil {
		return err
	}
	return put(b, key, stored[T]{Seq: seq, Doc: doc})
}

// replace overwrites the document at key, keeping its sequence.
func replace[T any](b *bolt.Bucket, key string, doc T) error {
	current, ok, err := get[T](b, key)
	if err != nil {
		return err
	}
	if !ok {
		return docstore.NotFound("%s", key)
	}
	current.Doc = doc
	return put(b, key, current)
}

func remove(b *bolt.Bucket, key string) error {
	if b.Get([]byte(key)) == nil {
		return docstore.NotFound("%s", key)
	}
	return b.Delete([]byte(key))
}

// scan decodes every document of b in insertion order, keeping those keep
// accepts. A nil keep accepts all.
func scan[T any](b *bolt.Bucket, keep func(T) bool) ([]T, error) {
	items := make([]stored[T], 0, b.Stats().KeyN)
	err := b.ForEach(func(k, v []byte) error {
		var item stored[T]
		if err := sonic.Unmarshal(v, &item); err != nil {
			return docstore.OperationFailed(err, "decode %s", k)
		}
		if keep == nil || keep(item.Doc) {
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Seq < items[j].Seq })
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, item.Doc)
	}
	return out, nil
}

func bucket(tx *bolt.Tx, name string) (*bolt.Bucket, error) {
	b := tx.Bucket([]byte(name))
	if b == nil {
		return nil, docstore.OperationFailed(nil, "bucket %s is missing", name)
	}
	return b, nil
}

// wrap keeps errors that already carry a store kind and classifies the rest.
func wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, docstore.ErrNotFound) ||
		errors.Is(err, docstore.ErrOperationFailed) ||
		errors.Is(err, docstore.ErrUnavailable) {
		return err
	}
	if errors.Is(err, bolt.ErrDatabaseNotOpen) || errors.Is(err, bolt.ErrTimeout) {
		return docstore.Unavailable(err, format, args...)
	}
	return docstore.OperationFailed(err, format, args...)
}
