// Package tuplestore stores msgpack-encoded values in a Bolt database under
// order-preserving tuple keys, so that cursor scans visit entries in tuple
// order and a tuple prefix selects a contiguous key range.
package tuplestore

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"

	"github.com/andreyvit/tuples"
)

var dataBucket = []byte("data")

type Store struct {
	bdb *bbolt.DB
}

type Options struct {
	// IsTesting trades durability for speed (no fsync) and keeps the
	// initial mmap small.
	IsTesting bool
	MmapSize  int
}

func Open(path string, opt Options) (*Store, error) {
	bopt := *bbolt.DefaultOptions
	bopt.Timeout = 10 * time.Second
	if opt.IsTesting {
		bopt.NoSync = true
		bopt.NoFreelistSync = true
		bopt.InitialMmapSize = 1024 * 1024 * 5
	} else {
		bopt.FreelistType = bbolt.FreelistMapType
	}
	if opt.MmapSize != 0 {
		bopt.InitialMmapSize = opt.MmapSize
	}

	bdb, err := bbolt.Open(path, 0666, &bopt)
	if err != nil {
		return nil, fmt.Errorf("tuplestore: %w", err)
	}
	err = bdb.Update(func(btx *bbolt.Tx) error {
		_, err := btx.CreateBucketIfNotExists(dataBucket)
		return err
	})
	if err != nil {
		bdb.Close()
		return nil, fmt.Errorf("tuplestore: %w", err)
	}
	return &Store{bdb: bdb}, nil
}

func (s *Store) Close() error {
	return s.bdb.Close()
}

// Put stores value under key, msgpack-encoding the value. An existing value
// under the same key is overwritten.
func (s *Store) Put(key *tuples.Tuple, value any) error {
	buf := valueBytesPool.Get().([]byte)
	data, err := marshalValue(buf[:0], value)
	if err != nil {
		valueBytesPool.Put(buf[:0])
		return err
	}
	err = s.bdb.Update(func(btx *bbolt.Tx) error {
		return btx.Bucket(dataBucket).Put(key.Bytes(), data)
	})
	valueBytesPool.Put(data[:0])
	return err
}

// Get decodes the value stored under key into out, reporting whether the
// key was present.
func (s *Store) Get(key *tuples.Tuple, out any) (bool, error) {
	var found bool
	err := s.bdb.View(func(btx *bbolt.Tx) error {
		raw := btx.Bucket(dataBucket).Get(key.Bytes())
		if raw == nil {
			return nil
		}
		found = true
		return unmarshalValue(raw, out)
	})
	return found, err
}

func (s *Store) Delete(key *tuples.Tuple) error {
	return s.bdb.Update(func(btx *bbolt.Tx) error {
		return btx.Bucket(dataBucket).Delete(key.Bytes())
	})
}

// Scan visits every entry whose key starts with the encoding of prefix, in
// tuple order (reversed if reverse), calling fn with the decoded key
// segments and the raw msgpack value. A nil prefix scans the whole store.
// fn returns false to stop early. The key and value slices are only valid
// for the duration of the call.
func (s *Store) Scan(prefix *tuples.Tuple, reverse bool, fn func(key []tuples.Segment, value []byte) bool) error {
	var p []byte
	if prefix != nil {
		p = prefix.Bytes()
	}
	return s.bdb.View(func(btx *bbolt.Tx) error {
		c := btx.Bucket(dataBucket).Cursor()
		var k, v []byte
		if len(p) == 0 {
			k, v = boltFirstLast(c, reverse)
		} else {
			k, v = boltSeek(c, p, reverse)
		}
		for ; k != nil && bytes.HasPrefix(k, p); k, v = boltAdvance(c, reverse) {
			segs, err := tuples.Decode(k)
			if err != nil {
				return fmt.Errorf("tuplestore: invalid key %x: %w", k, err)
			}
			if !fn(segs, v) {
				return nil
			}
		}
		return nil
	})
}

var valueBytesPool = &sync.Pool{
	New: func() any {
		return make([]byte, 0, 65536)
	},
}

type valueBuilder struct {
	buf []byte
}

func (vb *valueBuilder) Write(b []byte) (int, error) {
	vb.buf = append(vb.buf, b...)
	return len(b), nil
}

func marshalValue(buf []byte, value any) ([]byte, error) {
	vb := valueBuilder{buf}
	enc := msgpack.GetEncoder()
	enc.Reset(&vb)
	enc.SetSortMapKeys(true)
	err := enc.Encode(value)
	msgpack.PutEncoder(enc)
	if err != nil {
		return nil, fmt.Errorf("tuplestore: failed to encode %T: %w", value, err)
	}
	return vb.buf, nil
}

func unmarshalValue(raw []byte, out any) error {
	var r bytes.Reader
	r.Reset(raw)
	dec := msgpack.GetDecoder()
	dec.Reset(&r)
	err := dec.Decode(out)
	msgpack.PutDecoder(dec)
	if err != nil {
		return fmt.Errorf("tuplestore: failed to decode into %T: %w", out, err)
	}
	return nil
}
