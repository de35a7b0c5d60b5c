package tuplestore

import (
	"bytes"

	"go.etcd.io/bbolt"
)

func boltSeek(c *bbolt.Cursor, prefix []byte, reverse bool) ([]byte, []byte) {
	if reverse {
		return boltSeekLast(c, prefix)
	} else {
		return c.Seek(prefix)
	}
}

// boltSeekLast positions the cursor on the last key starting with prefix.
func boltSeekLast(c *bbolt.Cursor, prefix []byte) ([]byte, []byte) {
	k, _ := c.Seek(prefix)
	if k == nil {
		return nil, nil
	}
	for k != nil && bytes.HasPrefix(k, prefix) {
		k, _ = c.Next()
	}
	if k == nil {
		return c.Last()
	} else {
		return c.Prev()
	}
}

func boltFirstLast(c *bbolt.Cursor, reverse bool) ([]byte, []byte) {
	if reverse {
		return c.Last()
	} else {
		return c.First()
	}
}

func boltAdvance(c *bbolt.Cursor, reverse bool) ([]byte, []byte) {
	if reverse {
		return c.Prev()
	} else {
		return c.Next()
	}
}
