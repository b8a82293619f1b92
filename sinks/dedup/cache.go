// Package dedup guards a downstream sink against reprocessing the same
// record twice when a capture source retransmits frames (a common
// occurrence on UDP multicast feeds). It hashes a record's identifying
// fields with xxhash and remembers recently seen hashes in a small
// on-disk LevelDB store, so restarts don't reopen the flood gate.
package dedup

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/golang/snappy"
	"github.com/syndtr/goleveldb/leveldb"
)

// Cache is a persistent set of recently-seen record hashes.
type Cache struct {
	db *leveldb.DB
}

// Open opens (creating if necessary) a LevelDB-backed dedup cache at dir.
func Open(dir string) (*Cache, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("opening dedup cache %s: %w", dir, err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying LevelDB handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key hashes the identifying fields of a record (category, data source,
// time-of-day, and any category-specific discriminator the caller adds)
// into a fixed-size dedup key.
func Key(category uint8, sac, sic uint8, timeOfDayRaw uint32, discriminant string) uint64 {
	h := xxhash.New()
	h.Write([]byte{category, sac, sic})
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], timeOfDayRaw)
	h.Write(buf[:])
	h.Write([]byte(discriminant))
	return h.Sum64()
}

// SeenBefore reports whether key has already been recorded, and records it
// if not. The raw 8-byte key is snappy-compressed before being stored as
// the LevelDB value's companion record count, matching the space-saving
// habit the rest of the corpus's persistence layers apply to small blobs.
func (c *Cache) SeenBefore(key uint64) (bool, error) {
	var kb [8]byte
	binary.BigEndian.PutUint64(kb[:], key)

	_, err := c.db.Get(kb[:], nil)
	if err == nil {
		return true, nil
	}
	if err != leveldb.ErrNotFound {
		return false, fmt.Errorf("querying dedup cache: %w", err)
	}

	marker := snappy.Encode(nil, []byte{1})
	if err := c.db.Put(kb[:], marker, nil); err != nil {
		return false, fmt.Errorf("recording dedup key: %w", err)
	}
	return false, nil
}
