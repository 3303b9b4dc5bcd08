package storage

import (
	"fmt"
	"strconv"
)

const keyTransferSeq = "transfer_seq"

// MetaStore handles engine metadata storage operations
type MetaStore struct {
	db *PebbleDB
}

// NewMetaStore creates a new MetaStore
func NewMetaStore(db *PebbleDB) *MetaStore {
	return &MetaStore{db: db}
}

// NextTransferSeq returns the next transfer insertion sequence number and
// persists the advanced counter.
func (s *MetaStore) NextTransferSeq() (uint64, error) {
	data, err := s.db.Get(CFMeta, []byte(keyTransferSeq))
	if err != nil {
		return 0, err
	}

	var seq uint64
	if data != nil {
		seq, err = strconv.ParseUint(string(data), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse transfer sequence: %w", err)
		}
	}

	next := seq + 1
	if err := s.db.Put(CFMeta, []byte(keyTransferSeq), []byte(strconv.FormatUint(next, 10))); err != nil {
		return 0, err
	}
	return next, nil
}
