package storage

// MemoStore handles per-transaction free-text memos. Memos are presentation
// data only and never feed balance logic.
type MemoStore struct {
	db *PebbleDB
}

// NewMemoStore creates a new MemoStore
func NewMemoStore(db *PebbleDB) *MemoStore {
	return &MemoStore{db: db}
}

// Set stores the memo for a transaction id. An empty memo removes the key.
func (s *MemoStore) Set(txid, memo string) error {
	if memo == "" {
		return s.db.Delete(CFMemos, []byte(txid))
	}
	return s.db.Put(CFMemos, []byte(txid), []byte(memo))
}

// Get returns the memo for a transaction id, or "" if none is stored.
func (s *MemoStore) Get(txid string) (string, error) {
	data, err := s.db.Get(CFMemos, []byte(txid))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Delete removes the memo for a transaction id.
func (s *MemoStore) Delete(txid string) error {
	return s.db.Delete(CFMemos, []byte(txid))
}
