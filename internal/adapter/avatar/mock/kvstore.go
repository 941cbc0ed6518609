package mock

import (
	"errors"
	"strings"
	"sync"
)

// KVStore mocks avatar.KVStore.
type KVStore struct {
	data    map[string][]byte
	reads   int
	updates int
	m       sync.Mutex

	// ReadErr and UpdateErr, when set, are returned by all calls.
	ReadErr   error
	UpdateErr error
}

// ErrStore is a generic store failure usable in tests.
var ErrStore = errors.New("store failure")

// NewKVStore creates new KVStore instance with given data
func NewKVStore(data map[string][]byte) *KVStore {
	return &KVStore{
		data: data,
	}
}

// ReadKey returns data saved for given key.
func (s *KVStore) ReadKey(key []byte) ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.reads++
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	if s.data == nil {
		return nil, nil
	}

	return s.data[string(key)], nil
}

// UpdateKey stores given data under given key.
func (s *KVStore) UpdateKey(key []byte, data []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	s.updates++
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	if s.data == nil {
		s.data = make(map[string][]byte)
	}
	s.data[string(key)] = data

	return nil
}

// PruneKeys deletes keys with given prefix for which keep returns false.
func (s *KVStore) PruneKeys(prefix []byte, keep func(value []byte) bool) (int, error) {
	s.m.Lock()
	defer s.m.Unlock()

	if s.UpdateErr != nil {
		return 0, s.UpdateErr
	}
	var deleted int
	for k, v := range s.data {
		if strings.HasPrefix(k, string(prefix)) && !keep(v) {
			delete(s.data, k)
			deleted++
		}
	}

	return deleted, nil
}

// Len returns number of stored keys.
func (s *KVStore) Len() int {
	s.m.Lock()
	defer s.m.Unlock()

	return len(s.data)
}

// Reads returns read call count.
func (s *KVStore) Reads() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.reads
}

// Updates returns update call count.
func (s *KVStore) Updates() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.updates
}
