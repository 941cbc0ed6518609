package avatar

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/avatargrid/internal/app"
	"github.com/sirupsen/logrus"
)

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
	PruneKeys(prefix []byte, keep func(value []byte) bool) (int, error)
}

// StoredFetcher wraps avatar fetcher and returns images saved in db if possible.
//
// If image is not stored, or stored image ttl is exceeded, it is fetched and saved.
// Failing to save a fetched image is logged, the image is still returned.
type StoredFetcher struct {
	fetcher app.AvatarFetcher
	store   KVStore
	ttl     time.Duration
	l       logrus.FieldLogger
}

// NewStoredFetcher creates new StoredFetcher instance.
func NewStoredFetcher(
	fetcher app.AvatarFetcher,
	store KVStore,
	ttl time.Duration,
	l logrus.FieldLogger,
) *StoredFetcher {
	return &StoredFetcher{
		fetcher: fetcher,
		store:   store,
		ttl:     ttl,
		l:       l,
	}
}

// FetchAvatar returns image from db, or fetches it when not available.
func (f *StoredFetcher) FetchAvatar(ctx context.Context, url string) (app.Image, error) {
	key := f.dbKey(url)
	data, err := f.store.ReadKey(key)
	if err != nil {
		return app.Image{}, fmt.Errorf("reading stored avatar: %w", err)
	}
	if data != nil {
		entry, err := f.unserialize(data)
		if err != nil {
			f.l.Warnf("StoredFetcher: unserializing avatar %s: %v", url, err)
		} else if time.Unix(entry.Created, 0).Add(f.ttl).After(time.Now()) {
			return app.Image{
				ContentType: entry.ContentType,
				Data:        entry.Data,
			}, nil
		}
	}

	img, err := f.fetcher.FetchAvatar(ctx, url)
	if err != nil {
		return img, err
	}

	if err := f.save(key, img); err != nil {
		f.l.Errorf("StoredFetcher: saving avatar %s: %v", url, err)
	}

	return img, nil
}

// Prune deletes stored avatars older than ttl. Entries that can't be decoded are deleted too.
// Returns number of deleted entries.
func (f *StoredFetcher) Prune() (int, error) {
	deadline := time.Now().Add(-f.ttl)
	n, err := f.store.PruneKeys([]byte(storeKeyPrefix), func(data []byte) bool {
		entry, err := f.unserialize(data)
		return err == nil && time.Unix(entry.Created, 0).After(deadline)
	})
	if err != nil {
		return 0, fmt.Errorf("pruning stored avatars: %w", err)
	}

	return n, nil
}

func (f *StoredFetcher) save(key []byte, img app.Image) error {
	data, err := jsoniter.Marshal(storeEntry{
		Created:     time.Now().Unix(),
		ContentType: img.ContentType,
		Data:        img.Data,
	})
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	return f.store.UpdateKey(key, data)
}

func (f *StoredFetcher) unserialize(data []byte) (*storeEntry, error) {
	var entry storeEntry
	if err := jsoniter.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("unmarshalling json: %w", err)
	}

	return &entry, nil
}

func (f *StoredFetcher) dbKey(url string) []byte {
	return []byte(storeKeyPrefix + url)
}

const storeKeyPrefix = "av/"

type storeEntry struct {
	Created     int64
	ContentType string
	Data        []byte
}
