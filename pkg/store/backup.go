package store

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

// backupKeyLayout formats snapshot keys as sortable UTC timestamps, so
// lexical order is chronological order.
const backupKeyLayout = "20060102T150405.000000000"

// ErrNoBackups reports an undo with no snapshot left to restore.
var ErrNoBackups = errors.New("store: no backups to restore")

type backups struct {
	d *diskv.Diskv
}

func newBackups(dir string) *backups {
	return &backups{d: diskv.New(diskv.Options{
		BasePath:     dir,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (b *backups) snapshot(content []byte) error {
	key := time.Now().UTC().Format(backupKeyLayout)
	return b.d.Write(key, content)
}

// pop removes and returns the newest snapshot.
func (b *backups) pop() ([]byte, error) {
	keys := b.list()
	if len(keys) == 0 {
		return nil, ErrNoBackups
	}
	latest := keys[len(keys)-1]
	data, err := b.d.Read(latest)
	if err != nil {
		return nil, fmt.Errorf("store: read backup %s: %w", latest, err)
	}
	if err := b.d.Erase(latest); err != nil {
		return nil, fmt.Errorf("store: drop backup %s: %w", latest, err)
	}
	return data, nil
}

func (b *backups) list() []string {
	var keys []string
	for key := range b.d.Keys(nil) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
