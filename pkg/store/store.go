package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lnds/daily-log/pkg/journal"
	"github.com/lnds/daily-log/pkg/taskpaper"
)

// Persistence is the storage contract the commands drive: load the
// journal, save it back, undo the last save.
type Persistence interface {
	Load() (*journal.Journal, error)
	Save(*journal.Journal) error
	Path() string
	Undo() error
	Backups() ([]string, error)
}

// Open builds a Persistence from the config. A nil config resolves one
// from the environment.
func Open(cfg *Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	p := &persistence{path: cfg.DoingFile}
	if cfg.Backups && cfg.BackupDir != "" {
		p.backups = newBackups(cfg.BackupDir)
	}
	return p, nil
}

type persistence struct {
	path    string
	backups *backups
}

func (p *persistence) Path() string {
	return p.path
}

// Load parses the journal file. A missing file is not an error: it
// yields a fresh journal with the default section seeded.
func (p *persistence) Load() (*journal.Journal, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return journal.New(), nil
		}
		return nil, fmt.Errorf("store: read %s: %w", p.path, err)
	}
	return taskpaper.Parse(string(data)), nil
}

// Save snapshots the current file content into the backup store, then
// writes the serialized journal through a temp file and a rename.
func (p *persistence) Save(j *journal.Journal) error {
	if p.backups != nil {
		prev, err := os.ReadFile(p.path)
		switch {
		case err == nil:
			if err := p.backups.snapshot(prev); err != nil {
				return fmt.Errorf("store: snapshot: %w", err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("store: read %s: %w", p.path, err)
		}
	}
	return p.write([]byte(taskpaper.Serialize(j)))
}

// Undo restores the most recent snapshot and drops it from the backup
// store.
func (p *persistence) Undo() error {
	if p.backups == nil {
		return errors.New("store: backups are disabled")
	}
	prev, err := p.backups.pop()
	if err != nil {
		return err
	}
	return p.write(prev)
}

// Backups lists the snapshot keys, oldest first.
func (p *persistence) Backups() ([]string, error) {
	if p.backups == nil {
		return nil, nil
	}
	return p.backups.list(), nil
}

func (p *persistence) write(data []byte) error {
	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: ensure %s: %w", dir, err)
		}
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("store: rename %s: %w", tmp, err)
	}
	return nil
}
