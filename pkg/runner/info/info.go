package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gosuri/uitable"

	"github.com/lnds/daily-log/pkg/glyph"
	"github.com/lnds/daily-log/pkg/store"
)

// Info reports where the journal lives and what it holds.
type Info struct {
	Config      *store.Config
	Persistence store.Persistence

	Out io.Writer
}

func (i *Info) Do(ctx context.Context) error {
	if override := os.Getenv("DAILYLOG_CONFIG"); override != "" {
		fmt.Fprintln(i.out(), "DAILYLOG_CONFIG found on env, using", override)
	} else {
		fmt.Fprintln(i.out(), "DAILYLOG_CONFIG env var not set")
	}

	cfg := i.Config
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(i.out(), "Journal file:", i.Persistence.Path())
	fmt.Fprintln(i.out(), "Default section:", cfg.Section(""))
	if cfg.Backups {
		keys, err := i.Persistence.Backups()
		if err != nil {
			return err
		}
		fmt.Fprintf(i.out(), "Backups: %d under %s\n", len(keys), cfg.BackupDir)
	} else {
		fmt.Fprintln(i.out(), "Backups: disabled")
	}

	j, err := i.Persistence.Load()
	if err != nil {
		return err
	}

	fmt.Fprintln(i.out(), glyph.Bold(glyph.Underline("\nSections")))
	names := j.Names()
	if len(names) == 0 {
		fmt.Fprintln(i.out(), "  no sections")
		return nil
	}
	counts := j.Counts()
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, name := range names {
		tbl.AddRow("  "+name, counts[name])
	}
	fmt.Fprintln(i.out(), tbl)
	return nil
}

func (i *Info) out() io.Writer {
	if i.Out != nil {
		return i.Out
	}
	return os.Stdout
}
