package undo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lnds/daily-log/pkg/store"
)

// Undo restores the journal file from the most recent backup snapshot.
type Undo struct {
	Persistence store.Persistence

	Out io.Writer
}

func (u *Undo) Do(ctx context.Context) error {
	if err := u.Persistence.Undo(); err != nil {
		if errors.Is(err, store.ErrNoBackups) {
			fmt.Fprintln(u.out(), "Nothing to undo")
			return nil
		}
		return err
	}
	fmt.Fprintf(u.out(), "Restored %s from the most recent backup\n", u.Persistence.Path())
	return nil
}

func (u *Undo) out() io.Writer {
	if u.Out != nil {
		return u.Out
	}
	return os.Stdout
}
