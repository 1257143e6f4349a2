package schema

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
	xe "github.com/opst/knitsocial/pkg/errors"
)

// ErrOutdated is the cause of contexts from Context when the database needs Upgrade.
var ErrOutdated = errors.New("schema is outdated")

// pgSchema applies SQL files in a schema repository.
//
// A schema repository is a directory like
//
//	repository/
//	  1/
//	    000_xxx.sql
//	    001_yyy.sql
//	  2/
//	    ...
//
// Each numbered directory is a schema version. Files in a version are applied in
// lexical order of their paths.
type pgSchema struct {
	pool       kpool.Pool
	repository string
}

// New creates a schema for the repository directory.
func New(pool kpool.Pool, repository string) *pgSchema {
	return &pgSchema{pool: pool, repository: repository}
}

// migration is a version directory in the repository.
type migration struct {
	version int
	files   []string
}

func (m migration) apply(ctx context.Context, tx kpool.Tx) error {
	for _, f := range m.files {
		query, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, string(query)); err != nil {
			return xe.WrapWithNote(f, err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM "schema_version"`); err != nil {
		return xe.Wrap(err)
	}
	if _, err := tx.Exec(
		ctx, `INSERT INTO "schema_version" ("version") VALUES ($1)`, m.version,
	); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (s *pgSchema) Version(ctx context.Context) (int, error) {
	var version int
	err := s.pool.QueryRow(
		ctx, `SELECT coalesce(max("version"), 0) FROM "schema_version"`,
	).Scan(&version)

	var pgerr *pgconn.PgError
	switch {
	case err == nil:
		return version, nil
	case errors.As(err, &pgerr) && pgerr.Code == pgerrcode.UndefinedTable:
		// nothing is applied yet.
		return 0, nil
	default:
		return -1, xe.Wrap(err)
	}
}

func (s *pgSchema) Upgrade(ctx context.Context) error {
	ms, err := s.migrations()
	if err != nil {
		return err
	}

	// read out of the transaction. a failed query aborts the transaction.
	current, err := s.Version(ctx)
	if err != nil {
		return err
	}

	return kpool.InTx(ctx, s.pool, func(tx kpool.Tx) error {
		for _, m := range ms {
			if m.version <= current {
				continue
			}
			if err := m.apply(ctx, tx); err != nil {
				return err
			}
		}
		return nil
	})
}

// outdated returns ErrOutdated when the repository has a version newer than the database.
func (s *pgSchema) outdated(ctx context.Context) error {
	ms, err := s.migrations()
	if err != nil {
		return fmt.Errorf("failed to read schema repository: %w", err)
	}
	if len(ms) == 0 {
		return nil
	}

	current, err := s.Version(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	if latest := ms[len(ms)-1].version; current < latest {
		return fmt.Errorf("%w: %d (in db) < %d (in repository)", ErrOutdated, current, latest)
	}
	return nil
}

// Context returns a context canceled when the database gets older than the repository.
//
// The repository is checked at once, and again whenever an entry is created
// or removed directly in the repository directory.
func (s *pgSchema) Context(ctx context.Context) (context.Context, context.CancelFunc) {
	cctx, can := context.WithCancelCause(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		can(err)
		return cctx, func() {}
	}
	if err := w.Add(s.repository); err != nil {
		w.Close()
		can(err)
		return cctx, func() {}
	}

	check := func() {
		if err := s.outdated(cctx); err != nil {
			can(err)
		}
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-cctx.Done():
				return
			case err, ok := <-w.Errors:
				if ok {
					can(err)
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Create|fsnotify.Remove) &&
					filepath.Dir(ev.Name) == filepath.Clean(s.repository) {
					check()
				}
			}
		}
	}()

	check()
	return cctx, func() { can(nil) }
}

// migrations lists versions in the repository, oldest first.
//
// Entries which are not directories named with an integer are ignored.
func (s *pgSchema) migrations() ([]migration, error) {
	entries, err := os.ReadDir(s.repository)
	if err != nil {
		return nil, err
	}

	ms := []migration{}
	for _, entry := range entries {
		v, err := strconv.Atoi(entry.Name())
		if err != nil || !entry.IsDir() {
			continue
		}
		files, err := sqlFiles(filepath.Join(s.repository, entry.Name()))
		if err != nil {
			return nil, err
		}
		ms = append(ms, migration{version: v, files: files})
	}
	slices.SortFunc(ms, func(a, b migration) int { return a.version - b.version })

	return ms, nil
}

// sqlFiles lists *.sql files under root, recursively, in lexical order.
func sqlFiles(root string) ([]string, error) {
	files := []string{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".sql") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// Null returns a schema which knows no repository.
//
// Upgrade always fails, and Context never expires by itself.
func Null() *nullSchema {
	return &nullSchema{}
}

type nullSchema struct{}

func (nullSchema) Upgrade(context.Context) error {
	return errors.New("no schema repository available")
}

func (nullSchema) Version(context.Context) (int, error) {
	return -1, nil
}

func (nullSchema) Context(ctx context.Context) (context.Context, context.CancelFunc) {
	return ctx, func() {}
}
