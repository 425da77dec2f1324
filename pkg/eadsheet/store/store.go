// Package store persists finished archive trees in SQLite.
//
// A Store holds an exclusive file lock next to the database for as long as
// it is open, so only one import run writes an archive database at a time.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/archive"
	_ "modernc.org/sqlite"
)

var (
	// ErrLocked indicates another process holds the archive database.
	ErrLocked = errors.New("archive database is locked by another import")
	// ErrTreeNotFound indicates no tree with the requested name is stored.
	ErrTreeNotFound = errors.New("archive tree not found")
)

const schema = `
CREATE TABLE IF NOT EXISTS trees (
	name       TEXT PRIMARY KEY,
	saved_at   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS nodes (
	tree          TEXT NOT NULL REFERENCES trees(name) ON DELETE CASCADE,
	seq           INTEGER NOT NULL,
	id            TEXT NOT NULL,
	parent_seq    INTEGER,
	depth         INTEGER NOT NULL,
	label         TEXT NOT NULL DEFAULT '',
	node_type     TEXT NOT NULL DEFAULT '',
	process_title TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (tree, seq)
);
CREATE INDEX IF NOT EXISTS nodes_id ON nodes(tree, id);
CREATE TABLE IF NOT EXISTS fields (
	tree     TEXT NOT NULL,
	node_seq INTEGER NOT NULL,
	area     INTEGER NOT NULL,
	position INTEGER NOT NULL,
	name     TEXT NOT NULL,
	value    TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (tree, node_seq, area, position),
	FOREIGN KEY (tree, node_seq) REFERENCES nodes(tree, seq) ON DELETE CASCADE
);
`

var pragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 10000",
	"PRAGMA synchronous = NORMAL",
}

// Store is an open archive database.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
}

// Open locks and opens the SQLite database at path, creating the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, p := range append(pragmas, schema) {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("prepare database: %w", err)
		}
	}
	return &Store{db: db, lock: lock}, nil
}

// Close closes the database and releases the lock.
func (s *Store) Close() error {
	err := s.db.Close()
	if uerr := s.lock.Unlock(); err == nil {
		err = uerr
	}
	return err
}

// Save replaces the tree stored under name with root and its descendants.
func (s *Store) Save(ctx context.Context, name string, root *archive.Node) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trees WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete tree: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO trees (name, saved_at) VALUES (?, ?)`,
		name, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("insert tree: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx, `INSERT INTO nodes
		(tree, seq, id, parent_seq, depth, label, node_type, process_title)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer nodeStmt.Close()
	fieldStmt, err := tx.PrepareContext(ctx, `INSERT INTO fields
		(tree, node_seq, area, position, name, value) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer fieldStmt.Close()

	seqs := make(map[*archive.Node]int64)
	var seq int64
	err = root.Walk(func(n *archive.Node) error {
		var parent sql.NullInt64
		if n.Parent != nil {
			parent = sql.NullInt64{Int64: seqs[n.Parent], Valid: true}
		}
		typeName := ""
		if n.Type != nil {
			typeName = n.Type.Name
		}
		if _, err := nodeStmt.ExecContext(ctx, name, seq, n.ID, parent, n.Depth, n.Label, typeName, n.ProcessTitle); err != nil {
			return fmt.Errorf("insert node %s: %w", n.ID, err)
		}
		for area, fields := range n.Areas {
			for pos, f := range fields {
				if _, err := fieldStmt.ExecContext(ctx, name, seq, area, pos, f.Name, f.Value); err != nil {
					return fmt.Errorf("insert field %s of %s: %w", f.Name, n.ID, err)
				}
			}
		}
		seqs[n] = seq
		seq++
		return nil
	})
	if err != nil {
		return err
	}
	return tx.Commit()
}

// Load reads the tree stored under name.
func (s *Store) Load(ctx context.Context, name string) (*archive.Node, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT seq, id, parent_seq, depth, label, node_type, process_title
		FROM nodes WHERE tree = ? ORDER BY seq`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	nodes := make(map[int64]*archive.Node)
	types := make(map[string]*archive.NodeType)
	var root *archive.Node
	for rows.Next() {
		var (
			seq      int64
			parent   sql.NullInt64
			typeName string
			n        = &archive.Node{}
		)
		if err := rows.Scan(&seq, &n.ID, &parent, &n.Depth, &n.Label, &typeName, &n.ProcessTitle); err != nil {
			return nil, err
		}
		if typeName != "" {
			if types[typeName] == nil {
				types[typeName] = &archive.NodeType{Name: typeName}
			}
			n.Type = types[typeName]
		}
		if parent.Valid {
			p := nodes[parent.Int64]
			if p == nil {
				return nil, fmt.Errorf("node %s: parent %d missing", n.ID, parent.Int64)
			}
			n.Parent = p
			p.Children = append(p.Children, n)
		} else {
			root = n
		}
		nodes[seq] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("%w: %q", ErrTreeNotFound, name)
	}

	frows, err := s.db.QueryContext(ctx, `SELECT node_seq, area, name, value
		FROM fields WHERE tree = ? ORDER BY node_seq, area, position`, name)
	if err != nil {
		return nil, err
	}
	defer frows.Close()
	for frows.Next() {
		var (
			seq  int64
			area int
			f    = &archive.Field{}
		)
		if err := frows.Scan(&seq, &area, &f.Name, &f.Value); err != nil {
			return nil, err
		}
		n := nodes[seq]
		if n == nil || area < 0 || area >= archive.AreaCount {
			continue
		}
		n.Areas[area] = append(n.Areas[area], f)
	}
	return root, frows.Err()
}

// Trees lists the names of the stored trees.
func (s *Store) Trees(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM trees ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
