// Package storage is a thin document store over sqlite. Each collection is a
// table of JSON rows; filters, sorts and distinct use sqlite's JSON1
// functions, which keeps the schemaless shape of the offense and profile
// documents without per-collection DDL.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

var (
	// ErrNotFound reports that the requested document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrStore reports an underlying storage fault. It deliberately carries
	// no detail beyond the operation that failed; the cause is logged.
	ErrStore = errors.New("storage unavailable")
)

var identPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// Document is a schemaless record. The "_id" key holds the document id.
type Document map[string]any

// ID returns the document id, or "" when unset.
func (d Document) ID() string {
	id, _ := d["_id"].(string)
	return id
}

// Sort describes a single-field ordering for List.
type Sort struct {
	Field      string
	Descending bool
}

// Store implements the standard document operations over a sqlite database.
type Store struct {
	db  *sqlx.DB
	log zerolog.Logger
}

// Open connects to the sqlite database at path and prepares the given
// collections.
func Open(path string, logger zerolog.Logger, collections ...string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{db: db, log: logger}
	for _, c := range collections {
		if err := s.ensure(c); err != nil {
			db.Close()
			return nil, err
		}
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensure(collection string) error {
	if !identPattern.MatchString(collection) {
		return fmt.Errorf("invalid collection name %q", collection)
	}
	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %q (
	          id TEXT PRIMARY KEY,
	          data TEXT NOT NULL
	      );`, collection)
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create collection %s: %w", collection, err)
	}
	return nil
}

// List returns up to limit documents matching the equality filter, ordered by
// sort. The limit is always applied; unbounded scans are not permitted.
func (s *Store) List(collection string, filter map[string]any, sort Sort, limit int) ([]Document, error) {
	if err := s.checkIdents(collection, keysOf(filter)...); err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, `SELECT data FROM %q`, collection)
	args := make([]any, 0, len(filter)+1)
	if len(filter) > 0 {
		clauses := make([]string, 0, len(filter))
		for field, value := range filter {
			clauses = append(clauses, fmt.Sprintf(`json_extract(data, '$.%s') = ?`, field))
			args = append(args, value)
		}
		b.WriteString(" WHERE " + strings.Join(clauses, " AND "))
	}
	if sort.Field != "" {
		if err := s.checkIdents(collection, sort.Field); err != nil {
			return nil, err
		}
		dir := "ASC"
		if sort.Descending {
			dir = "DESC"
		}
		fmt.Fprintf(&b, ` ORDER BY json_extract(data, '$.%s') %s`, sort.Field, dir)
	}
	b.WriteString(" LIMIT ?")
	args = append(args, limit)

	var rows []string
	if err := s.db.Select(&rows, b.String(), args...); err != nil {
		return nil, s.fault("list", collection, err)
	}

	docs := make([]Document, 0, len(rows))
	for _, raw := range rows {
		doc, err := decode(raw)
		if err != nil {
			return nil, s.fault("list", collection, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Get returns the document with the given id.
func (s *Store) Get(collection, id string) (Document, error) {
	if err := s.checkIdents(collection); err != nil {
		return nil, err
	}
	var raw string
	err := s.db.Get(&raw, fmt.Sprintf(`SELECT data FROM %q WHERE id = ?`, collection), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("id %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, s.fault("get", collection, err)
	}
	doc, err := decode(raw)
	if err != nil {
		return nil, s.fault("get", collection, err)
	}
	return doc, nil
}

// Create inserts a new document, assigning an id when the caller did not
// supply one, and returns the persisted document read back from the store.
func (s *Store) Create(collection string, doc Document) (Document, error) {
	if err := s.checkIdents(collection); err != nil {
		return nil, err
	}
	id := doc.ID()
	if id == "" {
		id = uuid.NewString()
	}

	stored := clone(doc)
	stored["_id"] = id
	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, s.fault("create", collection, err)
	}
	if _, err := s.db.Exec(fmt.Sprintf(`INSERT INTO %q (id, data) VALUES (?, ?)`, collection), id, string(raw)); err != nil {
		return nil, s.fault("create", collection, err)
	}
	return s.Get(collection, id)
}

// Update applies a sparse mask to an existing document: only the fields
// present in mask are written, everything else is left untouched. Fails with
// ErrNotFound when id does not match exactly one document.
func (s *Store) Update(collection, id string, mask Document) (Document, error) {
	return s.merge(collection, id, mask, false)
}

// Upsert merges data into the document with the given id, inserting it when
// absent. The merge is field-level: fields not present in data survive.
func (s *Store) Upsert(collection, id string, data Document) (Document, error) {
	return s.merge(collection, id, data, true)
}

func (s *Store) merge(collection, id string, data Document, insertMissing bool) (Document, error) {
	if err := s.checkIdents(collection); err != nil {
		return nil, err
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, s.fault("update", collection, err)
	}
	defer tx.Rollback()

	var raw string
	err = tx.Get(&raw, fmt.Sprintf(`SELECT data FROM %q WHERE id = ?`, collection), id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if !insertMissing {
			return nil, fmt.Errorf("id %s: %w", id, ErrNotFound)
		}
		raw = "{}"
	case err != nil:
		return nil, s.fault("update", collection, err)
	}

	doc, err := decode(raw)
	if err != nil {
		return nil, s.fault("update", collection, err)
	}
	for k, v := range data {
		doc[k] = v
	}
	doc["_id"] = id

	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, s.fault("update", collection, err)
	}
	query := fmt.Sprintf(`INSERT INTO %q (id, data) VALUES (?, ?)
	          ON CONFLICT(id) DO UPDATE SET data = excluded.data`, collection)
	if _, err := tx.Exec(query, id, string(merged)); err != nil {
		return nil, s.fault("update", collection, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, s.fault("update", collection, err)
	}
	return doc, nil
}

// Delete removes the document with the given id. Fails with ErrNotFound when
// nothing was removed.
func (s *Store) Delete(collection, id string) error {
	if err := s.checkIdents(collection); err != nil {
		return err
	}
	result, err := s.db.Exec(fmt.Sprintf(`DELETE FROM %q WHERE id = ?`, collection), id)
	if err != nil {
		return s.fault("delete", collection, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return s.fault("delete", collection, err)
	}
	if affected == 0 {
		return fmt.Errorf("id %s: %w", id, ErrNotFound)
	}
	return nil
}

// Distinct returns the unique values of field across the collection.
func (s *Store) Distinct(collection, field string) ([]any, error) {
	if err := s.checkIdents(collection, field); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(
		`SELECT DISTINCT json_extract(data, '$.%s') FROM %q WHERE json_extract(data, '$.%s') IS NOT NULL`,
		field, collection, field)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, s.fault("distinct", collection, err)
	}
	defer rows.Close()

	var values []any
	for rows.Next() {
		var v any
		if err := rows.Scan(&v); err != nil {
			return nil, s.fault("distinct", collection, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fault("distinct", collection, err)
	}
	return values, nil
}

func (s *Store) fault(op, collection string, err error) error {
	s.log.Error().Err(err).Str("collection", collection).Str("op", op).Msg("store operation failed")
	return fmt.Errorf("%s %s: %w", op, collection, ErrStore)
}

func (s *Store) checkIdents(collection string, fields ...string) error {
	if !identPattern.MatchString(collection) {
		return fmt.Errorf("invalid collection name %q", collection)
	}
	for _, f := range fields {
		if !identPattern.MatchString(f) {
			return fmt.Errorf("invalid field name %q", f)
		}
	}
	return nil
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func decode(raw string) (Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func clone(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// DecodeInto unmarshals a document into a typed struct via its json tags.
func DecodeInto(doc Document, v any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// EncodeDoc marshals a typed struct into a document via its json tags.
func EncodeDoc(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
