// Package recordstore reads and writes clinical records kept as JSON payloads
// in the clinical_documents table.
package recordstore

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zeptools/medoc/db/sqldb"
	"github.com/zeptools/medoc/records"
	"go.uber.org/zap"
)

//go:embed sql
var sqlFS embed.FS

const group = "documents"

var (
	ErrNotFound    = errors.New("recordstore: document not found")
	ErrMissingStmt = errors.New("recordstore: statement not loaded")
	ErrEmptyNumber = errors.New("recordstore: empty document number")
)

type storedRow struct {
	Number  string
	DocType string
	Status  string
	Payload []byte
}

func (r *storedRow) TargetFields() []any {
	return []any{&r.Number, &r.DocType, &r.Status, &r.Payload}
}

type Store struct {
	h     sqldb.Handle
	stmts *sqldb.RawSQLStore
	log   *zap.Logger
}

func New(client sqldb.Client, log *zap.Logger) (*Store, error) {
	return NewWithHandle(client, client.GetConf().Type, log)
}

// NewWithHandle loads the statements for dbtype and runs them on h.
func NewWithHandle(h sqldb.Handle, dbtype string, log *zap.Logger) (*Store, error) {
	stmts := sqldb.NewRawStore()
	if _, err := stmts.LoadGroup(sqlFS, group, dbtype); err != nil {
		return nil, fmt.Errorf("recordstore: %w", err)
	}
	return &Store{h: h, stmts: stmts, log: log.Named("recordstore")}, nil
}

func (s *Store) stmt(name string) (string, error) {
	key := sqldb.StoreGroupedStmtKey{Group: group, StmtName: name}.String()
	stmt, ok := s.stmts.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingStmt, key)
	}
	return stmt, nil
}

// EnsureSchema creates the clinical_documents table when it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	stmt, err := s.stmt("create_table")
	if err != nil {
		return err
	}
	if _, err := s.h.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("recordstore: create table: %w", err)
	}
	return nil
}

// FindByNumber returns the decoded record stored under number. The row's
// number and status override whatever the payload carries.
func (s *Store) FindByNumber(ctx context.Context, number string) (records.Record, error) {
	if number == "" {
		return nil, ErrEmptyNumber
	}
	stmt, err := s.stmt("find_document")
	if err != nil {
		return nil, err
	}
	row, err := sqldb.QueryItem[storedRow, *storedRow](ctx, s.h, stmt, number)
	if errors.Is(err, sqldb.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, number)
	}
	if err != nil {
		return nil, fmt.Errorf("recordstore: find %q: %w", number, err)
	}
	rec, err := records.Decode(records.DocType(row.DocType), row.Payload)
	if err != nil {
		return nil, err
	}
	rec.Stamp(row.Number, records.Status(row.Status))
	return rec, nil
}

// Save inserts rec or replaces the stored payload of the same number.
func (s *Store) Save(ctx context.Context, rec records.Record) error {
	doc := rec.Document()
	if doc.Number == "" {
		return ErrEmptyNumber
	}
	stmt, err := s.stmt("save_document")
	if err != nil {
		return err
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("recordstore: encode %q: %w", doc.Number, err)
	}
	status := doc.Status
	if status == "" {
		status = records.StatusActive
	}
	if _, err := s.h.Exec(ctx, stmt, doc.Number, string(rec.Type()), string(status), payload); err != nil {
		return fmt.Errorf("recordstore: save %q: %w", doc.Number, err)
	}
	s.log.Debug("document saved", zap.String("number", doc.Number), zap.String("type", string(rec.Type())))
	return nil
}

// Void marks the stored document as voided.
func (s *Store) Void(ctx context.Context, number string) error {
	stmt, err := s.stmt("void_document")
	if err != nil {
		return err
	}
	n, err := sqldb.Affected(s.h.Exec(ctx, stmt, string(records.StatusVoided), number))
	if err != nil {
		return fmt.Errorf("recordstore: void %q: %w", number, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, number)
	}
	s.log.Info("document voided", zap.String("number", number))
	return nil
}
