package pgsql

import (
	"github.com/jackc/pgx/v5"
	"github.com/zeptools/medoc/db/sqldb"
)

type Rows struct {
	current pgx.Rows
}

// Ensure pgsql.Rows implements sqldb.Rows
var _ sqldb.Rows = (*Rows)(nil)

func (r *Rows) Next() bool {
	return r.current.Next()
}

func (r *Rows) Scan(dest ...any) error {
	raw := boolsAsInt16(dest)
	if err := r.current.Scan(raw...); err != nil {
		return err
	}
	fillBools(dest, raw)
	return nil
}

func (r *Rows) Close() error {
	r.current.Close()
	return nil
}

func (r *Rows) Err() error {
	return r.current.Err()
}
