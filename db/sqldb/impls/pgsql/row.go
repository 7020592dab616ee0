package pgsql

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/zeptools/medoc/db/sqldb"
)

type Row struct {
	row pgx.Row
}

// Ensure pgsql.Row implements sqldb.Row interface
var _ sqldb.Row = (*Row)(nil)

func (r *Row) Scan(dest ...any) error {
	raw := boolsAsInt16(dest)
	if err := r.row.Scan(raw...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sqldb.ErrNoRows
		}
		return err
	}
	fillBools(dest, raw)
	return nil
}

// boolsAsInt16 swaps *bool targets for *int16 so smallint flag columns scan
// the same way they do on mysql.
func boolsAsInt16(dest []any) []any {
	raw := make([]any, len(dest))
	for i, d := range dest {
		if _, ok := d.(*bool); ok {
			raw[i] = new(int16)
			continue
		}
		raw[i] = d
	}
	return raw
}

func fillBools(dest, raw []any) {
	for i, d := range dest {
		if v, ok := d.(*bool); ok {
			*v = *(raw[i].(*int16)) != 0
		}
	}
}
