package mysql

import (
	"database/sql"
	"errors"

	"github.com/zeptools/medoc/db/sqldb"
)

// Ensure the database/sql wrappers implement the sqldb interfaces
var (
	_ sqldb.Row    = row{}
	_ sqldb.Rows   = rows{}
	_ sqldb.Result = result{}
)

type row struct{ *sql.Row }

func (r row) Scan(dest ...any) error {
	if err := r.Row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sqldb.ErrNoRows
		}
		return err
	}
	return nil
}

// rows only narrows *sql.Rows to sqldb.Rows
type rows struct{ *sql.Rows }

type result struct{ sql.Result }
