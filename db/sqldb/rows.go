package sqldb

// Rows is a forward-only cursor; callers must Close it and check Err after
// the last Next.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error
}

// Row scans a single-row result. Scan returns ErrNoRows when the query
// matched nothing.
type Row interface {
	Scan(dest ...any) error
}

// Result of Exec. Insert ids are not exposed; pgsql needs RETURNING for
// that and the mysql driver only knows AUTO_INCREMENT columns.
type Result interface {
	RowsAffected() (int64, error)
}

// Affected unwraps an Exec return pair into the affected row count.
func Affected(res Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
