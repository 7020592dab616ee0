package sqldb

import "errors"

// ErrNoRows is returned by Row.Scan when the query matched nothing.
// Drivers translate their own no-rows errors into it.
var ErrNoRows = errors.New("sqldb: no rows in result set")

var ErrUnsupportedType = errors.New("sqldb: unsupported database type")
