package sqldb

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type targetFieldsProvider interface {
	TargetFields() []any
}

type Scannable[T any] interface {
	~*T                  // Type Constraint: Underlying Type(~) = *T
	targetFieldsProvider // must implement targetFieldsProvider
}

func QueryItem[
	M any, // Model struct
	MP Scannable[M], // *Model Implementing Scannable[M]
](
	ctx context.Context,
	h Handle,
	rawSQLStmt string,
	args ...any,
) (*M, error) {
	row := h.QueryRow(ctx, rawSQLStmt, args...)
	return RowToItem[M, MP](row)
}

func RowToItem[
	M any,
	MP Scannable[M],
](row Row) (*M, error) {
	var item M
	p := MP(&item)
	if err := row.Scan(p.TargetFields()...); err != nil {
		return nil, err
	}
	return &item, nil
}

func QueryItems[
	M any,
	MP Scannable[M],
](
	ctx context.Context,
	h Handle,
	rawSQLStmt string,
	args ...any,
) ([]*M, error) {
	rows, err := h.QueryRows(ctx, rawSQLStmt, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			zap.L().Named("sqldb").Warn("rows close failed", zap.Error(err))
		}
	}()
	return RowsToItems[M, MP](rows)
}

func RowsToItems[
	M any,
	MP Scannable[M],
](rows Rows) ([]*M, error) {
	var itemptrs []*M
	for rows.Next() {
		var item M
		p := MP(&item)
		if err := rows.Scan(p.TargetFields()...); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		itemptrs = append(itemptrs, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during iterating rows: %w", err)
	}
	return itemptrs, nil
}
