package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// execer is satisfied by both *sql.DB and *sql.Tx so the back-reference
// helpers can run inside or outside a transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows so each entity shares one
// scan function between single-row and multi-row queries.
type rowScanner interface {
	Scan(dest ...any) error
}

// pushRef appends childID to the JSONB id array held in column. A single
// UPDATE keeps the mutation atomic per document; there is no read-modify-write
// window between concurrent writers.
func pushRef(ctx context.Context, ex execer, table, column, id, childID string) error {
	q := fmt.Sprintf(
		`UPDATE %s SET %s = %s || jsonb_build_array($2::text), updated_at = now() WHERE id = $1`,
		table, column, column,
	)
	_, err := ex.ExecContext(ctx, q, id, childID)
	return err
}

// pushRefUnique appends childID only when the array does not already contain
// it. Used where the list must stay de-duplicated (supply_history).
func pushRefUnique(ctx context.Context, ex execer, table, column, id, childID string) error {
	q := fmt.Sprintf(
		`UPDATE %s SET %s = %s || jsonb_build_array($2::text), updated_at = now()
		 WHERE id = $1 AND NOT %s @> jsonb_build_array($2::text)`,
		table, column, column, column,
	)
	_, err := ex.ExecContext(ctx, q, id, childID)
	return err
}

// pullRef removes every occurrence of childID from the JSONB id array. A
// missing parent row is not an error: back-reference cleanup is best-effort.
func pullRef(ctx context.Context, ex execer, table, column, id, childID string) error {
	q := fmt.Sprintf(
		`UPDATE %s SET %s = %s - $2::text, updated_at = now() WHERE id = $1`,
		table, column, column,
	)
	_, err := ex.ExecContext(ctx, q, id, childID)
	return err
}

// jsonArray marshals v for a JSONB column, mapping a nil slice to the empty
// array so NOT NULL DEFAULT '[]' columns never receive SQL nulls.
func jsonArray(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return []byte("[]"), nil
	}
	return b, nil
}

// jsonObject marshals v for a nullable JSONB column; nil pointers become SQL
// NULL.
func jsonObject(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return nil, nil
	}
	return b, nil
}

// scanJSON unmarshals a JSONB column into dst, tolerating NULL.
func scanJSON(data []byte, dst any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
