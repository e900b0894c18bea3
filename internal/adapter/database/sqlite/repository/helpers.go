package repository

import "database/sql"

// nullString stores empty strings as NULL so partial unique indexes and
// optional columns behave the same across both database adapters.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}

	n := v.Int64
	return &n
}
