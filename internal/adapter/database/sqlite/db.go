package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"go.opentelemetry.io/otel"

	_ "github.com/mattn/go-sqlite3"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// DB wraps a sqlite connection with the shared squirrel builder. SQLite
// serializes writers, so the pool is kept to a single connection; that also
// makes an in-memory database behave like one database instead of one per
// connection.
type DB struct {
	*sql.DB
	QueryBuilder *squirrel.StatementBuilderType
}

func NewDB(path, migrationsPath string, logger zerolog.Logger) (*DB, error) {
	sqlDB, err := otelsql.Open("sqlite3", path+"?_foreign_keys=on",
		otelsql.WithDBSystem("sqlite"),
		otelsql.WithDBName("tdm"),
		otelsql.WithTracerProvider(otel.GetTracerProvider()),
	)

	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)

	loggedDB := sqldblogger.OpenDriver(path+"?_foreign_keys=on", sqlDB.Driver(), zerologadapter.New(logger))
	loggedDB.SetMaxOpenConns(1)

	if err := runMigrations(loggedDB, migrationsPath); err != nil {
		loggedDB.Close()
		return nil, err
	}

	queryBuilder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	return &DB{
		DB:           loggedDB,
		QueryBuilder: &queryBuilder,
	}, nil
}

func runMigrations(db *sql.DB, migrationsPath string) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})

	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "sqlite3", driver)

	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Querier is the statement surface shared by *sql.DB and *sql.Tx.
// Repositories execute through it so the same method works inside and
// outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Runner returns the transaction carried in ctx, or the bare connection when
// the call is outside a unit of work.
func (db *DB) Runner(ctx context.Context) Querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}

	return db.DB
}
