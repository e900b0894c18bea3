package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"tdm/internal/adapter/database/sqlite"
	"tdm/internal/core/domain"
	"tdm/internal/core/port"
)

var roleColumns = []string{"id", "name", "description", "created_at", "updated_at"}

type RoleRepository struct {
	db *sqlite.DB
}

func NewRoleRepository(db *sqlite.DB) port.RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	return r.getOne(ctx, sq.Eq{"name": name})
}

func (r *RoleRepository) GetAll(ctx context.Context) ([]domain.Role, error) {
	query, args, err := r.db.QueryBuilder.Select(roleColumns...).
		From("roles").
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := r.db.Runner(ctx).QueryContext(ctx, query, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	roles := []domain.Role{}

	for rows.Next() {
		role, err := scanRole(rows)

		if err != nil {
			return nil, err
		}

		roles = append(roles, role)
	}

	return roles, rows.Err()
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) error {
	query, args, err := r.db.QueryBuilder.Insert("roles").
		Columns("name", "description", "created_at", "updated_at").
		Values(role.Name, nullString(role.Description), role.CreatedAt, role.UpdatedAt).
		ToSql()

	if err != nil {
		return err
	}

	result, err := r.db.Runner(ctx).ExecContext(ctx, query, args...)

	if err != nil {
		return err
	}

	role.ID, err = result.LastInsertId()

	return err
}

func (r *RoleRepository) getOne(ctx context.Context, pred any) (*domain.Role, error) {
	query, args, err := r.db.QueryBuilder.Select(roleColumns...).
		From("roles").
		Where(pred).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := r.db.Runner(ctx).QueryContext(ctx, query, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	role, err := scanRole(rows)

	if err != nil {
		return nil, err
	}

	return &role, nil
}

func scanRole(rows *sql.Rows) (domain.Role, error) {
	var (
		role  domain.Role
		descr sql.NullString
	)

	err := rows.Scan(&role.ID, &role.Name, &descr, &role.CreatedAt, &role.UpdatedAt)

	if err != nil {
		return domain.Role{}, err
	}

	role.Description = descr.String

	return role, nil
}
