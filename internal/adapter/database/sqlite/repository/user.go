package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"tdm/internal/adapter/database/sqlite"
	"tdm/internal/core/domain"
	"tdm/internal/core/port"
)

var userColumns = []string{
	"u.id", "u.login", "u.password_hash", "u.is_blocked", "u.role_id",
	"r.name", "u.description", "u.created_at", "u.updated_at",
}

type UserRepository struct {
	db *sqlite.DB
}

func NewUserRepository(db *sqlite.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"u.id": id})
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	return r.getMany(ctx, sq.Eq{"u.id": ids})
}

func (r *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	return r.getMany(ctx, nil)
}

func (r *UserRepository) GetByRoleID(ctx context.Context, roleID int64) ([]domain.User, error) {
	return r.getMany(ctx, sq.Eq{"u.role_id": roleID})
}

func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"u.login": login})
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query, args, err := r.db.QueryBuilder.Insert("users").
		Columns("login", "password_hash", "is_blocked", "role_id", "description",
			"created_at", "updated_at").
		Values(
			user.Login,
			user.PasswordHash,
			user.IsBlocked,
			user.RoleID,
			nullString(user.Description),
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()

	if err != nil {
		return err
	}

	result, err := r.db.Runner(ctx).ExecContext(ctx, query, args...)

	if err != nil {
		return err
	}

	user.ID, err = result.LastInsertId()

	return err
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query, args, err := r.db.QueryBuilder.Update("users").
		Set("login", user.Login).
		Set("password_hash", user.PasswordHash).
		Set("is_blocked", user.IsBlocked).
		Set("role_id", user.RoleID).
		Set("description", nullString(user.Description)).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"id": user.ID}).
		ToSql()

	if err != nil {
		return err
	}

	_, err = r.db.Runner(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.QueryBuilder.Delete("users").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	_, err = r.db.Runner(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *UserRepository) DeleteRange(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := r.db.QueryBuilder.Delete("users").
		Where(sq.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return 0, err
	}

	result, err := r.db.Runner(ctx).ExecContext(ctx, query, args...)

	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *UserRepository) selectUsers() sq.SelectBuilder {
	return r.db.QueryBuilder.Select(userColumns...).
		From("users u").
		Join("roles r ON r.id = u.role_id")
}

func (r *UserRepository) getOne(ctx context.Context, pred any) (*domain.User, error) {
	query, args, err := r.selectUsers().
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

	user, err := scanUser(rows)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) getMany(ctx context.Context, pred any) ([]domain.User, error) {
	builder := r.selectUsers().OrderBy("u.id")

	if pred != nil {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := r.db.Runner(ctx).QueryContext(ctx, query, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	users := []domain.User{}

	for rows.Next() {
		user, err := scanUser(rows)

		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	return users, rows.Err()
}

func scanUser(rows *sql.Rows) (domain.User, error) {
	var (
		user  domain.User
		descr sql.NullString
	)

	err := rows.Scan(
		&user.ID,
		&user.Login,
		&user.PasswordHash,
		&user.IsBlocked,
		&user.RoleID,
		&user.RoleName,
		&descr,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return domain.User{}, err
	}

	user.Description = descr.String

	return user, nil
}
