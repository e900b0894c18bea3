package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"tdm/internal/adapter/database/postgres"
	"tdm/internal/core/domain"
	"tdm/internal/core/port"
)

var contactColumns = []string{
	"id", "first_name", "last_name", "phone", "email", "address",
	"description", "created_at", "updated_at",
}

type ContactRepository struct {
	db *postgres.DB
}

func NewContactRepository(db *postgres.DB) port.ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *ContactRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Contact, error) {
	if len(ids) == 0 {
		return []domain.Contact{}, nil
	}

	return r.getMany(ctx, sq.Eq{"id": ids})
}

func (r *ContactRepository) GetAll(ctx context.Context) ([]domain.Contact, error) {
	return r.getMany(ctx, nil)
}

func (r *ContactRepository) GetByName(ctx context.Context, name string) ([]domain.Contact, error) {
	// strpos is case sensitive, unlike ILIKE.
	return r.getMany(ctx, sq.Or{
		sq.Expr("strpos(first_name, ?) > 0", name),
		sq.Expr("strpos(last_name, ?) > 0", name),
	})
}

func (r *ContactRepository) GetByEmail(ctx context.Context, email string) (*domain.Contact, error) {
	return r.getOne(ctx, sq.Eq{"email": email})
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	query, args, err := r.db.QueryBuilder.Insert("contacts").
		Columns(contactColumns[1:]...).
		Values(
			contact.FirstName,
			contact.LastName,
			nullString(contact.Phone),
			nullString(contact.Email),
			nullString(contact.Address),
			nullString(contact.Description),
			contact.CreatedAt,
			contact.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return err
	}

	return r.db.Runner(ctx).QueryRow(ctx, query, args...).Scan(&contact.ID)
}

func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	query, args, err := r.db.QueryBuilder.Update("contacts").
		Set("first_name", contact.FirstName).
		Set("last_name", contact.LastName).
		Set("phone", nullString(contact.Phone)).
		Set("email", nullString(contact.Email)).
		Set("address", nullString(contact.Address)).
		Set("description", nullString(contact.Description)).
		Set("updated_at", contact.UpdatedAt).
		Where(sq.Eq{"id": contact.ID}).
		ToSql()

	if err != nil {
		return err
	}

	_, err = r.db.Runner(ctx).Exec(ctx, query, args...)

	return err
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.QueryBuilder.Delete("contacts").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	_, err = r.db.Runner(ctx).Exec(ctx, query, args...)

	return err
}

func (r *ContactRepository) DeleteRange(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := r.db.QueryBuilder.Delete("contacts").
		Where(sq.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return 0, err
	}

	tag, err := r.db.Runner(ctx).Exec(ctx, query, args...)

	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *ContactRepository) getOne(ctx context.Context, pred any) (*domain.Contact, error) {
	query, args, err := r.db.QueryBuilder.Select(contactColumns...).
		From("contacts").
		Where(pred).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := r.db.Runner(ctx).Query(ctx, query, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	contact, err := scanContact(rows)

	if err != nil {
		return nil, err
	}

	return &contact, nil
}

func (r *ContactRepository) getMany(ctx context.Context, pred any) ([]domain.Contact, error) {
	builder := r.db.QueryBuilder.Select(contactColumns...).
		From("contacts").
		OrderBy("id")

	if pred != nil {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := r.db.Runner(ctx).Query(ctx, query, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	contacts := []domain.Contact{}

	for rows.Next() {
		contact, err := scanContact(rows)

		if err != nil {
			return nil, err
		}

		contacts = append(contacts, contact)
	}

	return contacts, rows.Err()
}

func scanContact(rows pgx.Rows) (domain.Contact, error) {
	var (
		contact                      domain.Contact
		phone, email, address, descr sql.NullString
	)

	err := rows.Scan(
		&contact.ID,
		&contact.FirstName,
		&contact.LastName,
		&phone,
		&email,
		&address,
		&descr,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)

	if err != nil {
		return domain.Contact{}, err
	}

	contact.Phone = phone.String
	contact.Email = email.String
	contact.Address = address.String
	contact.Description = descr.String

	return contact, nil
}
