package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"tdm/internal/adapter/database/postgres"
	"tdm/internal/core/domain"
	"tdm/internal/core/port"
)

var todoItemColumns = []string{
	"t.id", "t.title", "t.details", "t.due_date", "t.status", "t.priority",
	"t.contact_id", "c.first_name", "c.last_name", "t.completed_at",
	"t.description", "t.created_at", "t.updated_at",
}

type TodoItemRepository struct {
	db  *postgres.DB
	now func() time.Time
}

func NewTodoItemRepository(db *postgres.DB) port.TodoItemRepository {
	return &TodoItemRepository{db: db, now: time.Now}
}

func (r *TodoItemRepository) GetByID(ctx context.Context, id int64) (*domain.TodoItem, error) {
	query, args, err := r.selectItems().
		Where(sq.Eq{"t.id": id}).
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

	item, err := scanTodoItem(rows)

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *TodoItemRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.TodoItem, error) {
	if len(ids) == 0 {
		return []domain.TodoItem{}, nil
	}

	return r.getMany(ctx, sq.Eq{"t.id": ids})
}

func (r *TodoItemRepository) GetAll(ctx context.Context) ([]domain.TodoItem, error) {
	return r.getMany(ctx, nil)
}

func (r *TodoItemRepository) GetByContactID(ctx context.Context, contactID int64) ([]domain.TodoItem, error) {
	return r.getMany(ctx, sq.Eq{"t.contact_id": contactID})
}

func (r *TodoItemRepository) GetByStatus(ctx context.Context, status domain.TodoStatus) ([]domain.TodoItem, error) {
	return r.getMany(ctx, sq.Eq{"t.status": int(status)})
}

func (r *TodoItemRepository) GetByPriority(ctx context.Context, priority domain.Priority) ([]domain.TodoItem, error) {
	return r.getMany(ctx, sq.Eq{"t.priority": int(priority)})
}

// GetOverdue returns items whose due date has passed and that are still open.
func (r *TodoItemRepository) GetOverdue(ctx context.Context) ([]domain.TodoItem, error) {
	return r.getMany(ctx, sq.And{
		sq.NotEq{"t.due_date": nil},
		sq.Lt{"t.due_date": r.now().Unix()},
		sq.NotEq{"t.status": []int{int(domain.TodoStatusCompleted), int(domain.TodoStatusCancelled)}},
	})
}

// GetToday returns items due within the current local day, bounds inclusive.
func (r *TodoItemRepository) GetToday(ctx context.Context) ([]domain.TodoItem, error) {
	now := r.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Unix()
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location()).Unix()

	return r.getMany(ctx, sq.And{
		sq.GtOrEq{"t.due_date": start},
		sq.LtOrEq{"t.due_date": end},
	})
}

func (r *TodoItemRepository) GetByTitle(ctx context.Context, title string) ([]domain.TodoItem, error) {
	// strpos is case sensitive, unlike ILIKE.
	return r.getMany(ctx, sq.Expr("strpos(t.title, ?) > 0", title))
}

func (r *TodoItemRepository) Create(ctx context.Context, item *domain.TodoItem) error {
	query, args, err := r.db.QueryBuilder.Insert("todo_items").
		Columns("title", "details", "due_date", "status", "priority", "contact_id",
			"completed_at", "description", "created_at", "updated_at").
		Values(
			item.Title,
			nullString(item.Details),
			nullInt64(item.DueDate),
			int(item.Status),
			int(item.Priority),
			nullInt64(item.ContactID),
			nullInt64(item.CompletedAt),
			nullString(item.Description),
			item.CreatedAt,
			item.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return err
	}

	return r.db.Runner(ctx).QueryRow(ctx, query, args...).Scan(&item.ID)
}

func (r *TodoItemRepository) Update(ctx context.Context, item *domain.TodoItem) error {
	query, args, err := r.db.QueryBuilder.Update("todo_items").
		Set("title", item.Title).
		Set("details", nullString(item.Details)).
		Set("due_date", nullInt64(item.DueDate)).
		Set("status", int(item.Status)).
		Set("priority", int(item.Priority)).
		Set("contact_id", nullInt64(item.ContactID)).
		Set("completed_at", nullInt64(item.CompletedAt)).
		Set("description", nullString(item.Description)).
		Set("updated_at", item.UpdatedAt).
		Where(sq.Eq{"id": item.ID}).
		ToSql()

	if err != nil {
		return err
	}

	_, err = r.db.Runner(ctx).Exec(ctx, query, args...)

	return err
}

func (r *TodoItemRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.QueryBuilder.Delete("todo_items").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	_, err = r.db.Runner(ctx).Exec(ctx, query, args...)

	return err
}

func (r *TodoItemRepository) DeleteRange(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := r.db.QueryBuilder.Delete("todo_items").
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

func (r *TodoItemRepository) selectItems() sq.SelectBuilder {
	return r.db.QueryBuilder.Select(todoItemColumns...).
		From("todo_items t").
		LeftJoin("contacts c ON c.id = t.contact_id")
}

func (r *TodoItemRepository) getMany(ctx context.Context, pred any) ([]domain.TodoItem, error) {
	builder := r.selectItems().OrderBy("t.id")

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

	items := []domain.TodoItem{}

	for rows.Next() {
		item, err := scanTodoItem(rows)

		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func scanTodoItem(rows pgx.Rows) (domain.TodoItem, error) {
	var (
		item                            domain.TodoItem
		details, descr                  sql.NullString
		firstName, lastName             sql.NullString
		dueDate, contactID, completedAt sql.NullInt64
		status, priority                int
	)

	err := rows.Scan(
		&item.ID,
		&item.Title,
		&details,
		&dueDate,
		&status,
		&priority,
		&contactID,
		&firstName,
		&lastName,
		&completedAt,
		&descr,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		return domain.TodoItem{}, err
	}

	item.Details = details.String
	item.Description = descr.String
	item.DueDate = int64Ptr(dueDate)
	item.ContactID = int64Ptr(contactID)
	item.CompletedAt = int64Ptr(completedAt)
	item.Status = domain.TodoStatus(status)
	item.Priority = domain.Priority(priority)

	if firstName.Valid {
		item.ContactName = firstName.String + " " + lastName.String
	}

	return item, nil
}
