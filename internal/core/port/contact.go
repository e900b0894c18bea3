package port

import (
	"context"

	"tdm/internal/core/domain"
	"tdm/internal/core/model/request"
	"tdm/internal/core/model/response"
)

// ContactRepository loads and stores contacts. Lookups return (nil, nil) when
// no row matches; only infrastructure failures surface as errors.
type ContactRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Contact, error)
	GetAll(ctx context.Context) ([]domain.Contact, error)
	GetByName(ctx context.Context, name string) ([]domain.Contact, error)
	GetByEmail(ctx context.Context, email string) (*domain.Contact, error)
	Create(ctx context.Context, contact *domain.Contact) error
	Update(ctx context.Context, contact *domain.Contact) error
	Delete(ctx context.Context, id int64) error
	DeleteRange(ctx context.Context, ids []int64) (int64, error)
}

type ContactService interface {
	GetAll(ctx context.Context) ([]response.ContactResponse, error)
	GetByID(ctx context.Context, id int64) (response.ContactResponse, error)
	GetByName(ctx context.Context, name string) ([]response.ContactResponse, error)
	GetByEmail(ctx context.Context, email string) (response.ContactResponse, error)
	Create(ctx context.Context, req request.CreateContactRequest) (response.ContactResponse, error)
	Update(ctx context.Context, id int64, req request.UpdateContactRequest) (response.ContactResponse, error)
	Delete(ctx context.Context, id int64) error
	DeleteRange(ctx context.Context, ids []int64) (int64, error)
}
