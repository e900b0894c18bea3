package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"tdm/internal/core/model/request"
	"tdm/internal/core/model/response"
	"tdm/internal/core/validation"
)

type ContactsClient struct {
	c *Client
}

func (cc *ContactsClient) GetAll(ctx context.Context) ([]response.ContactResponse, error) {
	var contacts []response.ContactResponse

	err := cc.c.get(ctx, "/api/contacts", nil, &contacts)

	return contacts, err
}

func (cc *ContactsClient) GetByID(ctx context.Context, id int64) (response.ContactResponse, error) {
	var contact response.ContactResponse

	err := cc.c.get(ctx, fmt.Sprintf("/api/contacts/%d", id), nil, &contact)

	return contact, err
}

func (cc *ContactsClient) SearchByName(ctx context.Context, name string) ([]response.ContactResponse, error) {
	var contacts []response.ContactResponse

	err := cc.c.get(ctx, "/api/contacts/search/name", url.Values{"name": {name}}, &contacts)

	return contacts, err
}

func (cc *ContactsClient) SearchByEmail(ctx context.Context, email string) (response.ContactResponse, error) {
	var contact response.ContactResponse

	err := cc.c.get(ctx, "/api/contacts/search/email", url.Values{"email": {email}}, &contact)

	return contact, err
}

func (cc *ContactsClient) Create(ctx context.Context, req request.CreateContactRequest) (response.ContactResponse, error) {
	var contact response.ContactResponse

	if err := validation.Struct(req); err != nil {
		return contact, err
	}

	err := cc.c.do(ctx, http.MethodPost, "/api/contacts", req, &contact)

	return contact, err
}

func (cc *ContactsClient) Update(ctx context.Context, id int64, req request.UpdateContactRequest) (response.ContactResponse, error) {
	var contact response.ContactResponse

	if err := validation.Struct(req); err != nil {
		return contact, err
	}

	err := cc.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/contacts/%d", id), req, &contact)

	return contact, err
}

func (cc *ContactsClient) Delete(ctx context.Context, id int64) error {
	return cc.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/contacts/%d", id), nil, nil)
}

func (cc *ContactsClient) DeleteRange(ctx context.Context, ids []int64) (int64, error) {
	if err := validation.IDs(ids); err != nil {
		return 0, err
	}

	var result response.DeletedCountResponse

	err := cc.c.do(ctx, http.MethodDelete, "/api/contacts/delete-range", ids, &result)

	return result.DeletedCount, err
}
