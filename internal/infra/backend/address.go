package backend

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type addressAPI struct {
	client *Client
}

// NewAddressAPI exposes the address book routes of the backend.
func NewAddressAPI(client *Client) service.AddressAPI {
	return &addressAPI{client: client}
}

type addressListResponse struct {
	Addresses []addressDTO `json:"addresses"`
}

func (a *addressAPI) ListAddresses(ctx context.Context, token string) ([]entity.Address, error) {
	var resp addressListResponse
	if err := a.client.get(ctx, "/get-all-address", token, nil, &resp); err != nil {
		return nil, err
	}

	return toAddresses(resp.Addresses), nil
}

func (a *addressAPI) AddAddress(ctx context.Context, token string, fields entity.AddressFields) ([]entity.Address, error) {
	return a.mutate(ctx, http.MethodPost, "/add-address", token, fromAddressFields(fields))
}

func (a *addressAPI) UpdateAddress(ctx context.Context, token, addressID string, fields entity.AddressFields) ([]entity.Address, error) {
	return a.mutate(ctx, http.MethodPut, "/update/"+url.PathEscape(addressID), token, fromAddressFields(fields))
}

func (a *addressAPI) DeleteAddress(ctx context.Context, token, addressID string) ([]entity.Address, error) {
	return a.mutate(ctx, http.MethodDelete, "/delete-address/"+url.PathEscape(addressID), token, nil)
}

func (a *addressAPI) SetDefaultAddress(ctx context.Context, token, addressID string) ([]entity.Address, error) {
	return a.mutate(ctx, http.MethodPut, "/set-default/"+url.PathEscape(addressID), token, nil)
}

func (a *addressAPI) mutate(ctx context.Context, method, path, token string, body any) ([]entity.Address, error) {
	var resp addressListResponse
	if err := a.client.call(ctx, method, path, token, body, &resp); err != nil {
		return nil, err
	}

	return toAddresses(resp.Addresses), nil
}
