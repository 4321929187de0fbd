package baserow

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
	"github.com/sm8ta/webike_inventory/internal/i18n"
)

var _ ports.UserRepository = (*UserRepository)(nil)

// Baserow codes meaning the users table cannot be reached with the configured token.
var configurationCodes = map[string]bool{
	"ERROR_TABLE_DOES_NOT_EXIST":   true,
	"ERROR_USER_NOT_IN_GROUP":      true,
	"ERROR_NO_PERMISSION_TO_TABLE": true,
}

type UserRepository struct {
	gateway *Gateway
	tableID string
	tr      *i18n.Translator
}

func NewUserRepository(gateway *Gateway, tableID string, tr *i18n.Translator) *UserRepository {
	return &UserRepository{
		gateway: gateway,
		tableID: tableID,
		tr:      tr,
	}
}

// FindByCredentials matches email and password as stored in the users table.
// Returns nil, nil when no row matches.
func (r *UserRepository) FindByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	query := url.Values{}
	query.Set("filter__email__equal", email)
	query.Set("filter__password__equal", password)
	query.Set("size", "1")

	return r.findOne(ctx, query, i18n.AuthLoginFailed)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := url.Values{}
	query.Set("filter__email__equal", email)
	query.Set("size", "1")

	return r.findOne(ctx, query, i18n.AuthLookupFailed)
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if r.tableID == "" {
		return nil, r.fail(domain.ErrAuthConfiguration, i18n.AuthConfiguration, domain.ErrNotConfigured)
	}

	var row Row
	path := fmt.Sprintf("/%s/%s/", url.PathEscape(r.tableID), url.PathEscape(userID))
	if err := r.gateway.Get(ctx, path, nil, &row); err != nil {
		return nil, r.wrap(err, i18n.AuthLookupFailed)
	}
	return toUser(row), nil
}

func (r *UserRepository) CreateUser(ctx context.Context, data *domain.RegisterData, role domain.UserRole) (*domain.User, error) {
	if r.tableID == "" {
		return nil, r.fail(domain.ErrAuthConfiguration, i18n.AuthConfiguration, domain.ErrNotConfigured)
	}

	body := Row{
		"email":      data.Email,
		"password":   data.Password,
		"first_name": data.FirstName,
		"last_name":  data.LastName,
		"role":       string(role),
	}

	var row Row
	if err := r.gateway.Post(ctx, fmt.Sprintf("/%s/", url.PathEscape(r.tableID)), body, &row); err != nil {
		return nil, r.wrap(err, i18n.AuthRegisterFailed)
	}
	return toUser(row), nil
}

func (r *UserRepository) findOne(ctx context.Context, query url.Values, failKey string) (*domain.User, error) {
	if r.tableID == "" {
		return nil, r.fail(domain.ErrAuthConfiguration, i18n.AuthConfiguration, domain.ErrNotConfigured)
	}

	var page rowPage
	if err := r.gateway.Get(ctx, fmt.Sprintf("/%s/", url.PathEscape(r.tableID)), query, &page); err != nil {
		return nil, r.wrap(err, failKey)
	}
	if len(page.Results) == 0 {
		return nil, nil
	}
	return toUser(page.Results[0]), nil
}

func (r *UserRepository) wrap(err error, failKey string) error {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) && configurationCodes[remoteErr.Code] {
		return r.fail(domain.ErrAuthConfiguration, i18n.AuthConfiguration, err)
	}
	return r.fail(domain.ErrUserLookup, failKey, err)
}

func (r *UserRepository) fail(kind error, key string, err error) error {
	return &domain.AuthError{Kind: kind, Message: r.tr.T(key), Err: err}
}

func toUser(row Row) *domain.User {
	return &domain.User{
		ID:        idString(row["id"]),
		Email:     stringField(row["email"]),
		FirstName: stringField(row["first_name"]),
		LastName:  stringField(row["last_name"]),
		Role:      domain.UserRole(selectField(row["role"])),
	}
}
