package baserow

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-openapi/swag"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
	"github.com/sm8ta/webike_inventory/internal/i18n"
)

var _ ports.BikeRepository = (*BikeRepository)(nil)

const bikesTablePlaceholder = "your_bikes_table_id_here"

type BikeRepository struct {
	gateway *Gateway
	tableID string
	tr      *i18n.Translator
}

func NewBikeRepository(gateway *Gateway, tableID string, tr *i18n.Translator) *BikeRepository {
	return &BikeRepository{
		gateway: gateway,
		tableID: tableID,
		tr:      tr,
	}
}

func (r *BikeRepository) configured() bool {
	return r.tableID != "" && r.tableID != bikesTablePlaceholder
}

func (r *BikeRepository) tablePath() string {
	return fmt.Sprintf("/%s/", url.PathEscape(r.tableID))
}

// rowPath only addresses Baserow row ids, which are positive integers.
func (r *BikeRepository) rowPath(kind error, bikeID string) (string, error) {
	if bikeID == "" {
		return "", r.fail(kind, i18n.BikesMissingID, domain.ErrBikeNotFound)
	}
	id, err := swag.ConvertInt64(bikeID)
	if err != nil || id <= 0 {
		return "", r.fail(kind, i18n.BikesInvalidID, domain.ErrBikeNotFound)
	}
	return fmt.Sprintf("/%s/%s/", url.PathEscape(r.tableID), swag.FormatInt64(id)), nil
}

func (r *BikeRepository) fail(kind error, key string, err error) error {
	return &domain.BikeError{Kind: kind, Message: r.tr.T(key), Err: err}
}

// ListBikes returns an empty inventory without calling Baserow when the bikes table is not configured.
func (r *BikeRepository) ListBikes(ctx context.Context) ([]domain.Bike, error) {
	if !r.configured() {
		return []domain.Bike{}, nil
	}

	var page rowPage
	if err := r.gateway.Get(ctx, r.tablePath(), nil, &page); err != nil {
		return nil, r.fail(domain.ErrFetch, i18n.BikesFetchFailed, err)
	}

	bikes := make([]domain.Bike, 0, len(page.Results))
	for _, row := range page.Results {
		bikes = append(bikes, ToEntity(row))
	}
	return bikes, nil
}

func (r *BikeRepository) GetBike(ctx context.Context, bikeID string) (*domain.Bike, error) {
	if !r.configured() {
		return nil, r.fail(domain.ErrFetch, i18n.BikesNotConfigured, domain.ErrNotConfigured)
	}
	path, err := r.rowPath(domain.ErrFetch, bikeID)
	if err != nil {
		return nil, err
	}

	var row Row
	if err := r.gateway.Get(ctx, path, nil, &row); err != nil {
		var remoteErr *RemoteError
		if errors.As(err, &remoteErr) && remoteErr.Status == http.StatusNotFound {
			err = fmt.Errorf("%w: %w", domain.ErrBikeNotFound, err)
		}
		return nil, r.fail(domain.ErrFetch, i18n.BikesFetchFailed, err)
	}

	bike := ToEntity(row)
	return &bike, nil
}

func (r *BikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	if !r.configured() {
		return nil, r.fail(domain.ErrCreate, i18n.BikesNotConfigured, domain.ErrNotConfigured)
	}

	var row Row
	if err := r.gateway.Post(ctx, r.tablePath(), FromEntity(*bike), &row); err != nil {
		return nil, r.fail(domain.ErrCreate, i18n.BikesCreateFailed, err)
	}

	created := ToEntity(row)
	return &created, nil
}

// UpdateBike replaces every field of the row addressed by bike.ID.
func (r *BikeRepository) UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	if !r.configured() {
		return nil, r.fail(domain.ErrUpdate, i18n.BikesNotConfigured, domain.ErrNotConfigured)
	}
	path, err := r.rowPath(domain.ErrUpdate, bike.ID)
	if err != nil {
		return nil, err
	}

	var row Row
	if err := r.gateway.Patch(ctx, path, FromEntity(*bike), &row); err != nil {
		return nil, r.fail(domain.ErrUpdate, i18n.BikesUpdateFailed, err)
	}

	updated := ToEntity(row)
	return &updated, nil
}

func (r *BikeRepository) DeleteBike(ctx context.Context, bikeID string) error {
	if !r.configured() {
		return r.fail(domain.ErrDelete, i18n.BikesNotConfigured, domain.ErrNotConfigured)
	}
	path, err := r.rowPath(domain.ErrDelete, bikeID)
	if err != nil {
		return err
	}

	if err := r.gateway.Delete(ctx, path); err != nil {
		return r.fail(domain.ErrDelete, i18n.BikesDeleteFailed, err)
	}
	return nil
}
