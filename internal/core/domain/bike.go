package domain

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// swagger:model domain.Bike
type Bike struct {
	ID             string         `json:"id"`
	Model          string         `json:"model"`
	Brand          string         `json:"brand"`
	Type           BikeType       `json:"type"`
	Price          float64        `json:"price"`
	Stock          int            `json:"stock"`
	ImageURL       string         `json:"image_url"`
	Description    string         `json:"description"`
	TechnicalSpecs TechnicalSpecs `json:"technical_specs"`
	CommercialDesc CommercialDesc `json:"commercial_desc"`
}

type TechnicalSpecs struct {
	Frame    string   `json:"frame"`
	Fork     string   `json:"fork"`
	Groupset string   `json:"groupset"`
	Brakes   string   `json:"brakes"`
	Wheels   string   `json:"wheels"`
	Tires    string   `json:"tires"`
	Weight   float64  `json:"weight"`
	Sizes    []string `json:"sizes"`
}

type CommercialDesc struct {
	Highlights     []string `json:"highlights"`
	Advantages     []string `json:"advantages"`
	TargetAudience string   `json:"target_audience"`
	Usage          string   `json:"usage"`
}

type BikeType string

const (
	Road     BikeType = "ROAD"
	Mountain BikeType = "MOUNTAIN"
	Gravel   BikeType = "GRAVEL"
	Hybrid   BikeType = "HYBRID"
	City     BikeType = "CITY"
	Electric BikeType = "ELECTRIC"
	BMX      BikeType = "BMX"
)

// BikeTypes lists the categories offered by the inventory forms.
var BikeTypes = []BikeType{Road, Mountain, Gravel, Hybrid, City, Electric, BMX}

// Validate checks a bike submitted for create or update.
func (b *Bike) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("model", "body", b.Model); err != nil {
		res = append(res, err)
	}
	if err := validate.RequiredString("brand", "body", b.Brand); err != nil {
		res = append(res, err)
	}
	if err := validate.EnumCase("type", "body", string(b.Type), bikeTypeEnum(), true); err != nil {
		res = append(res, err)
	}
	if err := validate.Minimum("price", "body", b.Price, 0, false); err != nil {
		res = append(res, err)
	}
	if err := validate.MinimumInt("stock", "body", int64(b.Stock), 0, false); err != nil {
		res = append(res, err)
	}
	if err := validate.Minimum("technical_specs.weight", "body", b.TechnicalSpecs.Weight, 0, false); err != nil {
		res = append(res, err)
	}
	if b.ImageURL != "" && !formats.Validates("uri", b.ImageURL) {
		res = append(res, errors.InvalidType("image_url", "body", "uri", b.ImageURL))
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func bikeTypeEnum() []interface{} {
	enum := make([]interface{}, 0, len(BikeTypes))
	for _, t := range BikeTypes {
		enum = append(enum, string(t))
	}
	return enum
}
