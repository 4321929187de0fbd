package baserow

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_inventory/internal/core/domain"
)

func sampleBike() domain.Bike {
	return domain.Bike{
		Model:       "Defy Advanced 2",
		Brand:       "Giant",
		Type:        domain.Road,
		Price:       2399.9,
		Stock:       4,
		ImageURL:    "https://cdn.example.com/defy.png",
		Description: "Endurance carbon road bike",
		TechnicalSpecs: domain.TechnicalSpecs{
			Frame:    "Advanced-Grade Composite",
			Fork:     "Advanced-Grade Composite, full carbon",
			Groupset: "Shimano 105 Di2",
			Brakes:   "Hydraulic disc",
			Wheels:   "Giant P-R2",
			Tires:    "Gavia Fondo 1 32c",
			Weight:   8.6,
			Sizes:    []string{"XS", "S", "M", "L", "XL"},
		},
		CommercialDesc: domain.CommercialDesc{
			Highlights:     []string{"Light frame", "Comfortable geometry, long rides"},
			Advantages:     []string{"Electronic shifting", "Wide tire clearance"},
			TargetAudience: "Endurance riders",
			Usage:          "Road, sportives",
		},
	}
}

func TestToEntity_FromEntity_RoundTrip(t *testing.T) {
	bikes := []domain.Bike{
		sampleBike(),
		{
			TechnicalSpecs: domain.TechnicalSpecs{Sizes: []string{}},
			CommercialDesc: domain.CommercialDesc{Highlights: []string{}, Advantages: []string{}},
		},
	}

	for _, b := range bikes {
		assert.Equal(t, b, ToEntity(FromEntity(b)))
	}
}

func TestToEntity_RoundTripThroughJSON(t *testing.T) {
	b := sampleBike()

	raw, err := json.Marshal(FromEntity(b))
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	var row Row
	require.NoError(t, dec.Decode(&row))

	assert.Equal(t, b, ToEntity(row))
}

func TestToEntity_DefaultsMissingFields(t *testing.T) {
	bike := ToEntity(Row{"id": json.Number("12")})

	assert.Equal(t, "12", bike.ID)
	assert.Equal(t, "", bike.Model)
	assert.Equal(t, domain.BikeType(""), bike.Type)
	assert.Zero(t, bike.Price)
	assert.Zero(t, bike.Stock)
	assert.NotNil(t, bike.TechnicalSpecs.Sizes)
	assert.Empty(t, bike.TechnicalSpecs.Sizes)
	assert.NotNil(t, bike.CommercialDesc.Highlights)
	assert.NotNil(t, bike.CommercialDesc.Advantages)
}

func TestToEntity_CoercesLooseValues(t *testing.T) {
	row := Row{
		"id":          float64(7),
		"model":       nil,
		"brand":       map[string]interface{}{"unexpected": true},
		"type":        map[string]interface{}{"id": json.Number("3"), "value": "MOUNTAIN", "color": "green"},
		"price":       "1200.50",
		"stock":       json.Number("3.9"),
		"weight":      "heavy",
		"description": json.Number("42"),
		"sizes":       " S ,, M,L , ",
		"highlights":  "Fast\n\n  Stiff  \n",
		"advantages":  nil,
	}

	bike := ToEntity(row)

	assert.Equal(t, "7", bike.ID)
	assert.Equal(t, "", bike.Model)
	assert.Equal(t, "", bike.Brand)
	assert.Equal(t, domain.Mountain, bike.Type)
	assert.Equal(t, 1200.5, bike.Price)
	assert.Equal(t, 3, bike.Stock)
	assert.Zero(t, bike.TechnicalSpecs.Weight)
	assert.Equal(t, "42", bike.Description)
	assert.Equal(t, []string{"S", "M", "L"}, bike.TechnicalSpecs.Sizes)
	assert.Equal(t, []string{"Fast", "Stiff"}, bike.CommercialDesc.Highlights)
	assert.Equal(t, []string{}, bike.CommercialDesc.Advantages)
}

func TestToEntity_ClampsNegativeNumbers(t *testing.T) {
	bike := ToEntity(Row{"price": json.Number("-10"), "stock": -2, "weight": "-1.5"})

	assert.Zero(t, bike.Price)
	assert.Zero(t, bike.Stock)
	assert.Zero(t, bike.TechnicalSpecs.Weight)
}

func TestToEntity_SaturatesHugeStock(t *testing.T) {
	cases := []interface{}{json.Number("1e20"), 1e300, "9223372036854775808"}
	for _, v := range cases {
		bike := ToEntity(Row{"stock": v})
		assert.Equal(t, math.MaxInt, bike.Stock, "stock %v", v)
	}

	bike := ToEntity(Row{"stock": json.Number("12.9")})
	assert.Equal(t, 12, bike.Stock)
}

func TestFromEntity_UsesFieldNamesAndSeparators(t *testing.T) {
	row := FromEntity(sampleBike())

	assert.NotContains(t, row, "id")
	assert.Equal(t, "XS, S, M, L, XL", row["sizes"])
	assert.Equal(t, "Light frame\nComfortable geometry, long rides", row["highlights"])
	assert.Equal(t, "https://cdn.example.com/defy.png", row["image_url"])
	assert.Equal(t, "Endurance riders", row["target_audience"])
	assert.Equal(t, "ROAD", row["type"])
}
