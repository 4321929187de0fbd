package baserow

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/go-openapi/swag"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
)

const (
	listSeparator = ","
	textSeparator = "\n"

	listJoiner = ", "
)

// ToEntity maps a Baserow row onto a Bike. Missing or mistyped fields become zero values.
func ToEntity(row Row) domain.Bike {
	return domain.Bike{
		ID:          idString(row["id"]),
		Model:       stringField(row["model"]),
		Brand:       stringField(row["brand"]),
		Type:        domain.BikeType(selectField(row["type"])),
		Price:       nonNegative(numberField(row["price"])),
		Stock:       countField(row["stock"]),
		ImageURL:    stringField(row["image_url"]),
		Description: stringField(row["description"]),
		TechnicalSpecs: domain.TechnicalSpecs{
			Frame:    stringField(row["frame"]),
			Fork:     stringField(row["fork"]),
			Groupset: stringField(row["groupset"]),
			Brakes:   stringField(row["brakes"]),
			Wheels:   stringField(row["wheels"]),
			Tires:    stringField(row["tires"]),
			Weight:   nonNegative(numberField(row["weight"])),
			Sizes:    splitField(row["sizes"], listSeparator),
		},
		CommercialDesc: domain.CommercialDesc{
			Highlights:     splitField(row["highlights"], textSeparator),
			Advantages:     splitField(row["advantages"], textSeparator),
			TargetAudience: stringField(row["target_audience"]),
			Usage:          stringField(row["usage"]),
		},
	}
}

// FromEntity builds the write payload for a bike. The id is never sent, rows are addressed by path.
func FromEntity(b domain.Bike) Row {
	return Row{
		"model":           b.Model,
		"brand":           b.Brand,
		"type":            string(b.Type),
		"price":           b.Price,
		"stock":           b.Stock,
		"image_url":       b.ImageURL,
		"description":     b.Description,
		"frame":           b.TechnicalSpecs.Frame,
		"fork":            b.TechnicalSpecs.Fork,
		"groupset":        b.TechnicalSpecs.Groupset,
		"brakes":          b.TechnicalSpecs.Brakes,
		"wheels":          b.TechnicalSpecs.Wheels,
		"tires":           b.TechnicalSpecs.Tires,
		"weight":          b.TechnicalSpecs.Weight,
		"sizes":           strings.Join(b.TechnicalSpecs.Sizes, listJoiner),
		"highlights":      strings.Join(b.CommercialDesc.Highlights, textSeparator),
		"advantages":      strings.Join(b.CommercialDesc.Advantages, textSeparator),
		"target_audience": b.CommercialDesc.TargetAudience,
		"usage":           b.CommercialDesc.Usage,
	}
}

func stringField(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	}
	return ""
}

func idString(v interface{}) string {
	return strings.TrimSpace(stringField(v))
}

// selectField reads text fields that may be configured as single selects in Baserow.
func selectField(v interface{}) string {
	if m, ok := v.(map[string]interface{}); ok {
		return strings.TrimSpace(stringField(m["value"]))
	}
	return strings.TrimSpace(stringField(v))
}

func numberField(v interface{}) float64 {
	var f float64
	switch val := v.(type) {
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case string:
		parsed, err := swag.ConvertFloat64(strings.TrimSpace(val))
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func nonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}

// countField truncates to a non-negative int, saturating at math.MaxInt.
func countField(v interface{}) int {
	f := nonNegative(numberField(v))
	if f >= math.MaxInt {
		return math.MaxInt
	}
	return int(f)
}

func splitField(v interface{}, sep string) []string {
	s, ok := v.(string)
	if !ok || s == "" {
		return []string{}
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
