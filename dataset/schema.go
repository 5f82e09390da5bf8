// Package dataset declares the housing record shape and loads delimited text
// files into read-only, schema-checked datasets.
package dataset

import (
	"fmt"
	"strings"
)

// Kind is the value type of a schema field.
type Kind int

const (
	// Numeric fields must parse as finite float64.
	Numeric Kind = iota
	// Categorical fields keep the raw token.
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field is one named, typed column of the input file.
type Field struct {
	Name string
	Kind Kind
}

// Schema is the ordered list of fields expected in every data row.
type Schema struct {
	Fields []Field

	// HasHeader skips the first row without validating it.
	HasHeader bool

	// Delimiter separates tokens within a row.
	Delimiter rune

	// SkipIncomplete drops rows whose numeric token is empty instead of
	// failing the load. Non-empty malformed tokens always fail.
	SkipIncomplete bool
}

// Housing column names in file order.
const (
	FieldLongitude        = "longitude"
	FieldLatitude         = "latitude"
	FieldHousingMedianAge = "housing_median_age"
	FieldTotalRooms       = "total_rooms"
	FieldTotalBedrooms    = "total_bedrooms"
	FieldPopulation       = "population"
	FieldHouseholds       = "households"
	FieldMedianIncome     = "median_income"
	FieldMedianHouseValue = "median_house_value"
	FieldOceanProximity   = "ocean_proximity"
)

// HousingSchema returns the ten-column comma-delimited housing layout with
// a header row.
func HousingSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: FieldLongitude, Kind: Numeric},
			{Name: FieldLatitude, Kind: Numeric},
			{Name: FieldHousingMedianAge, Kind: Numeric},
			{Name: FieldTotalRooms, Kind: Numeric},
			{Name: FieldTotalBedrooms, Kind: Numeric},
			{Name: FieldPopulation, Kind: Numeric},
			{Name: FieldHouseholds, Kind: Numeric},
			{Name: FieldMedianIncome, Kind: Numeric},
			{Name: FieldMedianHouseValue, Kind: Numeric},
			{Name: FieldOceanProximity, Kind: Categorical},
		},
		HasHeader: true,
		Delimiter: ',',
	}
}

// Len returns the number of fields.
func (s Schema) Len() int {
	return len(s.Fields)
}

// Index returns the position of the named field, or -1.
func (s Schema) Index(name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the field names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

func (s Schema) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = f.Name + ":" + f.Kind.String()
	}
	return "Schema(" + strings.Join(parts, ", ") + ")"
}
