package dataset

import (
	"github.com/YuminosukeSato/housing/pkg/errors"
)

// HousingRecord is one district row. MedianHouseValue is the regression
// target; the other numeric fields are predictors.
type HousingRecord struct {
	Longitude        float64
	Latitude         float64
	HousingMedianAge float64
	TotalRooms       float64
	TotalBedrooms    float64
	Population       float64
	Households       float64
	MedianIncome     float64
	MedianHouseValue float64
	OceanProximity   string
}

// NumericPredictors lists the predictor columns in feature order.
var NumericPredictors = []string{
	FieldLongitude,
	FieldLatitude,
	FieldHousingMedianAge,
	FieldTotalRooms,
	FieldTotalBedrooms,
	FieldPopulation,
	FieldHouseholds,
	FieldMedianIncome,
}

// Predictors returns the eight numeric predictors in NumericPredictors order.
func (r HousingRecord) Predictors() [8]float64 {
	return [8]float64{
		r.Longitude,
		r.Latitude,
		r.HousingMedianAge,
		r.TotalRooms,
		r.TotalBedrooms,
		r.Population,
		r.Households,
		r.MedianIncome,
	}
}

// numericSetters binds schema field names to record fields.
var numericSetters = map[string]func(*HousingRecord, float64){
	FieldLongitude:        func(r *HousingRecord, v float64) { r.Longitude = v },
	FieldLatitude:         func(r *HousingRecord, v float64) { r.Latitude = v },
	FieldHousingMedianAge: func(r *HousingRecord, v float64) { r.HousingMedianAge = v },
	FieldTotalRooms:       func(r *HousingRecord, v float64) { r.TotalRooms = v },
	FieldTotalBedrooms:    func(r *HousingRecord, v float64) { r.TotalBedrooms = v },
	FieldPopulation:       func(r *HousingRecord, v float64) { r.Population = v },
	FieldHouseholds:       func(r *HousingRecord, v float64) { r.Households = v },
	FieldMedianIncome:     func(r *HousingRecord, v float64) { r.MedianIncome = v },
	FieldMedianHouseValue: func(r *HousingRecord, v float64) { r.MedianHouseValue = v },
}

var categoricalSetters = map[string]func(*HousingRecord, string){
	FieldOceanProximity: func(r *HousingRecord, v string) { r.OceanProximity = v },
}

// validateBindings checks that every schema field maps onto a record field
// of the same kind and that the target column is present.
func validateBindings(s Schema) error {
	if len(s.Fields) == 0 {
		return errors.NewInvalidArgumentError("dataset.Load", "schema", "schema has no fields", s.String())
	}
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if seen[f.Name] {
			return errors.NewInvalidArgumentError("dataset.Load", "schema", "duplicate field", f.Name)
		}
		seen[f.Name] = true

		var ok bool
		switch f.Kind {
		case Numeric:
			_, ok = numericSetters[f.Name]
		case Categorical:
			_, ok = categoricalSetters[f.Name]
		}
		if !ok {
			return errors.NewInvalidArgumentError("dataset.Load", "schema",
				"field is not a "+f.Kind.String()+" housing field", f.Name)
		}
	}
	if !seen[FieldMedianHouseValue] {
		return errors.NewInvalidArgumentError("dataset.Load", "schema", "target field is missing", FieldMedianHouseValue)
	}
	return nil
}

// Dataset is a read-only ordered sequence of records.
type Dataset struct {
	records []HousingRecord
}

// NewDataset copies records into a new Dataset.
func NewDataset(records []HousingRecord) Dataset {
	cp := make([]HousingRecord, len(records))
	copy(cp, records)
	return Dataset{records: cp}
}

// Len returns the number of records.
func (d Dataset) Len() int {
	return len(d.records)
}

// At returns a copy of the i-th record.
func (d Dataset) At(i int) HousingRecord {
	return d.records[i]
}

// Records returns a copy of all records in order.
func (d Dataset) Records() []HousingRecord {
	cp := make([]HousingRecord, len(d.records))
	copy(cp, d.records)
	return cp
}

// Subset returns copies of the records at the given indices, in index order.
func (d Dataset) Subset(indices []int) []HousingRecord {
	out := make([]HousingRecord, len(indices))
	for i, idx := range indices {
		out[i] = d.records[idx]
	}
	return out
}

// Targets returns MedianHouseValue for each record.
func Targets(records []HousingRecord) []float64 {
	y := make([]float64, len(records))
	for i, r := range records {
		y[i] = r.MedianHouseValue
	}
	return y
}
