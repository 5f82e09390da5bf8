package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/housing/core/parallel"
	"github.com/YuminosukeSato/housing/pkg/errors"
)

// CategoryIndex is the vocabulary learned by OneHotEncoder.Fit. Categories
// keep the order in which they first appeared in the training records.
type CategoryIndex struct {
	categories []string
	index      map[string]int
}

// Len returns the number of categories K.
func (c *CategoryIndex) Len() int {
	return len(c.categories)
}

// Categories returns a copy of the categories in index order.
func (c *CategoryIndex) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Lookup returns the index assigned to category.
func (c *CategoryIndex) Lookup(category string) (int, bool) {
	i, ok := c.index[category]
	return i, ok
}

// OneHotEncoder encodes one categorical column of R as K indicator columns.
// A category not seen during Fit encodes as a row of zeros.
type OneHotEncoder[R any] struct {
	// Name prefixes the output column names ("name=category").
	Name string

	// Column extracts the category from a record.
	Column func(R) string
}

// Fit learns the category vocabulary from records.
func (e OneHotEncoder[R]) Fit(records []R) (*CategoryIndex, error) {
	if len(records) == 0 {
		return nil, errors.NewInvalidArgumentError("OneHotEncoder.Fit", "records", "no training records", 0)
	}

	idx := &CategoryIndex{index: make(map[string]int)}
	for _, r := range records {
		category := e.Column(r)
		if _, ok := idx.index[category]; ok {
			continue
		}
		idx.index[category] = len(idx.categories)
		idx.categories = append(idx.categories, category)
	}
	return idx, nil
}

// Transform returns a len(records) x K indicator matrix.
func (e OneHotEncoder[R]) Transform(idx *CategoryIndex, records []R) (*mat.Dense, error) {
	if idx == nil || idx.Len() == 0 {
		return nil, errors.NewInvalidArgumentError("OneHotEncoder.Transform", "params", "encoder has not been fitted", nil)
	}
	if len(records) == 0 {
		return nil, errors.NewInvalidArgumentError("OneHotEncoder.Transform", "records", "no records to transform", 0)
	}

	out := mat.NewDense(len(records), idx.Len(), nil)
	parallel.ParallelizeWithThreshold(len(records), parallel.DefaultThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			if k, ok := idx.index[e.Column(records[i])]; ok {
				out.Set(i, k, 1)
			}
		}
	})
	return out, nil
}

// Width returns K.
func (e OneHotEncoder[R]) Width(idx *CategoryIndex) int {
	return idx.Len()
}

// Names returns one "name=category" label per output column.
func (e OneHotEncoder[R]) Names(idx *CategoryIndex) []string {
	names := make([]string, idx.Len())
	for i, c := range idx.categories {
		names[i] = e.Name + "=" + c
	}
	return names
}
