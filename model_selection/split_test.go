package model_selection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/housing/dataset"
	"github.com/YuminosukeSato/housing/pkg/errors"
)

func makeDataset(n int) dataset.Dataset {
	records := make([]dataset.HousingRecord, n)
	for i := range records {
		records[i] = dataset.HousingRecord{MedianIncome: float64(i)}
	}
	return dataset.NewDataset(records)
}

func TestTrainTestSplit_Partition(t *testing.T) {
	for _, n := range []int{1, 2, 10, 1000} {
		ds := makeDataset(n)
		split, err := TrainTestSplit(ds, 0.2, 42)
		require.NoError(t, err)

		assert.Equal(t, n, len(split.TrainIndices)+len(split.TestIndices))

		seen := make(map[int]bool, n)
		for _, idx := range append(append([]int{}, split.TrainIndices...), split.TestIndices...) {
			assert.False(t, seen[idx], "index %d assigned twice", idx)
			seen[idx] = true
		}
		assert.Len(t, seen, n)
	}
}

func TestTrainTestSplit_Reproducible(t *testing.T) {
	ds := makeDataset(500)

	a, err := TrainTestSplit(ds, 0.3, 7)
	require.NoError(t, err)
	b, err := TrainTestSplit(ds, 0.3, 7)
	require.NoError(t, err)

	assert.Equal(t, a.TrainIndices, b.TrainIndices)
	assert.Equal(t, a.TestIndices, b.TestIndices)

	c, err := TrainTestSplit(ds, 0.3, 8)
	require.NoError(t, err)
	assert.NotEqual(t, a.TestIndices, c.TestIndices)
}

func TestTrainTestSplit_FractionApproaches(t *testing.T) {
	ds := makeDataset(20000)
	split, err := TrainTestSplit(ds, 0.2, 1)
	require.NoError(t, err)

	got := float64(len(split.TestIndices)) / float64(ds.Len())
	assert.InDelta(t, 0.2, got, 0.02)
}

func TestTrainTestSplit_Records(t *testing.T) {
	ds := makeDataset(50)
	split, err := TrainTestSplit(ds, 0.5, 3)
	require.NoError(t, err)

	train := split.TrainRecords()
	require.Len(t, train, len(split.TrainIndices))
	for i, idx := range split.TrainIndices {
		assert.Equal(t, float64(idx), train[i].MedianIncome)
	}

	test := split.TestRecords()
	require.Len(t, test, len(split.TestIndices))
	for i, idx := range split.TestIndices {
		assert.Equal(t, float64(idx), test[i].MedianIncome)
	}
}

func TestTrainTestSplit_InvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		ds       dataset.Dataset
		fraction float64
	}{
		{"zero fraction", makeDataset(10), 0},
		{"one fraction", makeDataset(10), 1},
		{"negative fraction", makeDataset(10), -0.1},
		{"too large fraction", makeDataset(10), 1.5},
		{"NaN fraction", makeDataset(10), math.NaN()},
		{"empty dataset", makeDataset(0), 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TrainTestSplit(tt.ds, tt.fraction, 1)
			require.Error(t, err)

			var iae *errors.InvalidArgumentError
			assert.True(t, errors.As(err, &iae))
		})
	}
}
