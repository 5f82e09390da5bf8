// Package model_selection partitions datasets into training and test subsets.
package model_selection

import (
	"math"
	"math/rand/v2"

	"github.com/YuminosukeSato/housing/dataset"
	"github.com/YuminosukeSato/housing/pkg/errors"
	"github.com/YuminosukeSato/housing/pkg/log"
)

// Split is a fixed, disjoint partition of one Dataset.
type Split struct {
	// TrainIndices and TestIndices are positions in the source dataset in
	// ascending order. Together they cover every record exactly once.
	TrainIndices []int
	TestIndices  []int

	source dataset.Dataset
}

// TrainRecords returns copies of the training records in dataset order.
func (s Split) TrainRecords() []dataset.HousingRecord {
	return s.source.Subset(s.TrainIndices)
}

// TestRecords returns copies of the test records in dataset order.
func (s Split) TestRecords() []dataset.HousingRecord {
	return s.source.Subset(s.TestIndices)
}

// TrainTestSplit assigns each record to the test subset with probability
// testFraction, drawing one value per record from a PCG stream seeded with
// seed. The realized test fraction is not exact for small datasets.
//
// The same seed and record order always produce the same partition.
func TrainTestSplit(ds dataset.Dataset, testFraction float64, seed uint64) (Split, error) {
	if math.IsNaN(testFraction) || testFraction <= 0 || testFraction >= 1 {
		return Split{}, errors.NewInvalidArgumentError("model_selection.TrainTestSplit",
			"testFraction", "must be in the open interval (0, 1)", testFraction)
	}
	n := ds.Len()
	if n == 0 {
		return Split{}, errors.NewInvalidArgumentError("model_selection.TrainTestSplit",
			"dataset", "dataset is empty", n)
	}

	// 同じシードからは常に同じ乱数列が得られる
	rng := rand.New(rand.NewPCG(seed, seed))

	split := Split{
		TrainIndices: make([]int, 0, n),
		TestIndices:  make([]int, 0, int(float64(n)*testFraction)+1),
		source:       ds,
	}
	for i := 0; i < n; i++ {
		if rng.Float64() < testFraction {
			split.TestIndices = append(split.TestIndices, i)
		} else {
			split.TrainIndices = append(split.TrainIndices, i)
		}
	}

	log.GetLogger().With(log.ComponentKey, "model_selection").Debug("Dataset split",
		log.OperationKey, log.OperationSplit,
		log.SamplesKey, n,
		log.TestFractionKey, testFraction,
		log.RandomSeedKey, seed,
		"split.train", len(split.TrainIndices),
		"split.test", len(split.TestIndices),
	)

	return split, nil
}
