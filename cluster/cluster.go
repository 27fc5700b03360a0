// SPDX-License-Identifier: MIT

package cluster

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/atomistic/errors"
)

var (
	// ErrBadThreshold indicates a negative, NaN or infinite threshold.
	ErrBadThreshold = errors.Classed("cluster: threshold must be finite and >= 0", errors.ErrUsage)

	// ErrNonFinite indicates a NaN or infinite input value.
	ErrNonFinite = errors.Classed("cluster: values must be finite", errors.ErrIntegrity)
)

// Result is the outcome of clustering one property.
type Result struct {
	// Labels[i] is the dense cluster label of value i.
	Labels []int `json:"labels" yaml:"labels"`
	// Values[i] is the representative value of the cluster of value i.
	Values []float64 `json:"values" yaml:"values"`
	// Count is the number of distinct clusters.
	Count int `json:"count" yaml:"count"`
}

// Cluster partitions values under threshold.
//
// Implementation:
//   - Stage 1: validate threshold and values.
//   - Stage 2: compute a raw bucket key per value (exact value for t == 0,
//     floor((v-min)/t) otherwise).
//   - Stage 3: renumber keys densely by first appearance and attach
//     representatives (the value itself for t == 0, the bucket minimum
//     otherwise).
//
// Behavior highlights:
//   - Empty input yields an empty Result and no error.
//   - One value, or all-equal values, yield exactly one cluster.
//   - For pairwise-distinct values and t == 0, Labels[i] == i.
//
// Errors:
//   - ErrBadThreshold (class errors.ErrUsage), also when (max-min)/t
//     overflows float64.
//   - ErrNonFinite (class errors.ErrIntegrity), naming the first bad index.
//
// Complexity:
//   - Time O(n), Space O(n).
func Cluster(values []float64, threshold float64) (Result, error) {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		return Result{}, errors.With(ErrBadThreshold, "threshold", threshold, "must be finite and >= 0")
	}
	n := len(values)
	if n == 0 {
		return Result{Labels: []int{}, Values: []float64{}}, nil
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, errors.With(ErrNonFinite, indexField(i), v, "must be finite")
		}
	}

	if threshold == 0 {
		return exact(values), nil
	}

	return bucketed(values, threshold)
}

// exact clusters by value identity.
func exact(values []float64) Result {
	res := Result{Labels: make([]int, len(values)), Values: make([]float64, len(values))}
	seen := make(map[float64]int, len(values))
	for i, v := range values {
		// -0 and +0 compare equal and hash equal as map keys.
		label, ok := seen[v]
		if !ok {
			label = len(seen)
			seen[v] = label
		}
		res.Labels[i] = label
		res.Values[i] = v
	}
	res.Count = len(seen)

	return res
}

// bucketed clusters by floor((v-min)/t). Buckets are keyed by the float64
// floor so ratios beyond the int64 range stay distinct.
func bucketed(values []float64, threshold float64) (Result, error) {
	lo := floats.Min(values)
	res := Result{Labels: make([]int, len(values)), Values: make([]float64, len(values))}

	// bucket -> dense label, dense label -> minimum member value
	dense := make(map[float64]int, len(values))
	var reps []float64
	for i, v := range values {
		bucket := math.Floor((v - lo) / threshold)
		if math.IsInf(bucket, 0) {
			return Result{}, errors.With(ErrBadThreshold, "threshold", threshold, "value range / threshold overflows float64")
		}
		label, ok := dense[bucket]
		if !ok {
			label = len(reps)
			dense[bucket] = label
			reps = append(reps, v)
		} else if v < reps[label] {
			reps[label] = v
		}
		res.Labels[i] = label
	}
	for i, label := range res.Labels {
		res.Values[i] = reps[label]
	}
	res.Count = len(reps)

	return res, nil
}

func indexField(i int) string {
	return "values[" + strconv.Itoa(i) + "]"
}
