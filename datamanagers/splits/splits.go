// Package splits implements the index splitting methods used to build
// training/validation/test partitions for datamanagers.
package splits

import (
	"fmt"
	"math/rand"
	"sort"
)

// Range returns the indices 0..n-1.
func Range(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// TrainingSize is either an absolute number of training indices or a
// fraction of them.
type TrainingSize struct {
	count    int
	fraction float64
	isCount  bool
}

// Count fixes the training set size to n indices.
func Count(n int) TrainingSize { return TrainingSize{count: n, isCount: true} }

// Fraction fixes the training set size to a fraction f in [0, 1] of the
// indices, rounded down.
func Fraction(f float64) TrainingSize { return TrainingSize{fraction: f} }

func (s TrainingSize) of(n int) (int, error) {
	if s.isCount {
		if s.count < 0 || s.count > n {
			return 0, fmt.Errorf("training size %d out of range for %d indices", s.count, n)
		}
		return s.count, nil
	}
	if s.fraction < 0 || s.fraction > 1 {
		return 0, fmt.Errorf("training fraction %v must be in [0, 1]", s.fraction)
	}
	return int(float64(n) * s.fraction), nil
}

// Plain splits indices into training and test indices, without shuffling.
func Plain(indices []int, size TrainingSize) (training, test []int, err error) {
	n, err := size.of(len(indices))
	if err != nil {
		return nil, nil, err
	}
	return indices[:n:n], indices[n:], nil
}

// Holdout permutes indices, then splits the permutation into training and
// test indices.
func Holdout(indices []int, size TrainingSize, rng *rand.Rand) (training, test []int, err error) {
	n, err := size.of(len(indices))
	if err != nil {
		return nil, nil, err
	}
	perm := permute(indices, rng)
	return perm[:n:n], perm[n:], nil
}

// RepeatedHoldout performs k independent holdouts over the same indices.
func RepeatedHoldout(indices []int, size TrainingSize, k int, rng *rand.Rand) (training, test [][]int, err error) {
	if k < 1 {
		return nil, nil, fmt.Errorf("need at least 1 repetition, got %d", k)
	}
	training = make([][]int, k)
	test = make([][]int, k)
	for i := 0; i < k; i++ {
		training[i], test[i], err = Holdout(indices, size, rng)
		if err != nil {
			return nil, nil, err
		}
	}
	return training, test, nil
}

// KFold splits indices into k folds. Test folds partition a permutation of
// the indices, the first len(indices)%k folds holding one extra element;
// each training set is the sorted complement of its test fold. k must be in
// [1, len(indices)]: an empty fold would leave nothing to split further.
func KFold(indices []int, k int, rng *rand.Rand) (training, test [][]int, err error) {
	if k < 1 || k > len(indices) {
		return nil, nil, fmt.Errorf("cannot split %d indices into %d folds", len(indices), k)
	}
	perm := permute(indices, rng)
	test = chunk(perm, k)
	training = make([][]int, k)
	for i := range test {
		training[i] = complement(indices, test[i])
	}
	return training, test, nil
}

func permute(indices []int, rng *rand.Rand) []int {
	out := make([]int, len(indices))
	for i, j := range rng.Perm(len(indices)) {
		out[i] = indices[j]
	}
	return out
}

// chunk cuts s into k contiguous blocks, the first len(s)%k blocks one
// element longer than the rest.
func chunk(s []int, k int) [][]int {
	out := make([][]int, k)
	base, extra := len(s)/k, len(s)%k
	lo := 0
	for i := range out {
		size := base
		if i < extra {
			size++
		}
		out[i] = s[lo : lo+size : lo+size]
		lo += size
	}
	return out
}

// complement returns the elements of indices not present in excluded,
// sorted ascending.
func complement(indices, excluded []int) []int {
	drop := make(map[int]struct{}, len(excluded))
	for _, v := range excluded {
		drop[v] = struct{}{}
	}
	out := make([]int, 0, len(indices)-len(excluded))
	for _, v := range indices {
		if _, ok := drop[v]; !ok {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
