package splits

import (
	"fmt"
	"math/rand"
)

// FoldIndices is one cell of a nested cross-validation table.
type FoldIndices struct {
	Training   []int `json:"training"`
	Validation []int `json:"validation"`
	Test       []int `json:"test"`
}

// Design returns the training and validation indices together.
func (f FoldIndices) Design() []int {
	design := make([]int, 0, len(f.Training)+len(f.Validation))
	design = append(design, f.Training...)
	design = append(design, f.Validation...)
	return design
}

// Table is the fold grid of a nested k-fold split, indexed [outer][inner].
type Table [][]FoldIndices

// NestedKFold builds a nested k-fold cross-validation table over the
// indices 0..n-1. The outer split separates design and test indices; each
// outer design set is split again into training and validation. The test
// block of an outer fold repeats across its inner folds.
func NestedKFold(n, outerFolds, innerFolds int, rng *rand.Rand) (Table, error) {
	design, test, err := KFold(Range(n), outerFolds, rng)
	if err != nil {
		return nil, fmt.Errorf("outer split: %w", err)
	}
	table := make(Table, outerFolds)
	for i := range table {
		training, validation, err := KFold(design[i], innerFolds, rng)
		if err != nil {
			return nil, fmt.Errorf("inner split of outer fold %d: %w", i, err)
		}
		table[i] = make([]FoldIndices, innerFolds)
		for j := range table[i] {
			table[i][j] = FoldIndices{
				Training:   training[j],
				Validation: validation[j],
				Test:       test[i],
			}
		}
	}
	return table, nil
}

// Shape returns the outer and inner fold counts.
func (t Table) Shape() (outer, inner int) {
	if len(t) == 0 {
		return 0, 0
	}
	return len(t), len(t[0])
}

// Validate checks the table invariants over the indices 0..n-1: every row
// has the same number of inner folds, in every cell training and validation
// are disjoint, and together with the test block they cover 0..n-1 exactly
// once.
func (t Table) Validate(n int) error {
	outer, inner := t.Shape()
	if outer == 0 || inner == 0 {
		return fmt.Errorf("empty table")
	}
	for i, row := range t {
		if len(row) != inner {
			return fmt.Errorf("outer fold %d has %d inner folds, want %d", i, len(row), inner)
		}
		for j, cell := range row {
			seen := make([]bool, n)
			for _, block := range [][]int{cell.Training, cell.Validation, cell.Test} {
				for _, idx := range block {
					if idx < 0 || idx >= n {
						return fmt.Errorf("fold [%d][%d]: index %d out of range [0, %d)", i, j, idx, n)
					}
					if seen[idx] {
						return fmt.Errorf("fold [%d][%d]: index %d appears twice", i, j, idx)
					}
					seen[idx] = true
				}
			}
			if got := len(cell.Training) + len(cell.Validation) + len(cell.Test); got != n {
				return fmt.Errorf("fold [%d][%d]: %d indices covered, want %d", i, j, got, n)
			}
		}
	}
	return nil
}
