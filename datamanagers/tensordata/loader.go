package tensordata

import (
	"fmt"
	"math/rand"

	torch "github.com/wangkuiyi/gotorch"
)

// Method controls how a Loader walks its dataset each epoch.
type Method string

const (
	MethodNone      Method = "none"      // rows in order
	MethodShuffle   Method = "shuffle"   // fresh permutation per epoch
	MethodBootstrap Method = "bootstrap" // sample rows with replacement
)

// ParseMethod maps a string to a Method. The empty string means MethodNone.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case "":
		return MethodNone, nil
	case MethodNone, MethodShuffle, MethodBootstrap:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown loader method %q", s)
}

// Loader iterates a Dataset in minibatches:
//
//	for loader.Scan() {
//		x, y := loader.Minibatch()
//	}
//
// Scan returns false once the epoch is exhausted and rearms the loader, so
// the next Scan starts a fresh epoch with a new permutation or bootstrap
// draw. Setting changes apply from the next epoch on.
type Loader struct {
	dataset   *Dataset
	method    Method
	batchSize int
	dropLast  bool
	rng       *rand.Rand

	epoch    *Dataset // view walked this epoch, nil between epochs
	batch    int
	nBatches int
	done     int
	lo, hi   int
}

// NewLoader builds a loader over d. batchSize <= 0 means the whole dataset;
// dropLast drops a trailing partial batch. seed drives the shuffle and
// bootstrap draws.
func NewLoader(d *Dataset, method Method, batchSize int, dropLast bool, seed int64) *Loader {
	return &Loader{
		dataset:   d,
		method:    method,
		batchSize: batchSize,
		dropLast:  dropLast,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Dataset returns the dataset the loader walks.
func (l *Loader) Dataset() *Dataset { return l.dataset }

// Method returns the iteration method.
func (l *Loader) Method() Method { return l.method }

// SetMethod changes the iteration method from the next epoch on.
func (l *Loader) SetMethod(m Method) { l.method = m }

// BatchSize returns the configured batch size (0 means the whole dataset).
func (l *Loader) BatchSize() int { return l.batchSize }

// SetBatchSize changes the batch size from the next epoch on. n <= 0 means
// the whole dataset.
func (l *Loader) SetBatchSize(n int) { l.batchSize = n }

func (l *Loader) effectiveBatch() int {
	if l.batchSize <= 0 {
		return l.dataset.Len()
	}
	return l.batchSize
}

// Len returns the number of minibatches in one epoch.
func (l *Loader) Len() int {
	n, batch := l.dataset.Len(), l.effectiveBatch()
	if batch == 0 {
		return 0
	}
	nBatches := n / batch
	if !l.dropLast && n%batch > 0 {
		nBatches++
	}
	return nBatches
}

func (l *Loader) start() {
	n := l.dataset.Len()
	l.batch = l.effectiveBatch()
	l.nBatches = l.Len()
	switch l.method {
	case MethodShuffle:
		l.epoch = l.dataset.Subset(l.rng.Perm(n))
	case MethodBootstrap:
		idx := make([]int, l.nBatches*l.batch)
		for i := range idx {
			idx[i] = l.rng.Intn(n)
		}
		l.epoch = l.dataset.Subset(idx)
	default:
		l.epoch = l.dataset
	}
	l.done = 0
}

// Scan advances to the next minibatch, returning false at the end of the
// epoch.
func (l *Loader) Scan() bool {
	if l.epoch == nil {
		l.start()
	}
	if l.done >= l.nBatches {
		l.epoch = nil
		return false
	}
	l.lo = l.done * l.batch
	l.hi = l.lo + l.batch
	if l.hi > l.epoch.Len() {
		l.hi = l.epoch.Len()
	}
	l.done++
	return true
}

// Minibatch materializes the current minibatch on the dataset's device. It
// must only be called after Scan returned true.
func (l *Loader) Minibatch() (x, y torch.Tensor) {
	return l.epoch.Slice(l.lo, l.hi)
}
