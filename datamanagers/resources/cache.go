package resources

import "sync"

// Parsed artifacts are cached per process, keyed by resolved path, so that
// datamanagers constructed on the same version share the parsed form.
var cache sync.Map

// Cached returns the value parsed from path, calling load only the first
// time a path is seen.
func Cached[T any](path string, load func(string) (T, error)) (T, error) {
	if v, ok := cache.Load(path); ok {
		return v.(T), nil
	}
	v, err := load(path)
	if err != nil {
		var zero T
		return zero, err
	}
	actual, _ := cache.LoadOrStore(path, v)
	return actual.(T), nil
}

// Forget drops the cached value for path, forcing the next Cached call to
// reload it.
func Forget(path string) {
	cache.Delete(path)
}
