package util

import "fmt"

func Debug[T any](v T) {
	Logger.Debug(fmt.Sprintf("%v", v))
}
