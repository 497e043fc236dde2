package doublemoon

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
)

var csvHeader = []string{"id", "x1", "x2", "label"}

// WriteData writes the samples to path as a CSV artifact with columns
// id,x1,x2,label, ids counting from 0.
func WriteData(path string, xs [][]float32, ys []int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	records := [][]string{csvHeader}
	for i := range xs {
		records = append(records, []string{
			strconv.Itoa(i),
			strconv.FormatFloat(float64(xs[i][0]), 'g', -1, 32),
			strconv.FormatFloat(float64(xs[i][1]), 'g', -1, 32),
			strconv.FormatInt(ys[i], 10),
		})
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadData loads a CSV artifact back into feature rows and labels.
func ReadData(path string) (xs [][]float32, ys []int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !slices.Equal(header, csvHeader) {
		return nil, nil, fmt.Errorf("%s: header %v, want %v", path, header, csvHeader)
	}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}
		x1, err := strconv.ParseFloat(rec[1], 32)
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %s: x1: %w", path, rec[0], err)
		}
		x2, err := strconv.ParseFloat(rec[2], 32)
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %s: x2: %w", path, rec[0], err)
		}
		label, err := strconv.ParseInt(rec[3], 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %s: label: %w", path, rec[0], err)
		}
		xs = append(xs, []float32{float32(x1), float32(x2)})
		ys = append(ys, label)
	}
	return xs, ys, nil
}
