package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers"
	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/doublemoon"
)

var describeVersion string

var describeCmd = &cobra.Command{
	Use:   "describe <task>",
	Short: "Summarize a task's dataset and fold grid",
	Long: `Load a task's datamanager and print row counts, per-class counts,
per-feature statistics and the cross-validation fold sizes.`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().StringVar(&describeVersion, "version", "v1", "artifact version to describe")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "doublemoon":
		m, err := doublemoon.New(
			datamanagers.WithVersion(describeVersion),
			datamanagers.WithStore(store()),
		)
		if err != nil {
			return err
		}
		return describe(cmd, m)
	}
	return fmt.Errorf("unknown task %q", args[0])
}

func describe(cmd *cobra.Command, m datamanagers.DataManager) error {
	full := m.FullDataset()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d samples, %d features\n", m.Name(), full.Len(), full.NumFeatures())

	counts := map[int64]int{}
	for _, y := range full.Labels() {
		counts[y]++
	}
	fmt.Fprintf(cmd.OutOrStdout(), "class counts: %v\n", counts)

	for j := 0; j < full.NumFeatures(); j++ {
		col := full.Column(j)
		fmt.Fprintf(cmd.OutOrStdout(), "x%d: mean %+.4f, std %.4f\n",
			j+1, stat.Mean(col, nil), stat.StdDev(col, nil))
	}

	folds := m.Folds()
	if len(folds) == 0 {
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "folds: %d outer x %d inner\n", len(folds), len(folds[0]))
	f := folds[0][0]
	fmt.Fprintf(cmd.OutOrStdout(), "fold %s: training %d, validation %d, design %d, test %d\n",
		f.Name, f.Training.Len(), f.Validation.Len(), f.Design.Len(), f.Test.Len())
	return nil
}
