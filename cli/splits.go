package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/doublemoon"
	"github.com/MatteoPardi/Machine-Learning-Lab/util"
)

var splitsVersion string

var splitsCmd = &cobra.Command{
	Use:   "splits <task>",
	Short: "Generate a versioned indices-split artifact",
	Long: `Build a task's nested k-fold cross-validation table with the pinned
version parameters and write the JSON artifact plus its sha256 sidecar
into the resources directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplits,
}

func init() {
	splitsCmd.Flags().StringVar(&splitsVersion, "version", "v1", "artifact version to generate")
}

func runSplits(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "doublemoon":
		path, err := doublemoon.GenerateSplits(store().Dir(), splitsVersion)
		if err != nil {
			return fmt.Errorf("generate doublemoon splits: %w", err)
		}
		util.Logger.Info("wrote indices-split artifact", "path", path)
		return nil
	}
	return fmt.Errorf("unknown task %q", args[0])
}
