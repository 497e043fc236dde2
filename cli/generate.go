package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/doublemoon"
	"github.com/MatteoPardi/Machine-Learning-Lab/util"
)

var generateVersion string

var generateCmd = &cobra.Command{
	Use:   "generate <task>",
	Short: "Generate a versioned dataset artifact",
	Long: `Sample a task's dataset with the pinned version parameters and write
the CSV artifact plus its sha256 sidecar into the resources directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateVersion, "version", "v1", "artifact version to generate")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "doublemoon":
		path, err := doublemoon.GenerateData(store().Dir(), generateVersion)
		if err != nil {
			return fmt.Errorf("generate doublemoon: %w", err)
		}
		util.Logger.Info("wrote data artifact", "path", path)
		return nil
	}
	return fmt.Errorf("unknown task %q", args[0])
}
