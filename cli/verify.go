package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/doublemoon"
	"github.com/MatteoPardi/Machine-Learning-Lab/util"
)

var verifyVersion string

var verifyCmd = &cobra.Command{
	Use:   "verify <task>",
	Short: "Verify the checksums of a task's artifacts",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyVersion, "version", "v1", "artifact version to verify")
}

func runVerify(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "doublemoon":
		st := store()
		names := []string{
			doublemoon.DataFileName(verifyVersion),
			doublemoon.SplitsFileName(verifyVersion),
		}
		for _, name := range names {
			if err := st.Verify(name); err != nil {
				return err
			}
			util.Logger.Info("checksum ok", "artifact", name)
		}
		return nil
	}
	return fmt.Errorf("unknown task %q", args[0])
}
