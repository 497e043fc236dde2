package main

import (
	"fmt"
	"os"

	"github.com/MatteoPardi/Machine-Learning-Lab/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mllab:", err)
		os.Exit(1)
	}
}
