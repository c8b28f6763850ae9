package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "jiji",
		Short:        "Jiji diving-shop matching service",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), matchCmd(), importCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
