package main

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "fcusum",
		Short: "Fourier CUSUM cointegration test CLI",
	}
	root.AddCommand(testCmd())
	return root.Execute()
}
