package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openclins/clins-converter/internal/service"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "clins-converter",
		Short: "JP-CLINS clinical document to FHIR R4 bundle converter",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the converter HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service.NewConverterService()
			if err != nil {
				return err
			}
			return svc.Start(context.Background())
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
