package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Seteadas por ldflags en el build.
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "petstore",
		Short:         "Servicio REST de mascotas",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("PETSTORE_CONFIG"), "Archivo YAML de configuración (env PETSTORE_CONFIG)")

	root.AddCommand(
		newServeCmd(&configPath),
		newMigrateCmd(&configPath),
		newPetsCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Muestra la versión",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "petstore %s (%s)\n", Version, Commit)
			},
		},
	)
	return root
}
