package main

import (
	"errors"
	"fmt"

	pg "petstore/internal/adapters/storage/postgres"
	"petstore/internal/config"

	"github.com/spf13/cobra"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crea la tabla pets en la base Postgres configurada",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath, envFiles...)
			if err != nil {
				return err
			}
			if cfg.Storage.Driver != config.DriverPostgres {
				return errors.New("migrate requires storage.driver=postgres (or set DB_DSN)")
			}

			db, err := openPostgres(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := pg.Migrate(cmd.Context(), db)
			if err != nil {
				return err
			}
			for _, f := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", f)
			}
			return nil
		},
	}
}
