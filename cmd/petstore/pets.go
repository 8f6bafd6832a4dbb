package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"time"

	"petstore/internal/domain/pets"
	"petstore/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// newPetsCmd agrupa los comandos cliente contra un servicio en ejecución.
func newPetsCmd() *cobra.Command {
	var (
		baseURL = envOr("PETSTORE_URL", "http://localhost:8080")
		timeout = 10 * time.Second
		client  *httpclient.Client
	)

	cmd := &cobra.Command{
		Use:   "pets",
		Short: "Cliente de la API de mascotas",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := httpclient.New(baseURL, timeout)
			if err != nil {
				return err
			}
			client = c
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base del servicio (env PETSTORE_URL)")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", timeout, "Timeout HTTP")

	var filter struct{ category, name, available, gender string }
	list := &cobra.Command{
		Use:   "list",
		Short: "Lista mascotas (acepta un filtro)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := url.Values{}
			for k, v := range map[string]string{
				"category": filter.category, "name": filter.name,
				"available": filter.available, "gender": filter.gender,
			} {
				if v != "" {
					q.Set(k, v)
				}
			}
			out, err := client.List(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
	list.Flags().StringVar(&filter.category, "category", "", "Filtrar por categoría")
	list.Flags().StringVar(&filter.name, "name", "", "Filtrar por nombre")
	list.Flags().StringVar(&filter.available, "available", "", "Filtrar por disponibilidad (yes/no)")
	list.Flags().StringVar(&filter.gender, "gender", "", "Filtrar por género")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Muestra una mascota",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := client.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}

	var in httpclient.Pet
	create := &cobra.Command{
		Use:   "create",
		Short: "Crea una mascota",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !pets.Gender(in.Gender).Valid() {
				return fmt.Errorf("invalid gender %q (MALE, FEMALE, UNKNOWN)", in.Gender)
			}
			p, err := client.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}
	create.Flags().StringVar(&in.Name, "name", "", "Nombre")
	create.Flags().StringVar(&in.Category, "category", "", "Categoría")
	create.Flags().BoolVar(&in.Available, "available", true, "Disponible")
	create.Flags().StringVar(&in.Gender, "gender", string(pets.GenderUnknown), "MALE, FEMALE o UNKNOWN")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("category")

	purchase := &cobra.Command{
		Use:   "purchase <id>",
		Short: "Compra una mascota disponible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := client.Purchase(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Elimina una mascota",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, get, create, purchase, del)
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
