package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Marketplace-api/pkg/config"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones SQL pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), cmd, true)
			if err != nil {
				return err
			}
			defer e.backend.Close()
			if e.cfg.Storage != config.StoragePostgres {
				return errors.New("migrate requiere STORAGE=postgres")
			}
			output(cmd, map[string]string{"status": "ok"}, "migraciones aplicadas")
			return nil
		},
	}
}
