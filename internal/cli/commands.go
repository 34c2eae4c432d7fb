// Package cli implementa marketctl, la herramienta de administración del marketplace.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Marketplace-api/internal/bootstrap"
	"github.com/jhoicas/Marketplace-api/pkg/config"
	"github.com/jhoicas/Marketplace-api/pkg/logger"
)

var (
	// Global flags
	jsonOutput bool
	logLevel   string
)

// openBackend reemplazable en tests.
var openBackend = bootstrap.Open

// NewRootCmd construye el árbol de comandos.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "marketctl",
		Short: "marketctl - administración del marketplace de relojes",
		Long: `marketctl aplica migraciones, crea usuarios y ejecuta cargas masivas de inventario
contra el mismo almacenamiento que usa la API (variables de entorno o .env).`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Salida en formato JSON")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Nivel de log (trace, debug, info, warn, error)")

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newCreateUserCmd())
	root.AddCommand(newIngestCmd())
	return root
}

// Execute es llamado por main.main().
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		if jsonOutput {
			printJSON(os.Stderr, map[string]string{"error": err.Error()})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// env configuración, logger y backend compartidos por los subcomandos.
type env struct {
	cfg     *config.Config
	log     *logger.Logger
	backend *bootstrap.Backend
}

func setup(ctx context.Context, cmd *cobra.Command, migrate bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: logLevel, Out: cmd.ErrOrStderr()})
	backend, err := openBackend(ctx, cfg, migrate, log)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, backend: backend}, nil
}

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// output imprime v como JSON con --json o con el formato de texto dado.
func output(cmd *cobra.Command, v any, format string, args ...any) {
	if jsonOutput {
		printJSON(cmd.OutOrStdout(), v)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
