package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Marketplace-api/internal/application/inventory"
)

var ingestUserID int64

func newIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest <archivo.csv|archivo.xlsx>",
		Short: "Reemplaza el catálogo de un usuario con el contenido del archivo",
		Long: `Ejecuta la misma carga masiva que POST /api/products/upload: las filas inválidas
se informan y el resto reemplaza el catálogo completo del usuario.

Ejemplo:
  marketctl ingest --user-id 7 inventario.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: ingestFile,
	}
	cmd.Flags().Int64Var(&ingestUserID, "user-id", 0, "Dueño del catálogo (requerido)")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}

func ingestFile(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	defer e.backend.Close()

	// la ingesta borra su archivo de trabajo: se procesa una copia
	tempPath, err := copyToTemp(args[0], e.cfg.Upload.TempDir)
	if err != nil {
		return err
	}
	limiter := inventory.NewUploadLimiter(1, e.cfg.Upload.MaxWait)
	uc := inventory.NewIngestUseCase(e.backend.Users, e.backend.TxRunner, limiter, e.log)

	res, err := uc.Ingest(cmd.Context(), ingestUserID, tempPath, filepath.Base(args[0]))
	if err != nil {
		return err
	}
	output(cmd, res, "total %d, cargadas %d, con errores %d",
		res.TotalEntries, res.SuccessfulEntries, res.FailedEntries)
	if !jsonOutput {
		for _, re := range res.Errors {
			fmt.Fprintf(cmd.OutOrStdout(), "  fila sin %v\n", re.MissingFields)
		}
	}
	return nil
}

func copyToTemp(src, dir string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("abrir archivo: %w", err)
	}
	defer in.Close()

	if dir == "" {
		dir = os.TempDir()
	}
	dst := filepath.Join(dir, uuid.NewString()+filepath.Ext(src))
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("crear copia temporal: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("copiar archivo: %w", err)
	}
	return dst, out.Close()
}
