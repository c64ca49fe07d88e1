// Package reportstore grava os relatórios gerados em arquivos de texto
package reportstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

type FileWriter struct {
	dir string
}

func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

// Write substitui o arquivo do relatório. O diretório é criado se não existir.
func (w *FileWriter) Write(ctx context.Context, report domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if report.FileName == "" || filepath.Base(report.FileName) != report.FileName {
		return fmt.Errorf("nome de arquivo inválido: %q", report.FileName)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório %s: %w", w.dir, err)
	}

	path := w.Path(report.FileName)
	if err := os.WriteFile(path, []byte(report.Content()), 0o644); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"report": report.Type,
		"path":   path,
	}).Debug("reportstore: relatório gravado")

	return nil
}

// Path retorna o caminho completo de um arquivo de relatório
func (w *FileWriter) Path(fileName string) string {
	return filepath.Join(w.dir, fileName)
}
