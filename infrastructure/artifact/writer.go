// Package artifact grava o relatório do dashboard em disco
package artifact

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
	"github.com/vfg2006/smart-sales-analyzer/pkg/log"
	"github.com/vfg2006/smart-sales-analyzer/pkg/utils"
)

// Mantém acentos e "&" literais no JSON, como esperado pelo dashboard
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

const filePermissions os.FileMode = 0o644

// Encode serializa o relatório com indentação de dois espaços
func Encode(report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("relatório vazio")
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar relatório: %w", err)
	}
	return append(data, '\n'), nil
}

// FileWriter grava o relatório em um arquivo, substituindo o anterior de forma atômica
type FileWriter struct {
	path string
}

func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// Write grava em um arquivo temporário no mesmo diretório e renomeia sobre o destino.
// Em caso de falha o arquivo anterior permanece intacto e nenhum JSON parcial fica no disco.
func (w *FileWriter) Write(ctx context.Context, report *domain.Report) error {
	data, err := Encode(report)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de saída %s: %w", dir, err)
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar nome do arquivo temporário: %w", err)
	}
	tmpPath := fmt.Sprintf("%s.%s.tmp", w.path, suffix)

	if err := writeFileSync(tmpPath, data); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, w.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("erro ao substituir arquivo de saída %s: %w", w.path, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"path":  w.path,
		"bytes": len(data),
	}).Info("Relatório gravado com sucesso")

	return nil
}

func writeFileSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermissions)
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporário: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("erro ao escrever arquivo temporário: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("erro ao sincronizar arquivo temporário: %w", err)
	}
	return f.Close()
}

// StreamWriter escreve o relatório em um io.Writer, usado no modo --stdout
type StreamWriter struct {
	out io.Writer
}

func NewStreamWriter(out io.Writer) *StreamWriter {
	return &StreamWriter{out: out}
}

func (w *StreamWriter) Write(ctx context.Context, report *domain.Report) error {
	data, err := Encode(report)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := w.out.Write(data); err != nil {
		return fmt.Errorf("erro ao escrever relatório: %w", err)
	}
	return nil
}
