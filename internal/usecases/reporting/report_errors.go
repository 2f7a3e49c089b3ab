package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para a montagem do relatório
var (
	ErrEmptyDataset    = errors.New("dataset is empty")
	ErrGenerateDataset = errors.New("error generating dataset")
)

// Etapas do pipeline, usadas no contexto do erro
const (
	StageGenerate = "generate"
	StageAnalyze  = "analyze"
)

// Códigos de erro
const (
	CodeGenerateFailed = "RPT_001"
	CodeEmptyDataset   = "RPT_002"
	CodeCanceled       = "RPT_003"
)

// ReportError é um erro com contexto adicional sobre a etapa do pipeline que falhou
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código do erro
	Stage   string // Etapa do pipeline
	Details string // Detalhes adicionais
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s: %s", e.Code, e.Stage, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Stage, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code, stage, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Stage:   stage,
		Details: details,
	}
}

// ErrorCode expõe o código para o mapeamento de código de saída
func (e *ReportError) ErrorCode() string {
	return e.Code
}
