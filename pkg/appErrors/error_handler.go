package appErrors

import (
	"errors"
	"fmt"
	"io"
)

// Códigos de erro da aplicação
const (
	// Erros de configuração
	ErrInvalidConfig = "CFG_001" // Configuração inválida
	ErrInvalidFlag   = "CFG_002" // Flag de linha de comando inválida

	// Erros de saída
	ErrOutputWrite = "OUT_001" // Falha ao gravar o relatório

	// Erros de agendamento
	ErrScheduler = "SCH_001" // Falha ao iniciar o agendador

	// Erros internos
	ErrInternal = "SRV_001" // Erro interno
)

// Códigos de saída do processo
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Mapeamento de códigos de erro para código de saída do processo
var exitCodeMap = map[string]int{
	ErrInvalidConfig: ExitUsage,
	ErrInvalidFlag:   ExitUsage,
	ErrOutputWrite:   ExitFailure,
	ErrScheduler:     ExitFailure,
	ErrInternal:      ExitFailure,
}

// Coder é implementado pelos erros que carregam um código da aplicação
type Coder interface {
	ErrorCode() string
}

// AppError representa um erro padronizado da aplicação
type AppError struct {
	Code    string // Código do erro
	Message string // Mensagem descritiva para o usuário
	Err     error  // Erro original
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Err.Error())
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ErrorCode() string {
	return e.Code
}

// New envolve um erro existente com código e mensagem
func New(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf retorna o código do primeiro erro da cadeia que tenha um
func CodeOf(err error) string {
	if err == nil {
		return ""
	}

	var coder Coder
	if errors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ErrInternal
}

// ExitCode converte um erro no código de saída do processo
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	code, exists := exitCodeMap[CodeOf(err)]
	if !exists {
		return ExitFailure
	}
	return code
}

// WriteError escreve o diagnóstico do erro, normalmente em stderr
func WriteError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "erro: %s\n", err.Error())
}
