// Package publishing executa uma rodada completa: monta o relatório e grava o resultado
package publishing

import (
	"context"
	"fmt"

	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
	"github.com/vfg2006/smart-sales-analyzer/pkg/appErrors"
	"github.com/vfg2006/smart-sales-analyzer/pkg/log"
)

type Service struct {
	builder ReportBuilder
	writer  ReportWriter
}

func NewService(builder ReportBuilder, writer ReportWriter) *Service {
	return &Service{
		builder: builder,
		writer:  writer,
	}
}

// Publish monta o relatório e só então o grava. Qualquer falha interrompe a rodada
// e o writer nunca é chamado depois de um erro na montagem.
func (s *Service) Publish(ctx context.Context) (*domain.Report, error) {
	logger := log.ForContext(ctx)

	report, err := s.builder.Build(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao montar relatório")
		return nil, err
	}
	if report == nil {
		return nil, appErrors.New(ErrNilReport, appErrors.ErrInternal, "Relatório não foi montado")
	}

	if err := s.writer.Write(ctx, report); err != nil {
		logger.WithError(err).Error("Erro ao gravar relatório")
		return nil, appErrors.New(fmt.Errorf("%w: %w", ErrWriteReport, err), appErrors.ErrOutputWrite, "Falha ao gravar o relatório")
	}

	return report, nil
}
