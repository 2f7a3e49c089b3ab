package publishing

import (
	"context"

	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
)

// ReportBuilder monta o relatório completo de uma execução
type ReportBuilder interface {
	Build(ctx context.Context) (*domain.Report, error)
}

// ReportWriter entrega o relatório serializado ao destino (arquivo ou stdout)
type ReportWriter interface {
	Write(ctx context.Context, report *domain.Report) error
}
