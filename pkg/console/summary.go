// Package console imprime o resumo da execução para o usuário
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
	"github.com/vfg2006/smart-sales-analyzer/pkg/utils"
)

// PrintSummary escreve três linhas: conclusão, receita total e contagem de insights e estratégias.
// As cores seguem color.NoColor, que já fica desligado quando a saída não é um terminal.
func PrintSummary(w io.Writer, report *domain.Report, currency string) error {
	if report == nil {
		return fmt.Errorf("relatório vazio")
	}

	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)

	if _, err := green.Fprintln(w, "✅ Análise concluída! Dados do dashboard prontos."); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "📊 Receita Total: %s\n", cyan.Sprint(utils.FormatCurrencyCents(currency, report.KPIs.TotalRevenue))); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "🎯 %s insights e %s estratégias gerados.\n",
		yellow.Sprint(len(report.Insights)),
		yellow.Sprint(len(report.Strategies)),
	)
	return err
}
