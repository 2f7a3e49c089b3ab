// Package middleware envolve as rodadas do pipeline com log e recuperação de pânico
package middleware

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/smart-sales-analyzer/pkg/log"
)

// Job é uma rodada do pipeline, disparada pela CLI ou pelo agendador
type Job func(ctx context.Context) error

// Middleware decora um Job
type Middleware func(next Job) Job

// Chain aplica os middlewares na ordem recebida, o primeiro fica mais externo
func Chain(job Job, middlewares ...Middleware) Job {
	for i := len(middlewares) - 1; i >= 0; i-- {
		job = middlewares[i](job)
	}
	return job
}

// Rodadas mais lentas que isso geram um aviso
const slowRunThreshold = 5 * time.Second

// LoggingMiddleware registra início, fim e duração de cada rodada com um ID de correlação próprio
func LoggingMiddleware(name string) Middleware {
	return func(next Job) Job {
		return func(ctx context.Context) error {
			ctx, correlationID := log.WithCorrelationID(ctx)
			startTime := time.Now()
			isDev := log.IsDevelopment()

			if isDev {
				log.L.WithField("job", name).Info("→ Iniciando rodada")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"job":            name,
				}).Info("Rodada iniciada")
			}

			err := next(ctx)
			elapsed := time.Since(startTime)

			if isDev {
				statusSymbol := "✓"
				if err != nil {
					statusSymbol = "✗"
				}
				logger := log.L.WithField("job", name)
				msg := fmt.Sprintf("%s Completada em %s", statusSymbol, formatDuration(elapsed))
				if err != nil {
					logger.WithError(err).Error(msg)
				} else {
					logger.Info(msg)
				}
			} else {
				logger := log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"job":            name,
					"duration_ms":    elapsed.Milliseconds(),
				})
				if err != nil {
					logger.WithError(err).Error("Rodada finalizada com erro")
				} else {
					logger.Info("Rodada finalizada com sucesso")
				}
			}

			if elapsed > slowRunThreshold {
				log.L.Warnf("⚠ Rodada lenta: %s (%s)", name, formatDuration(elapsed))
			}

			return err
		}
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	} else {
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// RecoverMiddleware transforma um pânico dentro da rodada em erro
func RecoverMiddleware() Middleware {
	return func(next Job) Job {
		return func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					if log.IsDevelopment() {
						log.L.WithField("error", r).Error("❌ PANIC na rodada")
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						log.ForContext(ctx).WithFields(log.Fields{
							"panic_error": r,
							"stack_trace": stackTrace,
						}).Error("Erro não tratado na rodada")
					}

					err = fmt.Errorf("pânico na rodada: %v", r)
				}
			}()

			return next(ctx)
		}
	}
}
