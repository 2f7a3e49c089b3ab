package log

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger expõe só o que o pipeline usa do logrus
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
}

type contextKey string

// CorrelationIDKey guarda o ID da rodada no contexto; o mesmo nome vira campo do log
const CorrelationIDKey contextKey = "correlation_id"

// entryLogger embute *logrus.Entry, então os métodos de nível vêm direto do logrus
type entryLogger struct {
	*logrus.Entry
}

// L é o logger global, recriado a cada Configure
var L Logger = newLogger()

func newLogger() Logger {
	return entryLogger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

// Configure define nível, formato e saída do logger global.
// Os logs vão para stderr: stdout fica reservado para o resumo e o JSON.
// Nível inválido cai para info e o erro é devolvido para o chamador avisar.
func Configure(level, format string, out io.Writer) error {
	if out == nil {
		out = os.Stderr
	}
	logrus.SetOutput(out)
	logrus.SetReportCaller(false)

	if strings.EqualFold(format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
			DisableColors:   !IsDevelopment(),
		})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	L = newLogger()

	return err
}

// SetupTestLogger volta o logger global para stderr em nível debug
func SetupTestLogger() {
	_ = Configure("debug", "text", os.Stderr)
}

func (l entryLogger) WithField(key string, value any) Logger {
	return entryLogger{Entry: l.Entry.WithField(key, value)}
}

func (l entryLogger) WithFields(fields Fields) Logger {
	return entryLogger{Entry: l.Entry.WithFields(logrus.Fields(fields))}
}

func (l entryLogger) WithError(err error) Logger {
	return entryLogger{Entry: l.Entry.WithError(err)}
}

// WithContext anexa o ID de correlação, quando houver
func (l entryLogger) WithContext(ctx context.Context) Logger {
	if id := GetCorrelationID(ctx); id != "" {
		return l.WithField(string(CorrelationIDKey), id)
	}
	return l
}

// WithCorrelationID adiciona um ID de correlação ao contexto, um por execução do pipeline
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	correlationID, _ := ctx.Value(CorrelationIDKey).(string)
	return correlationID
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
