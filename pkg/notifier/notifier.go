package notifier

import (
	"github.com/petrini31/bike-garage-manager/pkg/logger"
)

// Sink recebe notificações de resultado de mutações. É o colaborador
// explícito que substitui o toast global da interface: controllers anunciam
// sucesso ou falha e a implementação decide o destino (log, fila, websocket).
type Sink interface {
	Success(title, description string)
	Failure(title, description string)
}

// LogSink é uma implementação de Sink que encaminha as notificações ao logger
type LogSink struct {
	logger logger.Logger
}

// NewLogSink cria um Sink apoiado no logger da aplicação
func NewLogSink(l logger.Logger) *LogSink {
	return &LogSink{logger: l}
}

// Success registra uma notificação de sucesso
func (s *LogSink) Success(title, description string) {
	s.logger.Info("notificação", "title", title, "description", description)
}

// Failure registra uma notificação de falha
func (s *LogSink) Failure(title, description string) {
	s.logger.Warn("notificação de erro", "title", title, "description", description)
}
