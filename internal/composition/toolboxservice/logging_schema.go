package toolboxservice

import (
	"strconv"
	"strings"
	"time"

	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/internal/platform/metrics"
)

const toolboxComponentName = "toolboxservice"

func invocationCorrelationID(tool string, seq uint64) string {
	trimmed := strings.TrimSpace(tool)
	if trimmed == "" {
		trimmed = "tool"
	}
	return trimmed + "#" + strconv.FormatUint(seq, 10)
}

func (s *Service) logInfo(operation, correlationID, message string, attrs ...any) {
	base := []any{
		"component", toolboxComponentName,
		"operation", strings.TrimSpace(operation),
		"correlation_id", strings.TrimSpace(correlationID),
	}
	s.logger.Info(message, append(base, attrs...)...)
}

func (s *Service) logWarn(operation, correlationID, message string, attrs ...any) {
	base := []any{
		"component", toolboxComponentName,
		"operation", strings.TrimSpace(operation),
		"correlation_id", strings.TrimSpace(correlationID),
	}
	s.logger.Warn(message, append(base, attrs...)...)
}

func (s *Service) recordError(category string, err error, operation, correlationID string, attrs ...any) {
	if err == nil {
		return
	}
	base := []any{
		"component", toolboxComponentName,
		"operation", strings.TrimSpace(operation),
		"category", strings.TrimSpace(category),
		"correlation_id", strings.TrimSpace(correlationID),
		"error", err.Error(),
	}
	s.logger.Error("tool error", append(base, attrs...)...)
}

// track finishes one invocation: it tags uncategorized failures as tool
// errors, records the metric sample and logs the outcome. Use as
// `defer s.track(tool, s.now(), &err)` with a named error result.
func (s *Service) track(tool string, started time.Time, errp *error) {
	elapsed := s.now().Sub(started)
	correlationID := invocationCorrelationID(tool, s.invocations.Add(1))
	var err error
	if errp != nil {
		err = *errp
	}
	if err == nil {
		s.metrics.Observe(tool, metrics.OutcomeOK, elapsed)
		s.logger.Debug("tool invoked",
			"component", toolboxComponentName,
			"operation", tool,
			"correlation_id", correlationID,
			"latency_ms", elapsed.Milliseconds(),
		)
		return
	}

	category := contracts.ErrorCategory(err)
	*errp = contracts.WrapCategorizedError(category, err)
	switch category {
	case contracts.ErrorCategoryInput:
		s.metrics.Observe(tool, metrics.OutcomeInputError, elapsed)
		s.logInfo(tool, correlationID, "tool rejected input", "reason", err.Error())
	case contracts.ErrorCategoryCapability:
		s.metrics.Observe(tool, metrics.OutcomeUnavailable, elapsed)
		s.logWarn(tool, correlationID, "tool unavailable", "reason", err.Error())
	default:
		s.metrics.Observe(tool, metrics.OutcomeError, elapsed)
		s.recordError(category, err, tool, correlationID, "latency_ms", elapsed.Milliseconds())
	}
}
