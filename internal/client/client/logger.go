package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tribunal/internal/logging"
)

// restyLogger routes resty's printf-style output into the structured logger.
type restyLogger struct {
	log logging.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error(context.Background(), fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn(context.Background(), fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug(context.Background(), fmt.Sprintf(format, v...))
}
