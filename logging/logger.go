package logging

import "go.uber.org/zap"

// New builds the process-wide sugared logger
func New() *zap.SugaredLogger {
	return zap.NewExample().Sugar()
}
