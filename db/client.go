package db

import "go.uber.org/zap"

type Closer interface {
	Close() error
}

// CloseClient closes c and logs the outcome under name. A nil c is a no-op.
func CloseClient(name string, c Closer) {
	log := zap.L().Named("db")
	if c == nil {
		log.Info("nothing to close", zap.String("client", name))
		return
	}
	if err := c.Close(); err != nil {
		log.Warn("failed to close", zap.String("client", name), zap.Error(err))
		return
	}
	log.Info("closed", zap.String("client", name))
}
