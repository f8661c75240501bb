package config

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a JSON lines logger writing to the application log at
// the configured level. Every entry carries the session id. The returned
// closer flushes and closes the log.
func (c *Configuration) NewLogger(session string) (*zap.Logger, io.Closer, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	fd, err := c.OpenAppLog()
	if err != nil {
		return nil, nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger := zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(fd),
		level,
	)).With(zap.String("session", session))

	return logger, &logCloser{logger: logger, fd: fd}, nil
}

type logCloser struct {
	logger *zap.Logger
	fd     io.Closer
}

func (l *logCloser) Close() error {
	_ = l.logger.Sync()
	return l.fd.Close()
}
