package ttylog

import (
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rushsh/rush/core/vos"
)

// Recorder is a VIO that copies everything written to stdout and stderr to
// a LogSink. Stdin is passed through untouched so child processes can still
// inherit the terminal.
type Recorder struct {
	*vos.VIOAdapter
	mutex  sync.Mutex
	output LogSink
	logger *zap.Logger
	now    func() time.Time
}

var _ vos.VIO = (*Recorder)(nil)

// NewRecorder creates a VIO that forwards output events to output. Sink
// errors are logged, they never fail the write.
func NewRecorder(toWrap vos.VIO, output LogSink, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	recorder := &Recorder{
		output: output,
		logger: logger,
		now:    time.Now,
	}

	recorder.VIOAdapter = &vos.VIOAdapter{
		IStdin:  toWrap.Stdin(),
		IStdout: &recorderWriteCloser{fd: FdStdout, r: recorder, wrapped: toWrap.Stdout()},
		IStderr: &recorderWriteCloser{fd: FdStderr, r: recorder, wrapped: toWrap.Stderr()},
	}

	return recorder
}

func (r *Recorder) record(fd Fd, data []byte, dest func([]byte) (int, error)) (int, error) {
	eventTime := r.now()
	amount, err := dest(data)
	if amount > 0 {
		r.mutex.Lock()
		sinkErr := r.output(&Entry{
			TimestampMicros: eventTime.UnixMicro(),
			Fd:              fd,
			Data:            append([]byte(nil), data[:amount]...),
		})
		r.mutex.Unlock()
		if sinkErr != nil {
			r.logger.Warn("couldn't record output", zap.Error(sinkErr))
		}
	}
	return amount, err
}

type recorderWriteCloser struct {
	r       *Recorder
	fd      Fd
	wrapped io.WriteCloser
}

var _ io.WriteCloser = (*recorderWriteCloser)(nil)

func (rc *recorderWriteCloser) Write(p []byte) (int, error) {
	return rc.r.record(rc.fd, p, rc.wrapped.Write)
}

func (rc *recorderWriteCloser) Close() error {
	return rc.wrapped.Close()
}
