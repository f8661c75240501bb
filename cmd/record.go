package cmd

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rushsh/rush/core/ttylog"
	"github.com/rushsh/rush/core/vos"
)

var (
	recordPath    string
	replayMaxWait time.Duration
)

// recordSession wraps io so its output is written to recordPath as an
// asciicast. With no recordPath io is returned unchanged.
func recordSession(stdio vos.VIO, pty vos.PTY, logger *zap.Logger) (vos.VIO, io.Closer, error) {
	if recordPath == "" {
		return stdio, io.NopCloser(nil), nil
	}

	fd, err := os.OpenFile(recordPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, err
	}

	sink := ttylog.NewAsciicastLogSink(fd, ttylog.Header{
		Width:  pty.Width,
		Height: pty.Height,
		Title:  "rush session",
		Env: map[string]string{
			"TERM":  pty.Term,
			"SHELL": "rush",
		},
	})
	logger.Info("recording session", zap.String("file", recordPath))
	return ttylog.NewRecorder(stdio, sink, logger), fd, nil
}

// replayCmd plays back a recorded session
var replayCmd = &cobra.Command{
	Use:   "replay FILE." + ttylog.AsciicastFileExt,
	Short: "Play a recorded session.",
	Long:  `Plays a session recorded with --record back to the current terminal.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fd, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer fd.Close()

		return ttylog.Replay(
			ttylog.NewAsciicastLogSource(fd),
			ttylog.NewRealTimePlayback(replayMaxWait, ttylog.NewClientOutput(cmd.OutOrStdout())),
		)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&recordPath, "record", "", "record the session's output to an asciicast file")

	replayCmd.Flags().DurationVar(&replayMaxWait, "max-wait", 2*time.Second, "longest pause between events, 0 plays without pauses")
	rootCmd.AddCommand(replayCmd)
}
