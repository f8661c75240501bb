package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var logsSession string

// logsCmd prints the application log
var logsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"log"},
	Short:   "Print the application log.",
	Args:    cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fd, err := cfg.ReadAppLog()
		if err != nil {
			return err
		}
		defer fd.Close()

		scanner := bufio.NewScanner(fd)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Bytes()
			if logsSession != "" && !inSession(line, logsSession) {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", line)
		}
		return scanner.Err()
	},
}

// inSession reports whether a JSON log line carries the given session field.
func inSession(line []byte, session string) bool {
	var entry struct {
		Session string `json:"session"`
	}
	if err := json.Unmarshal(line, &entry); err != nil {
		return false
	}
	return entry.Session == session
}

func init() {
	logsCmd.Flags().StringVar(&logsSession, "session", "", "only print entries from this session id")
	rootCmd.AddCommand(logsCmd)
}
