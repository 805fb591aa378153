package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/apickard/discbin/cmd/discbinctl/cmdutil"
	"github.com/apickard/discbin/internal/cli/output"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status",
	Long: `Check the discbin server health endpoint.

Examples:
  # Check status of the configured server
  discbinctl status

  # Output as JSON
  discbinctl status -o json`,
	RunE: runStatus,
}

// ServerStatus represents the server status for display.
type ServerStatus struct {
	Server  string `json:"server" yaml:"server"`
	Status  string `json:"status" yaml:"status"`
	Healthy bool   `json:"healthy" yaml:"healthy"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	serverURL := cmdutil.Flags.ServerURL
	if serverURL == "" {
		serverURL = cmdutil.DefaultServerURL
	}

	status := ServerStatus{
		Server:  serverURL,
		Status:  "healthy",
		Healthy: true,
	}

	client := cmdutil.GetClient()
	if err := client.Health(cmd.Context()); err != nil {
		status.Status = "unreachable"
		status.Healthy = false
		status.Error = err.Error()
	}

	statusTable := output.NewTableData("SERVER", "STATUS")
	statusTable.AddRow(status.Server, status.Status)

	return cmdutil.PrintResource(os.Stdout, status, statusTable)
}
