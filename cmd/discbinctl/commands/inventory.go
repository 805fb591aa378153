package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apickard/discbin/cmd/discbinctl/cmdutil"
	"github.com/apickard/discbin/pkg/lostfound/models"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "List unclaimed discs",
	Long: `List all found discs that have not been claimed yet.

Examples:
  # List inventory as table
  discbinctl inventory

  # List as JSON
  discbinctl inventory -o json

  # List as YAML
  discbinctl inventory -o yaml`,
	RunE: runInventory,
}

// DiscList is a list of found discs for table rendering.
type DiscList []models.FoundDisc

// Headers implements TableRenderer.
func (dl DiscList) Headers() []string {
	return []string{"ID", "COURSE", "NAME", "DISC", "PHONE", "BIN", "FOUND", "STATUS"}
}

// Rows implements TableRenderer.
func (dl DiscList) Rows() [][]string {
	rows := make([][]string, 0, len(dl))
	for _, d := range dl {
		rows = append(rows, []string{
			fmt.Sprintf("%d", d.ID),
			d.Course,
			d.Name,
			d.Disc,
			d.PhoneNumber,
			cmdutil.EmptyOr(d.Bin, "-"),
			d.DateFound.String(),
			string(d.Status),
		})
	}
	return rows
}

func runInventory(cmd *cobra.Command, args []string) error {
	client := cmdutil.GetClient()

	discs, err := client.Inventory(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list inventory: %w", err)
	}

	return cmdutil.PrintOutput(os.Stdout, discs, len(discs) == 0, "No unclaimed discs.", DiscList(discs))
}
