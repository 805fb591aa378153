package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/apickard/discbin/cmd/discbinctl/cmdutil"
	"github.com/apickard/discbin/pkg/lostfound/models"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a found disc",
	Long: `Show the full record of a found disc.

Examples:
  # Show disc 42
  discbinctl show 42

  # Show as JSON
  discbinctl show 42 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// discDetail renders a single disc as a key/value table.
type discDetail struct {
	disc *models.FoundDisc
}

// Headers implements TableRenderer.
func (d discDetail) Headers() []string {
	return []string{"FIELD", "VALUE"}
}

// Rows implements TableRenderer.
func (d discDetail) Rows() [][]string {
	comments := "-"
	if d.disc.Comments != nil && *d.disc.Comments != "" {
		comments = *d.disc.Comments
	}
	return [][]string{
		{"ID", fmt.Sprintf("%d", d.disc.ID)},
		{"Course", d.disc.Course},
		{"Name", d.disc.Name},
		{"Disc", d.disc.Disc},
		{"Phone", d.disc.PhoneNumber},
		{"Bin", cmdutil.EmptyOr(d.disc.Bin, "-")},
		{"Found", d.disc.DateFound.String()},
		{"Texted", cmdutil.FormatDate(d.disc.DateTexted)},
		{"Claimed", cmdutil.FormatDate(d.disc.DateClaimed)},
		{"Status", string(d.disc.Status)},
		{"Comments", comments},
	}
}

func parseDiscID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid disc id %q: must be a positive integer", arg)
	}
	return uint(id), nil
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseDiscID(args[0])
	if err != nil {
		return err
	}

	client := cmdutil.GetClient()
	disc, err := client.GetDisc(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to fetch disc: %w", err)
	}

	return cmdutil.PrintResource(os.Stdout, disc, discDetail{disc})
}
