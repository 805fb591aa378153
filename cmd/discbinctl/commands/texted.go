package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apickard/discbin/cmd/discbinctl/cmdutil"
)

var textedCmd = &cobra.Command{
	Use:   "texted <id>",
	Short: "Mark a disc owner as texted",
	Long: `Record that the owner's phone number has been texted.

The disc moves from "Pending Text to Owner" to "Texted Owner" and is stamped
with today's date. Discs that are already claimed are left unchanged.

Examples:
  # Record a text for disc 42
  discbinctl texted 42`,
	Args: cobra.ExactArgs(1),
	RunE: runTexted,
}

func runTexted(cmd *cobra.Command, args []string) error {
	id, err := parseDiscID(args[0])
	if err != nil {
		return err
	}

	client := cmdutil.GetClient()
	disc, err := client.MarkTexted(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to mark disc texted: %w", err)
	}

	cmdutil.PrintSuccess(fmt.Sprintf("Disc %d status: %s", disc.ID, disc.Status))
	return nil
}
