package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apickard/discbin/cmd/discbinctl/cmdutil"
	"github.com/apickard/discbin/internal/cli/output"
	"github.com/apickard/discbin/internal/cli/prompt"
)

var claimForce bool

var claimCmd = &cobra.Command{
	Use:   "claim <id>",
	Short: "Mark a disc as claimed",
	Long: `Mark a found disc as claimed by its owner.

The disc is stamped with today's date and drops out of the inventory.

Examples:
  # Claim disc 42 (prompts for confirmation)
  discbinctl claim 42

  # Skip the confirmation prompt
  discbinctl claim 42 --force`,
	Args: cobra.ExactArgs(1),
	RunE: runClaim,
}

func init() {
	claimCmd.Flags().BoolVarP(&claimForce, "force", "f", false, "Skip confirmation prompt")
}

func runClaim(cmd *cobra.Command, args []string) error {
	id, err := parseDiscID(args[0])
	if err != nil {
		return err
	}

	confirmed, err := prompt.ConfirmWithForce(fmt.Sprintf("Mark disc %d as claimed?", id), claimForce)
	if err != nil {
		if prompt.IsAborted(err) {
			fmt.Println("\nAborted.")
			return nil
		}
		return err
	}
	if !confirmed {
		fmt.Println("Aborted.")
		return nil
	}

	client := cmdutil.GetClient()
	result, err := client.MarkClaimed(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to mark disc claimed: %w", err)
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}
	if format != output.FormatTable {
		return cmdutil.PrintResource(os.Stdout, result, discDetail{result.Disc})
	}
	cmdutil.PrintSuccess(result.Message)
	return nil
}
