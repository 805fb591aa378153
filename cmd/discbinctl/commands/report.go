package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apickard/discbin/cmd/discbinctl/cmdutil"
	"github.com/apickard/discbin/internal/cli/output"
	"github.com/apickard/discbin/internal/cli/prompt"
	"github.com/apickard/discbin/pkg/apiclient"
	"github.com/apickard/discbin/pkg/lostfound/models"
)

var (
	reportCourse   string
	reportName     string
	reportDisc     string
	reportPhone    string
	reportBin      string
	reportFound    string
	reportComments string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report a found disc",
	Long: `Report a disc found on the course.

The disc is logged with status "Pending Text to Owner" so staff know the
owner still has to be contacted. Required fields left out of the flags
are collected interactively.

Examples:
  # Report a found disc
  discbinctl report --course "Maple Hill" --name "Jane" --disc "Blue Destroyer" --phone 5551234567

  # Include the bin it was dropped in and the date it was found
  discbinctl report --course "Maple Hill" --name "Jane" --disc "Blue Destroyer" \
    --phone 5551234567 --bin 3 --found 2026-08-28

  # Fill everything in interactively
  discbinctl report`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportCourse, "course", "", "Course where the disc was found")
	reportCmd.Flags().StringVar(&reportName, "name", "", "Name written on the disc")
	reportCmd.Flags().StringVar(&reportDisc, "disc", "", "Disc description, e.g. color and mold")
	reportCmd.Flags().StringVar(&reportPhone, "phone", "", "Phone number written on the disc")
	reportCmd.Flags().StringVar(&reportBin, "bin", "", "Bin the disc was dropped in")
	reportCmd.Flags().StringVar(&reportFound, "found", "", "Date found, YYYY-MM-DD (default: today)")
	reportCmd.Flags().StringVar(&reportComments, "comments", "", "Free-form comments")
}

// validatePhone checks an interactively entered phone number.
func validatePhone(input string) error {
	if input == "" {
		return fmt.Errorf("phone number is required")
	}
	if len(input) > models.MaxPhoneNumberLen {
		return fmt.Errorf("phone number exceeds %d characters", models.MaxPhoneNumberLen)
	}
	return nil
}

// fillMissing prompts for required fields left blank by the flags.
// Optional fields are offered only when the command went interactive.
// Returns true when at least one prompt ran.
func fillMissing(req *apiclient.ReportFoundDiscRequest) (bool, error) {
	prompted := false

	if req.Course == "" {
		v, err := prompt.InputRequired("Course")
		if err != nil {
			return prompted, err
		}
		req.Course = v
		prompted = true
	}
	if req.Name == "" {
		v, err := prompt.InputRequired("Name on disc")
		if err != nil {
			return prompted, err
		}
		req.Name = v
		prompted = true
	}
	if req.Disc == "" {
		v, err := prompt.InputRequired("Disc description")
		if err != nil {
			return prompted, err
		}
		req.Disc = v
		prompted = true
	}
	if req.PhoneNumber == "" {
		v, err := prompt.InputWithValidation("Phone number", validatePhone)
		if err != nil {
			return prompted, err
		}
		req.PhoneNumber = v
		prompted = true
	}

	if !prompted {
		return false, nil
	}

	if req.Bin == "" {
		v, err := prompt.InputOptional("Bin")
		if err != nil {
			return prompted, err
		}
		req.Bin = v
	}
	if req.Comments == nil {
		v, err := prompt.InputOptional("Comments")
		if err != nil {
			return prompted, err
		}
		if v != "" {
			req.Comments = &v
		}
	}
	if req.DateFound == nil {
		v, err := prompt.Input("Date found (YYYY-MM-DD)", models.Today().String())
		if err != nil {
			return prompted, err
		}
		d, err := models.ParseDate(v)
		if err != nil {
			return prompted, fmt.Errorf("invalid date: %w", err)
		}
		req.DateFound = &d
	}

	return prompted, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	req := &apiclient.ReportFoundDiscRequest{
		Course:      reportCourse,
		Name:        reportName,
		Disc:        reportDisc,
		PhoneNumber: reportPhone,
		Bin:         reportBin,
	}

	if reportFound != "" {
		d, err := models.ParseDate(reportFound)
		if err != nil {
			return fmt.Errorf("invalid --found date: %w", err)
		}
		req.DateFound = &d
	}
	if reportComments != "" {
		req.Comments = &reportComments
	}

	if _, err := fillMissing(req); err != nil {
		if prompt.IsAborted(err) {
			fmt.Println("\nAborted.")
			return nil
		}
		return err
	}

	client := cmdutil.GetClient()
	disc, err := client.ReportFoundDisc(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to report disc: %w", err)
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}
	if format != output.FormatTable {
		return cmdutil.PrintResource(os.Stdout, disc, discDetail{disc})
	}
	cmdutil.PrintSuccess(fmt.Sprintf("Disc %d logged (%s)", disc.ID, disc.Status))
	return nil
}
