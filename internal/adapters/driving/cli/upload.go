package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

var (
	uploadDepartment string
	uploadJSON       bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload FILE...",
	Short: "Upload documents for classification and routing",
	Long: `Uploads each file to the intake service, one at a time, and prints the
documents routed to each department.

Use --department to print a single department. Exits with an error if any
upload failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadDepartment, "department", "d", "",
		"only print this department (finance, admin, manual_review)")
	uploadCmd.Flags().BoolVar(&uploadJSON, "json", false, "output cards as JSON")
	rootCmd.AddCommand(uploadCmd)
}

// uploadReport is the JSON output of the upload command.
type uploadReport struct {
	Documents []cardJSON `json:"documents"`
	Unrouted  int        `json:"unrouted"`
	Failed    []string   `json:"failed"`
}

func runUpload(cmd *cobra.Command, args []string) error {
	svc, err := loadServices()
	if err != nil {
		return err
	}

	departments := svc.Router.Departments()
	if uploadDepartment != "" {
		dep := domain.Department(uploadDepartment)
		if !dep.IsValid() {
			return fmt.Errorf("%w: %q", domain.ErrUnknownDepartment, uploadDepartment)
		}
		departments = []domain.Department{dep}
	}

	var failed []string
	for _, arg := range args {
		file, err := svc.ResolveFile(arg)
		if err != nil {
			failed = append(failed, arg)
			if !uploadJSON {
				cmd.Println(styled(cmd, errorStyle, fmt.Sprintf("%s: cannot read file", arg)))
			}
			continue
		}

		svc.Upload.SelectFile(file)
		doc, err := svc.Upload.Submit(cmd.Context())
		if err != nil {
			failed = append(failed, arg)
			if !uploadJSON {
				cmd.Println(styled(cmd, errorStyle, fmt.Sprintf("%s: %s", file.Name, svc.Upload.LastError())))
			}
			continue
		}
		if !uploadJSON {
			printRouted(cmd, doc)
		}
	}

	unrouted := len(svc.Router.Unrouted())

	if uploadJSON {
		report := uploadReport{Documents: []cardJSON{}, Unrouted: unrouted, Failed: failed}
		if report.Failed == nil {
			report.Failed = []string{}
		}
		for _, dep := range departments {
			report.Documents = append(report.Documents,
				toCardJSON(svc.Presenter.PresentAll(svc.Router.DocumentsFor(dep)))...)
		}
		if err := printJSON(cmd, report); err != nil {
			return err
		}
	} else {
		cmd.Println()
		for _, dep := range departments {
			printDepartment(cmd, dep, svc.Presenter.PresentAll(svc.Router.DocumentsFor(dep)))
		}
		if unrouted > 0 {
			cmd.Printf("%d document(s) routed to an unknown department\n", unrouted)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", domain.ErrUploadFailed, len(failed), len(args))
	}
	return nil
}

// printRouted prints the outcome of one successful upload.
func printRouted(cmd *cobra.Command, doc *domain.RoutedDocument) {
	if doc.Routed() {
		cmd.Printf("%s: %s → %s\n", doc.FileName, doc.PredictedLabel, doc.RouteTo.Label())
		return
	}
	cmd.Printf("%s: %s → unknown department %q\n", doc.FileName, doc.PredictedLabel, doc.RawRouteTo)
}
