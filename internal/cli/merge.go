package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/appservice-config/internal/document"
)

func newMergeCommand(a *app) *cobra.Command {
	var to, from, output string

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Fill the blanks of one configuration document from another",
		Long: `Merge copies every value of --from into fields --to leaves unset.
Values already set in --to are kept. Runtimes of different kinds are not merged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := document.Load(to)
			if err != nil {
				return err
			}
			source, err := document.Load(from)
			if err != nil {
				return err
			}

			services, err := a.services(nil)
			if err != nil {
				return err
			}
			services.ConfigService.Merge(target, source)

			return a.write(cmd, target, output)
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Document whose blanks are filled")
	cmd.Flags().StringVar(&from, "from", "", "Document providing the values")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result to this file instead of stdout")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
