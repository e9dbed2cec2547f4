package cli

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/forgekit/forge/internal/generators"
)

func LanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported source languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Extension", "Source Dir", "Test Source Dir"})
			table.SetBorder(false)
			table.SetCenterSeparator("")

			for _, st := range generators.SourceTypes() {
				table.Append([]string{
					st.String(),
					st.Extension(),
					st.SrcDir(),
					st.TestSrcDir(),
				})
			}

			table.Render()
			return nil
		},
	}
}
