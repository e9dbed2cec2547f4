package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "forge",
		Short:   "Forge - scaffold Java and Kotlin REST projects",
		Version: "1.0.0",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		CreateCommand(),
		LanguagesCommand(),
	)

	return root
}
