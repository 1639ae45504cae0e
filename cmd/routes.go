package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/ZacxDev/shellgen/redirects"
	"github.com/spf13/cobra"
)

var routesOpts buildOptions

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table the redirect files are generated from",
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest, _, err := loadManifest(routesOpts)
		if err != nil {
			return err
		}

		rs := redirects.FromRoutes(manifest.Routes, manifest.Fallback)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, rule := range rs.Rules {
			fmt.Fprintf(w, "%s\t%s\n", rule.Source, rule.Destination)
		}
		fmt.Fprintf(w, "*\t%s\n", rs.Fallback)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
	addManifestFlags(routesCmd, &routesOpts)
}
