package cmd

import (
	"net/http"

	"github.com/ZacxDev/shellgen/handlers"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveOpts buildOptions

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the generated output with the emitted redirect rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")

		manifest, _, err := loadManifest(serveOpts)
		if err != nil {
			return err
		}

		router, err := handlers.SetupPreviewRouter(manifest.OutDir, logger)
		if err != nil {
			return err
		}

		logger.Info("starting preview server", zap.String("port", port), zap.String("dir", manifest.OutDir))
		return errors.WithStack(http.ListenAndServe(":"+port, router))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addManifestFlags(serveCmd, &serveOpts)
	serveCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")
}
