package cmd

import (
	"path/filepath"

	"github.com/ZacxDev/shellgen/config"
	"github.com/ZacxDev/shellgen/emitter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type buildOptions struct {
	manifest string
	entry    string
	outDir   string
	envFile  string
	prefix   string
}

var buildOpts buildOptions

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate route shells and redirect files into the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest, contentDir, err := loadManifest(buildOpts)
		if err != nil {
			return err
		}

		prefix, err := resolvePrefix(cmd, buildOpts)
		if err != nil {
			return err
		}

		result, err := emitter.New(manifest, prefix, logger, emitter.WithContentDir(contentDir)).Run()
		if err != nil {
			return err
		}

		logger.Info("ready for deployment", zap.Int("files", len(result.Files)), zap.String("out", manifest.OutDir))
		return nil
	},
}

// loadManifest applies defaults, then the manifest file, then flags.
func loadManifest(opts buildOptions) (*config.SiteManifest, string, error) {
	manifest := config.Default()
	contentDir := ""
	if opts.manifest != "" {
		var err error
		if manifest, err = config.Load(opts.manifest); err != nil {
			return nil, "", err
		}
		contentDir = filepath.Dir(opts.manifest)
	}

	if opts.entry != "" {
		manifest.Entry = opts.entry
	}
	if opts.outDir != "" {
		manifest.OutDir = opts.outDir
	}

	return manifest, contentDir, nil
}

// resolvePrefix prefers --prefix over the environment (and .env file).
func resolvePrefix(cmd *cobra.Command, opts buildOptions) (config.AssetPrefix, error) {
	if cmd.Flags().Changed("prefix") {
		return config.ParseAssetPrefix(opts.prefix)
	}

	if err := config.LoadEnv(opts.envFile); err != nil {
		return "", err
	}

	prefix, err := config.AssetPrefixFromEnv()
	return prefix, errors.WithStack(err)
}

func addManifestFlags(cmd *cobra.Command, opts *buildOptions) {
	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", "", "Route manifest (YAML); built-in MyWai routes when empty")
	cmd.Flags().StringVar(&opts.entry, "entry", "", "Built entry document (default dist/index.html)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Output directory (default dist)")
}

func init() {
	rootCmd.AddCommand(buildCmd)
	addManifestFlags(buildCmd, &buildOpts)
	buildCmd.Flags().StringVar(&buildOpts.envFile, "env-file", ".env", "Optional .env file read for "+config.AssetPrefixEnv)
	buildCmd.Flags().StringVar(&buildOpts.prefix, "prefix", "", "Asset path prefix, overrides "+config.AssetPrefixEnv)
}
