package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liutong011025-cloud/CWriteV5.5/internal/deploy"
)

var deployBucket string

// newUploader builds the S3 uploader used by deploy.
var newUploader = func(ctx context.Context) (deploy.Uploader, error) {
	return deploy.NewS3Uploader(ctx)
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Build the site and upload it to S3",
	Long: `Build the site into the output directory, then upload the files that build
wrote to the bucket given by --bucket or LABSITE_S3_BUCKET using the default AWS credential chain.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if deployBucket != "" {
			cfg.Bucket = deployBucket
		}
		if cfg.Bucket == "" {
			return fmt.Errorf("%w: use --bucket <bucket-name> or LABSITE_S3_BUCKET", deploy.ErrNoBucket)
		}

		store, res, err := buildSite(cmd.Context(), cfg.OutputDir)
		if err != nil {
			return err
		}
		uploader, err := newUploader(cmd.Context())
		if err != nil {
			return err
		}
		n, err := deploy.Site(cmd.Context(), uploader, cfg.Bucket, store.Fs(), res.Files)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d files to s3://%s\n", n, cfg.Bucket)
		return nil
	},
}

func init() {
	deployCmd.Flags().StringVar(&deployBucket, "bucket", "", "S3 bucket name to deploy to")
	rootCmd.AddCommand(deployCmd)
}
