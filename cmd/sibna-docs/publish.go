package main

import (
	"errors"
	"fmt"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/publish"
	"github.com/F2fX4553/sibnav5-pro/internal/platform/requestctx"
)

func newPublishCmd(a *app) *cobra.Command {
	var (
		dir    string
		bucket string
		prefix string
		build  bool
	)
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload an exported site to Cloud Storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			dir = firstNonEmpty(dir, a.cfg.Export.Dir)
			bucket = strings.TrimSpace(firstNonEmpty(bucket, a.cfg.Publish.Bucket))
			prefix = firstNonEmpty(prefix, a.cfg.Publish.Prefix)
			if bucket == "" {
				return errors.New("publish: a bucket is required (--bucket or DOCS_PUBLISH_BUCKET)")
			}

			if build {
				if _, err := a.export(ctx, dir, true); err != nil {
					return err
				}
			}

			client, err := gcs.NewClient(ctx)
			if err != nil {
				return fmt.Errorf("publish: storage client: %w", err)
			}
			defer func() {
				if err := client.Close(); err != nil {
					a.logger.Warn("storage close error", zap.Error(err))
				}
			}()

			target, err := publish.NewGCSBucket(client, bucket)
			if err != nil {
				return err
			}
			publisher, err := publish.NewPublisher(target, prefix)
			if err != nil {
				return err
			}
			result, err := publisher.Publish(requestctx.WithLogger(ctx, a.logger), dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d objects (%d bytes) to gs://%s/%s\n",
				result.Objects, result.Bytes, bucket, strings.Trim(prefix, "/"))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "export directory to upload (defaults to DOCS_EXPORT_DIR)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "destination bucket (defaults to DOCS_PUBLISH_BUCKET)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "object name prefix (defaults to DOCS_PUBLISH_PREFIX)")
	cmd.Flags().BoolVar(&build, "build", false, "run a clean export before uploading")
	return cmd
}
