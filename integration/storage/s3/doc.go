// Package s3 loads translation bundles from Amazon S3 and S3-compatible
// services such as MinIO, DigitalOcean Spaces and Wasabi.
//
// Object keys are produced by the registration's naming policy and placed
// under an optional prefix, so a bundle for identity "checkout" at fr-FR with
// the default naming lives at "<prefix>/<BasePath>/checkout.fr-FR.json".
//
// Basic usage:
//
//	ldr, err := s3.New(ctx, s3.Config{
//		Bucket: "my-app-translations",
//		Region: "us-east-1",
//		Prefix: "i18n",
//	})
//	if err != nil {
//		return err
//	}
//
//	chain := loader.MustNewChain(
//		loader.WithLoader(loader.Any(), ldr, loader.Options{Format: loader.YAML}),
//	)
//
// # S3-Compatible Services
//
// MinIO configuration:
//
//	cfg := s3.Config{
//		Bucket:         "translations",
//		Region:         "us-east-1", // Required
//		AccessKeyID:    "minioadmin",
//		SecretKey:      "minioadmin",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true, // Required for MinIO
//	}
//
// Config carries env tags, so it can be filled with config.Load.
//
// # Error Handling
//
// A missing object (NoSuchKey) is reported as loader.ErrNotFound and the chain
// moves to the next candidate. Access, bucket and availability problems are
// returned as the package's sentinel errors; the chain logs them and the
// Localizer retries the bundle on a later request.
package s3
