package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/loader"
	"github.com/dmitrymomot/l10n/core/resource"
)

// Compile-time check that Loader implements loader.Loader interface
var _ loader.Loader = (*Loader)(nil)

// DefaultMaxObjectSize caps how much of a bundle object is read.
const DefaultMaxObjectSize int64 = 4 << 20

// S3Client defines the interface for S3 operations used by Loader.
type S3Client interface {
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
}

// Loader reads translation bundles from Amazon S3 and S3-compatible services.
// Object keys come from the registration's naming policy, under Prefix.
type Loader struct {
	client        S3Client
	bucket        string
	prefix        string
	fetchTimeout  time.Duration // Optional timeout to prevent hanging downloads
	maxObjectSize int64
}

// Config contains configuration for the S3 loader.
type Config struct {
	Bucket         string `env:"L10N_S3_BUCKET,required"`
	Region         string `env:"L10N_S3_REGION,required"`
	Prefix         string `env:"L10N_S3_PREFIX"`
	AccessKeyID    string `env:"L10N_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"L10N_S3_SECRET_KEY"`
	Endpoint       string `env:"L10N_S3_ENDPOINT"`                            // For S3-compatible services like MinIO, Wasabi
	ForcePathStyle bool   `env:"L10N_S3_FORCE_PATH_STYLE" envDefault:"false"` // Required for MinIO and some S3-compatible services
}

// Option defines a function that configures the Loader.
type Option func(*options)

type options struct {
	httpClient      *http.Client
	s3Client        S3Client
	s3ConfigOptions []func(*config.LoadOptions) error
	s3ClientOptions []func(*s3aws.Options)
	fetchTimeout    time.Duration
	maxObjectSize   int64
}

// WithS3Client sets a custom pre-configured S3 client.
// Primarily used for testing with mocks, but also allows advanced client customization.
func WithS3Client(client S3Client) Option {
	return func(o *options) {
		o.s3Client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) Option {
	return func(o *options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3aws.Options)) Option {
	return func(o *options) {
		o.s3ClientOptions = append(o.s3ClientOptions, option)
	}
}

// WithFetchTimeout bounds each GetObject call.
// If not set, relies on context deadline from caller.
func WithFetchTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.fetchTimeout = timeout
	}
}

// WithMaxObjectSize overrides DefaultMaxObjectSize.
func WithMaxObjectSize(n int64) Option {
	return func(o *options) {
		o.maxObjectSize = n
	}
}

// New creates a new S3 loader.
func New(ctx context.Context, cfg Config, opts ...Option) (*Loader, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	o := &options{maxObjectSize: DefaultMaxObjectSize}
	for _, opt := range opts {
		opt(o)
	}

	// Use provided client or create a new one
	client := o.s3Client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}

		// Add static credentials if provided (fallback to IAM roles/env vars otherwise)
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}

		if o.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
		}

		awsOptions = append(awsOptions, o.s3ConfigOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle

			for _, opt := range o.s3ClientOptions {
				opt(so)
			}
		})
	}

	return &Loader{
		client:        client,
		bucket:        cfg.Bucket,
		prefix:        strings.Trim(cfg.Prefix, "/"),
		fetchTimeout:  o.fetchTimeout,
		maxObjectSize: o.maxObjectSize,
	}, nil
}

// Name implements loader.Loader.
func (l *Loader) Name() string {
	return "s3:" + l.bucket
}

// TryLoad implements loader.Loader. A missing object is loader.ErrNotFound.
func (l *Loader) TryLoad(ctx context.Context, opts loader.Options, id resource.Identity, tag language.Tag) (*loader.Map, error) {
	if l.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.fetchTimeout)
		defer cancel()
	}

	key := l.objectKey(opts.Locate(id, tag))
	if strings.Contains(key, "..") {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, key)
	}

	out, err := l.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(err, "get object "+key)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(out.Body, l.maxObjectSize+1))
	if err != nil {
		return nil, classifyS3Error(err, "read object "+key)
	}
	if int64(len(data)) > l.maxObjectSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrObjectTooLarge, key, l.maxObjectSize)
	}

	return opts.DataFormat().Parse(data)
}

func (l *Loader) objectKey(name string) string {
	name = strings.TrimPrefix(name, "/")
	if l.prefix == "" {
		return name
	}
	return path.Join(l.prefix, name)
}
