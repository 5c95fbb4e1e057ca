package blob

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/halcyonlabs/studio-api/internal/config"
)

// Store holds the S3 client used for project image uploads. Images are
// uploaded directly by the dashboard through presigned PUT URLs; the API never
// proxies file bytes.
type Store struct {
	Client        *s3.Client
	Presigner     *s3.PresignClient
	Bucket        string
	PublicBaseURL string
	PresignExpire time.Duration
}

func NewStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	loadOpts := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" && cfg.S3.SecretKey != "" {
		loadOpts = append(loadOpts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	acfg, err := awsCfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(acfg, func(o *s3.Options) {
		if ep := strings.TrimSpace(cfg.S3.Endpoint); ep != "" {
			if !strings.HasPrefix(ep, "http://") && !strings.HasPrefix(ep, "https://") {
				ep = "https://" + ep
			}
			if u, uerr := url.Parse(ep); uerr == nil {
				o.BaseEndpoint = aws.String(u.String())
			}
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	})

	expire := 15 * time.Minute
	if cfg.S3.PresignExpireSec > 0 {
		expire = time.Duration(cfg.S3.PresignExpireSec) * time.Second
	}

	return &Store{
		Client:        client,
		Presigner:     s3.NewPresignClient(client),
		Bucket:        cfg.S3.Bucket,
		PublicBaseURL: strings.TrimRight(cfg.S3.PublicBaseURL, "/"),
		PresignExpire: expire,
	}, nil
}

// PresignUpload returns a presigned PUT URL for the given object key.
func (s *Store) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	out, err := s.Presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.PresignExpire))
	if err != nil {
		return "", fmt.Errorf("presign put object: %w", err)
	}
	return out.URL, nil
}

// PublicURL is the URL stored on the project record once the upload finishes.
func (s *Store) PublicURL(key string) string {
	return s.PublicBaseURL + "/" + path.Clean(key)
}
