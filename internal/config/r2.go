package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Config holds Cloudflare R2 settings. R2 speaks the S3 API, so the client is
// a plain S3 client pointed at the account endpoint with region "auto".
type R2Config struct {
	AccountID       string
	BucketName      string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// DefaultR2Config returns R2 configuration from environment variables
func DefaultR2Config() *R2Config {
	accountID := getEnvWithDefault("R2_ACCOUNT_ID", "")
	return &R2Config{
		AccountID:       accountID,
		BucketName:      getEnvWithDefault("R2_BUCKET_NAME", "camate-files"),
		AccessKeyID:     getEnvWithDefault("R2_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnvWithDefault("R2_SECRET_ACCESS_KEY", ""),
		Endpoint:        getEnvWithDefault("R2_ENDPOINT_URL", fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)),
	}
}

// GetClient creates an S3 client configured for Cloudflare R2
func (c *R2Config) GetClient(ctx context.Context) (*s3.Client, error) {
	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, opts ...interface{}) (aws.Endpoint, error) {
		if service == s3.ServiceID {
			return aws.Endpoint{
				PartitionID:   "aws",
				URL:           c.Endpoint,
				SigningRegion: "auto",
			}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithEndpointResolverWithOptions(customResolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.AccessKeyID,
			c.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	}), nil
}
