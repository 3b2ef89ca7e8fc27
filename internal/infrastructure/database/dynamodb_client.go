package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Config is this service's DynamoDB connection surface.
//
//   - AWS_REGION (default: us-east-1)
//   - DYNAMODB_ENDPOINT (optional; point at dynamodb-local for development,
//     e.g. http://dynamodb:8000)
//
// Against real AWS the default credential chain applies (task role, env,
// shared config). Table names are configured per repository, not here.

type Config struct {
	Region   string
	Endpoint string
}

func ConfigFromEnv() Config {
	return Config{
		Region:   getenvDefault("AWS_REGION", "us-east-1"),
		Endpoint: os.Getenv("DYNAMODB_ENDPOINT"),
	}
}

// NewClient builds a DynamoDB client for cfg. With a local endpoint, static
// throwaway credentials are injected: dynamodb-local accepts anything, but
// the SDK refuses to sign without credentials.
func NewClient(ctx context.Context, cfg Config) (*dynamodb.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.Endpoint != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// ConnectDynamoDB is the boot-time entrypoint; reconciliation cannot run
// without the store, so a failure here aborts startup.
func ConnectDynamoDB() *dynamodb.Client {
	client, err := NewClient(context.Background(), ConfigFromEnv())
	if err != nil {
		log.Fatalf("failed to create dynamodb client: %v", err)
	}
	return client
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
