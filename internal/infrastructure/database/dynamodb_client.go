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

// ConnectDynamoDB builds the client for the transaction and intent tables
// from environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB() *dynamodb.Client {
	client, err := NewDynamoDBClient(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb client: %v", err)
	}
	return client
}

func NewDynamoDBClient(ctx context.Context) (*dynamodb.Client, error) {
	region := envOr("AWS_REGION", "us-east-1")

	// Local DynamoDB does not validate credentials, but the SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		envOr("AWS_ACCESS_KEY_ID", "local"),
		envOr("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, err
	}

	var clientOpts []func(*dynamodb.Options)
	if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
		clientOpts = append(clientOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}

	return dynamodb.NewFromConfig(cfg, clientOpts...), nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
