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

// DynamoDBSettings carries the connection parameters for the order and
// budget item tables. Endpoint is only set when pointing at a local
// DynamoDB container.
type DynamoDBSettings struct {
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

// SettingsFromEnv reads the connection settings, defaulting to a local
// development setup.
//
// Env vars:
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func SettingsFromEnv() DynamoDBSettings {
	return DynamoDBSettings{
		Region:    getenvDefault("AWS_REGION", "us-east-1"),
		AccessKey: getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		Endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
	}
}

// ConnectDynamoDB creates the DynamoDB client the repositories are
// constructed with. The client is built once at startup and handed down by
// reference; nothing below this package reads connection state globally.
func ConnectDynamoDB() *dynamodb.Client {
	client, err := NewDynamoDBClient(context.Background(), SettingsFromEnv())
	if err != nil {
		log.Fatalf("[infra][dynamodb] failed to build client: %v", err)
	}
	return client
}

func NewDynamoDBClient(ctx context.Context, settings DynamoDBSettings) (*dynamodb.Client, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(settings.AccessKey, settings.SecretKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(settings.Region),
		config.WithCredentialsProvider(creds),
	}

	if settings.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: settings.Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
