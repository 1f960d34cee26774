package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB(ctx context.Context) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfigFromEnv(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// EnsureDynamoTables creates the projects and pricing tables when missing.
// Intended for DynamoDB Local; managed environments provision tables upfront.
//
//   - projects: PK project_id
//   - pricing:  PK item_type, SK material
func EnsureDynamoTables(ctx context.Context, ddb *dynamodb.Client, projectsTable, pricingTable string) error {
	if err := createTableIfMissing(ctx, ddb, &dynamodb.CreateTableInput{
		TableName: aws.String(projectsTable),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("project_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("project_id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	}); err != nil {
		return err
	}

	return createTableIfMissing(ctx, ddb, &dynamodb.CreateTableInput{
		TableName: aws.String(pricingTable),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("item_type"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("material"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("item_type"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("material"), KeyType: types.KeyTypeRange},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
}

func createTableIfMissing(ctx context.Context, ddb *dynamodb.Client, in *dynamodb.CreateTableInput) error {
	_, err := ddb.CreateTable(ctx, in)
	if err == nil {
		log.Printf("[database][dynamodb] table created name=%s", aws.ToString(in.TableName))
		return nil
	}
	var inUse *types.ResourceInUseException
	if errors.As(err, &inUse) {
		return nil
	}
	return fmt.Errorf("create table %s: %w", aws.ToString(in.TableName), err)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
