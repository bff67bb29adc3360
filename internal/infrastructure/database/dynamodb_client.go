package database

import (
	"bitumen_production/internal/config"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the dynamodb config section.
//
// Local-friendly: with an endpoint set (e.g. http://dynamodb:8000) requests go
// there instead of AWS.
func ConnectDynamoDB(ctx context.Context, c config.Config) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create dynamodb config: %w", err)
	}
	endpoint := c.DynamoDB.Endpoint
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, c config.Config) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(c.DynamoDB.AccessKeyID, c.DynamoDB.SecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.DynamoDB.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}
