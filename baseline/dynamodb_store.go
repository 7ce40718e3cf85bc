package baseline

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/qa-harness/reqres-contract-tests/framework/opt"
)

const (
	// Schema of the DynamoDB table
	tablePartitionKey = "namespace"
	tableSortKey      = "key"
	itemJSONAttribute = "item"
	baselineNamespace = KeyPrefix
)

// DynamoDBStore keeps each shape as a JSON string attribute of an item whose partition key is
// KeyPrefix and whose sort key is the test ID.
type DynamoDBStore struct {
	dynamodb *dynamodb.Client
	table    string
}

// OpenDynamoDBStore uses the standard AWS environment variables and shared config files for
// region, credentials, and endpoint (AWS_ENDPOINT_URL can point it at a local DynamoDB).
func OpenDynamoDBStore(ctx context.Context, table string) (*DynamoDBStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load AWS configuration: %w", err)
	}
	client := dynamodb.NewFromConfig(cfg)
	if _, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}); err != nil {
		return nil, fmt.Errorf("could not access DynamoDB table %q: %w", table, err)
	}
	return &DynamoDBStore{dynamodb: client, table: table}, nil
}

func (d *DynamoDBStore) Get(ctx context.Context, key string) (opt.Maybe[Shape], error) {
	result, err := d.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.table),
		ConsistentRead: aws.Bool(true),
		Key:            itemKey(key),
	})
	if err != nil || result == nil || result.Item == nil {
		return opt.None[Shape](), err
	}
	attr, ok := result.Item[itemJSONAttribute].(*types.AttributeValueMemberS)
	if !ok {
		return opt.None[Shape](), fmt.Errorf("baseline item %q has no %q attribute", key, itemJSONAttribute)
	}
	return decodeShape([]byte(attr.Value))
}

func (d *DynamoDBStore) Put(ctx context.Context, key string, shape Shape) error {
	item := itemKey(key)
	item[itemJSONAttribute] = &types.AttributeValueMemberS{Value: encodeShape(shape)}
	_, err := d.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	return err
}

func (d *DynamoDBStore) Location() string { return "dynamodb:" + d.table }

func (d *DynamoDBStore) Close() error { return nil }

func itemKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		tablePartitionKey: &types.AttributeValueMemberS{Value: baselineNamespace},
		tableSortKey:      &types.AttributeValueMemberS{Value: key},
	}
}
