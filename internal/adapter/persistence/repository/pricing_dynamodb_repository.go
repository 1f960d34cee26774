package repository

import (
	"context"
	"errors"
	"log"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricingTableName = "pricing"

type pricingItem struct {
	ItemType string  `dynamodbav:"item_type"`
	Material string  `dynamodbav:"material"`
	UnitCost float64 `dynamodbav:"unit_cost"`
	Unit     string  `dynamodbav:"unit"`
}

// PricingDynamoRepository persists the pricing catalog in DynamoDB.
//
// Table requirements:
//   - PK: item_type (string)
//   - SK: material (string)

type PricingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingRepository = (*PricingDynamoRepository)(nil)

func NewPricingDynamoRepository(ddb *dynamodb.Client, tableName string) *PricingDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("PRICING_TABLE", defaultPricingTableName)
	}
	return &PricingDynamoRepository{ddb: ddb, tableName: tableName}
}

// Seed writes each entry unless its (item_type, material) key already exists.
func (r *PricingDynamoRepository) Seed(ctx context.Context, entries []entities.PricingEntry) (int, error) {
	inserted := 0
	for _, e := range entries {
		av, err := attributevalue.MarshalMap(pricingItem{
			ItemType: e.ItemType,
			Material: e.Material,
			UnitCost: e.UnitCost,
			Unit:     string(e.UnitKind),
		})
		if err != nil {
			return inserted, err
		}

		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#it)"),
			ExpressionAttributeNames: map[string]string{
				"#it": "item_type",
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			log.Printf("[catalog][dynamodb] seed put failed item_type=%s material=%s err=%v", e.ItemType, e.Material, err)
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func (r *PricingDynamoRepository) List(ctx context.Context) ([]entities.PricingEntry, error) {
	var entries []entities.PricingEntry
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it pricingItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, entities.PricingEntry{
				ItemType: it.ItemType,
				Material: it.Material,
				UnitCost: it.UnitCost,
				UnitKind: entities.UnitKind(it.Unit),
			})
		}
	}
	return entries, nil
}
