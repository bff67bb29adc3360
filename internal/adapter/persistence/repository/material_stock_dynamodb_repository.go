package repository

import (
	"context"
	"errors"
	"time"

	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type stockItem struct {
	Category  string                `dynamodbav:"category"`
	Quantity  attributevalue.Number `dynamodbav:"quantity"`
	UnitPrice attributevalue.Number `dynamodbav:"unit_price"`
	UpdatedAt string                `dynamodbav:"updated_at"`
}

// MaterialStockDynamoRepository is the material ledger on DynamoDB.
//
// quantity and unit_price are numbers so debits can be conditioned on
// quantity >= amount; a debit that would go negative is never applied.
type MaterialStockDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialLedger = (*MaterialStockDynamoRepository)(nil)

func NewMaterialStockDynamoRepository(ddb *dynamodb.Client, tableName string) *MaterialStockDynamoRepository {
	return &MaterialStockDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MaterialStockDynamoRepository) GetStock(ctx context.Context, category entities.MaterialCategory) (entities.MaterialStock, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"category": &types.AttributeValueMemberS{Value: string(category)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MaterialStock{}, err
	}
	if len(out.Item) == 0 {
		return entities.MaterialStock{}, nil
	}
	return unmarshalStock(out.Item)
}

func (r *MaterialStockDynamoRepository) ListStock(ctx context.Context) ([]entities.MaterialStock, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	var out []entities.MaterialStock
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			s, err := unmarshalStock(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MaterialStockDynamoRepository) Debit(ctx context.Context, category entities.MaterialCategory, amount decimal.Decimal) (entities.MaterialStock, error) {
	s, err := r.apply(ctx, entities.DebitMovement(category, amount))
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.MaterialStock{}, &entities.InsufficientStockError{Category: category, Requested: amount}
		}
		return entities.MaterialStock{}, err
	}
	return s, nil
}

func (r *MaterialStockDynamoRepository) Credit(ctx context.Context, category entities.MaterialCategory, amount decimal.Decimal, unitPrice decimal.NullDecimal) (entities.MaterialStock, error) {
	m := entities.CreditMovement(category, amount)
	m.UnitPrice = unitPrice
	return r.apply(ctx, m)
}

func (r *MaterialStockDynamoRepository) SetUnitPrice(ctx context.Context, category entities.MaterialCategory, unitPrice decimal.Decimal) (entities.MaterialStock, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"category": &types.AttributeValueMemberS{Value: string(category)},
		},
		UpdateExpression: aws.String("SET #unit_price = :price, #quantity = if_not_exists(#quantity, :zero), #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#unit_price": "unit_price",
			"#quantity":   "quantity",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":price": numberAttr(unitPrice),
			":zero":  &types.AttributeValueMemberN{Value: "0"},
			":now":   &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.MaterialStock{}, err
	}
	return unmarshalStock(out.Attributes)
}

func (r *MaterialStockDynamoRepository) apply(ctx context.Context, m entities.StockMovement) (entities.MaterialStock, error) {
	u := movementUpdate(r.tableName, m, formatTime(time.Now()))
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 u.TableName,
		Key:                       u.Key,
		UpdateExpression:          u.UpdateExpression,
		ConditionExpression:       u.ConditionExpression,
		ExpressionAttributeNames:  u.ExpressionAttributeNames,
		ExpressionAttributeValues: u.ExpressionAttributeValues,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.MaterialStock{}, err
	}
	return unmarshalStock(out.Attributes)
}

func unmarshalStock(av map[string]types.AttributeValue) (entities.MaterialStock, error) {
	var it stockItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.MaterialStock{}, err
	}
	return fromStockItem(it), nil
}

func fromStockItem(it stockItem) entities.MaterialStock {
	return entities.MaterialStock{
		Category:       entities.MaterialCategory(it.Category),
		QuantityOnHand: fromNumber(it.Quantity),
		UnitPrice:      fromNumber(it.UnitPrice),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
