package repository

import (
	"context"
	"time"

	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type recordItem struct {
	ID               string `dynamodbav:"id"`
	Kind             string `dynamodbav:"kind"`
	SourceID         string `dynamodbav:"source_id"`
	CostRows         string `dynamodbav:"cost_rows"`
	TotalCost        string `dynamodbav:"total_cost"`
	UnitCost         string `dynamodbav:"unit_cost"`
	OutputKg         string `dynamodbav:"output_kg"`
	Blend            string `dynamodbav:"blend,omitempty"`
	Utilities        string `dynamodbav:"utilities,omitempty"`
	PackagingEntries string `dynamodbav:"packaging_entries"`
	Movements        string `dynamodbav:"movements"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// ProductionRecordDynamoRepository stores production history. Commit writes
// the record together with its stock movements in one transaction.
type ProductionRecordDynamoRepository struct {
	ddb    *dynamodb.Client
	tables Tables
}

var _ interfaces.IProductionRecordRepository = (*ProductionRecordDynamoRepository)(nil)

func NewProductionRecordDynamoRepository(ddb *dynamodb.Client, tables Tables) *ProductionRecordDynamoRepository {
	return &ProductionRecordDynamoRepository{ddb: ddb, tables: tables}
}

func (r *ProductionRecordDynamoRepository) Commit(ctx context.Context, rec entities.ProductionRecord, movements []entities.StockMovement) (entities.ProductionRecord, error) {
	put, err := recordPut(r.tables.Records, rec)
	if err != nil {
		return entities.ProductionRecord{}, err
	}

	now := formatTime(time.Now())
	items := make([]types.TransactWriteItem, 0, len(movements)+1)
	for _, m := range movements {
		items = append(items, types.TransactWriteItem{Update: movementUpdate(r.tables.Stock, m, now)})
	}
	items = append(items, types.TransactWriteItem{Put: put})

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems:      items,
		ClientRequestToken: aws.String(rec.ID),
	})
	if err != nil {
		if idx, ok := failedConditionIndex(err); ok {
			if mErr := movementFailure(idx, 0, movements); mErr != nil {
				return entities.ProductionRecord{}, mErr
			}
		}
		return entities.ProductionRecord{}, err
	}
	return rec, nil
}

func (r *ProductionRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProductionRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Records),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProductionRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProductionRecord{}, nil
	}

	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProductionRecord{}, err
	}
	return fromRecordItem(it)
}

func recordPut(table string, rec entities.ProductionRecord) (*types.Put, error) {
	it, err := toRecordItem(rec)
	if err != nil {
		return nil, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}, nil
}

func toRecordItem(rec entities.ProductionRecord) (recordItem, error) {
	it := recordItem{
		ID:        rec.ID,
		Kind:      string(rec.Kind),
		SourceID:  rec.SourceID,
		TotalCost: rec.TotalCost.String(),
		UnitCost:  rec.UnitCost.String(),
		OutputKg:  rec.OutputKg.String(),
		CreatedAt: formatTime(rec.CreatedAt),
	}

	var err error
	if it.CostRows, err = jsonAttr(rec.CostRows); err != nil {
		return recordItem{}, err
	}
	if it.PackagingEntries, err = jsonAttr(rec.PackagingEntries); err != nil {
		return recordItem{}, err
	}
	if it.Movements, err = jsonAttr(rec.Movements); err != nil {
		return recordItem{}, err
	}
	if rec.Blend != nil {
		if it.Blend, err = jsonAttr(rec.Blend); err != nil {
			return recordItem{}, err
		}
	}
	if rec.Utilities != nil {
		if it.Utilities, err = jsonAttr(rec.Utilities); err != nil {
			return recordItem{}, err
		}
	}
	return it, nil
}

func fromRecordItem(it recordItem) (entities.ProductionRecord, error) {
	rec := entities.ProductionRecord{
		ID:        it.ID,
		Kind:      entities.ProductionKind(it.Kind),
		SourceID:  it.SourceID,
		TotalCost: parseDecimal(it.TotalCost),
		UnitCost:  parseDecimal(it.UnitCost),
		OutputKg:  parseDecimal(it.OutputKg),
		CreatedAt: parseTime(it.CreatedAt),
	}
	if err := fromJSONAttr(it.CostRows, &rec.CostRows); err != nil {
		return entities.ProductionRecord{}, err
	}
	if err := fromJSONAttr(it.PackagingEntries, &rec.PackagingEntries); err != nil {
		return entities.ProductionRecord{}, err
	}
	if err := fromJSONAttr(it.Movements, &rec.Movements); err != nil {
		return entities.ProductionRecord{}, err
	}
	if it.Blend != "" {
		rec.Blend = &entities.BlendComposition{}
		if err := fromJSONAttr(it.Blend, rec.Blend); err != nil {
			return entities.ProductionRecord{}, err
		}
	}
	if it.Utilities != "" {
		rec.Utilities = &entities.UtilityCosts{}
		if err := fromJSONAttr(it.Utilities, rec.Utilities); err != nil {
			return entities.ProductionRecord{}, err
		}
	}
	return rec, nil
}
