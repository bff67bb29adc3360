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
)

// activeSlotID is the reserved primary key of the kettle's running batch.
const activeSlotID = "ACTIVE_PROCESS"

type batchItem struct {
	ID             string `dynamodbav:"id"`
	BatchID        string `dynamodbav:"batch_id"`
	State          string `dynamodbav:"state"`
	StartedAt      string `dynamodbav:"started_at"`
	FinishedAt     string `dynamodbav:"finished_at,omitempty"`
	Inputs         string `dynamodbav:"inputs"`
	Prices         string `dynamodbav:"prices"`
	CostRows       string `dynamodbav:"cost_rows"`
	TotalCost      string `dynamodbav:"total_cost"`
	UnitCost       string `dynamodbav:"unit_cost"`
	ActualOutputKg string `dynamodbav:"actual_output_kg"`
	ForSaleKg      string `dynamodbav:"for_sale_kg"`
	ForFillerKg    string `dynamodbav:"for_filler_kg"`
	UnallocatedKg  string `dynamodbav:"unallocated_kg"`
}

// ConversionDynamoRepository persists kettle batches.
//
// Single flight: the running batch is written under id=ACTIVE_PROCESS with
// attribute_not_exists(id), so two concurrent starts cannot both succeed.
// Finishing is one TransactWriteItems:
//
//	[0] delete ACTIVE_PROCESS if batch_id = :bid
//	[1] put archive (id = batch id)
//	[2..] stock movements
//	[n] put production record
type ConversionDynamoRepository struct {
	ddb    *dynamodb.Client
	tables Tables
}

var _ interfaces.IConversionRepository = (*ConversionDynamoRepository)(nil)

func NewConversionDynamoRepository(ddb *dynamodb.Client, tables Tables) *ConversionDynamoRepository {
	return &ConversionDynamoRepository{ddb: ddb, tables: tables}
}

func (r *ConversionDynamoRepository) CreateActive(ctx context.Context, b entities.ConversionBatch) (entities.ConversionBatch, error) {
	it, err := toBatchItem(b)
	if err != nil {
		return entities.ConversionBatch{}, err
	}
	it.ID = activeSlotID

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ConversionBatch{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.Batches),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ConversionBatch{}, entities.ErrProcessAlreadyRunning
		}
		return entities.ConversionBatch{}, err
	}
	return b, nil
}

func (r *ConversionDynamoRepository) GetActive(ctx context.Context) (entities.ConversionBatch, error) {
	return r.get(ctx, activeSlotID)
}

// GetByID looks in the archive first, then in the active slot.
func (r *ConversionDynamoRepository) GetByID(ctx context.Context, id string) (entities.ConversionBatch, error) {
	b, err := r.get(ctx, id)
	if err != nil || b.ID != "" {
		return b, err
	}
	active, err := r.GetActive(ctx)
	if err != nil {
		return entities.ConversionBatch{}, err
	}
	if active.ID == id {
		return active, nil
	}
	return entities.ConversionBatch{}, nil
}

func (r *ConversionDynamoRepository) Complete(ctx context.Context, b entities.ConversionBatch, movements []entities.StockMovement, record entities.ProductionRecord) error {
	archive, err := toBatchItem(b)
	if err != nil {
		return err
	}
	archiveAV, err := attributevalue.MarshalMap(archive)
	if err != nil {
		return err
	}
	put, err := recordPut(r.tables.Records, record)
	if err != nil {
		return err
	}

	now := formatTime(time.Now())
	items := make([]types.TransactWriteItem, 0, len(movements)+3)
	items = append(items,
		types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(r.tables.Batches),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: activeSlotID},
			},
			ConditionExpression:       aws.String("#batch_id = :bid"),
			ExpressionAttributeNames:  map[string]string{"#batch_id": "batch_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":bid": &types.AttributeValueMemberS{Value: b.ID}},
		}},
		types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.tables.Batches),
			Item:                     archiveAV,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
	)
	const movementOffset = 2
	for _, m := range movements {
		items = append(items, types.TransactWriteItem{Update: movementUpdate(r.tables.Stock, m, now)})
	}
	items = append(items, types.TransactWriteItem{Put: put})

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems:      items,
		ClientRequestToken: aws.String(record.ID),
	})
	if err != nil {
		return mapCompleteError(err, movementOffset, movements)
	}
	return nil
}

func mapCompleteError(err error, offset int, movements []entities.StockMovement) error {
	idx, ok := failedConditionIndex(err)
	if !ok {
		return err
	}
	if idx < offset {
		return entities.ErrNoActiveProcess
	}
	if mErr := movementFailure(idx, offset, movements); mErr != nil {
		return mErr
	}
	return err
}

func (r *ConversionDynamoRepository) get(ctx context.Context, id string) (entities.ConversionBatch, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Batches),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ConversionBatch{}, err
	}
	if len(out.Item) == 0 {
		return entities.ConversionBatch{}, nil
	}

	var it batchItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ConversionBatch{}, err
	}
	return fromBatchItem(it)
}

func toBatchItem(b entities.ConversionBatch) (batchItem, error) {
	inputs, err := jsonAttr(b.Inputs)
	if err != nil {
		return batchItem{}, err
	}
	prices, err := jsonAttr(b.Prices)
	if err != nil {
		return batchItem{}, err
	}
	rows, err := jsonAttr(b.CostRows)
	if err != nil {
		return batchItem{}, err
	}
	return batchItem{
		ID:             b.ID,
		BatchID:        b.ID,
		State:          string(b.State),
		StartedAt:      formatTime(b.StartedAt),
		FinishedAt:     formatTime(b.FinishedAt),
		Inputs:         inputs,
		Prices:         prices,
		CostRows:       rows,
		TotalCost:      b.TotalCost.String(),
		UnitCost:       b.UnitCost.String(),
		ActualOutputKg: b.ActualOutputKg.String(),
		ForSaleKg:      b.ForSaleKg.String(),
		ForFillerKg:    b.ForFillerKg.String(),
		UnallocatedKg:  b.UnallocatedKg.String(),
	}, nil
}

func fromBatchItem(it batchItem) (entities.ConversionBatch, error) {
	b := entities.ConversionBatch{
		ID:             it.BatchID,
		State:          entities.ConversionState(it.State),
		StartedAt:      parseTime(it.StartedAt),
		FinishedAt:     parseTime(it.FinishedAt),
		TotalCost:      parseDecimal(it.TotalCost),
		UnitCost:       parseDecimal(it.UnitCost),
		ActualOutputKg: parseDecimal(it.ActualOutputKg),
		ForSaleKg:      parseDecimal(it.ForSaleKg),
		ForFillerKg:    parseDecimal(it.ForFillerKg),
		UnallocatedKg:  parseDecimal(it.UnallocatedKg),
	}
	if b.ID == "" {
		b.ID = it.ID
	}
	if err := fromJSONAttr(it.Inputs, &b.Inputs); err != nil {
		return entities.ConversionBatch{}, err
	}
	if err := fromJSONAttr(it.Prices, &b.Prices); err != nil {
		return entities.ConversionBatch{}, err
	}
	if err := fromJSONAttr(it.CostRows, &b.CostRows); err != nil {
		return entities.ConversionBatch{}, err
	}
	return b, nil
}
