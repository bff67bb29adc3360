package repository

import (
	"encoding/json"
	"errors"
	"time"

	"bitumen_production/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Tables names the three DynamoDB tables of the service.
//
//   - Stock:   PK category (string)
//   - Batches: PK id (string); the running batch lives under activeSlotID
//   - Records: PK id (string)
type Tables struct {
	Stock   string
	Batches string
	Records string
}

const conditionalCheckFailed = "ConditionalCheckFailed"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func numberAttr(d decimal.Decimal) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: d.String()}
}

func toNumber(d decimal.Decimal) attributevalue.Number {
	return attributevalue.Number(d.String())
}

func fromNumber(n attributevalue.Number) decimal.Decimal {
	return parseDecimal(string(n))
}

// jsonAttr keeps nested value objects as JSON documents; decimals keep their
// exact string form.
func jsonAttr(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func fromJSONAttr(s string, dst any) error {
	if s == "" {
		return nil
	}
	return json.Unmarshal([]byte(s), dst)
}

// movementUpdate builds the stock update of one movement.
//
// Debits require the row to exist and to hold at least the amount; credits
// create the row on first receipt and may replace the unit price.
func movementUpdate(table string, m entities.StockMovement, now string) *types.Update {
	names := map[string]string{
		"#category":   "category",
		"#quantity":   "quantity",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":amt": numberAttr(m.Amount()),
		":now": &types.AttributeValueMemberS{Value: now},
	}
	key := map[string]types.AttributeValue{
		"category": &types.AttributeValueMemberS{Value: string(m.Category)},
	}

	if m.IsDebit() {
		return &types.Update{
			TableName:                 aws.String(table),
			Key:                       key,
			UpdateExpression:          aws.String("SET #quantity = #quantity - :amt, #updated_at = :now"),
			ConditionExpression:       aws.String("attribute_exists(#category) AND #quantity >= :amt"),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		}
	}

	expr := "SET #quantity = if_not_exists(#quantity, :zero) + :amt, #updated_at = :now"
	values[":zero"] = &types.AttributeValueMemberN{Value: "0"}
	if m.UnitPrice.Valid {
		expr += ", #unit_price = :price"
		names["#unit_price"] = "unit_price"
		values[":price"] = numberAttr(m.UnitPrice.Decimal)
	} else {
		expr += ", #unit_price = if_not_exists(#unit_price, :zero)"
		names["#unit_price"] = "unit_price"
	}
	delete(names, "#category")
	return &types.Update{
		TableName:                 aws.String(table),
		Key:                       key,
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
}

// failedConditionIndex returns the position of the first transaction item
// whose condition failed.
func failedConditionIndex(err error) (int, bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return 0, false
	}
	for i, r := range tce.CancellationReasons {
		if aws.ToString(r.Code) == conditionalCheckFailed {
			return i, true
		}
	}
	return 0, false
}

// movementFailure maps a failed condition at transaction index idx to the
// movement placed at offset+k.
func movementFailure(idx, offset int, movements []entities.StockMovement) error {
	k := idx - offset
	if k < 0 || k >= len(movements) {
		return nil
	}
	m := movements[k]
	return &entities.InsufficientStockError{Category: m.Category, Requested: m.Amount()}
}
