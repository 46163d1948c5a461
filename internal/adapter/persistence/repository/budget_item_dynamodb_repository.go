package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"oficina_diesel/internal/domain/entities"
	"oficina_diesel/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetItemsTableName  = "budget_items"
	budgetItemsServiceOrderIndex = "service_order_id-index"
)

type budgetItemRecord struct {
	ID             string `dynamodbav:"id"`
	ServiceOrderID string `dynamodbav:"service_order_id"`
	Description    string `dynamodbav:"description"`
	Quantity       string `dynamodbav:"quantity"`
	UnitPrice      string `dynamodbav:"unit_price"`
	TotalPrice     string `dynamodbav:"total_price"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at,omitempty"`
}

// BudgetItemDynamoRepository persists BudgetItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_order_id-index (PK: service_order_id)
//
// created_at is repo-managed and only written on create, so listing by it
// reproduces the original insertion order across edits.

type BudgetItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetItemRepository = (*BudgetItemDynamoRepository)(nil)

func NewBudgetItemDynamoRepository(ddb *dynamodb.Client) *BudgetItemDynamoRepository {
	return &BudgetItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGET_ITEMS_TABLE", defaultBudgetItemsTableName),
	}
}

func (r *BudgetItemDynamoRepository) Create(ctx context.Context, item entities.BudgetItem) (entities.BudgetItem, error) {
	it := toBudgetItemRecord(item)
	it.CreatedAt = timeToString(time.Now())

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BudgetItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.BudgetItem{}, err
	}
	return item, nil
}

func (r *BudgetItemDynamoRepository) Update(ctx context.Context, item entities.BudgetItem) (entities.BudgetItem, error) {
	expr := "SET #description = :description, #quantity = :quantity, #unit_price = :unit_price, #total_price = :total_price, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":description": &types.AttributeValueMemberS{Value: item.Description},
		":quantity":    &types.AttributeValueMemberS{Value: floatToString(item.Quantity)},
		":unit_price":  &types.AttributeValueMemberS{Value: floatToString(item.UnitPrice)},
		":total_price": &types.AttributeValueMemberS{Value: floatToString(item.TotalPrice)},
		":updated_at":  &types.AttributeValueMemberS{Value: timeToString(time.Now())},
	}
	names := map[string]string{
		"#description": "description",
		"#quantity":    "quantity",
		"#unit_price":  "unit_price",
		"#total_price": "total_price",
		"#updated_at":  "updated_at",
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: item.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BudgetItem{}, nil
		}
		return entities.BudgetItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BudgetItem{}, nil
	}

	var it budgetItemRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BudgetItem{}, err
	}
	return fromBudgetItemRecord(it), nil
}

func (r *BudgetItemDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *BudgetItemDynamoRepository) ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.BudgetItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetItemsServiceOrderIndex),
		KeyConditionExpression: aws.String("service_order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: serviceOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]budgetItemRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it budgetItemRecord
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, it)
	}

	// The GSI has no range key; restore insertion order client-side.
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt != records[j].CreatedAt {
			return records[i].CreatedAt < records[j].CreatedAt
		}
		return records[i].ID < records[j].ID
	})

	items := make([]entities.BudgetItem, 0, len(records))
	for _, it := range records {
		items = append(items, fromBudgetItemRecord(it))
	}
	return items, nil
}

func toBudgetItemRecord(item entities.BudgetItem) budgetItemRecord {
	return budgetItemRecord{
		ID:             item.ID,
		ServiceOrderID: item.ServiceOrderID,
		Description:    item.Description,
		Quantity:       floatToString(item.Quantity),
		UnitPrice:      floatToString(item.UnitPrice),
		TotalPrice:     floatToString(item.TotalPrice),
	}
}

func fromBudgetItemRecord(it budgetItemRecord) entities.BudgetItem {
	return entities.BudgetItem{
		ID:             it.ID,
		ServiceOrderID: it.ServiceOrderID,
		Description:    it.Description,
		Quantity:       stringToFloat(it.Quantity),
		UnitPrice:      stringToFloat(it.UnitPrice),
		TotalPrice:     stringToFloat(it.TotalPrice),
	}
}
