package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina_diesel/internal/domain/entities"
	"oficina_diesel/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceOrdersTableName = "service_orders"

type serviceOrderItem struct {
	ID                 string `dynamodbav:"id"`
	CustomerName       string `dynamodbav:"customer_name"`
	CustomerPhone      string `dynamodbav:"customer_phone"`
	CustomerAddress    string `dynamodbav:"customer_address,omitempty"`
	ServiceDescription string `dynamodbav:"service_description"`
	ServiceType        string `dynamodbav:"service_type"`
	BudgetAmount       string `dynamodbav:"budget_amount"`
	AmountPaid         string `dynamodbav:"amount_paid"`
	CreationDate       string `dynamodbav:"creation_date"`
	ServiceStartDate   string `dynamodbav:"service_start_date,omitempty"`
	CompletionDate     string `dynamodbav:"completion_date,omitempty"`
	PaymentDate        string `dynamodbav:"payment_date,omitempty"`
	Status             string `dynamodbav:"status"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Optional dates are stored only when set: updates never write an absent
// date, so a field once written survives a submission that omits it.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	it := toServiceOrderItem(o)
	now := timeToString(time.Now())
	it.CreatedAt = now
	it.UpdatedAt = now

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

// Update rewrites the order's present fields. Absent optional fields are kept
// out of the SET expression entirely; they are never overwritten with an
// empty marker.
func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	sets := make([]string, 0, 12)
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	set := func(attr, value string) {
		sets = append(sets, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: value}
	}

	set("customer_name", o.CustomerName)
	set("customer_phone", o.CustomerPhone)
	if o.CustomerAddress != "" {
		set("customer_address", o.CustomerAddress)
	}
	set("service_description", o.ServiceDescription)
	set("service_type", string(o.ServiceType))
	set("budget_amount", floatToString(o.BudgetAmount))
	set("amount_paid", floatToString(o.AmountPaid))
	set("creation_date", timeToString(o.CreationDate))
	if o.ServiceStartDate != nil {
		set("service_start_date", timeToString(*o.ServiceStartDate))
	}
	if o.CompletionDate != nil {
		set("completion_date", timeToString(*o.CompletionDate))
	}
	if o.PaymentDate != nil {
		set("payment_date", timeToString(*o.PaymentDate))
	}
	set("status", string(o.Status))
	set("updated_at", timeToString(time.Now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: o.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	orders := make([]entities.ServiceOrder, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromServiceOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		ID:                 o.ID,
		CustomerName:       o.CustomerName,
		CustomerPhone:      o.CustomerPhone,
		CustomerAddress:    o.CustomerAddress,
		ServiceDescription: o.ServiceDescription,
		ServiceType:        string(o.ServiceType),
		BudgetAmount:       floatToString(o.BudgetAmount),
		AmountPaid:         floatToString(o.AmountPaid),
		CreationDate:       timeToString(o.CreationDate),
		Status:             string(o.Status),
	}
	if o.ServiceStartDate != nil {
		it.ServiceStartDate = timeToString(*o.ServiceStartDate)
	}
	if o.CompletionDate != nil {
		it.CompletionDate = timeToString(*o.CompletionDate)
	}
	if o.PaymentDate != nil {
		it.PaymentDate = timeToString(*o.PaymentDate)
	}
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	creationDate, _ := time.Parse(time.RFC3339Nano, it.CreationDate)
	return entities.ServiceOrder{
		ID:                 it.ID,
		CustomerName:       it.CustomerName,
		CustomerPhone:      it.CustomerPhone,
		CustomerAddress:    it.CustomerAddress,
		ServiceDescription: it.ServiceDescription,
		ServiceType:        entities.ServiceType(it.ServiceType),
		BudgetAmount:       stringToFloat(it.BudgetAmount),
		AmountPaid:         stringToFloat(it.AmountPaid),
		CreationDate:       creationDate,
		ServiceStartDate:   stringToTimePtr(it.ServiceStartDate),
		CompletionDate:     stringToTimePtr(it.CompletionDate),
		PaymentDate:        stringToTimePtr(it.PaymentDate),
		Status:             entities.ServiceStatus(it.Status),
	}
}
