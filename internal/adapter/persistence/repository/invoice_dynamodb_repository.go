package repository

import (
	"context"
	"strings"

	"construction_estimation/internal/domain/entities"
	"construction_estimation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvoicesTableName = "invoices"

type invoiceItem struct {
	ID            string `dynamodbav:"id"`
	ClientID      string `dynamodbav:"client_id"`
	EstimateID    string `dynamodbav:"estimate_id,omitempty"`
	InvoiceNumber string `dynamodbav:"invoice_number"`
	Description   string `dynamodbav:"description,omitempty"`
	Amount        string `dynamodbav:"amount"`
	Status        string `dynamodbav:"invoice_status"`
	DueDate       string `dynamodbav:"due_date,omitempty"`
	PaidDate      string `dynamodbav:"paid_date,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, i entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(i))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return i, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) List(ctx context.Context, filter interfaces.InvoiceFilter) ([]entities.Invoice, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	exprs := make([]string, 0, 2)
	values := map[string]types.AttributeValue{}
	if filter.ClientID != "" {
		exprs = append(exprs, "client_id = :cid")
		values[":cid"] = &types.AttributeValueMemberS{Value: filter.ClientID}
	}
	if filter.EstimateID != "" {
		exprs = append(exprs, "estimate_id = :eid")
		values[":eid"] = &types.AttributeValueMemberS{Value: filter.EstimateID}
	}
	if len(exprs) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		input.ExpressionAttributeValues = values
	}

	invoices := make([]entities.Invoice, 0)
	pager := dynamodb.NewScanPaginator(r.ddb, input)
	for pager.HasMorePages() {
		out, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			invoices = append(invoices, fromInvoiceItem(it))
		}
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) Update(ctx context.Context, i entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(i))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return i, nil
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toInvoiceItem(i entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:            i.ID,
		ClientID:      i.ClientID,
		EstimateID:    i.EstimateID,
		InvoiceNumber: i.InvoiceNumber,
		Description:   i.Description,
		Amount:        i.Amount.String(),
		Status:        string(i.Status),
		DueDate:       formatTimePtr(i.DueDate),
		PaidDate:      formatTimePtr(i.PaidDate),
		CreatedAt:     formatTime(i.CreatedAt),
		UpdatedAt:     formatTime(i.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:            it.ID,
		ClientID:      it.ClientID,
		EstimateID:    it.EstimateID,
		InvoiceNumber: it.InvoiceNumber,
		Description:   it.Description,
		Amount:        parseDecimal(it.Amount),
		Status:        entities.InvoiceStatus(it.Status),
		DueDate:       parseTimePtr(it.DueDate),
		PaidDate:      parseTimePtr(it.PaidDate),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
