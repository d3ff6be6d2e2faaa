package repository

import (
	"context"
	"time"

	"mecanica_agenda/internal/domain/entities"
	"mecanica_agenda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "quote_payments"
	paymentsQuoteIDIndex     = "quote_id-index"
)

type quotePaymentItem struct {
	ID               string                 `dynamodbav:"id"`
	QuoteID          string                 `dynamodbav:"quote_id"`
	BookingRequestID string                 `dynamodbav:"booking_request_id,omitempty"`
	Amount           float64                `dynamodbav:"amount"`
	Date             string                 `dynamodbav:"date"`
	Status           string                 `dynamodbav:"status"`
	ProviderID       string                 `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayload  map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderRaw      string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// QuotePaymentDynamoRepository persists QuotePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
type QuotePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotePaymentRepository = (*QuotePaymentDynamoRepository)(nil)

func NewQuotePaymentDynamoRepository(ddb *dynamodb.Client) *QuotePaymentDynamoRepository {
	return &QuotePaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTE_PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *QuotePaymentDynamoRepository) Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
	av, err := attributevalue.MarshalMap(toQuotePaymentItem(p))
	if err != nil {
		return entities.QuotePayment{}, err
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
		return entities.QuotePayment{}, err
	}
	return p, nil
}

func (r *QuotePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuotePayment{}, nil
	}

	var it quotePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuotePayment{}, err
	}
	return fromQuotePaymentItem(it), nil
}

func (r *QuotePaymentDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.QuotePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quotePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromQuotePaymentItem(it))
	}
	return payments, nil
}

func toQuotePaymentItem(p entities.QuotePayment) quotePaymentItem {
	return quotePaymentItem{
		ID:               p.ID,
		QuoteID:          p.QuoteID,
		BookingRequestID: p.BookingRequestID,
		Amount:           p.Amount,
		Date:             p.Date.UTC().Format(time.RFC3339Nano),
		Status:           string(p.Status),
		ProviderID:       p.ProviderPaymentID,
		ProviderPayload:  p.ProviderPayload,
		ProviderRaw:      string(p.ProviderPayloadRaw),
	}
}

func fromQuotePaymentItem(it quotePaymentItem) entities.QuotePayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.QuotePayment{
		ID:                 it.ID,
		QuoteID:            it.QuoteID,
		BookingRequestID:   it.BookingRequestID,
		Amount:             it.Amount,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPaymentID:  it.ProviderID,
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderRaw),
	}
}
