package repository

import (
	"context"
	"errors"
	"fmt"

	"mecanica_agenda/internal/domain/entities"
	"mecanica_agenda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesBookingIDIndex   = "booking_request_id-index"
	quotesWorkshopIDIndex  = "workshop_id-index"
)

type serviceLineItem struct {
	Name      string  `dynamodbav:"name"`
	LaborCost float64 `dynamodbav:"labor_cost"`
}

type partLineItem struct {
	Name      string  `dynamodbav:"name"`
	Quantity  int     `dynamodbav:"quantity"`
	UnitPrice float64 `dynamodbav:"unit_price"`
	Total     float64 `dynamodbav:"total"`
}

type additionalCostItem struct {
	Name   string  `dynamodbav:"name"`
	Amount float64 `dynamodbav:"amount"`
}

type quoteItem struct {
	ID               string `dynamodbav:"id"`
	BookingRequestID string `dynamodbav:"booking_request_id"`
	WorkshopID       string `dynamodbav:"workshop_id"`
	CustomerID       string `dynamodbav:"customer_id,omitempty"`
	QuoteNumber      string `dynamodbav:"quote_number,omitempty"`

	Services        []serviceLineItem    `dynamodbav:"services"`
	Parts           []partLineItem       `dynamodbav:"parts"`
	AdditionalCosts []additionalCostItem `dynamodbav:"additional_costs"`

	LaborCost float64 `dynamodbav:"labor_cost"`
	PartsCost float64 `dynamodbav:"parts_cost"`
	Subtotal  float64 `dynamodbav:"subtotal"`
	VATRate   float64 `dynamodbav:"vat_rate"`
	VATAmount float64 `dynamodbav:"vat_amount"`
	TotalCost float64 `dynamodbav:"total_cost"`

	Notes string `dynamodbav:"notes,omitempty"`

	Status          string `dynamodbav:"status"`
	RevisionNumber  int    `dynamodbav:"revision_number"`
	PreviousQuoteID string `dynamodbav:"previous_quote_id,omitempty"`

	ValidUntil      string `dynamodbav:"valid_until,omitempty"`
	RejectionReason string `dynamodbav:"rejection_reason,omitempty"`

	Version int64 `dynamodbav:"version"`

	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
	SentAt     string `dynamodbav:"sent_at,omitempty"`
	ApprovedAt string `dynamodbav:"approved_at,omitempty"`
	RejectedAt string `dynamodbav:"rejected_at,omitempty"`
}

// QuoteDynamoRepository persists Quote documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_request_id-index (PK: booking_request_id)
//   - GSI: workshop_id-index (PK: workshop_id)
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	expected := q.Version
	q.Version = expected + 1

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: formatInt64(expected)},
		},
	})
	if err != nil {
		var cond *types.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return entities.Quote{}, interfaces.ErrVersionConflict
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) ListByBookingRequestID(ctx context.Context, bookingRequestID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesBookingIDIndex),
		KeyConditionExpression: aws.String("booking_request_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingRequestID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

// CountByWorkshopYear counts the workshop's quotes created in the given
// calendar year. Used for sequence numbers only; the caller treats a
// failure as non-fatal.
func (r *QuoteDynamoRepository) CountByWorkshopYear(ctx context.Context, workshopID string, year int) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesWorkshopIDIndex),
		KeyConditionExpression: aws.String("workshop_id = :wid"),
		FilterExpression:       aws.String("begins_with(created_at, :year)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid":  &types.AttributeValueMemberS{Value: workshopID},
			":year": &types.AttributeValueMemberS{Value: fmt.Sprintf("%d-", year)},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:               q.ID,
		BookingRequestID: q.BookingRequestID,
		WorkshopID:       q.WorkshopID,
		CustomerID:       q.CustomerID,
		QuoteNumber:      q.QuoteNumber,
		LaborCost:        q.LaborCost,
		PartsCost:        q.PartsCost,
		Subtotal:         q.Subtotal,
		VATRate:          q.VATRate,
		VATAmount:        q.VATAmount,
		TotalCost:        q.TotalCost,
		Notes:            q.Notes,
		Status:           string(q.Status),
		RevisionNumber:   q.RevisionNumber,
		PreviousQuoteID:  q.PreviousQuoteID,
		ValidUntil:       formatTimePtr(q.ValidUntil),
		RejectionReason:  q.RejectionReason,
		Version:          q.Version,
		CreatedAt:        formatTime(q.CreatedAt),
		UpdatedAt:        formatTime(q.UpdatedAt),
		SentAt:           formatTimePtr(q.SentAt),
		ApprovedAt:       formatTimePtr(q.ApprovedAt),
		RejectedAt:       formatTimePtr(q.RejectedAt),
	}

	it.Services = make([]serviceLineItem, 0, len(q.Services))
	for _, s := range q.Services {
		it.Services = append(it.Services, serviceLineItem{Name: s.Name, LaborCost: s.LaborCost})
	}
	it.Parts = make([]partLineItem, 0, len(q.Parts))
	for _, p := range q.Parts {
		it.Parts = append(it.Parts, partLineItem{Name: p.Name, Quantity: p.Quantity, UnitPrice: p.UnitPrice, Total: p.Total})
	}
	it.AdditionalCosts = make([]additionalCostItem, 0, len(q.AdditionalCosts))
	for _, c := range q.AdditionalCosts {
		it.AdditionalCosts = append(it.AdditionalCosts, additionalCostItem{Name: c.Name, Amount: c.Amount})
	}

	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID:               it.ID,
		BookingRequestID: it.BookingRequestID,
		WorkshopID:       it.WorkshopID,
		CustomerID:       it.CustomerID,
		QuoteNumber:      it.QuoteNumber,
		LaborCost:        it.LaborCost,
		PartsCost:        it.PartsCost,
		Subtotal:         it.Subtotal,
		VATRate:          it.VATRate,
		VATAmount:        it.VATAmount,
		TotalCost:        it.TotalCost,
		Notes:            it.Notes,
		Status:           entities.QuoteStatus(it.Status),
		RevisionNumber:   it.RevisionNumber,
		PreviousQuoteID:  it.PreviousQuoteID,
		ValidUntil:       parseTimePtr(it.ValidUntil),
		RejectionReason:  it.RejectionReason,
		Version:          it.Version,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
		SentAt:           parseTimePtr(it.SentAt),
		ApprovedAt:       parseTimePtr(it.ApprovedAt),
		RejectedAt:       parseTimePtr(it.RejectedAt),
	}

	q.Services = make([]entities.ServiceLine, 0, len(it.Services))
	for _, s := range it.Services {
		q.Services = append(q.Services, entities.ServiceLine{Name: s.Name, LaborCost: s.LaborCost})
	}
	q.Parts = make([]entities.PartLine, 0, len(it.Parts))
	for _, p := range it.Parts {
		q.Parts = append(q.Parts, entities.PartLine{Name: p.Name, Quantity: p.Quantity, UnitPrice: p.UnitPrice, Total: p.Total})
	}
	q.AdditionalCosts = make([]entities.AdditionalCost, 0, len(it.AdditionalCosts))
	for _, c := range it.AdditionalCosts {
		q.AdditionalCosts = append(q.AdditionalCosts, entities.AdditionalCost{Name: c.Name, Amount: c.Amount})
	}

	return q
}
