package repository

import (
	"context"
	"errors"
	"time"

	"mecanica_agenda/internal/domain/entities"
	"mecanica_agenda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "booking_requests"
	bookingsCustomerIDIndex  = "customer_id-index"
	bookingsWorkshopIDIndex  = "workshop_id-index"
)

type proposalItem struct {
	ID            string  `dynamodbav:"id"`
	ProposedBy    string  `dynamodbav:"proposed_by"`
	ProposedDate  string  `dynamodbav:"proposed_date"`
	Message       string  `dynamodbav:"message,omitempty"`
	EstimatedCost float64 `dynamodbav:"estimated_cost,omitempty"`
	Status        string  `dynamodbav:"status"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

type messageItem struct {
	ID          string   `dynamodbav:"id"`
	SenderID    string   `dynamodbav:"sender_id"`
	SenderName  string   `dynamodbav:"sender_name,omitempty"`
	SenderRole  string   `dynamodbav:"sender_role"`
	Text        string   `dynamodbav:"text"`
	Attachments []string `dynamodbav:"attachments,omitempty"`
	IsRead      bool     `dynamodbav:"is_read"`
	CreatedAt   string   `dynamodbav:"created_at"`
}

type bookingItem struct {
	ID string `dynamodbav:"id"`

	CustomerID    string `dynamodbav:"customer_id"`
	CustomerName  string `dynamodbav:"customer_name,omitempty"`
	CustomerEmail string `dynamodbav:"customer_email,omitempty"`
	CustomerPhone string `dynamodbav:"customer_phone,omitempty"`

	WorkshopID   string `dynamodbav:"workshop_id"`
	WorkshopName string `dynamodbav:"workshop_name,omitempty"`
	MechanicID   string `dynamodbav:"mechanic_id,omitempty"`

	VehicleMake     string `dynamodbav:"vehicle_make"`
	VehicleModel    string `dynamodbav:"vehicle_model"`
	VehicleYear     int    `dynamodbav:"vehicle_year,omitempty"`
	VehiclePlate    string `dynamodbav:"vehicle_plate,omitempty"`
	VehicleOdometer int    `dynamodbav:"vehicle_odometer,omitempty"`

	BookingType        string `dynamodbav:"booking_type"`
	ServiceCatalogID   string `dynamodbav:"service_catalog_id,omitempty"`
	ServiceName        string `dynamodbav:"service_name,omitempty"`
	ServiceCategory    string `dynamodbav:"service_category,omitempty"`
	ProblemDescription string `dynamodbav:"problem_description,omitempty"`
	Urgency            string `dynamodbav:"urgency"`

	PreferredDates []string `dynamodbav:"preferred_dates,omitempty"`

	Proposals []proposalItem `dynamodbav:"proposals"`
	Messages  []messageItem  `dynamodbav:"messages"`

	Status       string `dynamodbav:"status"`
	SelectedDate string `dynamodbav:"selected_date,omitempty"`

	QuoteID     string  `dynamodbav:"quote_id,omitempty"`
	QuotedPrice float64 `dynamodbav:"quoted_price,omitempty"`

	CustomerNotified bool `dynamodbav:"customer_notified"`
	WorkshopNotified bool `dynamodbav:"workshop_notified"`

	Version int64 `dynamodbav:"version"`

	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
}

// BookingDynamoRepository persists BookingRequest documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: workshop_id-index (PK: workshop_id)
//
// Timestamps are stored as RFC3339Nano strings; the item structs are the
// only place the wire shape is known. Writes are conditional on the
// version attribute so concurrent read-modify-write cycles over the
// proposal/message lists cannot overwrite each other silently.
type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.BookingRequest{}, err
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
		return entities.BookingRequest{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.BookingRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BookingRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.BookingRequest{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BookingRequest{}, err
	}
	return fromBookingItem(it), nil
}

// Update writes the whole document back, conditioned on the version the
// caller read. The stored version is bumped by one; a concurrent writer
// that got there first makes the condition fail and the caller receives
// ErrVersionConflict.
func (r *BookingDynamoRepository) Update(ctx context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
	expected := b.Version
	b.Version = expected + 1

	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.BookingRequest{}, err
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
			return entities.BookingRequest{}, interfaces.ErrVersionConflict
		}
		return entities.BookingRequest{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.BookingRequest, error) {
	return r.listByIndex(ctx, bookingsCustomerIDIndex, "customer_id", customerID)
}

func (r *BookingDynamoRepository) ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.BookingRequest, error) {
	return r.listByIndex(ctx, bookingsWorkshopIDIndex, "workshop_id", workshopID)
}

func (r *BookingDynamoRepository) listByIndex(ctx context.Context, index, key, value string) ([]entities.BookingRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	bookings := make([]entities.BookingRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		bookings = append(bookings, fromBookingItem(it))
	}
	return bookings, nil
}

func toBookingItem(b entities.BookingRequest) bookingItem {
	it := bookingItem{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		WorkshopID:         b.WorkshopID,
		WorkshopName:       b.WorkshopName,
		MechanicID:         b.MechanicID,
		VehicleMake:        b.Vehicle.Make,
		VehicleModel:       b.Vehicle.Model,
		VehicleYear:        b.Vehicle.Year,
		VehiclePlate:       b.Vehicle.Plate,
		VehicleOdometer:    b.Vehicle.Odometer,
		BookingType:        string(b.Type),
		ServiceCatalogID:   b.Service.CatalogID,
		ServiceName:        b.Service.Name,
		ServiceCategory:    b.Service.Category,
		ProblemDescription: b.ProblemDescription,
		Urgency:            string(b.Urgency),
		Status:             string(b.Status),
		QuoteID:            b.QuoteID,
		QuotedPrice:        b.QuotedPrice,
		CustomerNotified:   b.Notifications.CustomerNotified,
		WorkshopNotified:   b.Notifications.WorkshopNotified,
		Version:            b.Version,
		CreatedAt:          formatTime(b.CreatedAt),
		UpdatedAt:          formatTime(b.UpdatedAt),
		CompletedAt:        formatTimePtr(b.CompletedAt),
		SelectedDate:       formatTimePtr(b.SelectedDate),
	}

	for _, d := range b.PreferredDates {
		it.PreferredDates = append(it.PreferredDates, formatTime(d))
	}

	it.Proposals = make([]proposalItem, 0, len(b.Proposals))
	for _, p := range b.Proposals {
		it.Proposals = append(it.Proposals, proposalItem{
			ID:            p.ID,
			ProposedBy:    string(p.ProposedBy),
			ProposedDate:  formatTime(p.ProposedDate),
			Message:       p.Message,
			EstimatedCost: p.EstimatedCost,
			Status:        string(p.Status),
			CreatedAt:     formatTime(p.CreatedAt),
		})
	}

	it.Messages = make([]messageItem, 0, len(b.Messages))
	for _, m := range b.Messages {
		it.Messages = append(it.Messages, messageItem{
			ID:          m.ID,
			SenderID:    m.SenderID,
			SenderName:  m.SenderName,
			SenderRole:  string(m.SenderRole),
			Text:        m.Text,
			Attachments: m.Attachments,
			IsRead:      m.IsRead,
			CreatedAt:   formatTime(m.CreatedAt),
		})
	}

	return it
}

func fromBookingItem(it bookingItem) entities.BookingRequest {
	b := entities.BookingRequest{
		ID:            it.ID,
		CustomerID:    it.CustomerID,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		CustomerPhone: it.CustomerPhone,
		WorkshopID:    it.WorkshopID,
		WorkshopName:  it.WorkshopName,
		MechanicID:    it.MechanicID,
		Vehicle: entities.VehicleRef{
			Make:     it.VehicleMake,
			Model:    it.VehicleModel,
			Year:     it.VehicleYear,
			Plate:    it.VehiclePlate,
			Odometer: it.VehicleOdometer,
		},
		Type: entities.BookingType(it.BookingType),
		Service: entities.ServiceRef{
			CatalogID: it.ServiceCatalogID,
			Name:      it.ServiceName,
			Category:  it.ServiceCategory,
		},
		ProblemDescription: it.ProblemDescription,
		Urgency:            entities.Urgency(it.Urgency),
		Status:             entities.BookingStatus(it.Status),
		QuoteID:            it.QuoteID,
		QuotedPrice:        it.QuotedPrice,
		Notifications: entities.NotificationFlags{
			CustomerNotified: it.CustomerNotified,
			WorkshopNotified: it.WorkshopNotified,
		},
		Version:      it.Version,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
		CompletedAt:  parseTimePtr(it.CompletedAt),
		SelectedDate: parseTimePtr(it.SelectedDate),
	}

	for _, d := range it.PreferredDates {
		b.PreferredDates = append(b.PreferredDates, parseTime(d))
	}

	b.Proposals = make([]entities.Proposal, 0, len(it.Proposals))
	for _, p := range it.Proposals {
		b.Proposals = append(b.Proposals, entities.Proposal{
			ID:            p.ID,
			ProposedBy:    entities.SenderRole(p.ProposedBy),
			ProposedDate:  parseTime(p.ProposedDate),
			Message:       p.Message,
			EstimatedCost: p.EstimatedCost,
			Status:        entities.ProposalStatus(p.Status),
			CreatedAt:     parseTime(p.CreatedAt),
		})
	}

	b.Messages = make([]entities.Message, 0, len(it.Messages))
	for _, m := range it.Messages {
		b.Messages = append(b.Messages, entities.Message{
			ID:          m.ID,
			SenderID:    m.SenderID,
			SenderName:  m.SenderName,
			SenderRole:  entities.SenderRole(m.SenderRole),
			Text:        m.Text,
			Attachments: m.Attachments,
			IsRead:      m.IsRead,
			CreatedAt:   parseTime(m.CreatedAt),
		})
	}

	return b
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}
