package repository

import (
	"context"

	"mecanica_agenda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkshopsTableName = "workshops"

// WorkshopDynamoDirectory maintains per-workshop aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The counter bump uses an atomic ADD so concurrent booking creations
// never lose increments, and it upserts the row when the workshop has
// no aggregate record yet.
type WorkshopDynamoDirectory struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkshopDirectory = (*WorkshopDynamoDirectory)(nil)

func NewWorkshopDynamoDirectory(ddb *dynamodb.Client) *WorkshopDynamoDirectory {
	return &WorkshopDynamoDirectory{
		ddb:       ddb,
		tableName: getenvDefault("WORKSHOPS_TABLE", defaultWorkshopsTableName),
	}
}

func (d *WorkshopDynamoDirectory) IncrementBookingCount(ctx context.Context, workshopID string) error {
	_, err := d.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: workshopID},
		},
		UpdateExpression: aws.String("ADD #count :one"),
		ExpressionAttributeNames: map[string]string{
			"#count": "booking_count",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
	})
	return err
}
