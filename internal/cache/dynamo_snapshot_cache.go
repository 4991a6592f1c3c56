package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
	"github.com/sevici/backend-go/internal/models"
)

// DynamoDBClient defines the DynamoDB operations the snapshot cache needs
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoSnapshotCache stores one item per contract holding its latest snapshot
type DynamoSnapshotCache struct {
	client    DynamoDBClient
	tableName string
	ttl       time.Duration
	clock     clock
}

var _ SnapshotStore = (*DynamoSnapshotCache)(nil)

func NewDynamoSnapshotCache(client DynamoDBClient, tableName string, ttl time.Duration) *DynamoSnapshotCache {
	return &DynamoSnapshotCache{
		client:    client,
		tableName: tableName,
		ttl:       ttl,
		clock:     systemClock{},
	}
}

// GetStations retrieves the cached snapshot for a contract
func (c *DynamoSnapshotCache) GetStations(ctx context.Context, contract string) ([]models.Station, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"contract": &types.AttributeValueMemberS{Value: contract},
		},
	}

	result, err := c.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("getting snapshot from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var record models.SnapshotRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("unmarshaling snapshot record: %w", err)
	}

	if record.Expired(c.clock.Now().Unix()) {
		log.Debug().
			Str("contract", contract).
			Int64("ttl", record.TTL).
			Msg("Cache expired")
		return nil, nil
	}

	return record.Stations, nil
}

// SaveStations overwrites the snapshot for a contract
func (c *DynamoSnapshotCache) SaveStations(ctx context.Context, contract string, stations []models.Station) error {
	now := c.clock.Now().Unix()
	record := models.SnapshotRecord{
		Contract:    contract,
		Stations:    stations,
		LastUpdated: now,
		TTL:         now + int64(c.ttl.Seconds()),
	}

	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid snapshot record: %w", err)
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("marshaling snapshot record: %w", err)
	}

	if _, err := c.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("putting snapshot in DynamoDB: %w", err)
	}

	log.Debug().
		Str("contract", contract).
		Int("station_count", len(stations)).
		Msg("Saved snapshot to cache")

	return nil
}
