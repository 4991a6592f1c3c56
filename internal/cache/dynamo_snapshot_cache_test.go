package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sevici/backend-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ DynamoDBClient = (*mockDynamoDBClient)(nil)

type mockDynamoDBClient struct {
	getItemFunc func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	putItemFunc func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

func (m *mockDynamoDBClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if m.getItemFunc != nil {
		return m.getItemFunc(ctx, params, optFns...)
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (m *mockDynamoDBClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if m.putItemFunc != nil {
		return m.putItemFunc(ctx, params, optFns...)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func newTestDynamoCache(client DynamoDBClient, clock clock) *DynamoSnapshotCache {
	return &DynamoSnapshotCache{
		client:    client,
		tableName: "test-snapshots",
		ttl:       time.Minute,
		clock:     clock,
	}
}

func TestDynamoSnapshotCache_GetStations(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		getItem func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
		want    []models.Station
		wantErr bool
	}{
		{
			name: "valid item",
			getItem: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
				item, err := attributevalue.MarshalMap(models.SnapshotRecord{
					Contract:    testContract,
					Stations:    createTestStations(),
					LastUpdated: now.Unix(),
					TTL:         now.Add(time.Minute).Unix(),
				})
				if err != nil {
					return nil, err
				}
				return &dynamodb.GetItemOutput{Item: item}, nil
			},
			want: createTestStations(),
		},
		{
			name: "expired item",
			getItem: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
				item, err := attributevalue.MarshalMap(models.SnapshotRecord{
					Contract:    testContract,
					Stations:    createTestStations(),
					LastUpdated: now.Add(-2 * time.Minute).Unix(),
					TTL:         now.Add(-time.Minute).Unix(),
				})
				if err != nil {
					return nil, err
				}
				return &dynamodb.GetItemOutput{Item: item}, nil
			},
			want: nil,
		},
		{
			name: "missing item",
			getItem: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{}, nil
			},
			want: nil,
		},
		{
			name: "dynamodb error",
			getItem: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
				return nil, errors.New("throttled")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockDynamoDBClient{getItemFunc: tt.getItem}
			cache := newTestDynamoCache(client, &mockClock{now: now})

			got, err := cache.GetStations(context.Background(), testContract)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDynamoSnapshotCache_GetStationsKey(t *testing.T) {
	client := &mockDynamoDBClient{
		getItemFunc: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, "test-snapshots", aws.ToString(params.TableName))
			key, ok := params.Key["contract"].(*types.AttributeValueMemberS)
			require.True(t, ok)
			assert.Equal(t, testContract, key.Value)
			return &dynamodb.GetItemOutput{}, nil
		},
	}

	_, err := newTestDynamoCache(client, &mockClock{now: time.Now()}).GetStations(context.Background(), testContract)
	assert.NoError(t, err)
}

func TestDynamoSnapshotCache_SaveStations(t *testing.T) {
	now := time.Now()

	t.Run("writes record with ttl", func(t *testing.T) {
		client := &mockDynamoDBClient{
			putItemFunc: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
				assert.Equal(t, "test-snapshots", aws.ToString(params.TableName))

				var record models.SnapshotRecord
				require.NoError(t, attributevalue.UnmarshalMap(params.Item, &record))
				assert.Equal(t, testContract, record.Contract)
				assert.Equal(t, now.Unix(), record.LastUpdated)
				assert.Equal(t, now.Add(time.Minute).Unix(), record.TTL)
				assert.Equal(t, createTestStations(), record.Stations)
				return &dynamodb.PutItemOutput{}, nil
			},
		}

		err := newTestDynamoCache(client, &mockClock{now: now}).SaveStations(context.Background(), testContract, createTestStations())
		assert.NoError(t, err)
	})

	t.Run("rejects negative counts", func(t *testing.T) {
		stations := createTestStations()
		stations[0].AvailableBikes = -1

		err := newTestDynamoCache(&mockDynamoDBClient{}, &mockClock{now: now}).SaveStations(context.Background(), testContract, stations)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid snapshot record")
	})

	t.Run("propagates put error", func(t *testing.T) {
		client := &mockDynamoDBClient{
			putItemFunc: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
				return nil, errors.New("table not found")
			},
		}

		err := newTestDynamoCache(client, &mockClock{now: now}).SaveStations(context.Background(), testContract, createTestStations())
		assert.Error(t, err)
	})
}
