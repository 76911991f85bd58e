package repository

import (
	"context"
	"encoding/json"
	"time"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSnapshotsTableName = "workshop_snapshots"
	snapshotPartitionKey      = "job-store"
)

type snapshotItem struct {
	ID        string `dynamodbav:"id"`
	Document  string `dynamodbav:"document"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SnapshotDynamoRepository persists the job-store snapshot in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole store is one document under a fixed partition key: every save
// rewrites the item, matching the store's write-through full-snapshot model.
// Last write wins; there is exactly one logical writer.

type SnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISnapshotRepository = (*SnapshotDynamoRepository)(nil)

func NewSnapshotDynamoRepository(ddb *dynamodb.Client) *SnapshotDynamoRepository {
	return &SnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SNAPSHOTS_TABLE", defaultSnapshotsTableName),
	}
}

func (r *SnapshotDynamoRepository) Load(ctx context.Context) (entities.Snapshot, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: snapshotPartitionKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Snapshot{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Snapshot{}, false, nil
	}

	var it snapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Snapshot{}, false, err
	}

	var snap entities.Snapshot
	if err := json.Unmarshal([]byte(it.Document), &snap); err != nil {
		return entities.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (r *SnapshotDynamoRepository) Save(ctx context.Context, snap entities.Snapshot) error {
	doc, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(snapshotItem{
		ID:        snapshotPartitionKey,
		Document:  string(doc),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
