package repository

import (
	"context"
	"errors"
	"time"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the repository.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, opts ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type profileItem struct {
	Key           string `dynamodbav:"key"`
	ID            string `dynamodbav:"id"`
	FullName      string `dynamodbav:"full_name"`
	ContactNumber string `dynamodbav:"contact_number"`
	EntityType    string `dynamodbav:"entity_type"`
	Lat           string `dynamodbav:"lat,omitempty"`
	Lng           string `dynamodbav:"lng,omitempty"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type transactionItem struct {
	ID         string `dynamodbav:"id"`
	Material   string `dynamodbav:"material"`
	Weight     string `dynamodbav:"weight"`
	Rate       string `dynamodbav:"rate"`
	Total      string `dynamodbav:"total"`
	BuyerName  string `dynamodbav:"buyer_name"`
	SellerName string `dynamodbav:"seller_name"`
	Timestamp  string `dynamodbav:"timestamp"`
	CO2Saved   string `dynamodbav:"co2_saved"`
}

type ledgerItem struct {
	Key          string            `dynamodbav:"key"`
	Transactions []transactionItem `dynamodbav:"transactions"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
}

// DynamoStateRepository persists both records in one DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
//
// The profile lives under key "nexus_user", the ledger under "nexus_txs".
// Floats are stored as strings so values round-trip exactly.
type DynamoStateRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IStateRepository = (*DynamoStateRepository)(nil)

func NewDynamoStateRepository(ddb DynamoDBAPI, tableName string) *DynamoStateRepository {
	if tableName == "" {
		tableName = DefaultStateTable
	}
	return &DynamoStateRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

// Migrate creates the table when it does not exist yet.
func (r *DynamoStateRepository) Migrate(ctx context.Context) error {
	_, err := r.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(r.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("key"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("key"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return nil
		}
		return eris.Wrapf(err, "dynamodb: create table %s", r.tableName)
	}
	return nil
}

func (r *DynamoStateRepository) Close() error { return nil }

func (r *DynamoStateRepository) LoadProfile(ctx context.Context) (entities.UserProfile, error) {
	av, err := r.get(ctx, ProfileKey)
	if err != nil || len(av) == 0 {
		return entities.UserProfile{}, err
	}
	var it profileItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.UserProfile{}, eris.Wrap(err, "dynamodb: unmarshal profile")
	}
	return fromProfileItem(it), nil
}

func (r *DynamoStateRepository) SaveProfile(ctx context.Context, p entities.UserProfile) error {
	it := toProfileItem(p)
	it.UpdatedAt = formatTime(r.now())
	return r.put(ctx, it)
}

func (r *DynamoStateRepository) DeleteProfile(ctx context.Context) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       keyOf(ProfileKey),
	})
	return eris.Wrap(err, "dynamodb: delete profile")
}

func (r *DynamoStateRepository) LoadLedger(ctx context.Context) ([]entities.Transaction, error) {
	out := []entities.Transaction{}
	av, err := r.get(ctx, LedgerKey)
	if err != nil {
		return nil, err
	}
	if len(av) == 0 {
		return out, nil
	}
	var it ledgerItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return nil, eris.Wrap(err, "dynamodb: unmarshal ledger")
	}
	for _, tx := range it.Transactions {
		out = append(out, fromTransactionItem(tx))
	}
	return out, nil
}

func (r *DynamoStateRepository) SaveLedger(ctx context.Context, ledger []entities.Transaction) error {
	it := ledgerItem{
		Key:          LedgerKey,
		Transactions: make([]transactionItem, 0, len(ledger)),
		UpdatedAt:    formatTime(r.now()),
	}
	for _, tx := range ledger {
		it.Transactions = append(it.Transactions, toTransactionItem(tx))
	}
	return r.put(ctx, it)
}

func (r *DynamoStateRepository) get(ctx context.Context, key string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, eris.Wrapf(err, "dynamodb: get %s", key)
	}
	return out.Item, nil
}

func (r *DynamoStateRepository) put(ctx context.Context, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return eris.Wrap(err, "dynamodb: marshal")
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return eris.Wrap(err, "dynamodb: put")
}

func keyOf(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"key": &types.AttributeValueMemberS{Value: key},
	}
}

func toProfileItem(p entities.UserProfile) profileItem {
	it := profileItem{
		Key:           ProfileKey,
		ID:            p.ID,
		FullName:      p.FullName,
		ContactNumber: p.ContactNumber,
		EntityType:    string(p.EntityType),
	}
	if p.Location != nil {
		it.Lat = floatToString(p.Location.Lat)
		it.Lng = floatToString(p.Location.Lng)
	}
	return it
}

func fromProfileItem(it profileItem) entities.UserProfile {
	p := entities.UserProfile{
		ID:            it.ID,
		FullName:      it.FullName,
		ContactNumber: it.ContactNumber,
		EntityType:    entities.EntityType(it.EntityType),
	}
	if it.Lat != "" && it.Lng != "" {
		p.Location = &entities.Coordinates{Lat: parseFloat(it.Lat), Lng: parseFloat(it.Lng)}
	}
	return p
}

func toTransactionItem(tx entities.Transaction) transactionItem {
	return transactionItem{
		ID:         tx.ID,
		Material:   tx.Material,
		Weight:     floatToString(tx.Weight),
		Rate:       floatToString(tx.Rate),
		Total:      floatToString(tx.Total),
		BuyerName:  tx.BuyerName,
		SellerName: tx.SellerName,
		Timestamp:  formatTime(tx.Timestamp),
		CO2Saved:   floatToString(tx.CO2Saved),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	return entities.Transaction{
		ID:         it.ID,
		Material:   it.Material,
		Weight:     parseFloat(it.Weight),
		Rate:       parseFloat(it.Rate),
		Total:      parseFloat(it.Total),
		BuyerName:  it.BuyerName,
		SellerName: it.SellerName,
		Timestamp:  parseTime(it.Timestamp),
		CO2Saved:   parseFloat(it.CO2Saved),
	}
}
