package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/fretdex/model"
)

// Dynamo keeps search results in a DynamoDB table keyed by "PK". Items
// carry an "ExpiresAt" epoch for the table's TTL setting.
type Dynamo struct {
	client dynamodbiface.DynamoDBAPI
	table  string
	ttl    time.Duration
	now    func() time.Time
}

type DynamoConfig struct {
	Endpoint string
	Region   string
	Table    string
	TTL      time.Duration
}

func NewDynamo(cfg DynamoConfig) (*Dynamo, error) {
	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("creating DynamoDB session: %w", err)
	}
	return NewDynamoWithClient(dynamodb.New(sess), cfg.Table, cfg.TTL), nil
}

func NewDynamoWithClient(client dynamodbiface.DynamoDBAPI, table string, ttl time.Duration) *Dynamo {
	return &Dynamo{client: client, table: table, ttl: ttl, now: time.Now}
}

func (d *Dynamo) Get(ctx context.Context, key string) ([]model.Shape, error) {
	out, err := d.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(key)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("DynamoDB get %s: %w", key, err)
	}
	if len(out.Item) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMiss, key)
	}
	return d.decodeItem(key, out.Item)
}

func (d *Dynamo) Put(ctx context.Context, key string, shapes []model.Shape) error {
	item, err := d.encodeItem(key, shapes)
	if err != nil {
		return err
	}
	_, err = d.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("DynamoDB put %s: %w", key, err)
	}
	return nil
}

func (d *Dynamo) encodeItem(key string, shapes []model.Shape) (map[string]*dynamodb.AttributeValue, error) {
	data, err := json.Marshal(shapes)
	if err != nil {
		return nil, fmt.Errorf("encoding shapes for %s: %w", key, err)
	}
	item := map[string]*dynamodb.AttributeValue{
		"PK":     {S: aws.String(key)},
		"Shapes": {S: aws.String(string(data))},
	}
	if d.ttl > 0 {
		expires := d.now().Add(d.ttl).Unix()
		item["ExpiresAt"] = &dynamodb.AttributeValue{N: aws.String(strconv.FormatInt(expires, 10))}
	}
	return item, nil
}

func (d *Dynamo) decodeItem(key string, item map[string]*dynamodb.AttributeValue) ([]model.Shape, error) {
	if v := item["ExpiresAt"]; v != nil && v.N != nil {
		// TTL deletion in DynamoDB is lazy, so expired items can still come back
		expires, err := strconv.ParseInt(*v.N, 10, 64)
		if err == nil && d.now().Unix() >= expires {
			return nil, fmt.Errorf("%w: %s expired", ErrMiss, key)
		}
	}
	v := item["Shapes"]
	if v == nil || v.S == nil {
		return nil, fmt.Errorf("%w: %s has no shapes", ErrMiss, key)
	}
	var shapes []model.Shape
	if err := json.Unmarshal([]byte(*v.S), &shapes); err != nil {
		return nil, fmt.Errorf("decoding shapes for %s: %w", key, err)
	}
	return shapes, nil
}
