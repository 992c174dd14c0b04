package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// ErrDuplicateKey is returned when creating an item whose key is already taken.
var ErrDuplicateKey = errors.New("item with the same key already exists")

// dynamoTable stores one entity type per table, keyed by a single string attribute.
// I is the item struct carrying the dynamodbav tags.
type dynamoTable[E any, I any] struct {
	ddb       DynamoAPI
	tableName string
	keyAttr   string
	toItem    func(E) I
	fromItem  func(I) E
	keyOf     func(E) string
	createdAt func(E) time.Time
}

// put writes e. mustExist selects between create (no item with the key yet) and
// update (item must already exist); a failed condition reports ok=false.
func (t dynamoTable[E, I]) put(ctx context.Context, e E, mustExist bool) (bool, error) {
	av, err := attributevalue.MarshalMap(t.toItem(e))
	if err != nil {
		return false, err
	}

	cond := "attribute_not_exists(#pk)"
	if mustExist {
		cond = "attribute_exists(#pk)"
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.tableName),
		Item:                av,
		ConditionExpression: aws.String(cond),
		ExpressionAttributeNames: map[string]string{
			"#pk": t.keyAttr,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (t dynamoTable[E, I]) create(ctx context.Context, e E) (E, error) {
	var zero E
	ok, err := t.put(ctx, e, false)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrDuplicateKey
	}
	return e, nil
}

func (t dynamoTable[E, I]) get(ctx context.Context, key string) (E, error) {
	var zero E
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.tableName),
		Key:            t.key(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, err
	}
	if len(out.Item) == 0 {
		return zero, nil
	}

	var it I
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return zero, err
	}
	return t.fromItem(it), nil
}

func (t dynamoTable[E, I]) delete(ctx context.Context, key string) (bool, error) {
	out, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(t.tableName),
		Key:          t.key(key),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// list scans the whole table. Scan order is arbitrary, so results are sorted by
// creation time (then key) to give callers a stable collection order.
func (t dynamoTable[E, I]) list(ctx context.Context) ([]E, error) {
	p := dynamodb.NewScanPaginator(t.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(t.tableName),
		ConsistentRead: aws.Bool(true),
	})

	out := make([]E, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []I
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, t.fromItem(it))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := t.createdAt(out[i]), t.createdAt(out[j])
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return t.keyOf(out[i]) < t.keyOf(out[j])
	})
	return out, nil
}

func (t dynamoTable[E, I]) key(v string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		t.keyAttr: &types.AttributeValueMemberS{Value: v},
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
