package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

// ProjectDynamoRepository persists Project records in DynamoDB.
//
// Table requirements:
//   - PK: project_id (string)
//
// Artifacts are stored as JSON strings; absent artifacts are absent attributes.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client, tableName string) *ProjectDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("PROJECTS_TABLE", defaultProjectsTableName)
	}
	return &ProjectDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	it, err := toProjectColumns(p)
	if err != nil {
		return entities.Project{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pid)"),
		ExpressionAttributeNames: map[string]string{
			"#pid": "project_id",
		},
	})
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"project_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}
	return unmarshalProject(out.Item)
}

// Update merges the named fields with one conditional UpdateItem call.
func (r *ProjectDynamoRepository) Update(ctx context.Context, id string, u entities.ProjectUpdate) (entities.Project, error) {
	cols, err := updateColumns(u, r.now())
	if err != nil {
		return entities.Project{}, err
	}

	expr := "SET "
	names := map[string]string{"#pid": "project_id"}
	values := make(map[string]types.AttributeValue, len(cols))
	for i, c := range cols {
		if i > 0 {
			expr += ", "
		}
		nameKey := fmt.Sprintf("#f%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		expr += nameKey + " = " + valueKey
		names[nameKey] = c[0]
		values[valueKey] = &types.AttributeValueMemberS{Value: c[1]}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"project_id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#pid)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, nil
	}
	return unmarshalProject(out.Attributes)
}

func unmarshalProject(item map[string]types.AttributeValue) (entities.Project, error) {
	var it projectColumns
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectColumns(it)
}
