package repository

import (
	"context"
	"time"

	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase/interfaces"
)

const defaultUsersTableName = "users"

type userItem struct {
	Email        string `dynamodbav:"email"`
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name,omitempty"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// UserDynamoRepository persists operator accounts.
//
// Table requirements:
//   - PK: email (string)
//
// Keying by email makes "one account per email" a conditional put.
type UserDynamoRepository struct {
	table dynamoTable[entities.User, userItem]
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI) *UserDynamoRepository {
	return &UserDynamoRepository{table: dynamoTable[entities.User, userItem]{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
		keyAttr:   "email",
		toItem:    toUserItem,
		fromItem:  fromUserItem,
		keyOf:     func(u entities.User) string { return u.Email },
		createdAt: func(u entities.User) time.Time { return u.CreatedAt },
	}}
}

// Create returns a zero User when the email is already registered.
func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	ok, err := r.table.put(ctx, u, false)
	if err != nil || !ok {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.table.get(ctx, email)
}

func toUserItem(u entities.User) userItem {
	return userItem{
		Email:        u.Email,
		ID:           u.ID,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		CreatedAt:    formatTime(u.CreatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
