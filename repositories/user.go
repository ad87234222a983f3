//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"

	"chat-hub/domain"
	"chat-hub/errors"
	pb "chat-hub/proto/storage"
)

const (
	userIDPrefix   = "user:id:"
	userNamePrefix = "user:name:"
)

type IUserRepository interface {
	Create(user domain.User) error
	GetByID(userID string) (domain.User, error)
	GetByUsername(username string) (domain.User, error)
	SetStatus(userID string, status domain.Status, lastSeen time.Time) error
	Deactivate(userID string) error
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists the user under its id key and claims the username key
// in the same transaction, so a username collision can never half-apply.
func (u UserRepository) Create(user domain.User) error {
	data, err := proto.Marshal(fromUser(user))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return u.db.Update(func(txn *badger.Txn) error {
		nameKey := []byte(userNamePrefix + user.Username)
		if _, err := txn.Get(nameKey); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if err := txn.Set(nameKey, []byte(user.ID)); err != nil {
			return err
		}
		return txn.Set([]byte(userIDPrefix+user.ID), data)
	})
}

func (u UserRepository) GetByID(userID string) (domain.User, error) {
	var userPb pb.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userIDPrefix + userID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &userPb)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return toUser(&userPb), nil
}

func (u UserRepository) GetByUsername(username string) (domain.User, error) {
	var userID string
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userNamePrefix + username))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			userID = string(val)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return u.GetByID(userID)
}

// SetStatus updates presence fields in one read-modify-write transaction.
// Badger serializes conflicting transactions, so concurrent status
// changes cannot lose each other's unrelated fields.
func (u UserRepository) SetStatus(userID string, status domain.Status, lastSeen time.Time) error {
	return u.mutate(userID, func(userPb *pb.User) {
		userPb.Status = string(status)
		userPb.LastSeenAt = lastSeen.UnixNano()
	})
}

func (u UserRepository) Deactivate(userID string) error {
	return u.mutate(userID, func(userPb *pb.User) {
		userPb.Active = false
	})
}

func (u UserRepository) mutate(userID string, apply func(*pb.User)) error {
	err := u.db.Update(func(txn *badger.Txn) error {
		key := []byte(userIDPrefix + userID)
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		var userPb pb.User
		if err := item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &userPb)
		}); err != nil {
			return err
		}
		apply(&userPb)
		data, err := proto.Marshal(&userPb)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	if err == badger.ErrKeyNotFound {
		return errors.ErrUserNotFound
	}
	return err
}
