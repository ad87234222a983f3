//go:generate go run go.uber.org/mock/mockgen -source=room.go -destination=../mocks/mock_room_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"

	"chat-hub/domain"
	"chat-hub/errors"
	pb "chat-hub/proto/storage"
)

const (
	roomPrefix   = "room:"
	directPrefix = "direct:"
)

type IRoomRepository interface {
	Create(room domain.Room) (domain.Room, error)
	Get(roomID string) (domain.Room, error)
	ResolveMembers(roomID string) ([]string, error)
	AddMember(roomID string, member domain.Member) (domain.Room, error)
	RemoveMember(roomID, userID string) (domain.Room, error)
	UpdateMemberRole(roomID, userID string, role domain.Role) (domain.Room, error)
	SetLastMessage(roomID, messageID string, at time.Time) error
	AdvanceWatermark(roomID, userID string, at time.Time) (time.Time, error)
	ListFor(userID string, page, limit int) ([]domain.Room, int64, error)
}

type RoomRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRoomRepository(db *badger.DB, log *slog.Logger) *RoomRepository {
	return &RoomRepository{db: db, log: log}
}

// Create persists a room. Direct rooms are idempotent per unordered user
// pair: when the pair key already exists, the existing room is returned
// instead of creating a duplicate. The pair key and the room record are
// written in the same transaction.
func (r RoomRepository) Create(room domain.Room) (domain.Room, error) {
	var existingID string

	err := r.db.Update(func(txn *badger.Txn) error {
		if room.Type == domain.RoomDirect {
			pairKey := []byte(directPrefix + domain.DirectPairKey(room.Members[0].UserID, room.Members[1].UserID))
			item, err := txn.Get(pairKey)
			if err == nil {
				return item.Value(func(val []byte) error {
					existingID = string(val)
					return nil
				})
			}
			if err != badger.ErrKeyNotFound {
				return err
			}
			if err := txn.Set(pairKey, []byte(room.ID)); err != nil {
				return err
			}
		}
		data, err := proto.Marshal(fromRoom(room))
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}
		return txn.Set([]byte(roomPrefix+room.ID), data)
	})
	if err != nil {
		return domain.Room{}, err
	}
	if existingID != "" {
		r.log.Debug("Direct room already exists", "room_id", existingID)
		return r.Get(existingID)
	}
	return room, nil
}

func (r RoomRepository) Get(roomID string) (domain.Room, error) {
	var roomPb pb.Room
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(roomPrefix + roomID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &roomPb)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Room{}, errors.ErrRoomNotFound
	}
	if err != nil {
		return domain.Room{}, err
	}
	room := toRoom(&roomPb)
	if !room.Active {
		return domain.Room{}, errors.ErrRoomNotFound
	}
	return room, nil
}

func (r RoomRepository) ResolveMembers(roomID string) ([]string, error) {
	room, err := r.Get(roomID)
	if err != nil {
		return nil, err
	}
	return room.MemberIDs(), nil
}

// AddMember appends a membership record. Duplicate membership and the
// member cap are checked inside the transaction, so two concurrent adds
// cannot both slip past the limit.
func (r RoomRepository) AddMember(roomID string, member domain.Member) (domain.Room, error) {
	return r.mutate(roomID, func(room *domain.Room) error {
		if room.IsMember(member.UserID) {
			return errors.ErrMemberAlreadyExists
		}
		if room.Full() {
			return errors.ErrRoomFull
		}
		room.Members = append(room.Members, member)
		room.LastActivityAt = member.JoinedAt
		return nil
	})
}

func (r RoomRepository) RemoveMember(roomID, userID string) (domain.Room, error) {
	return r.mutate(roomID, func(room *domain.Room) error {
		for i, m := range room.Members {
			if m.UserID == userID {
				room.Members = append(room.Members[:i], room.Members[i+1:]...)
				return nil
			}
		}
		return errors.ErrUserNotFound
	})
}

func (r RoomRepository) UpdateMemberRole(roomID, userID string, role domain.Role) (domain.Room, error) {
	return r.mutate(roomID, func(room *domain.Room) error {
		for i, m := range room.Members {
			if m.UserID == userID {
				room.Members[i].Role = role
				return nil
			}
		}
		return errors.ErrUserNotFound
	})
}

func (r RoomRepository) SetLastMessage(roomID, messageID string, at time.Time) error {
	_, err := r.mutate(roomID, func(room *domain.Room) error {
		room.LastMessageID = messageID
		room.LastActivityAt = at
		return nil
	})
	return err
}

// AdvanceWatermark moves the member's lastReadAt forward, never backward.
// It returns the effective watermark after the operation.
func (r RoomRepository) AdvanceWatermark(roomID, userID string, at time.Time) (time.Time, error) {
	var effective time.Time
	_, err := r.mutate(roomID, func(room *domain.Room) error {
		for i, m := range room.Members {
			if m.UserID == userID {
				if at.After(m.LastReadAt) {
					room.Members[i].LastReadAt = at
				}
				effective = room.Members[i].LastReadAt
				return nil
			}
		}
		return errors.ErrForbidden
	})
	return effective, err
}

// ListFor scans all rooms and keeps those the user belongs to, most
// recently active first. Room count stays small enough in an embedded
// deployment that a full prefix scan beats maintaining a second index.
func (r RoomRepository) ListFor(userID string, page, limit int) ([]domain.Room, int64, error) {
	var rooms []domain.Room
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(roomPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var roomPb pb.Room
				if err := proto.Unmarshal(val, &roomPb); err != nil {
					return err
				}
				room := toRoom(&roomPb)
				if room.Active && room.IsMember(userID) {
					rooms = append(rooms, room)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].LastActivityAt.After(rooms[j].LastActivityAt)
	})

	total := int64(len(rooms))
	start, end := pageBounds(len(rooms), page, limit)
	return rooms[start:end], total, nil
}

func (r RoomRepository) mutate(roomID string, apply func(*domain.Room) error) (domain.Room, error) {
	var updated domain.Room
	err := r.db.Update(func(txn *badger.Txn) error {
		key := []byte(roomPrefix + roomID)
		item, err := txn.Get(key)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return errors.ErrRoomNotFound
			}
			return err
		}
		var roomPb pb.Room
		if err := item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &roomPb)
		}); err != nil {
			return err
		}
		room := toRoom(&roomPb)
		if !room.Active {
			return errors.ErrRoomNotFound
		}
		if err := apply(&room); err != nil {
			return err
		}
		data, err := proto.Marshal(fromRoom(room))
		if err != nil {
			return err
		}
		updated = room
		return txn.Set(key, data)
	})
	if err != nil {
		return domain.Room{}, err
	}
	return updated, nil
}

// pageBounds clamps 1-based page/limit to valid slice bounds.
func pageBounds(n, page, limit int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start > n {
		start = n
	}
	end := start + limit
	if end > n {
		end = n
	}
	return start, end
}
