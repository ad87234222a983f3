//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"

	"chat-hub/domain"
	"chat-hub/errors"
	pb "chat-hub/proto/storage"
)

const (
	msgPrefix   = "msg:"
	msgIDPrefix = "msgid:"
)

type IMessageRepository interface {
	Store(msg domain.Message) error
	GetByID(messageID string) (domain.Message, error)
	ApplyEdit(messageID, editorID, newContent string, at time.Time) (domain.Message, error)
	ApplyDelete(messageID, deleterID string, at time.Time) (domain.Message, error)
	AddReaction(messageID, userID, emoji string) (domain.Message, bool, error)
	RemoveReaction(messageID, userID, emoji string) (domain.Message, bool, error)
	RecordRead(messageIDs []string, userID string, at time.Time) error
	ListByRoom(roomID string, page, limit int) ([]domain.Message, int64, error)
	CountUnread(roomID string, after time.Time, excludeSender string) (int64, error)
	Search(ctx context.Context, roomID, query string, page, limit int) ([]domain.Message, uint64, error)
}

type MessageRepository struct {
	db    *badger.DB
	index *bluge.Writer
	log   *slog.Logger
}

func NewMessageRepository(db *badger.DB, index *bluge.Writer, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, index: index, log: log}
}

// chronoKey formats the primary key as "msg:{room}:{timestamp_padded}:{id}":
//  1. 19-digit zero padding keeps lexicographical order chronological.
//  2. The message id disambiguates two messages landing on the same
//     nanosecond.
func chronoKey(roomID string, at time.Time, messageID string) []byte {
	return []byte(fmt.Sprintf("%s%s:%019d:%s", msgPrefix, roomID, at.UnixNano(), messageID))
}

// Store persists a new message under its chronological key plus an id
// lookup key, then indexes its content for search. The two badger keys
// are written in one transaction.
func (m MessageRepository) Store(msg domain.Message) error {
	data, err := proto.Marshal(fromMessage(msg))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	key := chronoKey(msg.RoomID, msg.CreatedAt, msg.ID)
	err = m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(msgIDPrefix+msg.ID), key); err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return err
	}
	return m.indexContent(msg)
}

func (m MessageRepository) GetByID(messageID string) (domain.Message, error) {
	var msgPb pb.Message
	err := m.db.View(func(txn *badger.Txn) error {
		return m.loadByID(txn, messageID, &msgPb)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return toMessage(&msgPb), nil
}

// ApplyEdit re-checks every edit precondition inside the transaction:
// the service layer validated them already, but the record may have
// changed between that read and this write.
func (m MessageRepository) ApplyEdit(messageID, editorID, newContent string, at time.Time) (domain.Message, error) {
	msg, err := m.mutate(messageID, func(msgPb *pb.Message) error {
		current := toMessage(msgPb)
		if err := current.EditableBy(editorID, at); err != nil {
			return err
		}
		msgPb.EditHistory = append(msgPb.EditHistory, &pb.EditRecord{
			Content:  msgPb.Content,
			EditedAt: at.UnixNano(),
		})
		msgPb.Content = newContent
		msgPb.EditedAt = at.UnixNano()
		return nil
	})
	if err != nil {
		return domain.Message{}, err
	}
	return msg, m.indexContent(msg)
}

// ApplyDelete is terminal: content is replaced by the placeholder and the
// message leaves the search index.
func (m MessageRepository) ApplyDelete(messageID, deleterID string, at time.Time) (domain.Message, error) {
	msg, err := m.mutate(messageID, func(msgPb *pb.Message) error {
		if msgPb.Deleted {
			return errors.ErrMessageDeleted
		}
		msgPb.Deleted = true
		msgPb.Content = domain.DeletedPlaceholder
		msgPb.DeletedBy = deleterID
		msgPb.DeletedAt = at.UnixNano()
		return nil
	})
	if err != nil {
		return domain.Message{}, err
	}
	if err := m.index.Delete(bluge.Identifier(messageID)); err != nil {
		m.log.Warn("Failed to drop message from search index", "message_id", messageID, "error", err)
	}
	return msg, nil
}

// AddReaction is an idempotent toggle: reacting twice with the same emoji
// changes nothing and reports changed=false so no event is fanned out.
func (m MessageRepository) AddReaction(messageID, userID, emoji string) (domain.Message, bool, error) {
	changed := false
	msg, err := m.mutate(messageID, func(msgPb *pb.Message) error {
		if msgPb.Deleted {
			return errors.ErrMessageDeleted
		}
		current := toMessage(msgPb)
		if current.HasReaction(userID, emoji) {
			return nil
		}
		if msgPb.Reactions == nil {
			msgPb.Reactions = make(map[string]*pb.UserSet)
		}
		set := msgPb.Reactions[emoji]
		if set == nil {
			set = &pb.UserSet{}
			msgPb.Reactions[emoji] = set
		}
		set.UserIds = append(set.UserIds, userID)
		changed = true
		return nil
	})
	if err != nil {
		return domain.Message{}, false, err
	}
	return msg, changed, nil
}

// RemoveReaction drops the user from the emoji's set; removing the last
// user removes the emoji entry entirely.
func (m MessageRepository) RemoveReaction(messageID, userID, emoji string) (domain.Message, bool, error) {
	changed := false
	msg, err := m.mutate(messageID, func(msgPb *pb.Message) error {
		if msgPb.Deleted {
			return errors.ErrMessageDeleted
		}
		current := toMessage(msgPb)
		if !current.HasReaction(userID, emoji) {
			return nil
		}
		set := msgPb.Reactions[emoji]
		for i, id := range set.UserIds {
			if id == userID {
				set.UserIds = append(set.UserIds[:i], set.UserIds[i+1:]...)
				changed = true
				break
			}
		}
		if len(set.UserIds) == 0 {
			delete(msgPb.Reactions, emoji)
		}
		return nil
	})
	if err != nil {
		return domain.Message{}, false, err
	}
	return msg, changed, nil
}

// RecordRead stamps explicit read receipts on the given messages.
// Unknown ids are skipped: receipts are best-effort bookkeeping, the
// authoritative unread state is the member watermark.
func (m MessageRepository) RecordRead(messageIDs []string, userID string, at time.Time) error {
	for _, id := range messageIDs {
		_, err := m.mutate(id, func(msgPb *pb.Message) error {
			if msgPb.ReadBy == nil {
				msgPb.ReadBy = make(map[string]int64)
			}
			if _, ok := msgPb.ReadBy[userID]; !ok {
				msgPb.ReadBy[userID] = at.UnixNano()
			}
			return nil
		})
		if err != nil && !stderrors.Is(err, errors.ErrMessageNotFound) {
			return err
		}
	}
	return nil
}

// ListByRoom returns one page of a room's messages, newest first.
func (m MessageRepository) ListByRoom(roomID string, page, limit int) ([]domain.Message, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}
	skip := (page - 1) * limit

	var messages []domain.Message
	var total int64
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(msgPrefix + roomID + ":")
		// Reverse iteration starts past the newest key for this room.
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)

		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			total++
			if total <= int64(skip) || len(messages) == limit {
				continue
			}
			err := it.Item().Value(func(val []byte) error {
				var msgPb pb.Message
				if err := proto.Unmarshal(val, &msgPb); err != nil {
					return err
				}
				messages = append(messages, toMessage(&msgPb))
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
	return messages, total, nil
}

// CountUnread counts non-deleted messages created strictly after the
// watermark whose sender is not the member themselves.
func (m MessageRepository) CountUnread(roomID string, after time.Time, excludeSender string) (int64, error) {
	var count int64
	err := m.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(msgPrefix + roomID + ":")
		seekKey := append(append([]byte{}, prefix...), []byte(fmt.Sprintf("%019d", after.UnixNano()+1))...)

		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var msgPb pb.Message
				if err := proto.Unmarshal(val, &msgPb); err != nil {
					return err
				}
				if !msgPb.Deleted && msgPb.SenderId != excludeSender && msgPb.CreatedAt > after.UnixNano() {
					count++
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return count, err
}

// Search runs a full-text match over the room's indexed content and
// resolves hits back to the badger records.
func (m MessageRepository) Search(ctx context.Context, roomID, query string, page, limit int) ([]domain.Message, uint64, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}

	reader, err := m.index.Reader()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(query).SetField("content")).
		AddMust(bluge.NewTermQuery(roomID).SetField("room_id"))

	search := bluge.NewTopNSearch(limit, q).
		SetFrom((page - 1) * limit).
		WithStandardAggregations()

	dmi, err := reader.Search(ctx, search)
	if err != nil {
		return nil, 0, fmt.Errorf("search failed: %w", err)
	}

	var ids []string
	match, err := dmi.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
			}
			return true
		})
		if visitErr != nil {
			return nil, 0, visitErr
		}
		match, err = dmi.Next()
	}
	if err != nil {
		return nil, 0, err
	}

	messages := make([]domain.Message, 0, len(ids))
	for _, id := range ids {
		msg, err := m.GetByID(id)
		if err != nil {
			// Index can briefly lag behind the primary store.
			m.log.Debug("Search hit without badger record", "message_id", id)
			continue
		}
		if !msg.Deleted {
			messages = append(messages, msg)
		}
	}
	return messages, dmi.Aggregations().Count(), nil
}

func (m MessageRepository) indexContent(msg domain.Message) error {
	if msg.Type == domain.MessageSystem {
		return nil
	}
	doc := bluge.NewDocument(msg.ID).
		AddField(bluge.NewTextField("content", msg.Content)).
		AddField(bluge.NewKeywordField("room_id", msg.RoomID)).
		AddField(bluge.NewDateTimeField("created_at", msg.CreatedAt))
	return m.index.Update(doc.ID(), doc)
}

// loadByID resolves the id lookup key into the chronological record.
func (m MessageRepository) loadByID(txn *badger.Txn, messageID string, out *pb.Message) error {
	item, err := txn.Get([]byte(msgIDPrefix + messageID))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return errors.ErrMessageNotFound
		}
		return err
	}
	var key []byte
	if err := item.Value(func(val []byte) error {
		key = append([]byte{}, val...)
		return nil
	}); err != nil {
		return err
	}
	item, err = txn.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return errors.ErrMessageNotFound
		}
		return err
	}
	return item.Value(func(val []byte) error {
		return proto.Unmarshal(val, out)
	})
}

func (m MessageRepository) mutate(messageID string, apply func(*pb.Message) error) (domain.Message, error) {
	var updated domain.Message
	err := m.db.Update(func(txn *badger.Txn) error {
		var msgPb pb.Message
		if err := m.loadByID(txn, messageID, &msgPb); err != nil {
			return err
		}
		if err := apply(&msgPb); err != nil {
			return err
		}
		data, err := proto.Marshal(&msgPb)
		if err != nil {
			return err
		}
		updated = toMessage(&msgPb)
		return txn.Set(chronoKey(msgPb.RoomId, updated.CreatedAt, msgPb.Id), data)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return updated, nil
}
