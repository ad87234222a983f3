// Code generated by MockGen. DO NOT EDIT.
// Source: message.go
//
// Generated by this command:
//
//	mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	domain "chat-hub/domain"
	context "context"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockIMessageRepository is a mock of IMessageRepository interface.
type MockIMessageRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIMessageRepositoryMockRecorder
	isgomock struct{}
}

// MockIMessageRepositoryMockRecorder is the mock recorder for MockIMessageRepository.
type MockIMessageRepositoryMockRecorder struct {
	mock *MockIMessageRepository
}

// NewMockIMessageRepository creates a new mock instance.
func NewMockIMessageRepository(ctrl *gomock.Controller) *MockIMessageRepository {
	mock := &MockIMessageRepository{ctrl: ctrl}
	mock.recorder = &MockIMessageRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIMessageRepository) EXPECT() *MockIMessageRepositoryMockRecorder {
	return m.recorder
}

// AddReaction mocks base method.
func (m *MockIMessageRepository) AddReaction(messageID, userID, emoji string) (domain.Message, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddReaction", messageID, userID, emoji)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// AddReaction indicates an expected call of AddReaction.
func (mr *MockIMessageRepositoryMockRecorder) AddReaction(messageID, userID, emoji any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddReaction", reflect.TypeOf((*MockIMessageRepository)(nil).AddReaction), messageID, userID, emoji)
}

// ApplyDelete mocks base method.
func (m *MockIMessageRepository) ApplyDelete(messageID, deleterID string, at time.Time) (domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyDelete", messageID, deleterID, at)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApplyDelete indicates an expected call of ApplyDelete.
func (mr *MockIMessageRepositoryMockRecorder) ApplyDelete(messageID, deleterID, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyDelete", reflect.TypeOf((*MockIMessageRepository)(nil).ApplyDelete), messageID, deleterID, at)
}

// ApplyEdit mocks base method.
func (m *MockIMessageRepository) ApplyEdit(messageID, editorID, newContent string, at time.Time) (domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyEdit", messageID, editorID, newContent, at)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApplyEdit indicates an expected call of ApplyEdit.
func (mr *MockIMessageRepositoryMockRecorder) ApplyEdit(messageID, editorID, newContent, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyEdit", reflect.TypeOf((*MockIMessageRepository)(nil).ApplyEdit), messageID, editorID, newContent, at)
}

// CountUnread mocks base method.
func (m *MockIMessageRepository) CountUnread(roomID string, after time.Time, excludeSender string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountUnread", roomID, after, excludeSender)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountUnread indicates an expected call of CountUnread.
func (mr *MockIMessageRepositoryMockRecorder) CountUnread(roomID, after, excludeSender any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountUnread", reflect.TypeOf((*MockIMessageRepository)(nil).CountUnread), roomID, after, excludeSender)
}

// GetByID mocks base method.
func (m *MockIMessageRepository) GetByID(messageID string) (domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", messageID)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockIMessageRepositoryMockRecorder) GetByID(messageID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockIMessageRepository)(nil).GetByID), messageID)
}

// ListByRoom mocks base method.
func (m *MockIMessageRepository) ListByRoom(roomID string, page, limit int) ([]domain.Message, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByRoom", roomID, page, limit)
	ret0, _ := ret[0].([]domain.Message)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListByRoom indicates an expected call of ListByRoom.
func (mr *MockIMessageRepositoryMockRecorder) ListByRoom(roomID, page, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByRoom", reflect.TypeOf((*MockIMessageRepository)(nil).ListByRoom), roomID, page, limit)
}

// RecordRead mocks base method.
func (m *MockIMessageRepository) RecordRead(messageIDs []string, userID string, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordRead", messageIDs, userID, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecordRead indicates an expected call of RecordRead.
func (mr *MockIMessageRepositoryMockRecorder) RecordRead(messageIDs, userID, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordRead", reflect.TypeOf((*MockIMessageRepository)(nil).RecordRead), messageIDs, userID, at)
}

// RemoveReaction mocks base method.
func (m *MockIMessageRepository) RemoveReaction(messageID, userID, emoji string) (domain.Message, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveReaction", messageID, userID, emoji)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// RemoveReaction indicates an expected call of RemoveReaction.
func (mr *MockIMessageRepositoryMockRecorder) RemoveReaction(messageID, userID, emoji any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveReaction", reflect.TypeOf((*MockIMessageRepository)(nil).RemoveReaction), messageID, userID, emoji)
}

// Search mocks base method.
func (m *MockIMessageRepository) Search(ctx context.Context, roomID, query string, page, limit int) ([]domain.Message, uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Search", ctx, roomID, query, page, limit)
	ret0, _ := ret[0].([]domain.Message)
	ret1, _ := ret[1].(uint64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Search indicates an expected call of Search.
func (mr *MockIMessageRepositoryMockRecorder) Search(ctx, roomID, query, page, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Search", reflect.TypeOf((*MockIMessageRepository)(nil).Search), ctx, roomID, query, page, limit)
}

// Store mocks base method.
func (m *MockIMessageRepository) Store(msg domain.Message) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Store", msg)
	ret0, _ := ret[0].(error)
	return ret0
}

// Store indicates an expected call of Store.
func (mr *MockIMessageRepositoryMockRecorder) Store(msg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Store", reflect.TypeOf((*MockIMessageRepository)(nil).Store), msg)
}
