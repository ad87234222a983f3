// Code generated by MockGen. DO NOT EDIT.
// Source: room.go
//
// Generated by this command:
//
//	mockgen -source=room.go -destination=../mocks/mock_room_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	domain "chat-hub/domain"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockIRoomRepository is a mock of IRoomRepository interface.
type MockIRoomRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIRoomRepositoryMockRecorder
	isgomock struct{}
}

// MockIRoomRepositoryMockRecorder is the mock recorder for MockIRoomRepository.
type MockIRoomRepositoryMockRecorder struct {
	mock *MockIRoomRepository
}

// NewMockIRoomRepository creates a new mock instance.
func NewMockIRoomRepository(ctrl *gomock.Controller) *MockIRoomRepository {
	mock := &MockIRoomRepository{ctrl: ctrl}
	mock.recorder = &MockIRoomRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIRoomRepository) EXPECT() *MockIRoomRepositoryMockRecorder {
	return m.recorder
}

// AddMember mocks base method.
func (m *MockIRoomRepository) AddMember(roomID string, member domain.Member) (domain.Room, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddMember", roomID, member)
	ret0, _ := ret[0].(domain.Room)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddMember indicates an expected call of AddMember.
func (mr *MockIRoomRepositoryMockRecorder) AddMember(roomID, member any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddMember", reflect.TypeOf((*MockIRoomRepository)(nil).AddMember), roomID, member)
}

// AdvanceWatermark mocks base method.
func (m *MockIRoomRepository) AdvanceWatermark(roomID, userID string, at time.Time) (time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdvanceWatermark", roomID, userID, at)
	ret0, _ := ret[0].(time.Time)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AdvanceWatermark indicates an expected call of AdvanceWatermark.
func (mr *MockIRoomRepositoryMockRecorder) AdvanceWatermark(roomID, userID, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdvanceWatermark", reflect.TypeOf((*MockIRoomRepository)(nil).AdvanceWatermark), roomID, userID, at)
}

// Create mocks base method.
func (m *MockIRoomRepository) Create(room domain.Room) (domain.Room, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", room)
	ret0, _ := ret[0].(domain.Room)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockIRoomRepositoryMockRecorder) Create(room any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockIRoomRepository)(nil).Create), room)
}

// Get mocks base method.
func (m *MockIRoomRepository) Get(roomID string) (domain.Room, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", roomID)
	ret0, _ := ret[0].(domain.Room)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockIRoomRepositoryMockRecorder) Get(roomID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIRoomRepository)(nil).Get), roomID)
}

// ListFor mocks base method.
func (m *MockIRoomRepository) ListFor(userID string, page, limit int) ([]domain.Room, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListFor", userID, page, limit)
	ret0, _ := ret[0].([]domain.Room)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListFor indicates an expected call of ListFor.
func (mr *MockIRoomRepositoryMockRecorder) ListFor(userID, page, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListFor", reflect.TypeOf((*MockIRoomRepository)(nil).ListFor), userID, page, limit)
}

// RemoveMember mocks base method.
func (m *MockIRoomRepository) RemoveMember(roomID, userID string) (domain.Room, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveMember", roomID, userID)
	ret0, _ := ret[0].(domain.Room)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RemoveMember indicates an expected call of RemoveMember.
func (mr *MockIRoomRepositoryMockRecorder) RemoveMember(roomID, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveMember", reflect.TypeOf((*MockIRoomRepository)(nil).RemoveMember), roomID, userID)
}

// ResolveMembers mocks base method.
func (m *MockIRoomRepository) ResolveMembers(roomID string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResolveMembers", roomID)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ResolveMembers indicates an expected call of ResolveMembers.
func (mr *MockIRoomRepositoryMockRecorder) ResolveMembers(roomID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolveMembers", reflect.TypeOf((*MockIRoomRepository)(nil).ResolveMembers), roomID)
}

// SetLastMessage mocks base method.
func (m *MockIRoomRepository) SetLastMessage(roomID, messageID string, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetLastMessage", roomID, messageID, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetLastMessage indicates an expected call of SetLastMessage.
func (mr *MockIRoomRepositoryMockRecorder) SetLastMessage(roomID, messageID, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetLastMessage", reflect.TypeOf((*MockIRoomRepository)(nil).SetLastMessage), roomID, messageID, at)
}

// UpdateMemberRole mocks base method.
func (m *MockIRoomRepository) UpdateMemberRole(roomID, userID string, role domain.Role) (domain.Room, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateMemberRole", roomID, userID, role)
	ret0, _ := ret[0].(domain.Room)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateMemberRole indicates an expected call of UpdateMemberRole.
func (mr *MockIRoomRepositoryMockRecorder) UpdateMemberRole(roomID, userID, role any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateMemberRole", reflect.TypeOf((*MockIRoomRepository)(nil).UpdateMemberRole), roomID, userID, role)
}
