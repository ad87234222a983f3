// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	contract "chat-hub/contract"
	event "chat-hub/domain/event"
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockISupervisor is a mock of ISupervisor interface.
type MockISupervisor struct {
	ctrl     *gomock.Controller
	recorder *MockISupervisorMockRecorder
	isgomock struct{}
}

// MockISupervisorMockRecorder is the mock recorder for MockISupervisor.
type MockISupervisorMockRecorder struct {
	mock *MockISupervisor
}

// NewMockISupervisor creates a new mock instance.
func NewMockISupervisor(ctrl *gomock.Controller) *MockISupervisor {
	mock := &MockISupervisor{ctrl: ctrl}
	mock.recorder = &MockISupervisorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockISupervisor) EXPECT() *MockISupervisorMockRecorder {
	return m.recorder
}

// Add mocks base method.
func (m *MockISupervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range worker {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Add", varargs...)
	ret0, _ := ret[0].(contract.ISupervisor)
	return ret0
}

// Add indicates an expected call of Add.
func (mr *MockISupervisorMockRecorder) Add(worker ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockISupervisor)(nil).Add), worker...)
}

// Run mocks base method.
func (m *MockISupervisor) Run(ctx context.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Run", ctx)
}

// Run indicates an expected call of Run.
func (mr *MockISupervisorMockRecorder) Run(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockISupervisor)(nil).Run), ctx)
}

// Start mocks base method.
func (m *MockISupervisor) Start(ctx context.Context, worker contract.Worker) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Start", ctx, worker)
}

// Start indicates an expected call of Start.
func (mr *MockISupervisorMockRecorder) Start(ctx, worker any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockISupervisor)(nil).Start), ctx, worker)
}

// Stop mocks base method.
func (m *MockISupervisor) Stop() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Stop")
}

// Stop indicates an expected call of Stop.
func (mr *MockISupervisorMockRecorder) Stop() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stop", reflect.TypeOf((*MockISupervisor)(nil).Stop))
}

// MockWorker is a mock of Worker interface.
type MockWorker struct {
	ctrl     *gomock.Controller
	recorder *MockWorkerMockRecorder
	isgomock struct{}
}

// MockWorkerMockRecorder is the mock recorder for MockWorker.
type MockWorkerMockRecorder struct {
	mock *MockWorker
}

// NewMockWorker creates a new mock instance.
func NewMockWorker(ctrl *gomock.Controller) *MockWorker {
	mock := &MockWorker{ctrl: ctrl}
	mock.recorder = &MockWorkerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWorker) EXPECT() *MockWorkerMockRecorder {
	return m.recorder
}

// Run mocks base method.
func (m *MockWorker) Run(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Run indicates an expected call of Run.
func (mr *MockWorkerMockRecorder) Run(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockWorker)(nil).Run), ctx)
}

// MockEventSink is a mock of EventSink interface.
type MockEventSink struct {
	ctrl     *gomock.Controller
	recorder *MockEventSinkMockRecorder
	isgomock struct{}
}

// MockEventSinkMockRecorder is the mock recorder for MockEventSink.
type MockEventSinkMockRecorder struct {
	mock *MockEventSink
}

// NewMockEventSink creates a new mock instance.
func NewMockEventSink(ctrl *gomock.Controller) *MockEventSink {
	mock := &MockEventSink{ctrl: ctrl}
	mock.recorder = &MockEventSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventSink) EXPECT() *MockEventSinkMockRecorder {
	return m.recorder
}

// Consume mocks base method.
func (m *MockEventSink) Consume(ctx context.Context, e event.Event) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Consume", ctx, e)
	ret0, _ := ret[0].(error)
	return ret0
}

// Consume indicates an expected call of Consume.
func (mr *MockEventSinkMockRecorder) Consume(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Consume", reflect.TypeOf((*MockEventSink)(nil).Consume), ctx, e)
}

// MockIRegistry is a mock of IRegistry interface.
type MockIRegistry struct {
	ctrl     *gomock.Controller
	recorder *MockIRegistryMockRecorder
	isgomock struct{}
}

// MockIRegistryMockRecorder is the mock recorder for MockIRegistry.
type MockIRegistryMockRecorder struct {
	mock *MockIRegistry
}

// NewMockIRegistry creates a new mock instance.
func NewMockIRegistry(ctrl *gomock.Controller) *MockIRegistry {
	mock := &MockIRegistry{ctrl: ctrl}
	mock.recorder = &MockIRegistryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIRegistry) EXPECT() *MockIRegistryMockRecorder {
	return m.recorder
}

// AllSinks mocks base method.
func (m *MockIRegistry) AllSinks() []contract.EventSink {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AllSinks")
	ret0, _ := ret[0].([]contract.EventSink)
	return ret0
}

// AllSinks indicates an expected call of AllSinks.
func (mr *MockIRegistryMockRecorder) AllSinks() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AllSinks", reflect.TypeOf((*MockIRegistry)(nil).AllSinks))
}

// IsOnline mocks base method.
func (m *MockIRegistry) IsOnline(userID string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsOnline", userID)
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsOnline indicates an expected call of IsOnline.
func (mr *MockIRegistryMockRecorder) IsOnline(userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsOnline", reflect.TypeOf((*MockIRegistry)(nil).IsOnline), userID)
}

// Register mocks base method.
func (m *MockIRegistry) Register(userID, sessionID string, sink contract.EventSink) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Register", userID, sessionID, sink)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Register indicates an expected call of Register.
func (mr *MockIRegistryMockRecorder) Register(userID, sessionID, sink any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Register", reflect.TypeOf((*MockIRegistry)(nil).Register), userID, sessionID, sink)
}

// SessionsOf mocks base method.
func (m *MockIRegistry) SessionsOf(userID string) []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SessionsOf", userID)
	ret0, _ := ret[0].([]string)
	return ret0
}

// SessionsOf indicates an expected call of SessionsOf.
func (mr *MockIRegistryMockRecorder) SessionsOf(userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SessionsOf", reflect.TypeOf((*MockIRegistry)(nil).SessionsOf), userID)
}

// SinksFor mocks base method.
func (m *MockIRegistry) SinksFor(userIDs []string, excludeUserID string) []contract.EventSink {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SinksFor", userIDs, excludeUserID)
	ret0, _ := ret[0].([]contract.EventSink)
	return ret0
}

// SinksFor indicates an expected call of SinksFor.
func (mr *MockIRegistryMockRecorder) SinksFor(userIDs, excludeUserID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SinksFor", reflect.TypeOf((*MockIRegistry)(nil).SinksFor), userIDs, excludeUserID)
}

// Unregister mocks base method.
func (m *MockIRegistry) Unregister(userID, sessionID string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Unregister", userID, sessionID)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Unregister indicates an expected call of Unregister.
func (mr *MockIRegistryMockRecorder) Unregister(userID, sessionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unregister", reflect.TypeOf((*MockIRegistry)(nil).Unregister), userID, sessionID)
}

// MockIDispatcher is a mock of IDispatcher interface.
type MockIDispatcher struct {
	ctrl     *gomock.Controller
	recorder *MockIDispatcherMockRecorder
	isgomock struct{}
}

// MockIDispatcherMockRecorder is the mock recorder for MockIDispatcher.
type MockIDispatcherMockRecorder struct {
	mock *MockIDispatcher
}

// NewMockIDispatcher creates a new mock instance.
func NewMockIDispatcher(ctrl *gomock.Controller) *MockIDispatcher {
	mock := &MockIDispatcher{ctrl: ctrl}
	mock.recorder = &MockIDispatcherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIDispatcher) EXPECT() *MockIDispatcherMockRecorder {
	return m.recorder
}

// Dispatch mocks base method.
func (m *MockIDispatcher) Dispatch(e event.Event) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Dispatch", e)
}

// Dispatch indicates an expected call of Dispatch.
func (mr *MockIDispatcherMockRecorder) Dispatch(e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Dispatch", reflect.TypeOf((*MockIDispatcher)(nil).Dispatch), e)
}
