// Package proto holds the wire and storage schema definitions.
// Generated code lands in per-schema subpackages (proto/chat,
// proto/account, proto/storage) and is not committed.
package proto

//go:generate protoc -I . --go_out=.. --go_opt=module=chat-hub --go-grpc_out=.. --go-grpc_opt=module=chat-hub chat.proto
//go:generate protoc -I . --go_out=.. --go_opt=module=chat-hub --go-grpc_out=.. --go-grpc_opt=module=chat-hub account.proto
//go:generate protoc -I . --go_out=.. --go_opt=module=chat-hub storage.proto
