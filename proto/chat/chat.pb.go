// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: chat.proto

package chat

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ConnectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConnectRequest) Reset() {
	*x = ConnectRequest{}
	mi := &file_chat_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConnectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConnectRequest) ProtoMessage() {}

func (x *ConnectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConnectRequest.ProtoReflect.Descriptor instead.
func (*ConnectRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{0}
}

type Ack struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Ack) Reset() {
	*x = Ack{}
	mi := &file_chat_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Ack) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Ack) ProtoMessage() {}

func (x *Ack) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Ack.ProtoReflect.Descriptor instead.
func (*Ack) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{1}
}

func (x *Ack) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type SendMessageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	Type          string                 `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"` // text|image|file, empty = text
	Attachment    *Attachment            `protobuf:"bytes,4,opt,name=attachment,proto3" json:"attachment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendMessageRequest) Reset() {
	*x = SendMessageRequest{}
	mi := &file_chat_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendMessageRequest) ProtoMessage() {}

func (x *SendMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendMessageRequest.ProtoReflect.Descriptor instead.
func (*SendMessageRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{2}
}

func (x *SendMessageRequest) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *SendMessageRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *SendMessageRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *SendMessageRequest) GetAttachment() *Attachment {
	if x != nil {
		return x.Attachment
	}
	return nil
}

type EditMessageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MessageId     string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EditMessageRequest) Reset() {
	*x = EditMessageRequest{}
	mi := &file_chat_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EditMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EditMessageRequest) ProtoMessage() {}

func (x *EditMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EditMessageRequest.ProtoReflect.Descriptor instead.
func (*EditMessageRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{3}
}

func (x *EditMessageRequest) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *EditMessageRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type DeleteMessageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MessageId     string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMessageRequest) Reset() {
	*x = DeleteMessageRequest{}
	mi := &file_chat_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMessageRequest) ProtoMessage() {}

func (x *DeleteMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMessageRequest.ProtoReflect.Descriptor instead.
func (*DeleteMessageRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{4}
}

func (x *DeleteMessageRequest) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

type ReactionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MessageId     string                 `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	Emoji         string                 `protobuf:"bytes,2,opt,name=emoji,proto3" json:"emoji,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReactionRequest) Reset() {
	*x = ReactionRequest{}
	mi := &file_chat_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReactionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReactionRequest) ProtoMessage() {}

func (x *ReactionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReactionRequest.ProtoReflect.Descriptor instead.
func (*ReactionRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{5}
}

func (x *ReactionRequest) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *ReactionRequest) GetEmoji() string {
	if x != nil {
		return x.Emoji
	}
	return ""
}

type MarkReadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	MessageIds    []string               `protobuf:"bytes,2,rep,name=message_ids,json=messageIds,proto3" json:"message_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkReadRequest) Reset() {
	*x = MarkReadRequest{}
	mi := &file_chat_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkReadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkReadRequest) ProtoMessage() {}

func (x *MarkReadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkReadRequest.ProtoReflect.Descriptor instead.
func (*MarkReadRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{6}
}

func (x *MarkReadRequest) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *MarkReadRequest) GetMessageIds() []string {
	if x != nil {
		return x.MessageIds
	}
	return nil
}

type TypingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	Typing        bool                   `protobuf:"varint,2,opt,name=typing,proto3" json:"typing,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TypingRequest) Reset() {
	*x = TypingRequest{}
	mi := &file_chat_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TypingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TypingRequest) ProtoMessage() {}

func (x *TypingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TypingRequest.ProtoReflect.Descriptor instead.
func (*TypingRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{7}
}

func (x *TypingRequest) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *TypingRequest) GetTyping() bool {
	if x != nil {
		return x.Typing
	}
	return false
}

type UpdateStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateStatusRequest) Reset() {
	*x = UpdateStatusRequest{}
	mi := &file_chat_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateStatusRequest) ProtoMessage() {}

func (x *UpdateStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateStatusRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type CreateRoomRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"` // direct|group|public
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	MemberIds     []string               `protobuf:"bytes,3,rep,name=member_ids,json=memberIds,proto3" json:"member_ids,omitempty"`
	Private       bool                   `protobuf:"varint,4,opt,name=private,proto3" json:"private,omitempty"`
	InviteOnly    bool                   `protobuf:"varint,5,opt,name=invite_only,json=inviteOnly,proto3" json:"invite_only,omitempty"`
	MaxMembers    int32                  `protobuf:"varint,6,opt,name=max_members,json=maxMembers,proto3" json:"max_members,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateRoomRequest) Reset() {
	*x = CreateRoomRequest{}
	mi := &file_chat_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRoomRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRoomRequest) ProtoMessage() {}

func (x *CreateRoomRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRoomRequest.ProtoReflect.Descriptor instead.
func (*CreateRoomRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{9}
}

func (x *CreateRoomRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *CreateRoomRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateRoomRequest) GetMemberIds() []string {
	if x != nil {
		return x.MemberIds
	}
	return nil
}

func (x *CreateRoomRequest) GetPrivate() bool {
	if x != nil {
		return x.Private
	}
	return false
}

func (x *CreateRoomRequest) GetInviteOnly() bool {
	if x != nil {
		return x.InviteOnly
	}
	return false
}

func (x *CreateRoomRequest) GetMaxMembers() int32 {
	if x != nil {
		return x.MaxMembers
	}
	return 0
}

type RoomRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RoomRequest) Reset() {
	*x = RoomRequest{}
	mi := &file_chat_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RoomRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RoomRequest) ProtoMessage() {}

func (x *RoomRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RoomRequest.ProtoReflect.Descriptor instead.
func (*RoomRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{10}
}

func (x *RoomRequest) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

type MemberRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MemberRequest) Reset() {
	*x = MemberRequest{}
	mi := &file_chat_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MemberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MemberRequest) ProtoMessage() {}

func (x *MemberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MemberRequest.ProtoReflect.Descriptor instead.
func (*MemberRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{11}
}

func (x *MemberRequest) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *MemberRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type UpdateRoleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Role          string                 `protobuf:"bytes,3,opt,name=role,proto3" json:"role,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateRoleRequest) Reset() {
	*x = UpdateRoleRequest{}
	mi := &file_chat_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateRoleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateRoleRequest) ProtoMessage() {}

func (x *UpdateRoleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateRoleRequest.ProtoReflect.Descriptor instead.
func (*UpdateRoleRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{12}
}

func (x *UpdateRoleRequest) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *UpdateRoleRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UpdateRoleRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

type ListRoomsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Page          int32                  `protobuf:"varint,1,opt,name=page,proto3" json:"page,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRoomsRequest) Reset() {
	*x = ListRoomsRequest{}
	mi := &file_chat_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRoomsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRoomsRequest) ProtoMessage() {}

func (x *ListRoomsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRoomsRequest.ProtoReflect.Descriptor instead.
func (*ListRoomsRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{13}
}

func (x *ListRoomsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListRoomsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type GetRoomMessagesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	Page          int32                  `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRoomMessagesRequest) Reset() {
	*x = GetRoomMessagesRequest{}
	mi := &file_chat_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRoomMessagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRoomMessagesRequest) ProtoMessage() {}

func (x *GetRoomMessagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRoomMessagesRequest.ProtoReflect.Descriptor instead.
func (*GetRoomMessagesRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{14}
}

func (x *GetRoomMessagesRequest) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *GetRoomMessagesRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *GetRoomMessagesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type SearchMessagesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	Query         string                 `protobuf:"bytes,2,opt,name=query,proto3" json:"query,omitempty"`
	Page          int32                  `protobuf:"varint,3,opt,name=page,proto3" json:"page,omitempty"`
	Limit         int32                  `protobuf:"varint,4,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchMessagesRequest) Reset() {
	*x = SearchMessagesRequest{}
	mi := &file_chat_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchMessagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchMessagesRequest) ProtoMessage() {}

func (x *SearchMessagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchMessagesRequest.ProtoReflect.Descriptor instead.
func (*SearchMessagesRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{15}
}

func (x *SearchMessagesRequest) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *SearchMessagesRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *SearchMessagesRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *SearchMessagesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type UnreadCountRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnreadCountRequest) Reset() {
	*x = UnreadCountRequest{}
	mi := &file_chat_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnreadCountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnreadCountRequest) ProtoMessage() {}

func (x *UnreadCountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnreadCountRequest.ProtoReflect.Descriptor instead.
func (*UnreadCountRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{16}
}

func (x *UnreadCountRequest) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

type MessageReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       *ChatMessage           `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MessageReply) Reset() {
	*x = MessageReply{}
	mi := &file_chat_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MessageReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MessageReply) ProtoMessage() {}

func (x *MessageReply) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MessageReply.ProtoReflect.Descriptor instead.
func (*MessageReply) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{17}
}

func (x *MessageReply) GetMessage() *ChatMessage {
	if x != nil {
		return x.Message
	}
	return nil
}

type RoomReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Room          *ChatRoom              `protobuf:"bytes,1,opt,name=room,proto3" json:"room,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RoomReply) Reset() {
	*x = RoomReply{}
	mi := &file_chat_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RoomReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RoomReply) ProtoMessage() {}

func (x *RoomReply) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RoomReply.ProtoReflect.Descriptor instead.
func (*RoomReply) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{18}
}

func (x *RoomReply) GetRoom() *ChatRoom {
	if x != nil {
		return x.Room
	}
	return nil
}

type ListRoomsReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rooms         []*ChatRoom            `protobuf:"bytes,1,rep,name=rooms,proto3" json:"rooms,omitempty"`
	Total         int64                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRoomsReply) Reset() {
	*x = ListRoomsReply{}
	mi := &file_chat_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRoomsReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRoomsReply) ProtoMessage() {}

func (x *ListRoomsReply) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRoomsReply.ProtoReflect.Descriptor instead.
func (*ListRoomsReply) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{19}
}

func (x *ListRoomsReply) GetRooms() []*ChatRoom {
	if x != nil {
		return x.Rooms
	}
	return nil
}

func (x *ListRoomsReply) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

type MessagesReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      []*ChatMessage         `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	Total         int64                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MessagesReply) Reset() {
	*x = MessagesReply{}
	mi := &file_chat_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MessagesReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MessagesReply) ProtoMessage() {}

func (x *MessagesReply) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MessagesReply.ProtoReflect.Descriptor instead.
func (*MessagesReply) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{20}
}

func (x *MessagesReply) GetMessages() []*ChatMessage {
	if x != nil {
		return x.Messages
	}
	return nil
}

func (x *MessagesReply) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

type UnreadReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	Unread        int64                  `protobuf:"varint,2,opt,name=unread,proto3" json:"unread,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnreadReply) Reset() {
	*x = UnreadReply{}
	mi := &file_chat_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnreadReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnreadReply) ProtoMessage() {}

func (x *UnreadReply) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnreadReply.ProtoReflect.Descriptor instead.
func (*UnreadReply) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{21}
}

func (x *UnreadReply) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *UnreadReply) GetUnread() int64 {
	if x != nil {
		return x.Unread
	}
	return 0
}

type Attachment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	MimeType      string                 `protobuf:"bytes,2,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Size          uint64                 `protobuf:"varint,3,opt,name=size,proto3" json:"size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Attachment) Reset() {
	*x = Attachment{}
	mi := &file_chat_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Attachment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Attachment) ProtoMessage() {}

func (x *Attachment) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Attachment.ProtoReflect.Descriptor instead.
func (*Attachment) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{22}
}

func (x *Attachment) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Attachment) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *Attachment) GetSize() uint64 {
	if x != nil {
		return x.Size
	}
	return 0
}

type ReactionGroup struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Emoji         string                 `protobuf:"bytes,1,opt,name=emoji,proto3" json:"emoji,omitempty"`
	UserIds       []string               `protobuf:"bytes,2,rep,name=user_ids,json=userIds,proto3" json:"user_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReactionGroup) Reset() {
	*x = ReactionGroup{}
	mi := &file_chat_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReactionGroup) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReactionGroup) ProtoMessage() {}

func (x *ReactionGroup) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReactionGroup.ProtoReflect.Descriptor instead.
func (*ReactionGroup) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{23}
}

func (x *ReactionGroup) GetEmoji() string {
	if x != nil {
		return x.Emoji
	}
	return ""
}

func (x *ReactionGroup) GetUserIds() []string {
	if x != nil {
		return x.UserIds
	}
	return nil
}

type ChatMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RoomId        string                 `protobuf:"bytes,2,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	SenderId      string                 `protobuf:"bytes,3,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Type          string                 `protobuf:"bytes,4,opt,name=type,proto3" json:"type,omitempty"`
	Content       string                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	Attachment    *Attachment            `protobuf:"bytes,6,opt,name=attachment,proto3" json:"attachment,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	EditedAt      *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=edited_at,json=editedAt,proto3" json:"edited_at,omitempty"`
	Reactions     []*ReactionGroup       `protobuf:"bytes,9,rep,name=reactions,proto3" json:"reactions,omitempty"`
	Deleted       bool                   `protobuf:"varint,10,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatMessage) Reset() {
	*x = ChatMessage{}
	mi := &file_chat_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatMessage) ProtoMessage() {}

func (x *ChatMessage) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatMessage.ProtoReflect.Descriptor instead.
func (*ChatMessage) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{24}
}

func (x *ChatMessage) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ChatMessage) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *ChatMessage) GetSenderId() string {
	if x != nil {
		return x.SenderId
	}
	return ""
}

func (x *ChatMessage) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *ChatMessage) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *ChatMessage) GetAttachment() *Attachment {
	if x != nil {
		return x.Attachment
	}
	return nil
}

func (x *ChatMessage) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *ChatMessage) GetEditedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.EditedAt
	}
	return nil
}

func (x *ChatMessage) GetReactions() []*ReactionGroup {
	if x != nil {
		return x.Reactions
	}
	return nil
}

func (x *ChatMessage) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type ChatMember struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Role          string                 `protobuf:"bytes,2,opt,name=role,proto3" json:"role,omitempty"`
	JoinedAt      *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=joined_at,json=joinedAt,proto3" json:"joined_at,omitempty"`
	LastReadAt    *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=last_read_at,json=lastReadAt,proto3" json:"last_read_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatMember) Reset() {
	*x = ChatMember{}
	mi := &file_chat_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatMember) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatMember) ProtoMessage() {}

func (x *ChatMember) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatMember.ProtoReflect.Descriptor instead.
func (*ChatMember) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{25}
}

func (x *ChatMember) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ChatMember) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *ChatMember) GetJoinedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.JoinedAt
	}
	return nil
}

func (x *ChatMember) GetLastReadAt() *timestamppb.Timestamp {
	if x != nil {
		return x.LastReadAt
	}
	return nil
}

type ChatRoom struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Type           string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Name           string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	CreatorId      string                 `protobuf:"bytes,4,opt,name=creator_id,json=creatorId,proto3" json:"creator_id,omitempty"`
	Members        []*ChatMember          `protobuf:"bytes,5,rep,name=members,proto3" json:"members,omitempty"`
	Private        bool                   `protobuf:"varint,6,opt,name=private,proto3" json:"private,omitempty"`
	InviteOnly     bool                   `protobuf:"varint,7,opt,name=invite_only,json=inviteOnly,proto3" json:"invite_only,omitempty"`
	MaxMembers     int32                  `protobuf:"varint,8,opt,name=max_members,json=maxMembers,proto3" json:"max_members,omitempty"`
	LastMessageId  string                 `protobuf:"bytes,9,opt,name=last_message_id,json=lastMessageId,proto3" json:"last_message_id,omitempty"`
	LastActivityAt *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=last_activity_at,json=lastActivityAt,proto3" json:"last_activity_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ChatRoom) Reset() {
	*x = ChatRoom{}
	mi := &file_chat_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatRoom) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatRoom) ProtoMessage() {}

func (x *ChatRoom) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatRoom.ProtoReflect.Descriptor instead.
func (*ChatRoom) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{26}
}

func (x *ChatRoom) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ChatRoom) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *ChatRoom) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ChatRoom) GetCreatorId() string {
	if x != nil {
		return x.CreatorId
	}
	return ""
}

func (x *ChatRoom) GetMembers() []*ChatMember {
	if x != nil {
		return x.Members
	}
	return nil
}

func (x *ChatRoom) GetPrivate() bool {
	if x != nil {
		return x.Private
	}
	return false
}

func (x *ChatRoom) GetInviteOnly() bool {
	if x != nil {
		return x.InviteOnly
	}
	return false
}

func (x *ChatRoom) GetMaxMembers() int32 {
	if x != nil {
		return x.MaxMembers
	}
	return 0
}

func (x *ChatRoom) GetLastMessageId() string {
	if x != nil {
		return x.LastMessageId
	}
	return ""
}

func (x *ChatRoom) GetLastActivityAt() *timestamppb.Timestamp {
	if x != nil {
		return x.LastActivityAt
	}
	return nil
}

type MessageDeletedEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	MessageId     string                 `protobuf:"bytes,2,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	DeletedBy     string                 `protobuf:"bytes,3,opt,name=deleted_by,json=deletedBy,proto3" json:"deleted_by,omitempty"`
	At            *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=at,proto3" json:"at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MessageDeletedEvent) Reset() {
	*x = MessageDeletedEvent{}
	mi := &file_chat_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MessageDeletedEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MessageDeletedEvent) ProtoMessage() {}

func (x *MessageDeletedEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MessageDeletedEvent.ProtoReflect.Descriptor instead.
func (*MessageDeletedEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{27}
}

func (x *MessageDeletedEvent) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *MessageDeletedEvent) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *MessageDeletedEvent) GetDeletedBy() string {
	if x != nil {
		return x.DeletedBy
	}
	return ""
}

func (x *MessageDeletedEvent) GetAt() *timestamppb.Timestamp {
	if x != nil {
		return x.At
	}
	return nil
}

type ReactionEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	MessageId     string                 `protobuf:"bytes,2,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	UserId        string                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Emoji         string                 `protobuf:"bytes,4,opt,name=emoji,proto3" json:"emoji,omitempty"`
	UserIds       []string               `protobuf:"bytes,5,rep,name=user_ids,json=userIds,proto3" json:"user_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReactionEvent) Reset() {
	*x = ReactionEvent{}
	mi := &file_chat_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReactionEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReactionEvent) ProtoMessage() {}

func (x *ReactionEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReactionEvent.ProtoReflect.Descriptor instead.
func (*ReactionEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{28}
}

func (x *ReactionEvent) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *ReactionEvent) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *ReactionEvent) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ReactionEvent) GetEmoji() string {
	if x != nil {
		return x.Emoji
	}
	return ""
}

func (x *ReactionEvent) GetUserIds() []string {
	if x != nil {
		return x.UserIds
	}
	return nil
}

type ReadEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	ReaderId      string                 `protobuf:"bytes,2,opt,name=reader_id,json=readerId,proto3" json:"reader_id,omitempty"`
	At            *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=at,proto3" json:"at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReadEvent) Reset() {
	*x = ReadEvent{}
	mi := &file_chat_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReadEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReadEvent) ProtoMessage() {}

func (x *ReadEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReadEvent.ProtoReflect.Descriptor instead.
func (*ReadEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{29}
}

func (x *ReadEvent) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *ReadEvent) GetReaderId() string {
	if x != nil {
		return x.ReaderId
	}
	return ""
}

func (x *ReadEvent) GetAt() *timestamppb.Timestamp {
	if x != nil {
		return x.At
	}
	return nil
}

type MemberEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ActorId       string                 `protobuf:"bytes,3,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	Role          string                 `protobuf:"bytes,4,opt,name=role,proto3" json:"role,omitempty"`
	At            *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=at,proto3" json:"at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MemberEvent) Reset() {
	*x = MemberEvent{}
	mi := &file_chat_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MemberEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MemberEvent) ProtoMessage() {}

func (x *MemberEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MemberEvent.ProtoReflect.Descriptor instead.
func (*MemberEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{30}
}

func (x *MemberEvent) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *MemberEvent) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *MemberEvent) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *MemberEvent) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *MemberEvent) GetAt() *timestamppb.Timestamp {
	if x != nil {
		return x.At
	}
	return nil
}

type StatusEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	At            *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=at,proto3" json:"at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusEvent) Reset() {
	*x = StatusEvent{}
	mi := &file_chat_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusEvent) ProtoMessage() {}

func (x *StatusEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusEvent.ProtoReflect.Descriptor instead.
func (*StatusEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{31}
}

func (x *StatusEvent) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *StatusEvent) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *StatusEvent) GetAt() *timestamppb.Timestamp {
	if x != nil {
		return x.At
	}
	return nil
}

type TypingEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TypingEvent) Reset() {
	*x = TypingEvent{}
	mi := &file_chat_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TypingEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TypingEvent) ProtoMessage() {}

func (x *TypingEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TypingEvent.ProtoReflect.Descriptor instead.
func (*TypingEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{32}
}

func (x *TypingEvent) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *TypingEvent) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ErrorEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       string                 `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ErrorEvent) Reset() {
	*x = ErrorEvent{}
	mi := &file_chat_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ErrorEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ErrorEvent) ProtoMessage() {}

func (x *ErrorEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ErrorEvent.ProtoReflect.Descriptor instead.
func (*ErrorEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{33}
}

func (x *ErrorEvent) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type ServerEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*ServerEvent_MessageNew
	//	*ServerEvent_MessageEdited
	//	*ServerEvent_MessageDeleted
	//	*ServerEvent_ReactionAdded
	//	*ServerEvent_ReactionRemoved
	//	*ServerEvent_MessagesRead
	//	*ServerEvent_UserJoined
	//	*ServerEvent_UserLeft
	//	*ServerEvent_MemberAdded
	//	*ServerEvent_MemberRemoved
	//	*ServerEvent_RoleUpdated
	//	*ServerEvent_UserStatus
	//	*ServerEvent_TypingStart
	//	*ServerEvent_TypingStop
	//	*ServerEvent_Error
	Event         isServerEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ServerEvent) Reset() {
	*x = ServerEvent{}
	mi := &file_chat_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServerEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServerEvent) ProtoMessage() {}

func (x *ServerEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServerEvent.ProtoReflect.Descriptor instead.
func (*ServerEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{34}
}

func (x *ServerEvent) GetEvent() isServerEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *ServerEvent) GetMessageNew() *ChatMessage {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_MessageNew); ok {
			return x.MessageNew
		}
	}
	return nil
}

func (x *ServerEvent) GetMessageEdited() *ChatMessage {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_MessageEdited); ok {
			return x.MessageEdited
		}
	}
	return nil
}

func (x *ServerEvent) GetMessageDeleted() *MessageDeletedEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_MessageDeleted); ok {
			return x.MessageDeleted
		}
	}
	return nil
}

func (x *ServerEvent) GetReactionAdded() *ReactionEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_ReactionAdded); ok {
			return x.ReactionAdded
		}
	}
	return nil
}

func (x *ServerEvent) GetReactionRemoved() *ReactionEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_ReactionRemoved); ok {
			return x.ReactionRemoved
		}
	}
	return nil
}

func (x *ServerEvent) GetMessagesRead() *ReadEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_MessagesRead); ok {
			return x.MessagesRead
		}
	}
	return nil
}

func (x *ServerEvent) GetUserJoined() *MemberEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_UserJoined); ok {
			return x.UserJoined
		}
	}
	return nil
}

func (x *ServerEvent) GetUserLeft() *MemberEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_UserLeft); ok {
			return x.UserLeft
		}
	}
	return nil
}

func (x *ServerEvent) GetMemberAdded() *MemberEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_MemberAdded); ok {
			return x.MemberAdded
		}
	}
	return nil
}

func (x *ServerEvent) GetMemberRemoved() *MemberEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_MemberRemoved); ok {
			return x.MemberRemoved
		}
	}
	return nil
}

func (x *ServerEvent) GetRoleUpdated() *MemberEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_RoleUpdated); ok {
			return x.RoleUpdated
		}
	}
	return nil
}

func (x *ServerEvent) GetUserStatus() *StatusEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_UserStatus); ok {
			return x.UserStatus
		}
	}
	return nil
}

func (x *ServerEvent) GetTypingStart() *TypingEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_TypingStart); ok {
			return x.TypingStart
		}
	}
	return nil
}

func (x *ServerEvent) GetTypingStop() *TypingEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_TypingStop); ok {
			return x.TypingStop
		}
	}
	return nil
}

func (x *ServerEvent) GetError() *ErrorEvent {
	if x != nil {
		if x, ok := x.Event.(*ServerEvent_Error); ok {
			return x.Error
		}
	}
	return nil
}

type isServerEvent_Event interface {
	isServerEvent_Event()
}

type ServerEvent_MessageNew struct {
	MessageNew *ChatMessage `protobuf:"bytes,1,opt,name=message_new,json=messageNew,proto3,oneof"`
}

type ServerEvent_MessageEdited struct {
	MessageEdited *ChatMessage `protobuf:"bytes,2,opt,name=message_edited,json=messageEdited,proto3,oneof"`
}

type ServerEvent_MessageDeleted struct {
	MessageDeleted *MessageDeletedEvent `protobuf:"bytes,3,opt,name=message_deleted,json=messageDeleted,proto3,oneof"`
}

type ServerEvent_ReactionAdded struct {
	ReactionAdded *ReactionEvent `protobuf:"bytes,4,opt,name=reaction_added,json=reactionAdded,proto3,oneof"`
}

type ServerEvent_ReactionRemoved struct {
	ReactionRemoved *ReactionEvent `protobuf:"bytes,5,opt,name=reaction_removed,json=reactionRemoved,proto3,oneof"`
}

type ServerEvent_MessagesRead struct {
	MessagesRead *ReadEvent `protobuf:"bytes,6,opt,name=messages_read,json=messagesRead,proto3,oneof"`
}

type ServerEvent_UserJoined struct {
	UserJoined *MemberEvent `protobuf:"bytes,7,opt,name=user_joined,json=userJoined,proto3,oneof"`
}

type ServerEvent_UserLeft struct {
	UserLeft *MemberEvent `protobuf:"bytes,8,opt,name=user_left,json=userLeft,proto3,oneof"`
}

type ServerEvent_MemberAdded struct {
	MemberAdded *MemberEvent `protobuf:"bytes,9,opt,name=member_added,json=memberAdded,proto3,oneof"`
}

type ServerEvent_MemberRemoved struct {
	MemberRemoved *MemberEvent `protobuf:"bytes,10,opt,name=member_removed,json=memberRemoved,proto3,oneof"`
}

type ServerEvent_RoleUpdated struct {
	RoleUpdated *MemberEvent `protobuf:"bytes,11,opt,name=role_updated,json=roleUpdated,proto3,oneof"`
}

type ServerEvent_UserStatus struct {
	UserStatus *StatusEvent `protobuf:"bytes,12,opt,name=user_status,json=userStatus,proto3,oneof"`
}

type ServerEvent_TypingStart struct {
	TypingStart *TypingEvent `protobuf:"bytes,13,opt,name=typing_start,json=typingStart,proto3,oneof"`
}

type ServerEvent_TypingStop struct {
	TypingStop *TypingEvent `protobuf:"bytes,14,opt,name=typing_stop,json=typingStop,proto3,oneof"`
}

type ServerEvent_Error struct {
	Error *ErrorEvent `protobuf:"bytes,15,opt,name=error,proto3,oneof"`
}

func (*ServerEvent_MessageNew) isServerEvent_Event() {}

func (*ServerEvent_MessageEdited) isServerEvent_Event() {}

func (*ServerEvent_MessageDeleted) isServerEvent_Event() {}

func (*ServerEvent_ReactionAdded) isServerEvent_Event() {}

func (*ServerEvent_ReactionRemoved) isServerEvent_Event() {}

func (*ServerEvent_MessagesRead) isServerEvent_Event() {}

func (*ServerEvent_UserJoined) isServerEvent_Event() {}

func (*ServerEvent_UserLeft) isServerEvent_Event() {}

func (*ServerEvent_MemberAdded) isServerEvent_Event() {}

func (*ServerEvent_MemberRemoved) isServerEvent_Event() {}

func (*ServerEvent_RoleUpdated) isServerEvent_Event() {}

func (*ServerEvent_UserStatus) isServerEvent_Event() {}

func (*ServerEvent_TypingStart) isServerEvent_Event() {}

func (*ServerEvent_TypingStop) isServerEvent_Event() {}

func (*ServerEvent_Error) isServerEvent_Event() {}

var File_chat_proto protoreflect.FileDescriptor

const file_chat_proto_rawDesc = "" +
	"\n" +
	"\n" +
	"chat.proto\x12\x04chat\x1a\x1fgoogle/protobuf/timestamp.proto\"\x10\n" +
	"\x0eConnectRequest\"\x1f\n" +
	"\x03Ack\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\"\x8d\x01\n" +
	"\x12SendMessageRequest\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\x12\x12\n" +
	"\x04type\x18\x03 \x01(\tR\x04type\x120\n" +
	"\n" +
	"attachment\x18\x04 \x01(\v2\x10.chat.AttachmentR\n" +
	"attachment\"M\n" +
	"\x12EditMessageRequest\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"5\n" +
	"\x14DeleteMessageRequest\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\"F\n" +
	"\x0fReactionRequest\x12\x1d\n" +
	"\n" +
	"message_id\x18\x01 \x01(\tR\tmessageId\x12\x14\n" +
	"\x05emoji\x18\x02 \x01(\tR\x05emoji\"K\n" +
	"\x0fMarkReadRequest\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x1f\n" +
	"\vmessage_ids\x18\x02 \x03(\tR\n" +
	"messageIds\"@\n" +
	"\rTypingRequest\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x16\n" +
	"\x06typing\x18\x02 \x01(\bR\x06typing\"-\n" +
	"\x13UpdateStatusRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"\xb6\x01\n" +
	"\x11CreateRoomRequest\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"member_ids\x18\x03 \x03(\tR\tmemberIds\x12\x18\n" +
	"\aprivate\x18\x04 \x01(\bR\aprivate\x12\x1f\n" +
	"\vinvite_only\x18\x05 \x01(\bR\n" +
	"inviteOnly\x12\x1f\n" +
	"\vmax_members\x18\x06 \x01(\x05R\n" +
	"maxMembers\"&\n" +
	"\vRoomRequest\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\"A\n" +
	"\rMemberRequest\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"Y\n" +
	"\x11UpdateRoleRequest\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x12\n" +
	"\x04role\x18\x03 \x01(\tR\x04role\"<\n" +
	"\x10ListRoomsRequest\x12\x12\n" +
	"\x04page\x18\x01 \x01(\x05R\x04page\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"[\n" +
	"\x16GetRoomMessagesRequest\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\"p\n" +
	"\x15SearchMessagesRequest\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x14\n" +
	"\x05query\x18\x02 \x01(\tR\x05query\x12\x12\n" +
	"\x04page\x18\x03 \x01(\x05R\x04page\x12\x14\n" +
	"\x05limit\x18\x04 \x01(\x05R\x05limit\"-\n" +
	"\x12UnreadCountRequest\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\";\n" +
	"\fMessageReply\x12+\n" +
	"\amessage\x18\x01 \x01(\v2\x11.chat.ChatMessageR\amessage\"/\n" +
	"\tRoomReply\x12\"\n" +
	"\x04room\x18\x01 \x01(\v2\x0e.chat.ChatRoomR\x04room\"L\n" +
	"\x0eListRoomsReply\x12$\n" +
	"\x05rooms\x18\x01 \x03(\v2\x0e.chat.ChatRoomR\x05rooms\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x03R\x05total\"T\n" +
	"\rMessagesReply\x12-\n" +
	"\bmessages\x18\x01 \x03(\v2\x11.chat.ChatMessageR\bmessages\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x03R\x05total\">\n" +
	"\vUnreadReply\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x16\n" +
	"\x06unread\x18\x02 \x01(\x03R\x06unread\"Q\n" +
	"\n" +
	"Attachment\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1b\n" +
	"\tmime_type\x18\x02 \x01(\tR\bmimeType\x12\x12\n" +
	"\x04size\x18\x03 \x01(\x04R\x04size\"@\n" +
	"\rReactionGroup\x12\x14\n" +
	"\x05emoji\x18\x01 \x01(\tR\x05emoji\x12\x19\n" +
	"\buser_ids\x18\x02 \x03(\tR\auserIds\"\xf4\x02\n" +
	"\vChatMessage\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\aroom_id\x18\x02 \x01(\tR\x06roomId\x12\x1b\n" +
	"\tsender_id\x18\x03 \x01(\tR\bsenderId\x12\x12\n" +
	"\x04type\x18\x04 \x01(\tR\x04type\x12\x18\n" +
	"\acontent\x18\x05 \x01(\tR\acontent\x120\n" +
	"\n" +
	"attachment\x18\x06 \x01(\v2\x10.chat.AttachmentR\n" +
	"attachment\x129\n" +
	"\n" +
	"created_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x127\n" +
	"\tedited_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\beditedAt\x121\n" +
	"\treactions\x18\t \x03(\v2\x13.chat.ReactionGroupR\treactions\x12\x18\n" +
	"\adeleted\x18\n" +
	" \x01(\bR\adeleted\"\xb0\x01\n" +
	"\n" +
	"ChatMember\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x12\n" +
	"\x04role\x18\x02 \x01(\tR\x04role\x127\n" +
	"\tjoined_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\bjoinedAt\x12<\n" +
	"\flast_read_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"lastReadAt\"\xd7\x02\n" +
	"\bChatRoom\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04type\x18\x02 \x01(\tR\x04type\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"creator_id\x18\x04 \x01(\tR\tcreatorId\x12*\n" +
	"\amembers\x18\x05 \x03(\v2\x10.chat.ChatMemberR\amembers\x12\x18\n" +
	"\aprivate\x18\x06 \x01(\bR\aprivate\x12\x1f\n" +
	"\vinvite_only\x18\a \x01(\bR\n" +
	"inviteOnly\x12\x1f\n" +
	"\vmax_members\x18\b \x01(\x05R\n" +
	"maxMembers\x12&\n" +
	"\x0flast_message_id\x18\t \x01(\tR\rlastMessageId\x12D\n" +
	"\x10last_activity_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\x0elastActivityAt\"\x98\x01\n" +
	"\x13MessageDeletedEvent\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x1d\n" +
	"\n" +
	"message_id\x18\x02 \x01(\tR\tmessageId\x12\x1d\n" +
	"\n" +
	"deleted_by\x18\x03 \x01(\tR\tdeletedBy\x12*\n" +
	"\x02at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\x02at\"\x91\x01\n" +
	"\rReactionEvent\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x1d\n" +
	"\n" +
	"message_id\x18\x02 \x01(\tR\tmessageId\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\x12\x14\n" +
	"\x05emoji\x18\x04 \x01(\tR\x05emoji\x12\x19\n" +
	"\buser_ids\x18\x05 \x03(\tR\auserIds\"m\n" +
	"\tReadEvent\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x1b\n" +
	"\treader_id\x18\x02 \x01(\tR\breaderId\x12*\n" +
	"\x02at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x02at\"\x9a\x01\n" +
	"\vMemberEvent\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x19\n" +
	"\bactor_id\x18\x03 \x01(\tR\aactorId\x12\x12\n" +
	"\x04role\x18\x04 \x01(\tR\x04role\x12*\n" +
	"\x02at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\x02at\"j\n" +
	"\vStatusEvent\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12*\n" +
	"\x02at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x02at\"?\n" +
	"\vTypingEvent\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"&\n" +
	"\n" +
	"ErrorEvent\x12\x18\n" +
	"\amessage\x18\x01 \x01(\tR\amessage\"\xe8\x06\n" +
	"\vServerEvent\x124\n" +
	"\vmessage_new\x18\x01 \x01(\v2\x11.chat.ChatMessageH\x00R\n" +
	"messageNew\x12:\n" +
	"\x0emessage_edited\x18\x02 \x01(\v2\x11.chat.ChatMessageH\x00R\rmessageEdited\x12D\n" +
	"\x0fmessage_deleted\x18\x03 \x01(\v2\x19.chat.MessageDeletedEventH\x00R\x0emessageDeleted\x12<\n" +
	"\x0ereaction_added\x18\x04 \x01(\v2\x13.chat.ReactionEventH\x00R\rreactionAdded\x12@\n" +
	"\x10reaction_removed\x18\x05 \x01(\v2\x13.chat.ReactionEventH\x00R\x0freactionRemoved\x126\n" +
	"\rmessages_read\x18\x06 \x01(\v2\x0f.chat.ReadEventH\x00R\fmessagesRead\x124\n" +
	"\vuser_joined\x18\a \x01(\v2\x11.chat.MemberEventH\x00R\n" +
	"userJoined\x120\n" +
	"\tuser_left\x18\b \x01(\v2\x11.chat.MemberEventH\x00R\buserLeft\x126\n" +
	"\fmember_added\x18\t \x01(\v2\x11.chat.MemberEventH\x00R\vmemberAdded\x12:\n" +
	"\x0emember_removed\x18\n" +
	" \x01(\v2\x11.chat.MemberEventH\x00R\rmemberRemoved\x126\n" +
	"\frole_updated\x18\v \x01(\v2\x11.chat.MemberEventH\x00R\vroleUpdated\x124\n" +
	"\vuser_status\x18\f \x01(\v2\x11.chat.StatusEventH\x00R\n" +
	"userStatus\x126\n" +
	"\ftyping_start\x18\r \x01(\v2\x11.chat.TypingEventH\x00R\vtypingStart\x124\n" +
	"\vtyping_stop\x18\x0e \x01(\v2\x11.chat.TypingEventH\x00R\n" +
	"typingStop\x12(\n" +
	"\x05error\x18\x0f \x01(\v2\x10.chat.ErrorEventH\x00R\x05errorB\a\n" +
	"\x05event2\xce\b\n" +
	"\vChatService\x124\n" +
	"\aConnect\x12\x14.chat.ConnectRequest\x1a\x11.chat.ServerEvent0\x01\x12;\n" +
	"\vSendMessage\x12\x18.chat.SendMessageRequest\x1a\x12.chat.MessageReply\x12;\n" +
	"\vEditMessage\x12\x18.chat.EditMessageRequest\x1a\x12.chat.MessageReply\x126\n" +
	"\rDeleteMessage\x12\x1a.chat.DeleteMessageRequest\x1a\t.chat.Ack\x12/\n" +
	"\vAddReaction\x12\x15.chat.ReactionRequest\x1a\t.chat.Ack\x122\n" +
	"\x0eRemoveReaction\x12\x15.chat.ReactionRequest\x1a\t.chat.Ack\x124\n" +
	"\bMarkRead\x12\x15.chat.MarkReadRequest\x1a\x11.chat.UnreadReply\x12+\n" +
	"\tSetTyping\x12\x13.chat.TypingRequest\x1a\t.chat.Ack\x124\n" +
	"\fUpdateStatus\x12\x19.chat.UpdateStatusRequest\x1a\t.chat.Ack\x126\n" +
	"\n" +
	"CreateRoom\x12\x17.chat.CreateRoomRequest\x1a\x0f.chat.RoomReply\x12.\n" +
	"\bJoinRoom\x12\x11.chat.RoomRequest\x1a\x0f.chat.RoomReply\x12)\n" +
	"\tLeaveRoom\x12\x11.chat.RoomRequest\x1a\t.chat.Ack\x12.\n" +
	"\fInviteMember\x12\x13.chat.MemberRequest\x1a\t.chat.Ack\x12.\n" +
	"\fRemoveMember\x12\x13.chat.MemberRequest\x1a\t.chat.Ack\x126\n" +
	"\x10UpdateMemberRole\x12\x17.chat.UpdateRoleRequest\x1a\t.chat.Ack\x12-\n" +
	"\aGetRoom\x12\x11.chat.RoomRequest\x1a\x0f.chat.RoomReply\x129\n" +
	"\tListRooms\x12\x16.chat.ListRoomsRequest\x1a\x14.chat.ListRoomsReply\x12D\n" +
	"\x0fGetRoomMessages\x12\x1c.chat.GetRoomMessagesRequest\x1a\x13.chat.MessagesReply\x12B\n" +
	"\x0eSearchMessages\x12\x1b.chat.SearchMessagesRequest\x1a\x13.chat.MessagesReply\x12:\n" +
	"\vUnreadCount\x12\x18.chat.UnreadCountRequest\x1a\x11.chat.UnreadReplyB\x15Z\x13chat-hub/proto/chatb\x06proto3"

var (
	file_chat_proto_rawDescOnce sync.Once
	file_chat_proto_rawDescData []byte
)

func file_chat_proto_rawDescGZIP() []byte {
	file_chat_proto_rawDescOnce.Do(func() {
		file_chat_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_chat_proto_rawDesc), len(file_chat_proto_rawDesc)))
	})
	return file_chat_proto_rawDescData
}

var file_chat_proto_msgTypes = make([]protoimpl.MessageInfo, 35)
var file_chat_proto_goTypes = []any{
	(*ConnectRequest)(nil),         // 0: chat.ConnectRequest
	(*Ack)(nil),                    // 1: chat.Ack
	(*SendMessageRequest)(nil),     // 2: chat.SendMessageRequest
	(*EditMessageRequest)(nil),     // 3: chat.EditMessageRequest
	(*DeleteMessageRequest)(nil),   // 4: chat.DeleteMessageRequest
	(*ReactionRequest)(nil),        // 5: chat.ReactionRequest
	(*MarkReadRequest)(nil),        // 6: chat.MarkReadRequest
	(*TypingRequest)(nil),          // 7: chat.TypingRequest
	(*UpdateStatusRequest)(nil),    // 8: chat.UpdateStatusRequest
	(*CreateRoomRequest)(nil),      // 9: chat.CreateRoomRequest
	(*RoomRequest)(nil),            // 10: chat.RoomRequest
	(*MemberRequest)(nil),          // 11: chat.MemberRequest
	(*UpdateRoleRequest)(nil),      // 12: chat.UpdateRoleRequest
	(*ListRoomsRequest)(nil),       // 13: chat.ListRoomsRequest
	(*GetRoomMessagesRequest)(nil), // 14: chat.GetRoomMessagesRequest
	(*SearchMessagesRequest)(nil),  // 15: chat.SearchMessagesRequest
	(*UnreadCountRequest)(nil),     // 16: chat.UnreadCountRequest
	(*MessageReply)(nil),           // 17: chat.MessageReply
	(*RoomReply)(nil),              // 18: chat.RoomReply
	(*ListRoomsReply)(nil),         // 19: chat.ListRoomsReply
	(*MessagesReply)(nil),          // 20: chat.MessagesReply
	(*UnreadReply)(nil),            // 21: chat.UnreadReply
	(*Attachment)(nil),             // 22: chat.Attachment
	(*ReactionGroup)(nil),          // 23: chat.ReactionGroup
	(*ChatMessage)(nil),            // 24: chat.ChatMessage
	(*ChatMember)(nil),             // 25: chat.ChatMember
	(*ChatRoom)(nil),               // 26: chat.ChatRoom
	(*MessageDeletedEvent)(nil),    // 27: chat.MessageDeletedEvent
	(*ReactionEvent)(nil),          // 28: chat.ReactionEvent
	(*ReadEvent)(nil),              // 29: chat.ReadEvent
	(*MemberEvent)(nil),            // 30: chat.MemberEvent
	(*StatusEvent)(nil),            // 31: chat.StatusEvent
	(*TypingEvent)(nil),            // 32: chat.TypingEvent
	(*ErrorEvent)(nil),             // 33: chat.ErrorEvent
	(*ServerEvent)(nil),            // 34: chat.ServerEvent
	(*timestamppb.Timestamp)(nil),  // 35: google.protobuf.Timestamp
}
var file_chat_proto_depIdxs = []int32{
	22, // 0: chat.SendMessageRequest.attachment:type_name -> chat.Attachment
	24, // 1: chat.MessageReply.message:type_name -> chat.ChatMessage
	26, // 2: chat.RoomReply.room:type_name -> chat.ChatRoom
	26, // 3: chat.ListRoomsReply.rooms:type_name -> chat.ChatRoom
	24, // 4: chat.MessagesReply.messages:type_name -> chat.ChatMessage
	22, // 5: chat.ChatMessage.attachment:type_name -> chat.Attachment
	35, // 6: chat.ChatMessage.created_at:type_name -> google.protobuf.Timestamp
	35, // 7: chat.ChatMessage.edited_at:type_name -> google.protobuf.Timestamp
	23, // 8: chat.ChatMessage.reactions:type_name -> chat.ReactionGroup
	35, // 9: chat.ChatMember.joined_at:type_name -> google.protobuf.Timestamp
	35, // 10: chat.ChatMember.last_read_at:type_name -> google.protobuf.Timestamp
	25, // 11: chat.ChatRoom.members:type_name -> chat.ChatMember
	35, // 12: chat.ChatRoom.last_activity_at:type_name -> google.protobuf.Timestamp
	35, // 13: chat.MessageDeletedEvent.at:type_name -> google.protobuf.Timestamp
	35, // 14: chat.ReadEvent.at:type_name -> google.protobuf.Timestamp
	35, // 15: chat.MemberEvent.at:type_name -> google.protobuf.Timestamp
	35, // 16: chat.StatusEvent.at:type_name -> google.protobuf.Timestamp
	24, // 17: chat.ServerEvent.message_new:type_name -> chat.ChatMessage
	24, // 18: chat.ServerEvent.message_edited:type_name -> chat.ChatMessage
	27, // 19: chat.ServerEvent.message_deleted:type_name -> chat.MessageDeletedEvent
	28, // 20: chat.ServerEvent.reaction_added:type_name -> chat.ReactionEvent
	28, // 21: chat.ServerEvent.reaction_removed:type_name -> chat.ReactionEvent
	29, // 22: chat.ServerEvent.messages_read:type_name -> chat.ReadEvent
	30, // 23: chat.ServerEvent.user_joined:type_name -> chat.MemberEvent
	30, // 24: chat.ServerEvent.user_left:type_name -> chat.MemberEvent
	30, // 25: chat.ServerEvent.member_added:type_name -> chat.MemberEvent
	30, // 26: chat.ServerEvent.member_removed:type_name -> chat.MemberEvent
	30, // 27: chat.ServerEvent.role_updated:type_name -> chat.MemberEvent
	31, // 28: chat.ServerEvent.user_status:type_name -> chat.StatusEvent
	32, // 29: chat.ServerEvent.typing_start:type_name -> chat.TypingEvent
	32, // 30: chat.ServerEvent.typing_stop:type_name -> chat.TypingEvent
	33, // 31: chat.ServerEvent.error:type_name -> chat.ErrorEvent
	0,  // 32: chat.ChatService.Connect:input_type -> chat.ConnectRequest
	2,  // 33: chat.ChatService.SendMessage:input_type -> chat.SendMessageRequest
	3,  // 34: chat.ChatService.EditMessage:input_type -> chat.EditMessageRequest
	4,  // 35: chat.ChatService.DeleteMessage:input_type -> chat.DeleteMessageRequest
	5,  // 36: chat.ChatService.AddReaction:input_type -> chat.ReactionRequest
	5,  // 37: chat.ChatService.RemoveReaction:input_type -> chat.ReactionRequest
	6,  // 38: chat.ChatService.MarkRead:input_type -> chat.MarkReadRequest
	7,  // 39: chat.ChatService.SetTyping:input_type -> chat.TypingRequest
	8,  // 40: chat.ChatService.UpdateStatus:input_type -> chat.UpdateStatusRequest
	9,  // 41: chat.ChatService.CreateRoom:input_type -> chat.CreateRoomRequest
	10, // 42: chat.ChatService.JoinRoom:input_type -> chat.RoomRequest
	10, // 43: chat.ChatService.LeaveRoom:input_type -> chat.RoomRequest
	11, // 44: chat.ChatService.InviteMember:input_type -> chat.MemberRequest
	11, // 45: chat.ChatService.RemoveMember:input_type -> chat.MemberRequest
	12, // 46: chat.ChatService.UpdateMemberRole:input_type -> chat.UpdateRoleRequest
	10, // 47: chat.ChatService.GetRoom:input_type -> chat.RoomRequest
	13, // 48: chat.ChatService.ListRooms:input_type -> chat.ListRoomsRequest
	14, // 49: chat.ChatService.GetRoomMessages:input_type -> chat.GetRoomMessagesRequest
	15, // 50: chat.ChatService.SearchMessages:input_type -> chat.SearchMessagesRequest
	16, // 51: chat.ChatService.UnreadCount:input_type -> chat.UnreadCountRequest
	34, // 52: chat.ChatService.Connect:output_type -> chat.ServerEvent
	17, // 53: chat.ChatService.SendMessage:output_type -> chat.MessageReply
	17, // 54: chat.ChatService.EditMessage:output_type -> chat.MessageReply
	1,  // 55: chat.ChatService.DeleteMessage:output_type -> chat.Ack
	1,  // 56: chat.ChatService.AddReaction:output_type -> chat.Ack
	1,  // 57: chat.ChatService.RemoveReaction:output_type -> chat.Ack
	21, // 58: chat.ChatService.MarkRead:output_type -> chat.UnreadReply
	1,  // 59: chat.ChatService.SetTyping:output_type -> chat.Ack
	1,  // 60: chat.ChatService.UpdateStatus:output_type -> chat.Ack
	18, // 61: chat.ChatService.CreateRoom:output_type -> chat.RoomReply
	18, // 62: chat.ChatService.JoinRoom:output_type -> chat.RoomReply
	1,  // 63: chat.ChatService.LeaveRoom:output_type -> chat.Ack
	1,  // 64: chat.ChatService.InviteMember:output_type -> chat.Ack
	1,  // 65: chat.ChatService.RemoveMember:output_type -> chat.Ack
	1,  // 66: chat.ChatService.UpdateMemberRole:output_type -> chat.Ack
	18, // 67: chat.ChatService.GetRoom:output_type -> chat.RoomReply
	19, // 68: chat.ChatService.ListRooms:output_type -> chat.ListRoomsReply
	20, // 69: chat.ChatService.GetRoomMessages:output_type -> chat.MessagesReply
	20, // 70: chat.ChatService.SearchMessages:output_type -> chat.MessagesReply
	21, // 71: chat.ChatService.UnreadCount:output_type -> chat.UnreadReply
	52, // [52:72] is the sub-list for method output_type
	32, // [32:52] is the sub-list for method input_type
	32, // [32:32] is the sub-list for extension type_name
	32, // [32:32] is the sub-list for extension extendee
	0,  // [0:32] is the sub-list for field type_name
}

func init() { file_chat_proto_init() }
func file_chat_proto_init() {
	if File_chat_proto != nil {
		return
	}
	file_chat_proto_msgTypes[34].OneofWrappers = []any{
		(*ServerEvent_MessageNew)(nil),
		(*ServerEvent_MessageEdited)(nil),
		(*ServerEvent_MessageDeleted)(nil),
		(*ServerEvent_ReactionAdded)(nil),
		(*ServerEvent_ReactionRemoved)(nil),
		(*ServerEvent_MessagesRead)(nil),
		(*ServerEvent_UserJoined)(nil),
		(*ServerEvent_UserLeft)(nil),
		(*ServerEvent_MemberAdded)(nil),
		(*ServerEvent_MemberRemoved)(nil),
		(*ServerEvent_RoleUpdated)(nil),
		(*ServerEvent_UserStatus)(nil),
		(*ServerEvent_TypingStart)(nil),
		(*ServerEvent_TypingStop)(nil),
		(*ServerEvent_Error)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_chat_proto_rawDesc), len(file_chat_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   35,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_chat_proto_goTypes,
		DependencyIndexes: file_chat_proto_depIdxs,
		MessageInfos:      file_chat_proto_msgTypes,
	}.Build()
	File_chat_proto = out.File
	file_chat_proto_goTypes = nil
	file_chat_proto_depIdxs = nil
}
