// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: identity/v1/identity.proto

package identityv1

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

// LinkOutcome tags how LinkAccount resolved the provider identity.
type LinkOutcome int32

const (
	LinkOutcome_LINK_OUTCOME_UNSPECIFIED LinkOutcome = 0
	// A new user and account were created.
	LinkOutcome_LINK_OUTCOME_CREATED LinkOutcome = 1
	// The account was linked to an existing user, or already existed.
	LinkOutcome_LINK_OUTCOME_LINKED LinkOutcome = 2
	// The account already existed and its provider tokens were refreshed.
	LinkOutcome_LINK_OUTCOME_REFRESHED LinkOutcome = 3
)

// Enum value maps for LinkOutcome.
var (
	LinkOutcome_name = map[int32]string{
		0: "LINK_OUTCOME_UNSPECIFIED",
		1: "LINK_OUTCOME_CREATED",
		2: "LINK_OUTCOME_LINKED",
		3: "LINK_OUTCOME_REFRESHED",
	}
	LinkOutcome_value = map[string]int32{
		"LINK_OUTCOME_UNSPECIFIED": 0,
		"LINK_OUTCOME_CREATED":     1,
		"LINK_OUTCOME_LINKED":      2,
		"LINK_OUTCOME_REFRESHED":   3,
	}
)

func (x LinkOutcome) Enum() *LinkOutcome {
	p := new(LinkOutcome)
	*p = x
	return p
}

func (x LinkOutcome) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (LinkOutcome) Descriptor() protoreflect.EnumDescriptor {
	return file_identity_v1_identity_proto_enumTypes[0].Descriptor()
}

func (LinkOutcome) Type() protoreflect.EnumType {
	return &file_identity_v1_identity_proto_enumTypes[0]
}

func (x LinkOutcome) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use LinkOutcome.Descriptor instead.
func (LinkOutcome) EnumDescriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{0}
}

// VerifyStatus reports the terminal outcome of a token consumption.
type VerifyStatus int32

const (
	VerifyStatus_VERIFY_STATUS_UNSPECIFIED VerifyStatus = 0
	// The token was valid and has been consumed.
	VerifyStatus_VERIFY_STATUS_OK VerifyStatus = 1
	// The token existed but had expired; it has still been consumed so a
	// later retry cannot succeed.
	VerifyStatus_VERIFY_STATUS_EXPIRED VerifyStatus = 2
	// No unconsumed token matched the (identifier, token) pair.
	VerifyStatus_VERIFY_STATUS_NOT_FOUND VerifyStatus = 3
)

// Enum value maps for VerifyStatus.
var (
	VerifyStatus_name = map[int32]string{
		0: "VERIFY_STATUS_UNSPECIFIED",
		1: "VERIFY_STATUS_OK",
		2: "VERIFY_STATUS_EXPIRED",
		3: "VERIFY_STATUS_NOT_FOUND",
	}
	VerifyStatus_value = map[string]int32{
		"VERIFY_STATUS_UNSPECIFIED": 0,
		"VERIFY_STATUS_OK":          1,
		"VERIFY_STATUS_EXPIRED":     2,
		"VERIFY_STATUS_NOT_FOUND":   3,
	}
)

func (x VerifyStatus) Enum() *VerifyStatus {
	p := new(VerifyStatus)
	*p = x
	return p
}

func (x VerifyStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (VerifyStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_identity_v1_identity_proto_enumTypes[1].Descriptor()
}

func (VerifyStatus) Type() protoreflect.EnumType {
	return &file_identity_v1_identity_proto_enumTypes[1]
}

func (x VerifyStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use VerifyStatus.Descriptor instead.
func (VerifyStatus) EnumDescriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{1}
}

// User is a canonical identity record.
type User struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          *string                `protobuf:"bytes,2,opt,name=name,proto3,oneof" json:"name,omitempty"`
	Email         *string                `protobuf:"bytes,3,opt,name=email,proto3,oneof" json:"email,omitempty"`
	EmailVerified *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=email_verified,json=emailVerified,proto3,oneof" json:"email_verified,omitempty"`
	Image         *string                `protobuf:"bytes,5,opt,name=image,proto3,oneof" json:"image,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_identity_v1_identity_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{0}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *User) GetEmail() string {
	if x != nil && x.Email != nil {
		return *x.Email
	}
	return ""
}

func (x *User) GetEmailVerified() *timestamppb.Timestamp {
	if x != nil {
		return x.EmailVerified
	}
	return nil
}

func (x *User) GetImage() string {
	if x != nil && x.Image != nil {
		return *x.Image
	}
	return ""
}

func (x *User) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *User) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

// Account links a user to one external provider identity.
type Account struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId             string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ProviderType       string                 `protobuf:"bytes,3,opt,name=provider_type,json=providerType,proto3" json:"provider_type,omitempty"`
	ProviderId         string                 `protobuf:"bytes,4,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	ProviderAccountId  string                 `protobuf:"bytes,5,opt,name=provider_account_id,json=providerAccountId,proto3" json:"provider_account_id,omitempty"`
	RefreshToken       *string                `protobuf:"bytes,6,opt,name=refresh_token,json=refreshToken,proto3,oneof" json:"refresh_token,omitempty"`
	AccessToken        *string                `protobuf:"bytes,7,opt,name=access_token,json=accessToken,proto3,oneof" json:"access_token,omitempty"`
	AccessTokenExpires *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=access_token_expires,json=accessTokenExpires,proto3,oneof" json:"access_token_expires,omitempty"`
	CreatedAt          *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Account) Reset() {
	*x = Account{}
	mi := &file_identity_v1_identity_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Account) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Account) ProtoMessage() {}

func (x *Account) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Account.ProtoReflect.Descriptor instead.
func (*Account) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{1}
}

func (x *Account) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Account) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Account) GetProviderType() string {
	if x != nil {
		return x.ProviderType
	}
	return ""
}

func (x *Account) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *Account) GetProviderAccountId() string {
	if x != nil {
		return x.ProviderAccountId
	}
	return ""
}

func (x *Account) GetRefreshToken() string {
	if x != nil && x.RefreshToken != nil {
		return *x.RefreshToken
	}
	return ""
}

func (x *Account) GetAccessToken() string {
	if x != nil && x.AccessToken != nil {
		return *x.AccessToken
	}
	return ""
}

func (x *Account) GetAccessTokenExpires() *timestamppb.Timestamp {
	if x != nil {
		return x.AccessTokenExpires
	}
	return nil
}

func (x *Account) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Account) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

// Session is a live authenticated session for a user.
type Session struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ExpiresAt     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	SessionToken  string                 `protobuf:"bytes,4,opt,name=session_token,json=sessionToken,proto3" json:"session_token,omitempty"`
	AccessToken   string                 `protobuf:"bytes,5,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Session) Reset() {
	*x = Session{}
	mi := &file_identity_v1_identity_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Session) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Session) ProtoMessage() {}

func (x *Session) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Session.ProtoReflect.Descriptor instead.
func (*Session) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{2}
}

func (x *Session) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Session) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Session) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}

func (x *Session) GetSessionToken() string {
	if x != nil {
		return x.SessionToken
	}
	return ""
}

func (x *Session) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *Session) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Session) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

// VerificationRequest is a single-use token proving control of an identifier.
type VerificationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Identifier    string                 `protobuf:"bytes,2,opt,name=identifier,proto3" json:"identifier,omitempty"`
	ExpiresAt     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerificationRequest) Reset() {
	*x = VerificationRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerificationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerificationRequest) ProtoMessage() {}

func (x *VerificationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerificationRequest.ProtoReflect.Descriptor instead.
func (*VerificationRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{3}
}

func (x *VerificationRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *VerificationRequest) GetIdentifier() string {
	if x != nil {
		return x.Identifier
	}
	return ""
}

func (x *VerificationRequest) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}

func (x *VerificationRequest) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *VerificationRequest) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

// Profile carries provider-supplied profile data used during account linking.
type Profile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          *string                `protobuf:"bytes,1,opt,name=name,proto3,oneof" json:"name,omitempty"`
	Email         *string                `protobuf:"bytes,2,opt,name=email,proto3,oneof" json:"email,omitempty"`
	Image         *string                `protobuf:"bytes,3,opt,name=image,proto3,oneof" json:"image,omitempty"`
	EmailVerified *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=email_verified,json=emailVerified,proto3,oneof" json:"email_verified,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Profile) Reset() {
	*x = Profile{}
	mi := &file_identity_v1_identity_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Profile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Profile) ProtoMessage() {}

func (x *Profile) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Profile.ProtoReflect.Descriptor instead.
func (*Profile) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{4}
}

func (x *Profile) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *Profile) GetEmail() string {
	if x != nil && x.Email != nil {
		return *x.Email
	}
	return ""
}

func (x *Profile) GetImage() string {
	if x != nil && x.Image != nil {
		return *x.Image
	}
	return ""
}

func (x *Profile) GetEmailVerified() *timestamppb.Timestamp {
	if x != nil {
		return x.EmailVerified
	}
	return nil
}

type UpsertUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Name          *string                `protobuf:"bytes,2,opt,name=name,proto3,oneof" json:"name,omitempty"`
	Email         *string                `protobuf:"bytes,3,opt,name=email,proto3,oneof" json:"email,omitempty"`
	EmailVerified *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=email_verified,json=emailVerified,proto3,oneof" json:"email_verified,omitempty"`
	Image         *string                `protobuf:"bytes,5,opt,name=image,proto3,oneof" json:"image,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpsertUserRequest) Reset() {
	*x = UpsertUserRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertUserRequest) ProtoMessage() {}

func (x *UpsertUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpsertUserRequest.ProtoReflect.Descriptor instead.
func (*UpsertUserRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{5}
}

func (x *UpsertUserRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UpsertUserRequest) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *UpsertUserRequest) GetEmail() string {
	if x != nil && x.Email != nil {
		return *x.Email
	}
	return ""
}

func (x *UpsertUserRequest) GetEmailVerified() *timestamppb.Timestamp {
	if x != nil {
		return x.EmailVerified
	}
	return nil
}

func (x *UpsertUserRequest) GetImage() string {
	if x != nil && x.Image != nil {
		return *x.Image
	}
	return ""
}

type UpsertUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpsertUserResponse) Reset() {
	*x = UpsertUserResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertUserResponse) ProtoMessage() {}

func (x *UpsertUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpsertUserResponse.ProtoReflect.Descriptor instead.
func (*UpsertUserResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{6}
}

func (x *UpsertUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type GetUserByIdRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserByIdRequest) Reset() {
	*x = GetUserByIdRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserByIdRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserByIdRequest) ProtoMessage() {}

func (x *GetUserByIdRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserByIdRequest.ProtoReflect.Descriptor instead.
func (*GetUserByIdRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{7}
}

func (x *GetUserByIdRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetUserByIdResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserByIdResponse) Reset() {
	*x = GetUserByIdResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserByIdResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserByIdResponse) ProtoMessage() {}

func (x *GetUserByIdResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserByIdResponse.ProtoReflect.Descriptor instead.
func (*GetUserByIdResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{8}
}

func (x *GetUserByIdResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type GetUserByEmailRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserByEmailRequest) Reset() {
	*x = GetUserByEmailRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserByEmailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserByEmailRequest) ProtoMessage() {}

func (x *GetUserByEmailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserByEmailRequest.ProtoReflect.Descriptor instead.
func (*GetUserByEmailRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{9}
}

func (x *GetUserByEmailRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type GetUserByEmailResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserByEmailResponse) Reset() {
	*x = GetUserByEmailResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserByEmailResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserByEmailResponse) ProtoMessage() {}

func (x *GetUserByEmailResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserByEmailResponse.ProtoReflect.Descriptor instead.
func (*GetUserByEmailResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{10}
}

func (x *GetUserByEmailResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type UpdateUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Name          *string                `protobuf:"bytes,2,opt,name=name,proto3,oneof" json:"name,omitempty"`
	Email         *string                `protobuf:"bytes,3,opt,name=email,proto3,oneof" json:"email,omitempty"`
	EmailVerified *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=email_verified,json=emailVerified,proto3,oneof" json:"email_verified,omitempty"`
	Image         *string                `protobuf:"bytes,5,opt,name=image,proto3,oneof" json:"image,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateUserRequest) Reset() {
	*x = UpdateUserRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateUserRequest) ProtoMessage() {}

func (x *UpdateUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateUserRequest.ProtoReflect.Descriptor instead.
func (*UpdateUserRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateUserRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UpdateUserRequest) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *UpdateUserRequest) GetEmail() string {
	if x != nil && x.Email != nil {
		return *x.Email
	}
	return ""
}

func (x *UpdateUserRequest) GetEmailVerified() *timestamppb.Timestamp {
	if x != nil {
		return x.EmailVerified
	}
	return nil
}

func (x *UpdateUserRequest) GetImage() string {
	if x != nil && x.Image != nil {
		return *x.Image
	}
	return ""
}

type UpdateUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateUserResponse) Reset() {
	*x = UpdateUserResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateUserResponse) ProtoMessage() {}

func (x *UpdateUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateUserResponse.ProtoReflect.Descriptor instead.
func (*UpdateUserResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{12}
}

func (x *UpdateUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type DeleteUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteUserRequest) Reset() {
	*x = DeleteUserRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteUserRequest) ProtoMessage() {}

func (x *DeleteUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteUserRequest.ProtoReflect.Descriptor instead.
func (*DeleteUserRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{13}
}

func (x *DeleteUserRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type DeleteUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteUserResponse) Reset() {
	*x = DeleteUserResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteUserResponse) ProtoMessage() {}

func (x *DeleteUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteUserResponse.ProtoReflect.Descriptor instead.
func (*DeleteUserResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{14}
}

type ListUsersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PageSize      int32                  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string                 `protobuf:"bytes,2,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUsersRequest) Reset() {
	*x = ListUsersRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUsersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUsersRequest) ProtoMessage() {}

func (x *ListUsersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUsersRequest.ProtoReflect.Descriptor instead.
func (*ListUsersRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{15}
}

func (x *ListUsersRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListUsersRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

type ListUsersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Users         []*User                `protobuf:"bytes,1,rep,name=users,proto3" json:"users,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUsersResponse) Reset() {
	*x = ListUsersResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUsersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUsersResponse) ProtoMessage() {}

func (x *ListUsersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUsersResponse.ProtoReflect.Descriptor instead.
func (*ListUsersResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{16}
}

func (x *ListUsersResponse) GetUsers() []*User {
	if x != nil {
		return x.Users
	}
	return nil
}

func (x *ListUsersResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type LinkAccountRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	ProviderType       string                 `protobuf:"bytes,1,opt,name=provider_type,json=providerType,proto3" json:"provider_type,omitempty"`
	ProviderId         string                 `protobuf:"bytes,2,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	ProviderAccountId  string                 `protobuf:"bytes,3,opt,name=provider_account_id,json=providerAccountId,proto3" json:"provider_account_id,omitempty"`
	RefreshToken       *string                `protobuf:"bytes,4,opt,name=refresh_token,json=refreshToken,proto3,oneof" json:"refresh_token,omitempty"`
	AccessToken        *string                `protobuf:"bytes,5,opt,name=access_token,json=accessToken,proto3,oneof" json:"access_token,omitempty"`
	AccessTokenExpires *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=access_token_expires,json=accessTokenExpires,proto3,oneof" json:"access_token_expires,omitempty"`
	Profile            *Profile               `protobuf:"bytes,7,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *LinkAccountRequest) Reset() {
	*x = LinkAccountRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LinkAccountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LinkAccountRequest) ProtoMessage() {}

func (x *LinkAccountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LinkAccountRequest.ProtoReflect.Descriptor instead.
func (*LinkAccountRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{17}
}

func (x *LinkAccountRequest) GetProviderType() string {
	if x != nil {
		return x.ProviderType
	}
	return ""
}

func (x *LinkAccountRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *LinkAccountRequest) GetProviderAccountId() string {
	if x != nil {
		return x.ProviderAccountId
	}
	return ""
}

func (x *LinkAccountRequest) GetRefreshToken() string {
	if x != nil && x.RefreshToken != nil {
		return *x.RefreshToken
	}
	return ""
}

func (x *LinkAccountRequest) GetAccessToken() string {
	if x != nil && x.AccessToken != nil {
		return *x.AccessToken
	}
	return ""
}

func (x *LinkAccountRequest) GetAccessTokenExpires() *timestamppb.Timestamp {
	if x != nil {
		return x.AccessTokenExpires
	}
	return nil
}

func (x *LinkAccountRequest) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type LinkAccountResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	Account       *Account               `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	Outcome       LinkOutcome            `protobuf:"varint,3,opt,name=outcome,proto3,enum=identity.v1.LinkOutcome" json:"outcome,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LinkAccountResponse) Reset() {
	*x = LinkAccountResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LinkAccountResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LinkAccountResponse) ProtoMessage() {}

func (x *LinkAccountResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LinkAccountResponse.ProtoReflect.Descriptor instead.
func (*LinkAccountResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{18}
}

func (x *LinkAccountResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *LinkAccountResponse) GetAccount() *Account {
	if x != nil {
		return x.Account
	}
	return nil
}

func (x *LinkAccountResponse) GetOutcome() LinkOutcome {
	if x != nil {
		return x.Outcome
	}
	return LinkOutcome_LINK_OUTCOME_UNSPECIFIED
}

type UnlinkAccountRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	ProviderId        string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	ProviderAccountId string                 `protobuf:"bytes,2,opt,name=provider_account_id,json=providerAccountId,proto3" json:"provider_account_id,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *UnlinkAccountRequest) Reset() {
	*x = UnlinkAccountRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnlinkAccountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnlinkAccountRequest) ProtoMessage() {}

func (x *UnlinkAccountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnlinkAccountRequest.ProtoReflect.Descriptor instead.
func (*UnlinkAccountRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{19}
}

func (x *UnlinkAccountRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *UnlinkAccountRequest) GetProviderAccountId() string {
	if x != nil {
		return x.ProviderAccountId
	}
	return ""
}

type UnlinkAccountResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnlinkAccountResponse) Reset() {
	*x = UnlinkAccountResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnlinkAccountResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnlinkAccountResponse) ProtoMessage() {}

func (x *UnlinkAccountResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnlinkAccountResponse.ProtoReflect.Descriptor instead.
func (*UnlinkAccountResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{20}
}

type CreateSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TtlSeconds    int64                  `protobuf:"varint,2,opt,name=ttl_seconds,json=ttlSeconds,proto3" json:"ttl_seconds,omitempty"`
	SessionToken  string                 `protobuf:"bytes,3,opt,name=session_token,json=sessionToken,proto3" json:"session_token,omitempty"`
	AccessToken   string                 `protobuf:"bytes,4,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSessionRequest) Reset() {
	*x = CreateSessionRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSessionRequest) ProtoMessage() {}

func (x *CreateSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSessionRequest.ProtoReflect.Descriptor instead.
func (*CreateSessionRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{21}
}

func (x *CreateSessionRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CreateSessionRequest) GetTtlSeconds() int64 {
	if x != nil {
		return x.TtlSeconds
	}
	return 0
}

func (x *CreateSessionRequest) GetSessionToken() string {
	if x != nil {
		return x.SessionToken
	}
	return ""
}

func (x *CreateSessionRequest) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

type CreateSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Session       *Session               `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSessionResponse) Reset() {
	*x = CreateSessionResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSessionResponse) ProtoMessage() {}

func (x *CreateSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSessionResponse.ProtoReflect.Descriptor instead.
func (*CreateSessionResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{22}
}

func (x *CreateSessionResponse) GetSession() *Session {
	if x != nil {
		return x.Session
	}
	return nil
}

type GetSessionByTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionToken  string                 `protobuf:"bytes,1,opt,name=session_token,json=sessionToken,proto3" json:"session_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSessionByTokenRequest) Reset() {
	*x = GetSessionByTokenRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionByTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionByTokenRequest) ProtoMessage() {}

func (x *GetSessionByTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionByTokenRequest.ProtoReflect.Descriptor instead.
func (*GetSessionByTokenRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{23}
}

func (x *GetSessionByTokenRequest) GetSessionToken() string {
	if x != nil {
		return x.SessionToken
	}
	return ""
}

type GetSessionByTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Session       *Session               `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	User          *User                  `protobuf:"bytes,2,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSessionByTokenResponse) Reset() {
	*x = GetSessionByTokenResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionByTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionByTokenResponse) ProtoMessage() {}

func (x *GetSessionByTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionByTokenResponse.ProtoReflect.Descriptor instead.
func (*GetSessionByTokenResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{24}
}

func (x *GetSessionByTokenResponse) GetSession() *Session {
	if x != nil {
		return x.Session
	}
	return nil
}

func (x *GetSessionByTokenResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type GetSessionByAccessTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccessToken   string                 `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSessionByAccessTokenRequest) Reset() {
	*x = GetSessionByAccessTokenRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionByAccessTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionByAccessTokenRequest) ProtoMessage() {}

func (x *GetSessionByAccessTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionByAccessTokenRequest.ProtoReflect.Descriptor instead.
func (*GetSessionByAccessTokenRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{25}
}

func (x *GetSessionByAccessTokenRequest) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

type GetSessionByAccessTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Session       *Session               `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	User          *User                  `protobuf:"bytes,2,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSessionByAccessTokenResponse) Reset() {
	*x = GetSessionByAccessTokenResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionByAccessTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionByAccessTokenResponse) ProtoMessage() {}

func (x *GetSessionByAccessTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionByAccessTokenResponse.ProtoReflect.Descriptor instead.
func (*GetSessionByAccessTokenResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{26}
}

func (x *GetSessionByAccessTokenResponse) GetSession() *Session {
	if x != nil {
		return x.Session
	}
	return nil
}

func (x *GetSessionByAccessTokenResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type RotateSessionRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	SessionToken   string                 `protobuf:"bytes,1,opt,name=session_token,json=sessionToken,proto3" json:"session_token,omitempty"`
	NewAccessToken string                 `protobuf:"bytes,2,opt,name=new_access_token,json=newAccessToken,proto3" json:"new_access_token,omitempty"`
	TtlSeconds     int64                  `protobuf:"varint,3,opt,name=ttl_seconds,json=ttlSeconds,proto3" json:"ttl_seconds,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *RotateSessionRequest) Reset() {
	*x = RotateSessionRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RotateSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RotateSessionRequest) ProtoMessage() {}

func (x *RotateSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RotateSessionRequest.ProtoReflect.Descriptor instead.
func (*RotateSessionRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{27}
}

func (x *RotateSessionRequest) GetSessionToken() string {
	if x != nil {
		return x.SessionToken
	}
	return ""
}

func (x *RotateSessionRequest) GetNewAccessToken() string {
	if x != nil {
		return x.NewAccessToken
	}
	return ""
}

func (x *RotateSessionRequest) GetTtlSeconds() int64 {
	if x != nil {
		return x.TtlSeconds
	}
	return 0
}

type RotateSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Session       *Session               `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RotateSessionResponse) Reset() {
	*x = RotateSessionResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RotateSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RotateSessionResponse) ProtoMessage() {}

func (x *RotateSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RotateSessionResponse.ProtoReflect.Descriptor instead.
func (*RotateSessionResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{28}
}

func (x *RotateSessionResponse) GetSession() *Session {
	if x != nil {
		return x.Session
	}
	return nil
}

type DeleteSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionToken  string                 `protobuf:"bytes,1,opt,name=session_token,json=sessionToken,proto3" json:"session_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteSessionRequest) Reset() {
	*x = DeleteSessionRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteSessionRequest) ProtoMessage() {}

func (x *DeleteSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteSessionRequest.ProtoReflect.Descriptor instead.
func (*DeleteSessionRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{29}
}

func (x *DeleteSessionRequest) GetSessionToken() string {
	if x != nil {
		return x.SessionToken
	}
	return ""
}

type DeleteSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteSessionResponse) Reset() {
	*x = DeleteSessionResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteSessionResponse) ProtoMessage() {}

func (x *DeleteSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteSessionResponse.ProtoReflect.Descriptor instead.
func (*DeleteSessionResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{30}
}

type CreateVerificationRequestRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Identifier    string                 `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Token         string                 `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	TtlSeconds    int64                  `protobuf:"varint,3,opt,name=ttl_seconds,json=ttlSeconds,proto3" json:"ttl_seconds,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateVerificationRequestRequest) Reset() {
	*x = CreateVerificationRequestRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateVerificationRequestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateVerificationRequestRequest) ProtoMessage() {}

func (x *CreateVerificationRequestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateVerificationRequestRequest.ProtoReflect.Descriptor instead.
func (*CreateVerificationRequestRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{31}
}

func (x *CreateVerificationRequestRequest) GetIdentifier() string {
	if x != nil {
		return x.Identifier
	}
	return ""
}

func (x *CreateVerificationRequestRequest) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

func (x *CreateVerificationRequestRequest) GetTtlSeconds() int64 {
	if x != nil {
		return x.TtlSeconds
	}
	return 0
}

type CreateVerificationRequestResponse struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	VerificationRequest *VerificationRequest   `protobuf:"bytes,1,opt,name=verification_request,json=verificationRequest,proto3" json:"verification_request,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *CreateVerificationRequestResponse) Reset() {
	*x = CreateVerificationRequestResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateVerificationRequestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateVerificationRequestResponse) ProtoMessage() {}

func (x *CreateVerificationRequestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateVerificationRequestResponse.ProtoReflect.Descriptor instead.
func (*CreateVerificationRequestResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{32}
}

func (x *CreateVerificationRequestResponse) GetVerificationRequest() *VerificationRequest {
	if x != nil {
		return x.VerificationRequest
	}
	return nil
}

type VerifyTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Identifier    string                 `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Token         string                 `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyTokenRequest) Reset() {
	*x = VerifyTokenRequest{}
	mi := &file_identity_v1_identity_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyTokenRequest) ProtoMessage() {}

func (x *VerifyTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyTokenRequest.ProtoReflect.Descriptor instead.
func (*VerifyTokenRequest) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{33}
}

func (x *VerifyTokenRequest) GetIdentifier() string {
	if x != nil {
		return x.Identifier
	}
	return ""
}

func (x *VerifyTokenRequest) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

type VerifyTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        VerifyStatus           `protobuf:"varint,1,opt,name=status,proto3,enum=identity.v1.VerifyStatus" json:"status,omitempty"`
	Identifier    string                 `protobuf:"bytes,2,opt,name=identifier,proto3" json:"identifier,omitempty"`
	VerifiedAt    *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=verified_at,json=verifiedAt,proto3" json:"verified_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyTokenResponse) Reset() {
	*x = VerifyTokenResponse{}
	mi := &file_identity_v1_identity_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyTokenResponse) ProtoMessage() {}

func (x *VerifyTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_identity_v1_identity_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyTokenResponse.ProtoReflect.Descriptor instead.
func (*VerifyTokenResponse) Descriptor() ([]byte, []int) {
	return file_identity_v1_identity_proto_rawDescGZIP(), []int{34}
}

func (x *VerifyTokenResponse) GetStatus() VerifyStatus {
	if x != nil {
		return x.Status
	}
	return VerifyStatus_VERIFY_STATUS_UNSPECIFIED
}

func (x *VerifyTokenResponse) GetIdentifier() string {
	if x != nil {
		return x.Identifier
	}
	return ""
}

func (x *VerifyTokenResponse) GetVerifiedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.VerifiedAt
	}
	return nil
}

var File_identity_v1_identity_proto protoreflect.FileDescriptor

const file_identity_v1_identity_proto_rawDesc = "" +
	"\n" +
	"\x1aidentity/v1/identity.proto\x12\videntity.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xd3\x02\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\x04name\x18\x02 \x01(\tH\x00R\x04name\x88\x01\x01\x12\x19\n" +
	"\x05email\x18\x03 \x01(\tH\x01R\x05email\x88\x01\x01\x12F\n" +
	"\x0eemail_verified\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampH\x02R\remailVerified\x88\x01\x01\x12\x19\n" +
	"\x05image\x18\x05 \x01(\tH\x03R\x05image\x88\x01\x01\x129\n" +
	"\n" +
	"created_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAtB\a\n" +
	"\x05_nameB\b\n" +
	"\x06_emailB\x11\n" +
	"\x0f_email_verifiedB\b\n" +
	"\x06_image\"\xff\x03\n" +
	"\aAccount\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12#\n" +
	"\rprovider_type\x18\x03 \x01(\tR\fproviderType\x12\x1f\n" +
	"\vprovider_id\x18\x04 \x01(\tR\n" +
	"providerId\x12.\n" +
	"\x13provider_account_id\x18\x05 \x01(\tR\x11providerAccountId\x12(\n" +
	"\rrefresh_token\x18\x06 \x01(\tH\x00R\frefreshToken\x88\x01\x01\x12&\n" +
	"\faccess_token\x18\a \x01(\tH\x01R\vaccessToken\x88\x01\x01\x12Q\n" +
	"\x14access_token_expires\x18\b \x01(\v2\x1a.google.protobuf.TimestampH\x02R\x12accessTokenExpires\x88\x01\x01\x129\n" +
	"\n" +
	"created_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAtB\x10\n" +
	"\x0e_refresh_tokenB\x0f\n" +
	"\r_access_tokenB\x17\n" +
	"\x15_access_token_expires\"\xab\x02\n" +
	"\aSession\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x129\n" +
	"\n" +
	"expires_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\texpiresAt\x12#\n" +
	"\rsession_token\x18\x04 \x01(\tR\fsessionToken\x12!\n" +
	"\faccess_token\x18\x05 \x01(\tR\vaccessToken\x129\n" +
	"\n" +
	"created_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xf6\x01\n" +
	"\x13VerificationRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1e\n" +
	"\n" +
	"identifier\x18\x02 \x01(\tR\n" +
	"identifier\x129\n" +
	"\n" +
	"expires_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\texpiresAt\x129\n" +
	"\n" +
	"created_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xd0\x01\n" +
	"\aProfile\x12\x17\n" +
	"\x04name\x18\x01 \x01(\tH\x00R\x04name\x88\x01\x01\x12\x19\n" +
	"\x05email\x18\x02 \x01(\tH\x01R\x05email\x88\x01\x01\x12\x19\n" +
	"\x05image\x18\x03 \x01(\tH\x02R\x05image\x88\x01\x01\x12F\n" +
	"\x0eemail_verified\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampH\x03R\remailVerified\x88\x01\x01B\a\n" +
	"\x05_nameB\b\n" +
	"\x06_emailB\b\n" +
	"\x06_imageB\x11\n" +
	"\x0f_email_verified\"\xf3\x01\n" +
	"\x11UpsertUserRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x17\n" +
	"\x04name\x18\x02 \x01(\tH\x00R\x04name\x88\x01\x01\x12\x19\n" +
	"\x05email\x18\x03 \x01(\tH\x01R\x05email\x88\x01\x01\x12F\n" +
	"\x0eemail_verified\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampH\x02R\remailVerified\x88\x01\x01\x12\x19\n" +
	"\x05image\x18\x05 \x01(\tH\x03R\x05image\x88\x01\x01B\a\n" +
	"\x05_nameB\b\n" +
	"\x06_emailB\x11\n" +
	"\x0f_email_verifiedB\b\n" +
	"\x06_image\";\n" +
	"\x12UpsertUserResponse\x12%\n" +
	"\x04user\x18\x01 \x01(\v2\x11.identity.v1.UserR\x04user\"-\n" +
	"\x12GetUserByIdRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"<\n" +
	"\x13GetUserByIdResponse\x12%\n" +
	"\x04user\x18\x01 \x01(\v2\x11.identity.v1.UserR\x04user\"-\n" +
	"\x15GetUserByEmailRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\"?\n" +
	"\x16GetUserByEmailResponse\x12%\n" +
	"\x04user\x18\x01 \x01(\v2\x11.identity.v1.UserR\x04user\"\xf3\x01\n" +
	"\x11UpdateUserRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x17\n" +
	"\x04name\x18\x02 \x01(\tH\x00R\x04name\x88\x01\x01\x12\x19\n" +
	"\x05email\x18\x03 \x01(\tH\x01R\x05email\x88\x01\x01\x12F\n" +
	"\x0eemail_verified\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampH\x02R\remailVerified\x88\x01\x01\x12\x19\n" +
	"\x05image\x18\x05 \x01(\tH\x03R\x05image\x88\x01\x01B\a\n" +
	"\x05_nameB\b\n" +
	"\x06_emailB\x11\n" +
	"\x0f_email_verifiedB\b\n" +
	"\x06_image\";\n" +
	"\x12UpdateUserResponse\x12%\n" +
	"\x04user\x18\x01 \x01(\v2\x11.identity.v1.UserR\x04user\",\n" +
	"\x11DeleteUserRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"\x14\n" +
	"\x12DeleteUserResponse\"N\n" +
	"\x10ListUsersRequest\x12\x1b\n" +
	"\tpage_size\x18\x01 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x02 \x01(\tR\tpageToken\"d\n" +
	"\x11ListUsersResponse\x12'\n" +
	"\x05users\x18\x01 \x03(\v2\x11.identity.v1.UserR\x05users\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"\x9b\x03\n" +
	"\x12LinkAccountRequest\x12#\n" +
	"\rprovider_type\x18\x01 \x01(\tR\fproviderType\x12\x1f\n" +
	"\vprovider_id\x18\x02 \x01(\tR\n" +
	"providerId\x12.\n" +
	"\x13provider_account_id\x18\x03 \x01(\tR\x11providerAccountId\x12(\n" +
	"\rrefresh_token\x18\x04 \x01(\tH\x00R\frefreshToken\x88\x01\x01\x12&\n" +
	"\faccess_token\x18\x05 \x01(\tH\x01R\vaccessToken\x88\x01\x01\x12Q\n" +
	"\x14access_token_expires\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampH\x02R\x12accessTokenExpires\x88\x01\x01\x12.\n" +
	"\aprofile\x18\a \x01(\v2\x14.identity.v1.ProfileR\aprofileB\x10\n" +
	"\x0e_refresh_tokenB\x0f\n" +
	"\r_access_tokenB\x17\n" +
	"\x15_access_token_expires\"\xa0\x01\n" +
	"\x13LinkAccountResponse\x12%\n" +
	"\x04user\x18\x01 \x01(\v2\x11.identity.v1.UserR\x04user\x12.\n" +
	"\aaccount\x18\x02 \x01(\v2\x14.identity.v1.AccountR\aaccount\x122\n" +
	"\aoutcome\x18\x03 \x01(\x0e2\x18.identity.v1.LinkOutcomeR\aoutcome\"g\n" +
	"\x14UnlinkAccountRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x12.\n" +
	"\x13provider_account_id\x18\x02 \x01(\tR\x11providerAccountId\"\x17\n" +
	"\x15UnlinkAccountResponse\"\x98\x01\n" +
	"\x14CreateSessionRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1f\n" +
	"\vttl_seconds\x18\x02 \x01(\x03R\n" +
	"ttlSeconds\x12#\n" +
	"\rsession_token\x18\x03 \x01(\tR\fsessionToken\x12!\n" +
	"\faccess_token\x18\x04 \x01(\tR\vaccessToken\"G\n" +
	"\x15CreateSessionResponse\x12.\n" +
	"\asession\x18\x01 \x01(\v2\x14.identity.v1.SessionR\asession\"?\n" +
	"\x18GetSessionByTokenRequest\x12#\n" +
	"\rsession_token\x18\x01 \x01(\tR\fsessionToken\"r\n" +
	"\x19GetSessionByTokenResponse\x12.\n" +
	"\asession\x18\x01 \x01(\v2\x14.identity.v1.SessionR\asession\x12%\n" +
	"\x04user\x18\x02 \x01(\v2\x11.identity.v1.UserR\x04user\"C\n" +
	"\x1eGetSessionByAccessTokenRequest\x12!\n" +
	"\faccess_token\x18\x01 \x01(\tR\vaccessToken\"x\n" +
	"\x1fGetSessionByAccessTokenResponse\x12.\n" +
	"\asession\x18\x01 \x01(\v2\x14.identity.v1.SessionR\asession\x12%\n" +
	"\x04user\x18\x02 \x01(\v2\x11.identity.v1.UserR\x04user\"\x86\x01\n" +
	"\x14RotateSessionRequest\x12#\n" +
	"\rsession_token\x18\x01 \x01(\tR\fsessionToken\x12(\n" +
	"\x10new_access_token\x18\x02 \x01(\tR\x0enewAccessToken\x12\x1f\n" +
	"\vttl_seconds\x18\x03 \x01(\x03R\n" +
	"ttlSeconds\"G\n" +
	"\x15RotateSessionResponse\x12.\n" +
	"\asession\x18\x01 \x01(\v2\x14.identity.v1.SessionR\asession\";\n" +
	"\x14DeleteSessionRequest\x12#\n" +
	"\rsession_token\x18\x01 \x01(\tR\fsessionToken\"\x17\n" +
	"\x15DeleteSessionResponse\"y\n" +
	" CreateVerificationRequestRequest\x12\x1e\n" +
	"\n" +
	"identifier\x18\x01 \x01(\tR\n" +
	"identifier\x12\x14\n" +
	"\x05token\x18\x02 \x01(\tR\x05token\x12\x1f\n" +
	"\vttl_seconds\x18\x03 \x01(\x03R\n" +
	"ttlSeconds\"x\n" +
	"!CreateVerificationRequestResponse\x12S\n" +
	"\x14verification_request\x18\x01 \x01(\v2 .identity.v1.VerificationRequestR\x13verificationRequest\"J\n" +
	"\x12VerifyTokenRequest\x12\x1e\n" +
	"\n" +
	"identifier\x18\x01 \x01(\tR\n" +
	"identifier\x12\x14\n" +
	"\x05token\x18\x02 \x01(\tR\x05token\"\xa5\x01\n" +
	"\x13VerifyTokenResponse\x121\n" +
	"\x06status\x18\x01 \x01(\x0e2\x19.identity.v1.VerifyStatusR\x06status\x12\x1e\n" +
	"\n" +
	"identifier\x18\x02 \x01(\tR\n" +
	"identifier\x12;\n" +
	"\vverified_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"verifiedAt*z\n" +
	"\vLinkOutcome\x12\x1c\n" +
	"\x18LINK_OUTCOME_UNSPECIFIED\x10\x00\x12\x18\n" +
	"\x14LINK_OUTCOME_CREATED\x10\x01\x12\x17\n" +
	"\x13LINK_OUTCOME_LINKED\x10\x02\x12\x1a\n" +
	"\x16LINK_OUTCOME_REFRESHED\x10\x03*{\n" +
	"\fVerifyStatus\x12\x1d\n" +
	"\x19VERIFY_STATUS_UNSPECIFIED\x10\x00\x12\x14\n" +
	"\x10VERIFY_STATUS_OK\x10\x01\x12\x19\n" +
	"\x15VERIFY_STATUS_EXPIRED\x10\x02\x12\x1b\n" +
	"\x17VERIFY_STATUS_NOT_FOUND\x10\x032\xd1\n" +
	"\n" +
	"\x0fIdentityService\x12M\n" +
	"\n" +
	"UpsertUser\x12\x1e.identity.v1.UpsertUserRequest\x1a\x1f.identity.v1.UpsertUserResponse\x12P\n" +
	"\vGetUserById\x12\x1f.identity.v1.GetUserByIdRequest\x1a .identity.v1.GetUserByIdResponse\x12Y\n" +
	"\x0eGetUserByEmail\x12\".identity.v1.GetUserByEmailRequest\x1a#.identity.v1.GetUserByEmailResponse\x12M\n" +
	"\n" +
	"UpdateUser\x12\x1e.identity.v1.UpdateUserRequest\x1a\x1f.identity.v1.UpdateUserResponse\x12M\n" +
	"\n" +
	"DeleteUser\x12\x1e.identity.v1.DeleteUserRequest\x1a\x1f.identity.v1.DeleteUserResponse\x12J\n" +
	"\tListUsers\x12\x1d.identity.v1.ListUsersRequest\x1a\x1e.identity.v1.ListUsersResponse\x12P\n" +
	"\vLinkAccount\x12\x1f.identity.v1.LinkAccountRequest\x1a .identity.v1.LinkAccountResponse\x12V\n" +
	"\rUnlinkAccount\x12!.identity.v1.UnlinkAccountRequest\x1a\".identity.v1.UnlinkAccountResponse\x12V\n" +
	"\rCreateSession\x12!.identity.v1.CreateSessionRequest\x1a\".identity.v1.CreateSessionResponse\x12b\n" +
	"\x11GetSessionByToken\x12%.identity.v1.GetSessionByTokenRequest\x1a&.identity.v1.GetSessionByTokenResponse\x12t\n" +
	"\x17GetSessionByAccessToken\x12+.identity.v1.GetSessionByAccessTokenRequest\x1a,.identity.v1.GetSessionByAccessTokenResponse\x12V\n" +
	"\rRotateSession\x12!.identity.v1.RotateSessionRequest\x1a\".identity.v1.RotateSessionResponse\x12V\n" +
	"\rDeleteSession\x12!.identity.v1.DeleteSessionRequest\x1a\".identity.v1.DeleteSessionResponse\x12z\n" +
	"\x19CreateVerificationRequest\x12-.identity.v1.CreateVerificationRequestRequest\x1a..identity.v1.CreateVerificationRequestResponse\x12P\n" +
	"\vVerifyToken\x12\x1f.identity.v1.VerifyTokenRequest\x1a .identity.v1.VerifyTokenResponseB@Z>github.com/oakwell/identityd/api/gen/go/identity/v1;identityv1b\x06proto3"

var (
	file_identity_v1_identity_proto_rawDescOnce sync.Once
	file_identity_v1_identity_proto_rawDescData []byte
)

func file_identity_v1_identity_proto_rawDescGZIP() []byte {
	file_identity_v1_identity_proto_rawDescOnce.Do(func() {
		file_identity_v1_identity_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_identity_v1_identity_proto_rawDesc), len(file_identity_v1_identity_proto_rawDesc)))
	})
	return file_identity_v1_identity_proto_rawDescData
}

var file_identity_v1_identity_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_identity_v1_identity_proto_msgTypes = make([]protoimpl.MessageInfo, 35)
var file_identity_v1_identity_proto_goTypes = []any{
	(LinkOutcome)(0),                          // 0: identity.v1.LinkOutcome
	(VerifyStatus)(0),                         // 1: identity.v1.VerifyStatus
	(*User)(nil),                              // 2: identity.v1.User
	(*Account)(nil),                           // 3: identity.v1.Account
	(*Session)(nil),                           // 4: identity.v1.Session
	(*VerificationRequest)(nil),               // 5: identity.v1.VerificationRequest
	(*Profile)(nil),                           // 6: identity.v1.Profile
	(*UpsertUserRequest)(nil),                 // 7: identity.v1.UpsertUserRequest
	(*UpsertUserResponse)(nil),                // 8: identity.v1.UpsertUserResponse
	(*GetUserByIdRequest)(nil),                // 9: identity.v1.GetUserByIdRequest
	(*GetUserByIdResponse)(nil),               // 10: identity.v1.GetUserByIdResponse
	(*GetUserByEmailRequest)(nil),             // 11: identity.v1.GetUserByEmailRequest
	(*GetUserByEmailResponse)(nil),            // 12: identity.v1.GetUserByEmailResponse
	(*UpdateUserRequest)(nil),                 // 13: identity.v1.UpdateUserRequest
	(*UpdateUserResponse)(nil),                // 14: identity.v1.UpdateUserResponse
	(*DeleteUserRequest)(nil),                 // 15: identity.v1.DeleteUserRequest
	(*DeleteUserResponse)(nil),                // 16: identity.v1.DeleteUserResponse
	(*ListUsersRequest)(nil),                  // 17: identity.v1.ListUsersRequest
	(*ListUsersResponse)(nil),                 // 18: identity.v1.ListUsersResponse
	(*LinkAccountRequest)(nil),                // 19: identity.v1.LinkAccountRequest
	(*LinkAccountResponse)(nil),               // 20: identity.v1.LinkAccountResponse
	(*UnlinkAccountRequest)(nil),              // 21: identity.v1.UnlinkAccountRequest
	(*UnlinkAccountResponse)(nil),             // 22: identity.v1.UnlinkAccountResponse
	(*CreateSessionRequest)(nil),              // 23: identity.v1.CreateSessionRequest
	(*CreateSessionResponse)(nil),             // 24: identity.v1.CreateSessionResponse
	(*GetSessionByTokenRequest)(nil),          // 25: identity.v1.GetSessionByTokenRequest
	(*GetSessionByTokenResponse)(nil),         // 26: identity.v1.GetSessionByTokenResponse
	(*GetSessionByAccessTokenRequest)(nil),    // 27: identity.v1.GetSessionByAccessTokenRequest
	(*GetSessionByAccessTokenResponse)(nil),   // 28: identity.v1.GetSessionByAccessTokenResponse
	(*RotateSessionRequest)(nil),              // 29: identity.v1.RotateSessionRequest
	(*RotateSessionResponse)(nil),             // 30: identity.v1.RotateSessionResponse
	(*DeleteSessionRequest)(nil),              // 31: identity.v1.DeleteSessionRequest
	(*DeleteSessionResponse)(nil),             // 32: identity.v1.DeleteSessionResponse
	(*CreateVerificationRequestRequest)(nil),  // 33: identity.v1.CreateVerificationRequestRequest
	(*CreateVerificationRequestResponse)(nil), // 34: identity.v1.CreateVerificationRequestResponse
	(*VerifyTokenRequest)(nil),                // 35: identity.v1.VerifyTokenRequest
	(*VerifyTokenResponse)(nil),               // 36: identity.v1.VerifyTokenResponse
	(*timestamppb.Timestamp)(nil),             // 37: google.protobuf.Timestamp
}
var file_identity_v1_identity_proto_depIdxs = []int32{
	37, // 0: identity.v1.User.email_verified:type_name -> google.protobuf.Timestamp
	37, // 1: identity.v1.User.created_at:type_name -> google.protobuf.Timestamp
	37, // 2: identity.v1.User.updated_at:type_name -> google.protobuf.Timestamp
	37, // 3: identity.v1.Account.access_token_expires:type_name -> google.protobuf.Timestamp
	37, // 4: identity.v1.Account.created_at:type_name -> google.protobuf.Timestamp
	37, // 5: identity.v1.Account.updated_at:type_name -> google.protobuf.Timestamp
	37, // 6: identity.v1.Session.expires_at:type_name -> google.protobuf.Timestamp
	37, // 7: identity.v1.Session.created_at:type_name -> google.protobuf.Timestamp
	37, // 8: identity.v1.Session.updated_at:type_name -> google.protobuf.Timestamp
	37, // 9: identity.v1.VerificationRequest.expires_at:type_name -> google.protobuf.Timestamp
	37, // 10: identity.v1.VerificationRequest.created_at:type_name -> google.protobuf.Timestamp
	37, // 11: identity.v1.VerificationRequest.updated_at:type_name -> google.protobuf.Timestamp
	37, // 12: identity.v1.Profile.email_verified:type_name -> google.protobuf.Timestamp
	37, // 13: identity.v1.UpsertUserRequest.email_verified:type_name -> google.protobuf.Timestamp
	2,  // 14: identity.v1.UpsertUserResponse.user:type_name -> identity.v1.User
	2,  // 15: identity.v1.GetUserByIdResponse.user:type_name -> identity.v1.User
	2,  // 16: identity.v1.GetUserByEmailResponse.user:type_name -> identity.v1.User
	37, // 17: identity.v1.UpdateUserRequest.email_verified:type_name -> google.protobuf.Timestamp
	2,  // 18: identity.v1.UpdateUserResponse.user:type_name -> identity.v1.User
	2,  // 19: identity.v1.ListUsersResponse.users:type_name -> identity.v1.User
	37, // 20: identity.v1.LinkAccountRequest.access_token_expires:type_name -> google.protobuf.Timestamp
	6,  // 21: identity.v1.LinkAccountRequest.profile:type_name -> identity.v1.Profile
	2,  // 22: identity.v1.LinkAccountResponse.user:type_name -> identity.v1.User
	3,  // 23: identity.v1.LinkAccountResponse.account:type_name -> identity.v1.Account
	0,  // 24: identity.v1.LinkAccountResponse.outcome:type_name -> identity.v1.LinkOutcome
	4,  // 25: identity.v1.CreateSessionResponse.session:type_name -> identity.v1.Session
	4,  // 26: identity.v1.GetSessionByTokenResponse.session:type_name -> identity.v1.Session
	2,  // 27: identity.v1.GetSessionByTokenResponse.user:type_name -> identity.v1.User
	4,  // 28: identity.v1.GetSessionByAccessTokenResponse.session:type_name -> identity.v1.Session
	2,  // 29: identity.v1.GetSessionByAccessTokenResponse.user:type_name -> identity.v1.User
	4,  // 30: identity.v1.RotateSessionResponse.session:type_name -> identity.v1.Session
	5,  // 31: identity.v1.CreateVerificationRequestResponse.verification_request:type_name -> identity.v1.VerificationRequest
	1,  // 32: identity.v1.VerifyTokenResponse.status:type_name -> identity.v1.VerifyStatus
	37, // 33: identity.v1.VerifyTokenResponse.verified_at:type_name -> google.protobuf.Timestamp
	7,  // 34: identity.v1.IdentityService.UpsertUser:input_type -> identity.v1.UpsertUserRequest
	9,  // 35: identity.v1.IdentityService.GetUserById:input_type -> identity.v1.GetUserByIdRequest
	11, // 36: identity.v1.IdentityService.GetUserByEmail:input_type -> identity.v1.GetUserByEmailRequest
	13, // 37: identity.v1.IdentityService.UpdateUser:input_type -> identity.v1.UpdateUserRequest
	15, // 38: identity.v1.IdentityService.DeleteUser:input_type -> identity.v1.DeleteUserRequest
	17, // 39: identity.v1.IdentityService.ListUsers:input_type -> identity.v1.ListUsersRequest
	19, // 40: identity.v1.IdentityService.LinkAccount:input_type -> identity.v1.LinkAccountRequest
	21, // 41: identity.v1.IdentityService.UnlinkAccount:input_type -> identity.v1.UnlinkAccountRequest
	23, // 42: identity.v1.IdentityService.CreateSession:input_type -> identity.v1.CreateSessionRequest
	25, // 43: identity.v1.IdentityService.GetSessionByToken:input_type -> identity.v1.GetSessionByTokenRequest
	27, // 44: identity.v1.IdentityService.GetSessionByAccessToken:input_type -> identity.v1.GetSessionByAccessTokenRequest
	29, // 45: identity.v1.IdentityService.RotateSession:input_type -> identity.v1.RotateSessionRequest
	31, // 46: identity.v1.IdentityService.DeleteSession:input_type -> identity.v1.DeleteSessionRequest
	33, // 47: identity.v1.IdentityService.CreateVerificationRequest:input_type -> identity.v1.CreateVerificationRequestRequest
	35, // 48: identity.v1.IdentityService.VerifyToken:input_type -> identity.v1.VerifyTokenRequest
	8,  // 49: identity.v1.IdentityService.UpsertUser:output_type -> identity.v1.UpsertUserResponse
	10, // 50: identity.v1.IdentityService.GetUserById:output_type -> identity.v1.GetUserByIdResponse
	12, // 51: identity.v1.IdentityService.GetUserByEmail:output_type -> identity.v1.GetUserByEmailResponse
	14, // 52: identity.v1.IdentityService.UpdateUser:output_type -> identity.v1.UpdateUserResponse
	16, // 53: identity.v1.IdentityService.DeleteUser:output_type -> identity.v1.DeleteUserResponse
	18, // 54: identity.v1.IdentityService.ListUsers:output_type -> identity.v1.ListUsersResponse
	20, // 55: identity.v1.IdentityService.LinkAccount:output_type -> identity.v1.LinkAccountResponse
	22, // 56: identity.v1.IdentityService.UnlinkAccount:output_type -> identity.v1.UnlinkAccountResponse
	24, // 57: identity.v1.IdentityService.CreateSession:output_type -> identity.v1.CreateSessionResponse
	26, // 58: identity.v1.IdentityService.GetSessionByToken:output_type -> identity.v1.GetSessionByTokenResponse
	28, // 59: identity.v1.IdentityService.GetSessionByAccessToken:output_type -> identity.v1.GetSessionByAccessTokenResponse
	30, // 60: identity.v1.IdentityService.RotateSession:output_type -> identity.v1.RotateSessionResponse
	32, // 61: identity.v1.IdentityService.DeleteSession:output_type -> identity.v1.DeleteSessionResponse
	34, // 62: identity.v1.IdentityService.CreateVerificationRequest:output_type -> identity.v1.CreateVerificationRequestResponse
	36, // 63: identity.v1.IdentityService.VerifyToken:output_type -> identity.v1.VerifyTokenResponse
	49, // [49:64] is the sub-list for method output_type
	34, // [34:49] is the sub-list for method input_type
	34, // [34:34] is the sub-list for extension type_name
	34, // [34:34] is the sub-list for extension extendee
	0,  // [0:34] is the sub-list for field type_name
}

func init() { file_identity_v1_identity_proto_init() }
func file_identity_v1_identity_proto_init() {
	if File_identity_v1_identity_proto != nil {
		return
	}
	file_identity_v1_identity_proto_msgTypes[0].OneofWrappers = []any{}
	file_identity_v1_identity_proto_msgTypes[1].OneofWrappers = []any{}
	file_identity_v1_identity_proto_msgTypes[4].OneofWrappers = []any{}
	file_identity_v1_identity_proto_msgTypes[5].OneofWrappers = []any{}
	file_identity_v1_identity_proto_msgTypes[11].OneofWrappers = []any{}
	file_identity_v1_identity_proto_msgTypes[17].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_identity_v1_identity_proto_rawDesc), len(file_identity_v1_identity_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   35,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_identity_v1_identity_proto_goTypes,
		DependencyIndexes: file_identity_v1_identity_proto_depIdxs,
		EnumInfos:         file_identity_v1_identity_proto_enumTypes,
		MessageInfos:      file_identity_v1_identity_proto_msgTypes,
	}.Build()
	File_identity_v1_identity_proto = out.File
	file_identity_v1_identity_proto_goTypes = nil
	file_identity_v1_identity_proto_depIdxs = nil
}
