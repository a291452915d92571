// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docs/v1/docs.proto

package docsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type Document struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileName       string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FileUrl        string                 `protobuf:"bytes,3,opt,name=file_url,json=fileUrl,proto3" json:"file_url,omitempty"`
	FileType       string                 `protobuf:"bytes,4,opt,name=file_type,json=fileType,proto3" json:"file_type,omitempty"`
	FileSize       int64                  `protobuf:"varint,5,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	DocumentType   string                 `protobuf:"bytes,6,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Status         string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	OcrText        string                 `protobuf:"bytes,8,opt,name=ocr_text,json=ocrText,proto3" json:"ocr_text,omitempty"`
	PageCount      int32                  `protobuf:"varint,9,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	Confidence     float32                `protobuf:"fixed32,10,opt,name=confidence,proto3" json:"confidence,omitempty"`
	OcrCompletedAt string                 `protobuf:"bytes,11,opt,name=ocr_completed_at,json=ocrCompletedAt,proto3" json:"ocr_completed_at,omitempty"`                                                             // RFC3339, empty if OCR has not completed
	ParsedData     map[string]string      `protobuf:"bytes,12,rep,name=parsed_data,json=parsedData,proto3" json:"parsed_data,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"` // document type -> JSON payload
	ParsedAt       string                 `protobuf:"bytes,13,opt,name=parsed_at,json=parsedAt,proto3" json:"parsed_at,omitempty"`                                                                                 // RFC3339, empty if not parsed
	Error          *ProcessingError       `protobuf:"bytes,14,opt,name=error,proto3" json:"error,omitempty"`                                                                                                       // set iff status == "failed"
	UploadedBy     string                 `protobuf:"bytes,15,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docs_v1_docs_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Document) GetFileUrl() string {
	if x != nil {
		return x.FileUrl
	}
	return ""
}

func (x *Document) GetFileType() string {
	if x != nil {
		return x.FileType
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetOcrText() string {
	if x != nil {
		return x.OcrText
	}
	return ""
}

func (x *Document) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *Document) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Document) GetOcrCompletedAt() string {
	if x != nil {
		return x.OcrCompletedAt
	}
	return ""
}

func (x *Document) GetParsedData() map[string]string {
	if x != nil {
		return x.ParsedData
	}
	return nil
}

func (x *Document) GetParsedAt() string {
	if x != nil {
		return x.ParsedAt
	}
	return ""
}

func (x *Document) GetError() *ProcessingError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *Document) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ProcessingError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       string                 `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Stage         string                 `protobuf:"bytes,3,opt,name=stage,proto3" json:"stage,omitempty"` // upload | ocr | ai_parse | database
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessingError) Reset() {
	*x = ProcessingError{}
	mi := &file_docs_v1_docs_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessingError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessingError) ProtoMessage() {}

func (x *ProcessingError) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessingError.ProtoReflect.Descriptor instead.
func (*ProcessingError) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessingError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ProcessingError) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *ProcessingError) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

type AuditEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	FileName      string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Action        string                 `protobuf:"bytes,4,opt,name=action,proto3" json:"action,omitempty"`
	ActorId       string                 `protobuf:"bytes,5,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	ActorName     string                 `protobuf:"bytes,6,opt,name=actor_name,json=actorName,proto3" json:"actor_name,omitempty"`
	Detail        string                 `protobuf:"bytes,7,opt,name=detail,proto3" json:"detail,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuditEntry) Reset() {
	*x = AuditEntry{}
	mi := &file_docs_v1_docs_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuditEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuditEntry) ProtoMessage() {}

func (x *AuditEntry) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuditEntry.ProtoReflect.Descriptor instead.
func (*AuditEntry) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{2}
}

func (x *AuditEntry) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AuditEntry) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *AuditEntry) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *AuditEntry) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *AuditEntry) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *AuditEntry) GetActorName() string {
	if x != nil {
		return x.ActorName
	}
	return ""
}

func (x *AuditEntry) GetDetail() string {
	if x != nil {
		return x.Detail
	}
	return ""
}

func (x *AuditEntry) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Permissions struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	CanUpload      bool                   `protobuf:"varint,1,opt,name=can_upload,json=canUpload,proto3" json:"can_upload,omitempty"`
	CanViewAll     bool                   `protobuf:"varint,2,opt,name=can_view_all,json=canViewAll,proto3" json:"can_view_all,omitempty"`
	CanEdit        bool                   `protobuf:"varint,3,opt,name=can_edit,json=canEdit,proto3" json:"can_edit,omitempty"`
	CanDelete      bool                   `protobuf:"varint,4,opt,name=can_delete,json=canDelete,proto3" json:"can_delete,omitempty"`
	CanReprocess   bool                   `protobuf:"varint,5,opt,name=can_reprocess,json=canReprocess,proto3" json:"can_reprocess,omitempty"`
	CanExport      bool                   `protobuf:"varint,6,opt,name=can_export,json=canExport,proto3" json:"can_export,omitempty"`
	CanManageUsers bool                   `protobuf:"varint,7,opt,name=can_manage_users,json=canManageUsers,proto3" json:"can_manage_users,omitempty"`
	CanViewAudit   bool                   `protobuf:"varint,8,opt,name=can_view_audit,json=canViewAudit,proto3" json:"can_view_audit,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Permissions) Reset() {
	*x = Permissions{}
	mi := &file_docs_v1_docs_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Permissions) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Permissions) ProtoMessage() {}

func (x *Permissions) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Permissions.ProtoReflect.Descriptor instead.
func (*Permissions) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{3}
}

func (x *Permissions) GetCanUpload() bool {
	if x != nil {
		return x.CanUpload
	}
	return false
}

func (x *Permissions) GetCanViewAll() bool {
	if x != nil {
		return x.CanViewAll
	}
	return false
}

func (x *Permissions) GetCanEdit() bool {
	if x != nil {
		return x.CanEdit
	}
	return false
}

func (x *Permissions) GetCanDelete() bool {
	if x != nil {
		return x.CanDelete
	}
	return false
}

func (x *Permissions) GetCanReprocess() bool {
	if x != nil {
		return x.CanReprocess
	}
	return false
}

func (x *Permissions) GetCanExport() bool {
	if x != nil {
		return x.CanExport
	}
	return false
}

func (x *Permissions) GetCanManageUsers() bool {
	if x != nil {
		return x.CanManageUsers
	}
	return false
}

func (x *Permissions) GetCanViewAudit() bool {
	if x != nil {
		return x.CanViewAudit
	}
	return false
}

type User struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Phone         string                 `protobuf:"bytes,2,opt,name=phone,proto3" json:"phone,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Role          string                 `protobuf:"bytes,4,opt,name=role,proto3" json:"role,omitempty"` // admin | operation | guest
	Permissions   *Permissions           `protobuf:"bytes,5,opt,name=permissions,proto3" json:"permissions,omitempty"`
	Active        bool                   `protobuf:"varint,6,opt,name=active,proto3" json:"active,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_docs_v1_docs_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[4]
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
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{4}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *User) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *User) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *User) GetPermissions() *Permissions {
	if x != nil {
		return x.Permissions
	}
	return nil
}

func (x *User) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

func (x *User) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *User) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileName      string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FileUrl       string                 `protobuf:"bytes,2,opt,name=file_url,json=fileUrl,proto3" json:"file_url,omitempty"`
	FileSize      int64                  `protobuf:"varint,3,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	DocumentType  string                 `protobuf:"bytes,4,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"` // optional hint; empty triggers classification
	UploadedBy    string                 `protobuf:"bytes,5,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	ActorName     string                 `protobuf:"bytes,6,opt,name=actor_name,json=actorName,proto3" json:"actor_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_docs_v1_docs_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{5}
}

func (x *UploadDocumentRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *UploadDocumentRequest) GetFileUrl() string {
	if x != nil {
		return x.FileUrl
	}
	return ""
}

func (x *UploadDocumentRequest) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *UploadDocumentRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *UploadDocumentRequest) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

func (x *UploadDocumentRequest) GetActorName() string {
	if x != nil {
		return x.ActorName
	}
	return ""
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_docs_v1_docs_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{6}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_docs_v1_docs_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{7}
}

func (x *GetDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_docs_v1_docs_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{8}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	DocumentType  string                 `protobuf:"bytes,2,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	UploadedBy    string                 `protobuf:"bytes,3,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	FromDate      string                 `protobuf:"bytes,4,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,5,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	Limit         int32                  `protobuf:"varint,6,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,7,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_docs_v1_docs_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{9}
}

func (x *ListDocumentsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListDocumentsRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *ListDocumentsRequest) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

func (x *ListDocumentsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListDocumentsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListDocumentsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_docs_v1_docs_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{10}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type UpdateDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentType  string                 `protobuf:"bytes,2,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	ActorId       string                 `protobuf:"bytes,3,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	ActorName     string                 `protobuf:"bytes,4,opt,name=actor_name,json=actorName,proto3" json:"actor_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateDocumentRequest) Reset() {
	*x = UpdateDocumentRequest{}
	mi := &file_docs_v1_docs_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateDocumentRequest) ProtoMessage() {}

func (x *UpdateDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateDocumentRequest.ProtoReflect.Descriptor instead.
func (*UpdateDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateDocumentRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *UpdateDocumentRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *UpdateDocumentRequest) GetActorName() string {
	if x != nil {
		return x.ActorName
	}
	return ""
}

type UpdateDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateDocumentResponse) Reset() {
	*x = UpdateDocumentResponse{}
	mi := &file_docs_v1_docs_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateDocumentResponse) ProtoMessage() {}

func (x *UpdateDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateDocumentResponse.ProtoReflect.Descriptor instead.
func (*UpdateDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{12}
}

func (x *UpdateDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ActorId       string                 `protobuf:"bytes,2,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	ActorName     string                 `protobuf:"bytes,3,opt,name=actor_name,json=actorName,proto3" json:"actor_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_docs_v1_docs_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{13}
}

func (x *DeleteDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DeleteDocumentRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *DeleteDocumentRequest) GetActorName() string {
	if x != nil {
		return x.ActorName
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_docs_v1_docs_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{14}
}

type ReprocessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ActorId       string                 `protobuf:"bytes,2,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	ActorName     string                 `protobuf:"bytes,3,opt,name=actor_name,json=actorName,proto3" json:"actor_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDocumentRequest) Reset() {
	*x = ReprocessDocumentRequest{}
	mi := &file_docs_v1_docs_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDocumentRequest) ProtoMessage() {}

func (x *ReprocessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ReprocessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{15}
}

func (x *ReprocessDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReprocessDocumentRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *ReprocessDocumentRequest) GetActorName() string {
	if x != nil {
		return x.ActorName
	}
	return ""
}

type ReprocessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDocumentResponse) Reset() {
	*x = ReprocessDocumentResponse{}
	mi := &file_docs_v1_docs_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDocumentResponse) ProtoMessage() {}

func (x *ReprocessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ReprocessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{16}
}

func (x *ReprocessDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListAuditLogRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"` // empty lists the most recent entries system-wide
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAuditLogRequest) Reset() {
	*x = ListAuditLogRequest{}
	mi := &file_docs_v1_docs_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAuditLogRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAuditLogRequest) ProtoMessage() {}

func (x *ListAuditLogRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAuditLogRequest.ProtoReflect.Descriptor instead.
func (*ListAuditLogRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{17}
}

func (x *ListAuditLogRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ListAuditLogRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListAuditLogResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*AuditEntry          `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAuditLogResponse) Reset() {
	*x = ListAuditLogResponse{}
	mi := &file_docs_v1_docs_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAuditLogResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAuditLogResponse) ProtoMessage() {}

func (x *ListAuditLogResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAuditLogResponse.ProtoReflect.Descriptor instead.
func (*ListAuditLogResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{18}
}

func (x *ListAuditLogResponse) GetEntries() []*AuditEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type CreateUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Phone         string                 `protobuf:"bytes,1,opt,name=phone,proto3" json:"phone,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Role          string                 `protobuf:"bytes,4,opt,name=role,proto3" json:"role,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserRequest) Reset() {
	*x = CreateUserRequest{}
	mi := &file_docs_v1_docs_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserRequest) ProtoMessage() {}

func (x *CreateUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserRequest.ProtoReflect.Descriptor instead.
func (*CreateUserRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{19}
}

func (x *CreateUserRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *CreateUserRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

func (x *CreateUserRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateUserRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

type CreateUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserResponse) Reset() {
	*x = CreateUserResponse{}
	mi := &file_docs_v1_docs_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserResponse) ProtoMessage() {}

func (x *CreateUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserResponse.ProtoReflect.Descriptor instead.
func (*CreateUserResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{20}
}

func (x *CreateUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type ListUsersRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	IncludeInactive bool                   `protobuf:"varint,1,opt,name=include_inactive,json=includeInactive,proto3" json:"include_inactive,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ListUsersRequest) Reset() {
	*x = ListUsersRequest{}
	mi := &file_docs_v1_docs_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUsersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUsersRequest) ProtoMessage() {}

func (x *ListUsersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[21]
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
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{21}
}

func (x *ListUsersRequest) GetIncludeInactive() bool {
	if x != nil {
		return x.IncludeInactive
	}
	return false
}

type ListUsersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Users         []*User                `protobuf:"bytes,1,rep,name=users,proto3" json:"users,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUsersResponse) Reset() {
	*x = ListUsersResponse{}
	mi := &file_docs_v1_docs_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUsersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUsersResponse) ProtoMessage() {}

func (x *ListUsersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[22]
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
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{22}
}

func (x *ListUsersResponse) GetUsers() []*User {
	if x != nil {
		return x.Users
	}
	return nil
}

type UpdateUserRoleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Role          string                 `protobuf:"bytes,2,opt,name=role,proto3" json:"role,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateUserRoleRequest) Reset() {
	*x = UpdateUserRoleRequest{}
	mi := &file_docs_v1_docs_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateUserRoleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateUserRoleRequest) ProtoMessage() {}

func (x *UpdateUserRoleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateUserRoleRequest.ProtoReflect.Descriptor instead.
func (*UpdateUserRoleRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{23}
}

func (x *UpdateUserRoleRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateUserRoleRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

type UpdateUserRoleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateUserRoleResponse) Reset() {
	*x = UpdateUserRoleResponse{}
	mi := &file_docs_v1_docs_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateUserRoleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateUserRoleResponse) ProtoMessage() {}

func (x *UpdateUserRoleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateUserRoleResponse.ProtoReflect.Descriptor instead.
func (*UpdateUserRoleResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{24}
}

func (x *UpdateUserRoleResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type SetUserActiveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Active        bool                   `protobuf:"varint,2,opt,name=active,proto3" json:"active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetUserActiveRequest) Reset() {
	*x = SetUserActiveRequest{}
	mi := &file_docs_v1_docs_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetUserActiveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetUserActiveRequest) ProtoMessage() {}

func (x *SetUserActiveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetUserActiveRequest.ProtoReflect.Descriptor instead.
func (*SetUserActiveRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{25}
}

func (x *SetUserActiveRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SetUserActiveRequest) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

type SetUserActiveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetUserActiveResponse) Reset() {
	*x = SetUserActiveResponse{}
	mi := &file_docs_v1_docs_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetUserActiveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetUserActiveResponse) ProtoMessage() {}

func (x *SetUserActiveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetUserActiveResponse.ProtoReflect.Descriptor instead.
func (*SetUserActiveResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{26}
}

type GetSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Year          int32                  `protobuf:"varint,1,opt,name=year,proto3" json:"year,omitempty"` // 0 means current year
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSummaryRequest) Reset() {
	*x = GetSummaryRequest{}
	mi := &file_docs_v1_docs_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSummaryRequest) ProtoMessage() {}

func (x *GetSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSummaryRequest.ProtoReflect.Descriptor instead.
func (*GetSummaryRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{27}
}

func (x *GetSummaryRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

type GetSummaryResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Total          int32                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	ByStatus       map[string]int32       `protobuf:"bytes,2,rep,name=by_status,json=byStatus,proto3" json:"by_status,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	ByType         map[string]int32       `protobuf:"bytes,3,rep,name=by_type,json=byType,proto3" json:"by_type,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	MonthlyUploads map[int32]int32        `protobuf:"bytes,4,rep,name=monthly_uploads,json=monthlyUploads,proto3" json:"monthly_uploads,omitempty" protobuf_key:"varint,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"` // month (1..12) -> count
	Year           int32                  `protobuf:"varint,5,opt,name=year,proto3" json:"year,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetSummaryResponse) Reset() {
	*x = GetSummaryResponse{}
	mi := &file_docs_v1_docs_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSummaryResponse) ProtoMessage() {}

func (x *GetSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSummaryResponse.ProtoReflect.Descriptor instead.
func (*GetSummaryResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{28}
}

func (x *GetSummaryResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *GetSummaryResponse) GetByStatus() map[string]int32 {
	if x != nil {
		return x.ByStatus
	}
	return nil
}

func (x *GetSummaryResponse) GetByType() map[string]int32 {
	if x != nil {
		return x.ByType
	}
	return nil
}

func (x *GetSummaryResponse) GetMonthlyUploads() map[int32]int32 {
	if x != nil {
		return x.MonthlyUploads
	}
	return nil
}

func (x *GetSummaryResponse) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

type ExportDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	DocumentType  string                 `protobuf:"bytes,2,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	FromDate      string                 `protobuf:"bytes,3,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,4,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_docs_v1_docs_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{29}
}

func (x *ExportDocumentsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportDocumentsRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *ExportDocumentsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportDocumentsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_docs_v1_docs_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_docs_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_docs_proto_rawDescGZIP(), []int{30}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportDocumentsResponse) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

var File_docs_v1_docs_proto protoreflect.FileDescriptor

const file_docs_v1_docs_proto_rawDesc = "" +
	"\n" +
	"\x12docs/v1/docs.proto\x12\adocs.v1\"\xfc\x04\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12\x19\n" +
	"\bfile_url\x18\x03 \x01(\tR\afileUrl\x12\x1b\n" +
	"\tfile_type\x18\x04 \x01(\tR\bfileType\x12\x1b\n" +
	"\tfile_size\x18\x05 \x01(\x03R\bfileSize\x12#\n" +
	"\rdocument_type\x18\x06 \x01(\tR\fdocumentType\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12\x19\n" +
	"\bocr_text\x18\b \x01(\tR\aocrText\x12\x1d\n" +
	"\n" +
	"page_count\x18\t \x01(\x05R\tpageCount\x12\x1e\n" +
	"\n" +
	"confidence\x18\n" +
	" \x01(\x02R\n" +
	"confidence\x12(\n" +
	"\x10ocr_completed_at\x18\v \x01(\tR\x0eocrCompletedAt\x12B\n" +
	"\vparsed_data\x18\f \x03(\v2!.docs.v1.Document.ParsedDataEntryR\n" +
	"parsedData\x12\x1b\n" +
	"\tparsed_at\x18\r \x01(\tR\bparsedAt\x12.\n" +
	"\x05error\x18\x0e \x01(\v2\x18.docs.v1.ProcessingErrorR\x05error\x12\x1f\n" +
	"\vuploaded_by\x18\x0f \x01(\tR\n" +
	"uploadedBy\x12\x1d\n" +
	"\n" +
	"created_at\x18\x10 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x11 \x01(\tR\tupdatedAt\x1a=\n" +
	"\x0fParsedDataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"U\n" +
	"\x0fProcessingError\x12\x18\n" +
	"\amessage\x18\x01 \x01(\tR\amessage\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12\x14\n" +
	"\x05stage\x18\x03 \x01(\tR\x05stage\"\xe3\x01\n" +
	"\n" +
	"AuditEntry\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12\x16\n" +
	"\x06action\x18\x04 \x01(\tR\x06action\x12\x19\n" +
	"\bactor_id\x18\x05 \x01(\tR\aactorId\x12\x1d\n" +
	"\n" +
	"actor_name\x18\x06 \x01(\tR\tactorName\x12\x16\n" +
	"\x06detail\x18\a \x01(\tR\x06detail\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"\x9c\x02\n" +
	"\vPermissions\x12\x1d\n" +
	"\n" +
	"can_upload\x18\x01 \x01(\bR\tcanUpload\x12 \n" +
	"\fcan_view_all\x18\x02 \x01(\bR\n" +
	"canViewAll\x12\x19\n" +
	"\bcan_edit\x18\x03 \x01(\bR\acanEdit\x12\x1d\n" +
	"\n" +
	"can_delete\x18\x04 \x01(\bR\tcanDelete\x12#\n" +
	"\rcan_reprocess\x18\x05 \x01(\bR\fcanReprocess\x12\x1d\n" +
	"\n" +
	"can_export\x18\x06 \x01(\bR\tcanExport\x12(\n" +
	"\x10can_manage_users\x18\a \x01(\bR\x0ecanManageUsers\x12$\n" +
	"\x0ecan_view_audit\x18\b \x01(\bR\fcanViewAudit\"\xe2\x01\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05phone\x18\x02 \x01(\tR\x05phone\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x12\n" +
	"\x04role\x18\x04 \x01(\tR\x04role\x126\n" +
	"\vpermissions\x18\x05 \x01(\v2\x14.docs.v1.PermissionsR\vpermissions\x12\x16\n" +
	"\x06active\x18\x06 \x01(\bR\x06active\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\"\xd1\x01\n" +
	"\x15UploadDocumentRequest\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12\x19\n" +
	"\bfile_url\x18\x02 \x01(\tR\afileUrl\x12\x1b\n" +
	"\tfile_size\x18\x03 \x01(\x03R\bfileSize\x12#\n" +
	"\rdocument_type\x18\x04 \x01(\tR\fdocumentType\x12\x1f\n" +
	"\vuploaded_by\x18\x05 \x01(\tR\n" +
	"uploadedBy\x12\x1d\n" +
	"\n" +
	"actor_name\x18\x06 \x01(\tR\tactorName\"G\n" +
	"\x16UploadDocumentResponse\x12-\n" +
	"\bdocument\x18\x01 \x01(\v2\x11.docs.v1.DocumentR\bdocument\"$\n" +
	"\x12GetDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"D\n" +
	"\x13GetDocumentResponse\x12-\n" +
	"\bdocument\x18\x01 \x01(\v2\x11.docs.v1.DocumentR\bdocument\"\xd8\x01\n" +
	"\x14ListDocumentsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12#\n" +
	"\rdocument_type\x18\x02 \x01(\tR\fdocumentType\x12\x1f\n" +
	"\vuploaded_by\x18\x03 \x01(\tR\n" +
	"uploadedBy\x12\x1b\n" +
	"\tfrom_date\x18\x04 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x05 \x01(\tR\x06toDate\x12\x14\n" +
	"\x05limit\x18\x06 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\a \x01(\x05R\x06offset\"H\n" +
	"\x15ListDocumentsResponse\x12/\n" +
	"\tdocuments\x18\x01 \x03(\v2\x11.docs.v1.DocumentR\tdocuments\"\x86\x01\n" +
	"\x15UpdateDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rdocument_type\x18\x02 \x01(\tR\fdocumentType\x12\x19\n" +
	"\bactor_id\x18\x03 \x01(\tR\aactorId\x12\x1d\n" +
	"\n" +
	"actor_name\x18\x04 \x01(\tR\tactorName\"G\n" +
	"\x16UpdateDocumentResponse\x12-\n" +
	"\bdocument\x18\x01 \x01(\v2\x11.docs.v1.DocumentR\bdocument\"a\n" +
	"\x15DeleteDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bactor_id\x18\x02 \x01(\tR\aactorId\x12\x1d\n" +
	"\n" +
	"actor_name\x18\x03 \x01(\tR\tactorName\"\x18\n" +
	"\x16DeleteDocumentResponse\"d\n" +
	"\x18ReprocessDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bactor_id\x18\x02 \x01(\tR\aactorId\x12\x1d\n" +
	"\n" +
	"actor_name\x18\x03 \x01(\tR\tactorName\"J\n" +
	"\x19ReprocessDocumentResponse\x12-\n" +
	"\bdocument\x18\x01 \x01(\v2\x11.docs.v1.DocumentR\bdocument\"L\n" +
	"\x13ListAuditLogRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"E\n" +
	"\x14ListAuditLogResponse\x12-\n" +
	"\aentries\x18\x01 \x03(\v2\x13.docs.v1.AuditEntryR\aentries\"m\n" +
	"\x11CreateUserRequest\x12\x14\n" +
	"\x05phone\x18\x01 \x01(\tR\x05phone\x12\x1a\n" +
	"\bpassword\x18\x02 \x01(\tR\bpassword\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x12\n" +
	"\x04role\x18\x04 \x01(\tR\x04role\"7\n" +
	"\x12CreateUserResponse\x12!\n" +
	"\x04user\x18\x01 \x01(\v2\r.docs.v1.UserR\x04user\"=\n" +
	"\x10ListUsersRequest\x12)\n" +
	"\x10include_inactive\x18\x01 \x01(\bR\x0fincludeInactive\"8\n" +
	"\x11ListUsersResponse\x12#\n" +
	"\x05users\x18\x01 \x03(\v2\r.docs.v1.UserR\x05users\";\n" +
	"\x15UpdateUserRoleRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04role\x18\x02 \x01(\tR\x04role\";\n" +
	"\x16UpdateUserRoleResponse\x12!\n" +
	"\x04user\x18\x01 \x01(\v2\r.docs.v1.UserR\x04user\">\n" +
	"\x14SetUserActiveRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06active\x18\x02 \x01(\bR\x06active\"\x17\n" +
	"\x15SetUserActiveResponse\"'\n" +
	"\x11GetSummaryRequest\x12\x12\n" +
	"\x04year\x18\x01 \x01(\x05R\x04year\"\xdd\x03\n" +
	"\x12GetSummaryResponse\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x05R\x05total\x12F\n" +
	"\tby_status\x18\x02 \x03(\v2).docs.v1.GetSummaryResponse.ByStatusEntryR\bbyStatus\x12@\n" +
	"\aby_type\x18\x03 \x03(\v2'.docs.v1.GetSummaryResponse.ByTypeEntryR\x06byType\x12X\n" +
	"\x0fmonthly_uploads\x18\x04 \x03(\v2/.docs.v1.GetSummaryResponse.MonthlyUploadsEntryR\x0emonthlyUploads\x12\x12\n" +
	"\x04year\x18\x05 \x01(\x05R\x04year\x1a;\n" +
	"\rByStatusEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\x1a9\n" +
	"\vByTypeEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\x1aA\n" +
	"\x13MonthlyUploadsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\x05R\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"\x8b\x01\n" +
	"\x16ExportDocumentsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12#\n" +
	"\rdocument_type\x18\x02 \x01(\tR\fdocumentType\x12\x1b\n" +
	"\tfrom_date\x18\x03 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x04 \x01(\tR\x06toDate\"J\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName2\xce\x04\n" +
	"\x10DocumentsService\x12Q\n" +
	"\x0eUploadDocument\x12\x1e.docs.v1.UploadDocumentRequest\x1a\x1f.docs.v1.UploadDocumentResponse\x12H\n" +
	"\vGetDocument\x12\x1b.docs.v1.GetDocumentRequest\x1a\x1c.docs.v1.GetDocumentResponse\x12N\n" +
	"\rListDocuments\x12\x1d.docs.v1.ListDocumentsRequest\x1a\x1e.docs.v1.ListDocumentsResponse\x12Q\n" +
	"\x0eUpdateDocument\x12\x1e.docs.v1.UpdateDocumentRequest\x1a\x1f.docs.v1.UpdateDocumentResponse\x12Q\n" +
	"\x0eDeleteDocument\x12\x1e.docs.v1.DeleteDocumentRequest\x1a\x1f.docs.v1.DeleteDocumentResponse\x12Z\n" +
	"\x11ReprocessDocument\x12!.docs.v1.ReprocessDocumentRequest\x1a\".docs.v1.ReprocessDocumentResponse\x12K\n" +
	"\fListAuditLog\x12\x1c.docs.v1.ListAuditLogRequest\x1a\x1d.docs.v1.ListAuditLogResponse2\xbc\x02\n" +
	"\fUsersService\x12E\n" +
	"\n" +
	"CreateUser\x12\x1a.docs.v1.CreateUserRequest\x1a\x1b.docs.v1.CreateUserResponse\x12B\n" +
	"\tListUsers\x12\x19.docs.v1.ListUsersRequest\x1a\x1a.docs.v1.ListUsersResponse\x12Q\n" +
	"\x0eUpdateUserRole\x12\x1e.docs.v1.UpdateUserRoleRequest\x1a\x1f.docs.v1.UpdateUserRoleResponse\x12N\n" +
	"\rSetUserActive\x12\x1d.docs.v1.SetUserActiveRequest\x1a\x1e.docs.v1.SetUserActiveResponse2\xad\x01\n" +
	"\x0eReportsService\x12E\n" +
	"\n" +
	"GetSummary\x12\x1a.docs.v1.GetSummaryRequest\x1a\x1b.docs.v1.GetSummaryResponse\x12T\n" +
	"\x0fExportDocuments\x12\x1f.docs.v1.ExportDocumentsRequest\x1a .docs.v1.ExportDocumentsResponseB9Z7github.com/paperbase/paperbase/gen/proto/docs/v1;docsv1b\x06proto3"

var (
	file_docs_v1_docs_proto_rawDescOnce sync.Once
	file_docs_v1_docs_proto_rawDescData []byte
)

func file_docs_v1_docs_proto_rawDescGZIP() []byte {
	file_docs_v1_docs_proto_rawDescOnce.Do(func() {
		file_docs_v1_docs_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docs_v1_docs_proto_rawDesc), len(file_docs_v1_docs_proto_rawDesc)))
	})
	return file_docs_v1_docs_proto_rawDescData
}

var file_docs_v1_docs_proto_msgTypes = make([]protoimpl.MessageInfo, 35)
var file_docs_v1_docs_proto_goTypes = []any{
	(*Document)(nil),                  // 0: docs.v1.Document
	(*ProcessingError)(nil),           // 1: docs.v1.ProcessingError
	(*AuditEntry)(nil),                // 2: docs.v1.AuditEntry
	(*Permissions)(nil),               // 3: docs.v1.Permissions
	(*User)(nil),                      // 4: docs.v1.User
	(*UploadDocumentRequest)(nil),     // 5: docs.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),    // 6: docs.v1.UploadDocumentResponse
	(*GetDocumentRequest)(nil),        // 7: docs.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),       // 8: docs.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),      // 9: docs.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),     // 10: docs.v1.ListDocumentsResponse
	(*UpdateDocumentRequest)(nil),     // 11: docs.v1.UpdateDocumentRequest
	(*UpdateDocumentResponse)(nil),    // 12: docs.v1.UpdateDocumentResponse
	(*DeleteDocumentRequest)(nil),     // 13: docs.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),    // 14: docs.v1.DeleteDocumentResponse
	(*ReprocessDocumentRequest)(nil),  // 15: docs.v1.ReprocessDocumentRequest
	(*ReprocessDocumentResponse)(nil), // 16: docs.v1.ReprocessDocumentResponse
	(*ListAuditLogRequest)(nil),       // 17: docs.v1.ListAuditLogRequest
	(*ListAuditLogResponse)(nil),      // 18: docs.v1.ListAuditLogResponse
	(*CreateUserRequest)(nil),         // 19: docs.v1.CreateUserRequest
	(*CreateUserResponse)(nil),        // 20: docs.v1.CreateUserResponse
	(*ListUsersRequest)(nil),          // 21: docs.v1.ListUsersRequest
	(*ListUsersResponse)(nil),         // 22: docs.v1.ListUsersResponse
	(*UpdateUserRoleRequest)(nil),     // 23: docs.v1.UpdateUserRoleRequest
	(*UpdateUserRoleResponse)(nil),    // 24: docs.v1.UpdateUserRoleResponse
	(*SetUserActiveRequest)(nil),      // 25: docs.v1.SetUserActiveRequest
	(*SetUserActiveResponse)(nil),     // 26: docs.v1.SetUserActiveResponse
	(*GetSummaryRequest)(nil),         // 27: docs.v1.GetSummaryRequest
	(*GetSummaryResponse)(nil),        // 28: docs.v1.GetSummaryResponse
	(*ExportDocumentsRequest)(nil),    // 29: docs.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil),   // 30: docs.v1.ExportDocumentsResponse
	nil,                               // 31: docs.v1.Document.ParsedDataEntry
	nil,                               // 32: docs.v1.GetSummaryResponse.ByStatusEntry
	nil,                               // 33: docs.v1.GetSummaryResponse.ByTypeEntry
	nil,                               // 34: docs.v1.GetSummaryResponse.MonthlyUploadsEntry
}
var file_docs_v1_docs_proto_depIdxs = []int32{
	31, // 0: docs.v1.Document.parsed_data:type_name -> docs.v1.Document.ParsedDataEntry
	1,  // 1: docs.v1.Document.error:type_name -> docs.v1.ProcessingError
	3,  // 2: docs.v1.User.permissions:type_name -> docs.v1.Permissions
	0,  // 3: docs.v1.UploadDocumentResponse.document:type_name -> docs.v1.Document
	0,  // 4: docs.v1.GetDocumentResponse.document:type_name -> docs.v1.Document
	0,  // 5: docs.v1.ListDocumentsResponse.documents:type_name -> docs.v1.Document
	0,  // 6: docs.v1.UpdateDocumentResponse.document:type_name -> docs.v1.Document
	0,  // 7: docs.v1.ReprocessDocumentResponse.document:type_name -> docs.v1.Document
	2,  // 8: docs.v1.ListAuditLogResponse.entries:type_name -> docs.v1.AuditEntry
	4,  // 9: docs.v1.CreateUserResponse.user:type_name -> docs.v1.User
	4,  // 10: docs.v1.ListUsersResponse.users:type_name -> docs.v1.User
	4,  // 11: docs.v1.UpdateUserRoleResponse.user:type_name -> docs.v1.User
	32, // 12: docs.v1.GetSummaryResponse.by_status:type_name -> docs.v1.GetSummaryResponse.ByStatusEntry
	33, // 13: docs.v1.GetSummaryResponse.by_type:type_name -> docs.v1.GetSummaryResponse.ByTypeEntry
	34, // 14: docs.v1.GetSummaryResponse.monthly_uploads:type_name -> docs.v1.GetSummaryResponse.MonthlyUploadsEntry
	5,  // 15: docs.v1.DocumentsService.UploadDocument:input_type -> docs.v1.UploadDocumentRequest
	7,  // 16: docs.v1.DocumentsService.GetDocument:input_type -> docs.v1.GetDocumentRequest
	9,  // 17: docs.v1.DocumentsService.ListDocuments:input_type -> docs.v1.ListDocumentsRequest
	11, // 18: docs.v1.DocumentsService.UpdateDocument:input_type -> docs.v1.UpdateDocumentRequest
	13, // 19: docs.v1.DocumentsService.DeleteDocument:input_type -> docs.v1.DeleteDocumentRequest
	15, // 20: docs.v1.DocumentsService.ReprocessDocument:input_type -> docs.v1.ReprocessDocumentRequest
	17, // 21: docs.v1.DocumentsService.ListAuditLog:input_type -> docs.v1.ListAuditLogRequest
	19, // 22: docs.v1.UsersService.CreateUser:input_type -> docs.v1.CreateUserRequest
	21, // 23: docs.v1.UsersService.ListUsers:input_type -> docs.v1.ListUsersRequest
	23, // 24: docs.v1.UsersService.UpdateUserRole:input_type -> docs.v1.UpdateUserRoleRequest
	25, // 25: docs.v1.UsersService.SetUserActive:input_type -> docs.v1.SetUserActiveRequest
	27, // 26: docs.v1.ReportsService.GetSummary:input_type -> docs.v1.GetSummaryRequest
	29, // 27: docs.v1.ReportsService.ExportDocuments:input_type -> docs.v1.ExportDocumentsRequest
	6,  // 28: docs.v1.DocumentsService.UploadDocument:output_type -> docs.v1.UploadDocumentResponse
	8,  // 29: docs.v1.DocumentsService.GetDocument:output_type -> docs.v1.GetDocumentResponse
	10, // 30: docs.v1.DocumentsService.ListDocuments:output_type -> docs.v1.ListDocumentsResponse
	12, // 31: docs.v1.DocumentsService.UpdateDocument:output_type -> docs.v1.UpdateDocumentResponse
	14, // 32: docs.v1.DocumentsService.DeleteDocument:output_type -> docs.v1.DeleteDocumentResponse
	16, // 33: docs.v1.DocumentsService.ReprocessDocument:output_type -> docs.v1.ReprocessDocumentResponse
	18, // 34: docs.v1.DocumentsService.ListAuditLog:output_type -> docs.v1.ListAuditLogResponse
	20, // 35: docs.v1.UsersService.CreateUser:output_type -> docs.v1.CreateUserResponse
	22, // 36: docs.v1.UsersService.ListUsers:output_type -> docs.v1.ListUsersResponse
	24, // 37: docs.v1.UsersService.UpdateUserRole:output_type -> docs.v1.UpdateUserRoleResponse
	26, // 38: docs.v1.UsersService.SetUserActive:output_type -> docs.v1.SetUserActiveResponse
	28, // 39: docs.v1.ReportsService.GetSummary:output_type -> docs.v1.GetSummaryResponse
	30, // 40: docs.v1.ReportsService.ExportDocuments:output_type -> docs.v1.ExportDocumentsResponse
	28, // [28:41] is the sub-list for method output_type
	15, // [15:28] is the sub-list for method input_type
	15, // [15:15] is the sub-list for extension type_name
	15, // [15:15] is the sub-list for extension extendee
	0,  // [0:15] is the sub-list for field type_name
}

func init() { file_docs_v1_docs_proto_init() }
func file_docs_v1_docs_proto_init() {
	if File_docs_v1_docs_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docs_v1_docs_proto_rawDesc), len(file_docs_v1_docs_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   35,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_docs_v1_docs_proto_goTypes,
		DependencyIndexes: file_docs_v1_docs_proto_depIdxs,
		MessageInfos:      file_docs_v1_docs_proto_msgTypes,
	}.Build()
	File_docs_v1_docs_proto = out.File
	file_docs_v1_docs_proto_goTypes = nil
	file_docs_v1_docs_proto_depIdxs = nil
}
