// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: taxflow/v1/taxflow.proto

package taxflowv1

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
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	HouseholdId   string                 `protobuf:"bytes,2,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	TaxYearId     string                 `protobuf:"bytes,3,opt,name=tax_year_id,json=taxYearId,proto3" json:"tax_year_id,omitempty"`
	Source        string                 `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"`
	Filename      string                 `protobuf:"bytes,5,opt,name=filename,proto3" json:"filename,omitempty"`
	MimeType      string                 `protobuf:"bytes,6,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	StoragePath   string                 `protobuf:"bytes,7,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	FileSize      int64                  `protobuf:"varint,8,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	Parsed        bool                   `protobuf:"varint,9,opt,name=parsed,proto3" json:"parsed,omitempty"`
	ParseError    string                 `protobuf:"bytes,10,opt,name=parse_error,json=parseError,proto3" json:"parse_error,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,11,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[0]
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
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *Document) GetTaxYearId() string {
	if x != nil {
		return x.TaxYearId
	}
	return ""
}

func (x *Document) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *Document) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetParsed() bool {
	if x != nil {
		return x.Parsed
	}
	return false
}

func (x *Document) GetParseError() string {
	if x != nil {
		return x.ParseError
	}
	return ""
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type Entity struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	EntityType    string                 `protobuf:"bytes,3,opt,name=entity_type,json=entityType,proto3" json:"entity_type,omitempty"`
	Key           string                 `protobuf:"bytes,4,opt,name=key,proto3" json:"key,omitempty"`
	Value         string                 `protobuf:"bytes,5,opt,name=value,proto3" json:"value,omitempty"`
	HasValue      bool                   `protobuf:"varint,6,opt,name=has_value,json=hasValue,proto3" json:"has_value,omitempty"`
	Confidence    float64                `protobuf:"fixed64,7,opt,name=confidence,proto3" json:"confidence,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Entity) Reset() {
	*x = Entity{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Entity) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Entity) ProtoMessage() {}

func (x *Entity) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Entity.ProtoReflect.Descriptor instead.
func (*Entity) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{1}
}

func (x *Entity) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Entity) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Entity) GetEntityType() string {
	if x != nil {
		return x.EntityType
	}
	return ""
}

func (x *Entity) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *Entity) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *Entity) GetHasValue() bool {
	if x != nil {
		return x.HasValue
	}
	return false
}

func (x *Entity) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Entity) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ChecklistItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TaxYearId     string                 `protobuf:"bytes,2,opt,name=tax_year_id,json=taxYearId,proto3" json:"tax_year_id,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"` // todo | in_progress | done
	Required      bool                   `protobuf:"varint,6,opt,name=required,proto3" json:"required,omitempty"`
	Category      string                 `protobuf:"bytes,7,opt,name=category,proto3" json:"category,omitempty"`                    // income | deductions | credits | other
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt     string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChecklistItem) Reset() {
	*x = ChecklistItem{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChecklistItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChecklistItem) ProtoMessage() {}

func (x *ChecklistItem) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChecklistItem.ProtoReflect.Descriptor instead.
func (*ChecklistItem) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{2}
}

func (x *ChecklistItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ChecklistItem) GetTaxYearId() string {
	if x != nil {
		return x.TaxYearId
	}
	return ""
}

func (x *ChecklistItem) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *ChecklistItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ChecklistItem) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ChecklistItem) GetRequired() bool {
	if x != nil {
		return x.Required
	}
	return false
}

func (x *ChecklistItem) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ChecklistItem) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *ChecklistItem) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ParseDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseDocumentRequest) Reset() {
	*x = ParseDocumentRequest{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseDocumentRequest) ProtoMessage() {}

func (x *ParseDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseDocumentRequest.ProtoReflect.Descriptor instead.
func (*ParseDocumentRequest) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{3}
}

func (x *ParseDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ParseDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	EntityType    string                 `protobuf:"bytes,2,opt,name=entity_type,json=entityType,proto3" json:"entity_type,omitempty"`
	EntitiesCount int32                  `protobuf:"varint,3,opt,name=entities_count,json=entitiesCount,proto3" json:"entities_count,omitempty"`
	Entities      []*Entity              `protobuf:"bytes,4,rep,name=entities,proto3" json:"entities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseDocumentResponse) Reset() {
	*x = ParseDocumentResponse{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseDocumentResponse) ProtoMessage() {}

func (x *ParseDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseDocumentResponse.ProtoReflect.Descriptor instead.
func (*ParseDocumentResponse) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{4}
}

func (x *ParseDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ParseDocumentResponse) GetEntityType() string {
	if x != nil {
		return x.EntityType
	}
	return ""
}

func (x *ParseDocumentResponse) GetEntitiesCount() int32 {
	if x != nil {
		return x.EntitiesCount
	}
	return 0
}

func (x *ParseDocumentResponse) GetEntities() []*Entity {
	if x != nil {
		return x.Entities
	}
	return nil
}

type GenerateChecklistRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	TaxYearId string                 `protobuf:"bytes,1,opt,name=tax_year_id,json=taxYearId,proto3" json:"tax_year_id,omitempty"`
	// Year whose parsed documents seed personalization. 0 means the year
	// before the target tax year.
	ReferenceYear int32 `protobuf:"varint,2,opt,name=reference_year,json=referenceYear,proto3" json:"reference_year,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateChecklistRequest) Reset() {
	*x = GenerateChecklistRequest{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateChecklistRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateChecklistRequest) ProtoMessage() {}

func (x *GenerateChecklistRequest) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateChecklistRequest.ProtoReflect.Descriptor instead.
func (*GenerateChecklistRequest) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{5}
}

func (x *GenerateChecklistRequest) GetTaxYearId() string {
	if x != nil {
		return x.TaxYearId
	}
	return ""
}

func (x *GenerateChecklistRequest) GetReferenceYear() int32 {
	if x != nil {
		return x.ReferenceYear
	}
	return 0
}

type GenerateChecklistResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemsCreated  int32                  `protobuf:"varint,1,opt,name=items_created,json=itemsCreated,proto3" json:"items_created,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Personalized  bool                   `protobuf:"varint,3,opt,name=personalized,proto3" json:"personalized,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateChecklistResponse) Reset() {
	*x = GenerateChecklistResponse{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateChecklistResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateChecklistResponse) ProtoMessage() {}

func (x *GenerateChecklistResponse) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateChecklistResponse.ProtoReflect.Descriptor instead.
func (*GenerateChecklistResponse) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{6}
}

func (x *GenerateChecklistResponse) GetItemsCreated() int32 {
	if x != nil {
		return x.ItemsCreated
	}
	return 0
}

func (x *GenerateChecklistResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *GenerateChecklistResponse) GetPersonalized() bool {
	if x != nil {
		return x.Personalized
	}
	return false
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaxYearId     string                 `protobuf:"bytes,1,opt,name=tax_year_id,json=taxYearId,proto3" json:"tax_year_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[7]
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
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{7}
}

func (x *ListDocumentsRequest) GetTaxYearId() string {
	if x != nil {
		return x.TaxYearId
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[8]
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
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{8}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[9]
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
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{9}
}

func (x *DeleteDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
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
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[10]
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
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{10}
}

type ListDocumentEntitiesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentEntitiesRequest) Reset() {
	*x = ListDocumentEntitiesRequest{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentEntitiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentEntitiesRequest) ProtoMessage() {}

func (x *ListDocumentEntitiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentEntitiesRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentEntitiesRequest) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{11}
}

func (x *ListDocumentEntitiesRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ListDocumentEntitiesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entities      []*Entity              `protobuf:"bytes,1,rep,name=entities,proto3" json:"entities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentEntitiesResponse) Reset() {
	*x = ListDocumentEntitiesResponse{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentEntitiesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentEntitiesResponse) ProtoMessage() {}

func (x *ListDocumentEntitiesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentEntitiesResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentEntitiesResponse) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{12}
}

func (x *ListDocumentEntitiesResponse) GetEntities() []*Entity {
	if x != nil {
		return x.Entities
	}
	return nil
}

type ListChecklistRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaxYearId     string                 `protobuf:"bytes,1,opt,name=tax_year_id,json=taxYearId,proto3" json:"tax_year_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListChecklistRequest) Reset() {
	*x = ListChecklistRequest{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListChecklistRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListChecklistRequest) ProtoMessage() {}

func (x *ListChecklistRequest) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListChecklistRequest.ProtoReflect.Descriptor instead.
func (*ListChecklistRequest) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{13}
}

func (x *ListChecklistRequest) GetTaxYearId() string {
	if x != nil {
		return x.TaxYearId
	}
	return ""
}

type ListChecklistResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*ChecklistItem       `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListChecklistResponse) Reset() {
	*x = ListChecklistResponse{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListChecklistResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListChecklistResponse) ProtoMessage() {}

func (x *ListChecklistResponse) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListChecklistResponse.ProtoReflect.Descriptor instead.
func (*ListChecklistResponse) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{14}
}

func (x *ListChecklistResponse) GetItems() []*ChecklistItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type UpdateChecklistItemStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemId        string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateChecklistItemStatusRequest) Reset() {
	*x = UpdateChecklistItemStatusRequest{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateChecklistItemStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateChecklistItemStatusRequest) ProtoMessage() {}

func (x *UpdateChecklistItemStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateChecklistItemStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateChecklistItemStatusRequest) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{15}
}

func (x *UpdateChecklistItemStatusRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *UpdateChecklistItemStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type UpdateChecklistItemStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *ChecklistItem         `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateChecklistItemStatusResponse) Reset() {
	*x = UpdateChecklistItemStatusResponse{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateChecklistItemStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateChecklistItemStatusResponse) ProtoMessage() {}

func (x *UpdateChecklistItemStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateChecklistItemStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateChecklistItemStatusResponse) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{16}
}

func (x *UpdateChecklistItemStatusResponse) GetItem() *ChecklistItem {
	if x != nil {
		return x.Item
	}
	return nil
}

type DeleteChecklistItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemId        string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteChecklistItemRequest) Reset() {
	*x = DeleteChecklistItemRequest{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteChecklistItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteChecklistItemRequest) ProtoMessage() {}

func (x *DeleteChecklistItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteChecklistItemRequest.ProtoReflect.Descriptor instead.
func (*DeleteChecklistItemRequest) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{17}
}

func (x *DeleteChecklistItemRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

type DeleteChecklistItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteChecklistItemResponse) Reset() {
	*x = DeleteChecklistItemResponse{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteChecklistItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteChecklistItemResponse) ProtoMessage() {}

func (x *DeleteChecklistItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteChecklistItemResponse.ProtoReflect.Descriptor instead.
func (*DeleteChecklistItemResponse) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{18}
}

type ExportChecklistRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaxYearId     string                 `protobuf:"bytes,1,opt,name=tax_year_id,json=taxYearId,proto3" json:"tax_year_id,omitempty"`
	OutputPath    string                 `protobuf:"bytes,2,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportChecklistRequest) Reset() {
	*x = ExportChecklistRequest{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportChecklistRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportChecklistRequest) ProtoMessage() {}

func (x *ExportChecklistRequest) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportChecklistRequest.ProtoReflect.Descriptor instead.
func (*ExportChecklistRequest) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{19}
}

func (x *ExportChecklistRequest) GetTaxYearId() string {
	if x != nil {
		return x.TaxYearId
	}
	return ""
}

func (x *ExportChecklistRequest) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

type ExportChecklistResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OutputPath    string                 `protobuf:"bytes,1,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
	Rows          int32                  `protobuf:"varint,2,opt,name=rows,proto3" json:"rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportChecklistResponse) Reset() {
	*x = ExportChecklistResponse{}
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportChecklistResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportChecklistResponse) ProtoMessage() {}

func (x *ExportChecklistResponse) ProtoReflect() protoreflect.Message {
	mi := &file_taxflow_v1_taxflow_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportChecklistResponse.ProtoReflect.Descriptor instead.
func (*ExportChecklistResponse) Descriptor() ([]byte, []int) {
	return file_taxflow_v1_taxflow_proto_rawDescGZIP(), []int{20}
}

func (x *ExportChecklistResponse) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

func (x *ExportChecklistResponse) GetRows() int32 {
	if x != nil {
		return x.Rows
	}
	return 0
}

var File_taxflow_v1_taxflow_proto protoreflect.FileDescriptor

const file_taxflow_v1_taxflow_proto_rawDesc = "" +
	"\n" +
	"\x18taxflow/v1/taxflow.proto\x12\n" +
	"taxflow.v1\"\xc8\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fhousehold_id\x18\x02 \x01(\tR\vhouseholdId\x12\x1e\n" +
	"\vtax_year_id\x18\x03 \x01(\tR\ttaxYearId\x12\x16\n" +
	"\x06source\x18\x04 \x01(\tR\x06source\x12\x1a\n" +
	"\bfilename\x18\x05 \x01(\tR\bfilename\x12\x1b\n" +
	"\tmime_type\x18\x06 \x01(\tR\bmimeType\x12!\n" +
	"\fstorage_path\x18\a \x01(\tR\vstoragePath\x12\x1b\n" +
	"\tfile_size\x18\b \x01(\x03R\bfileSize\x12\x16\n" +
	"\x06parsed\x18\t \x01(\bR\x06parsed\x12\x1f\n" +
	"\vparse_error\x18\n" +
	" \x01(\tR\n" +
	"parseError\x12\x1f\n" +
	"\vuploaded_at\x18\v \x01(\tR\n" +
	"uploadedAt\"\xde\x01\n" +
	"\x06Entity\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\ventity_type\x18\x03 \x01(\tR\n" +
	"entityType\x12\x10\n" +
	"\x03key\x18\x04 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x05 \x01(\tR\x05value\x12\x1b\n" +
	"\thas_value\x18\x06 \x01(\bR\bhasValue\x12\x1e\n" +
	"\n" +
	"confidence\x18\a \x01(\x01R\n" +
	"confidence\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"\x85\x02\n" +
	"\rChecklistItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1e\n" +
	"\vtax_year_id\x18\x02 \x01(\tR\ttaxYearId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1a\n" +
	"\brequired\x18\x06 \x01(\bR\brequired\x12\x1a\n" +
	"\bcategory\x18\a \x01(\tR\bcategory\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"7\n" +
	"\x14ParseDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\xb0\x01\n" +
	"\x15ParseDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\ventity_type\x18\x02 \x01(\tR\n" +
	"entityType\x12%\n" +
	"\x0eentities_count\x18\x03 \x01(\x05R\rentitiesCount\x12.\n" +
	"\bentities\x18\x04 \x03(\v2\x12.taxflow.v1.EntityR\bentities\"a\n" +
	"\x18GenerateChecklistRequest\x12\x1e\n" +
	"\vtax_year_id\x18\x01 \x01(\tR\ttaxYearId\x12%\n" +
	"\x0ereference_year\x18\x02 \x01(\x05R\rreferenceYear\"~\n" +
	"\x19GenerateChecklistResponse\x12#\n" +
	"\ritems_created\x18\x01 \x01(\x05R\fitemsCreated\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12\"\n" +
	"\fpersonalized\x18\x03 \x01(\bR\fpersonalized\"6\n" +
	"\x14ListDocumentsRequest\x12\x1e\n" +
	"\vtax_year_id\x18\x01 \x01(\tR\ttaxYearId\"K\n" +
	"\x15ListDocumentsResponse\x122\n" +
	"\tdocuments\x18\x01 \x03(\v2\x14.taxflow.v1.DocumentR\tdocuments\"8\n" +
	"\x15DeleteDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x18\n" +
	"\x16DeleteDocumentResponse\">\n" +
	"\x1bListDocumentEntitiesRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"N\n" +
	"\x1cListDocumentEntitiesResponse\x12.\n" +
	"\bentities\x18\x01 \x03(\v2\x12.taxflow.v1.EntityR\bentities\"6\n" +
	"\x14ListChecklistRequest\x12\x1e\n" +
	"\vtax_year_id\x18\x01 \x01(\tR\ttaxYearId\"H\n" +
	"\x15ListChecklistResponse\x12/\n" +
	"\x05items\x18\x01 \x03(\v2\x19.taxflow.v1.ChecklistItemR\x05items\"S\n" +
	" UpdateChecklistItemStatusRequest\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"R\n" +
	"!UpdateChecklistItemStatusResponse\x12-\n" +
	"\x04item\x18\x01 \x01(\v2\x19.taxflow.v1.ChecklistItemR\x04item\"5\n" +
	"\x1aDeleteChecklistItemRequest\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\"\x1d\n" +
	"\x1bDeleteChecklistItemResponse\"Y\n" +
	"\x16ExportChecklistRequest\x12\x1e\n" +
	"\vtax_year_id\x18\x01 \x01(\tR\ttaxYearId\x12\x1f\n" +
	"\voutput_path\x18\x02 \x01(\tR\n" +
	"outputPath\"N\n" +
	"\x17ExportChecklistResponse\x12\x1f\n" +
	"\voutput_path\x18\x01 \x01(\tR\n" +
	"outputPath\x12\x12\n" +
	"\x04rows\x18\x02 \x01(\x05R\x04rows2\xf6\x06\n" +
	"\x0eTaxFlowService\x12T\n" +
	"\rParseDocument\x12 .taxflow.v1.ParseDocumentRequest\x1a!.taxflow.v1.ParseDocumentResponse\x12`\n" +
	"\x11GenerateChecklist\x12$.taxflow.v1.GenerateChecklistRequest\x1a%.taxflow.v1.GenerateChecklistResponse\x12T\n" +
	"\rListDocuments\x12 .taxflow.v1.ListDocumentsRequest\x1a!.taxflow.v1.ListDocumentsResponse\x12W\n" +
	"\x0eDeleteDocument\x12!.taxflow.v1.DeleteDocumentRequest\x1a\".taxflow.v1.DeleteDocumentResponse\x12i\n" +
	"\x14ListDocumentEntities\x12'.taxflow.v1.ListDocumentEntitiesRequest\x1a(.taxflow.v1.ListDocumentEntitiesResponse\x12T\n" +
	"\rListChecklist\x12 .taxflow.v1.ListChecklistRequest\x1a!.taxflow.v1.ListChecklistResponse\x12x\n" +
	"\x19UpdateChecklistItemStatus\x12,.taxflow.v1.UpdateChecklistItemStatusRequest\x1a-.taxflow.v1.UpdateChecklistItemStatusResponse\x12f\n" +
	"\x13DeleteChecklistItem\x12&.taxflow.v1.DeleteChecklistItemRequest\x1a'.taxflow.v1.DeleteChecklistItemResponse\x12Z\n" +
	"\x0fExportChecklist\x12\".taxflow.v1.ExportChecklistRequest\x1a#.taxflow.v1.ExportChecklistResponseB?Z=github.com/taxflow-app/taxflow/gen/proto/taxflow/v1;taxflowv1b\x06proto3"

var (
	file_taxflow_v1_taxflow_proto_rawDescOnce sync.Once
	file_taxflow_v1_taxflow_proto_rawDescData []byte
)

func file_taxflow_v1_taxflow_proto_rawDescGZIP() []byte {
	file_taxflow_v1_taxflow_proto_rawDescOnce.Do(func() {
		file_taxflow_v1_taxflow_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_taxflow_v1_taxflow_proto_rawDesc), len(file_taxflow_v1_taxflow_proto_rawDesc)))
	})
	return file_taxflow_v1_taxflow_proto_rawDescData
}

var file_taxflow_v1_taxflow_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_taxflow_v1_taxflow_proto_goTypes = []any{
	(*Document)(nil),                          // 0: taxflow.v1.Document
	(*Entity)(nil),                            // 1: taxflow.v1.Entity
	(*ChecklistItem)(nil),                     // 2: taxflow.v1.ChecklistItem
	(*ParseDocumentRequest)(nil),              // 3: taxflow.v1.ParseDocumentRequest
	(*ParseDocumentResponse)(nil),             // 4: taxflow.v1.ParseDocumentResponse
	(*GenerateChecklistRequest)(nil),          // 5: taxflow.v1.GenerateChecklistRequest
	(*GenerateChecklistResponse)(nil),         // 6: taxflow.v1.GenerateChecklistResponse
	(*ListDocumentsRequest)(nil),              // 7: taxflow.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),             // 8: taxflow.v1.ListDocumentsResponse
	(*DeleteDocumentRequest)(nil),             // 9: taxflow.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),            // 10: taxflow.v1.DeleteDocumentResponse
	(*ListDocumentEntitiesRequest)(nil),       // 11: taxflow.v1.ListDocumentEntitiesRequest
	(*ListDocumentEntitiesResponse)(nil),      // 12: taxflow.v1.ListDocumentEntitiesResponse
	(*ListChecklistRequest)(nil),              // 13: taxflow.v1.ListChecklistRequest
	(*ListChecklistResponse)(nil),             // 14: taxflow.v1.ListChecklistResponse
	(*UpdateChecklistItemStatusRequest)(nil),  // 15: taxflow.v1.UpdateChecklistItemStatusRequest
	(*UpdateChecklistItemStatusResponse)(nil), // 16: taxflow.v1.UpdateChecklistItemStatusResponse
	(*DeleteChecklistItemRequest)(nil),        // 17: taxflow.v1.DeleteChecklistItemRequest
	(*DeleteChecklistItemResponse)(nil),       // 18: taxflow.v1.DeleteChecklistItemResponse
	(*ExportChecklistRequest)(nil),            // 19: taxflow.v1.ExportChecklistRequest
	(*ExportChecklistResponse)(nil),           // 20: taxflow.v1.ExportChecklistResponse
}
var file_taxflow_v1_taxflow_proto_depIdxs = []int32{
	1,  // 0: taxflow.v1.ParseDocumentResponse.entities:type_name -> taxflow.v1.Entity
	0,  // 1: taxflow.v1.ListDocumentsResponse.documents:type_name -> taxflow.v1.Document
	1,  // 2: taxflow.v1.ListDocumentEntitiesResponse.entities:type_name -> taxflow.v1.Entity
	2,  // 3: taxflow.v1.ListChecklistResponse.items:type_name -> taxflow.v1.ChecklistItem
	2,  // 4: taxflow.v1.UpdateChecklistItemStatusResponse.item:type_name -> taxflow.v1.ChecklistItem
	3,  // 5: taxflow.v1.TaxFlowService.ParseDocument:input_type -> taxflow.v1.ParseDocumentRequest
	5,  // 6: taxflow.v1.TaxFlowService.GenerateChecklist:input_type -> taxflow.v1.GenerateChecklistRequest
	7,  // 7: taxflow.v1.TaxFlowService.ListDocuments:input_type -> taxflow.v1.ListDocumentsRequest
	9,  // 8: taxflow.v1.TaxFlowService.DeleteDocument:input_type -> taxflow.v1.DeleteDocumentRequest
	11, // 9: taxflow.v1.TaxFlowService.ListDocumentEntities:input_type -> taxflow.v1.ListDocumentEntitiesRequest
	13, // 10: taxflow.v1.TaxFlowService.ListChecklist:input_type -> taxflow.v1.ListChecklistRequest
	15, // 11: taxflow.v1.TaxFlowService.UpdateChecklistItemStatus:input_type -> taxflow.v1.UpdateChecklistItemStatusRequest
	17, // 12: taxflow.v1.TaxFlowService.DeleteChecklistItem:input_type -> taxflow.v1.DeleteChecklistItemRequest
	19, // 13: taxflow.v1.TaxFlowService.ExportChecklist:input_type -> taxflow.v1.ExportChecklistRequest
	4,  // 14: taxflow.v1.TaxFlowService.ParseDocument:output_type -> taxflow.v1.ParseDocumentResponse
	6,  // 15: taxflow.v1.TaxFlowService.GenerateChecklist:output_type -> taxflow.v1.GenerateChecklistResponse
	8,  // 16: taxflow.v1.TaxFlowService.ListDocuments:output_type -> taxflow.v1.ListDocumentsResponse
	10, // 17: taxflow.v1.TaxFlowService.DeleteDocument:output_type -> taxflow.v1.DeleteDocumentResponse
	12, // 18: taxflow.v1.TaxFlowService.ListDocumentEntities:output_type -> taxflow.v1.ListDocumentEntitiesResponse
	14, // 19: taxflow.v1.TaxFlowService.ListChecklist:output_type -> taxflow.v1.ListChecklistResponse
	16, // 20: taxflow.v1.TaxFlowService.UpdateChecklistItemStatus:output_type -> taxflow.v1.UpdateChecklistItemStatusResponse
	18, // 21: taxflow.v1.TaxFlowService.DeleteChecklistItem:output_type -> taxflow.v1.DeleteChecklistItemResponse
	20, // 22: taxflow.v1.TaxFlowService.ExportChecklist:output_type -> taxflow.v1.ExportChecklistResponse
	14, // [14:23] is the sub-list for method output_type
	5,  // [5:14] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_taxflow_v1_taxflow_proto_init() }
func file_taxflow_v1_taxflow_proto_init() {
	if File_taxflow_v1_taxflow_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_taxflow_v1_taxflow_proto_rawDesc), len(file_taxflow_v1_taxflow_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_taxflow_v1_taxflow_proto_goTypes,
		DependencyIndexes: file_taxflow_v1_taxflow_proto_depIdxs,
		MessageInfos:      file_taxflow_v1_taxflow_proto_msgTypes,
	}.Build()
	File_taxflow_v1_taxflow_proto = out.File
	file_taxflow_v1_taxflow_proto_goTypes = nil
	file_taxflow_v1_taxflow_proto_depIdxs = nil
}
