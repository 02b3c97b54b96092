// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: taxflow/v1/taxflow.proto

package taxflowv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	TaxFlowService_ParseDocument_FullMethodName             = "/taxflow.v1.TaxFlowService/ParseDocument"
	TaxFlowService_GenerateChecklist_FullMethodName         = "/taxflow.v1.TaxFlowService/GenerateChecklist"
	TaxFlowService_ListDocuments_FullMethodName             = "/taxflow.v1.TaxFlowService/ListDocuments"
	TaxFlowService_DeleteDocument_FullMethodName            = "/taxflow.v1.TaxFlowService/DeleteDocument"
	TaxFlowService_ListDocumentEntities_FullMethodName      = "/taxflow.v1.TaxFlowService/ListDocumentEntities"
	TaxFlowService_ListChecklist_FullMethodName             = "/taxflow.v1.TaxFlowService/ListChecklist"
	TaxFlowService_UpdateChecklistItemStatus_FullMethodName = "/taxflow.v1.TaxFlowService/UpdateChecklistItemStatus"
	TaxFlowService_DeleteChecklistItem_FullMethodName       = "/taxflow.v1.TaxFlowService/DeleteChecklistItem"
	TaxFlowService_ExportChecklist_FullMethodName           = "/taxflow.v1.TaxFlowService/ExportChecklist"
)

// TaxFlowServiceClient is the client API for TaxFlowService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TaxFlowServiceClient interface {
	// Parse runs one unparsed document through text extraction and
	// classification, persisting the extracted entities.
	ParseDocument(ctx context.Context, in *ParseDocumentRequest, opts ...grpc.CallOption) (*ParseDocumentResponse, error)
	// GenerateChecklist replaces the tax year's checklist, personalized from
	// the reference year's parsed documents when available.
	GenerateChecklist(ctx context.Context, in *GenerateChecklistRequest, opts ...grpc.CallOption) (*GenerateChecklistResponse, error)
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
	DeleteDocument(ctx context.Context, in *DeleteDocumentRequest, opts ...grpc.CallOption) (*DeleteDocumentResponse, error)
	ListDocumentEntities(ctx context.Context, in *ListDocumentEntitiesRequest, opts ...grpc.CallOption) (*ListDocumentEntitiesResponse, error)
	ListChecklist(ctx context.Context, in *ListChecklistRequest, opts ...grpc.CallOption) (*ListChecklistResponse, error)
	UpdateChecklistItemStatus(ctx context.Context, in *UpdateChecklistItemStatusRequest, opts ...grpc.CallOption) (*UpdateChecklistItemStatusResponse, error)
	DeleteChecklistItem(ctx context.Context, in *DeleteChecklistItemRequest, opts ...grpc.CallOption) (*DeleteChecklistItemResponse, error)
	ExportChecklist(ctx context.Context, in *ExportChecklistRequest, opts ...grpc.CallOption) (*ExportChecklistResponse, error)
}

type taxFlowServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTaxFlowServiceClient(cc grpc.ClientConnInterface) TaxFlowServiceClient {
	return &taxFlowServiceClient{cc}
}

func (c *taxFlowServiceClient) ParseDocument(ctx context.Context, in *ParseDocumentRequest, opts ...grpc.CallOption) (*ParseDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseDocumentResponse)
	err := c.cc.Invoke(ctx, TaxFlowService_ParseDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taxFlowServiceClient) GenerateChecklist(ctx context.Context, in *GenerateChecklistRequest, opts ...grpc.CallOption) (*GenerateChecklistResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateChecklistResponse)
	err := c.cc.Invoke(ctx, TaxFlowService_GenerateChecklist_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taxFlowServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, TaxFlowService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taxFlowServiceClient) DeleteDocument(ctx context.Context, in *DeleteDocumentRequest, opts ...grpc.CallOption) (*DeleteDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteDocumentResponse)
	err := c.cc.Invoke(ctx, TaxFlowService_DeleteDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taxFlowServiceClient) ListDocumentEntities(ctx context.Context, in *ListDocumentEntitiesRequest, opts ...grpc.CallOption) (*ListDocumentEntitiesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentEntitiesResponse)
	err := c.cc.Invoke(ctx, TaxFlowService_ListDocumentEntities_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taxFlowServiceClient) ListChecklist(ctx context.Context, in *ListChecklistRequest, opts ...grpc.CallOption) (*ListChecklistResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListChecklistResponse)
	err := c.cc.Invoke(ctx, TaxFlowService_ListChecklist_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taxFlowServiceClient) UpdateChecklistItemStatus(ctx context.Context, in *UpdateChecklistItemStatusRequest, opts ...grpc.CallOption) (*UpdateChecklistItemStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateChecklistItemStatusResponse)
	err := c.cc.Invoke(ctx, TaxFlowService_UpdateChecklistItemStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taxFlowServiceClient) DeleteChecklistItem(ctx context.Context, in *DeleteChecklistItemRequest, opts ...grpc.CallOption) (*DeleteChecklistItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteChecklistItemResponse)
	err := c.cc.Invoke(ctx, TaxFlowService_DeleteChecklistItem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taxFlowServiceClient) ExportChecklist(ctx context.Context, in *ExportChecklistRequest, opts ...grpc.CallOption) (*ExportChecklistResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportChecklistResponse)
	err := c.cc.Invoke(ctx, TaxFlowService_ExportChecklist_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TaxFlowServiceServer is the server API for TaxFlowService service.
// All implementations must embed UnimplementedTaxFlowServiceServer
// for forward compatibility.
type TaxFlowServiceServer interface {
	// Parse runs one unparsed document through text extraction and
	// classification, persisting the extracted entities.
	ParseDocument(context.Context, *ParseDocumentRequest) (*ParseDocumentResponse, error)
	// GenerateChecklist replaces the tax year's checklist, personalized from
	// the reference year's parsed documents when available.
	GenerateChecklist(context.Context, *GenerateChecklistRequest) (*GenerateChecklistResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	DeleteDocument(context.Context, *DeleteDocumentRequest) (*DeleteDocumentResponse, error)
	ListDocumentEntities(context.Context, *ListDocumentEntitiesRequest) (*ListDocumentEntitiesResponse, error)
	ListChecklist(context.Context, *ListChecklistRequest) (*ListChecklistResponse, error)
	UpdateChecklistItemStatus(context.Context, *UpdateChecklistItemStatusRequest) (*UpdateChecklistItemStatusResponse, error)
	DeleteChecklistItem(context.Context, *DeleteChecklistItemRequest) (*DeleteChecklistItemResponse, error)
	ExportChecklist(context.Context, *ExportChecklistRequest) (*ExportChecklistResponse, error)
	mustEmbedUnimplementedTaxFlowServiceServer()
}

// UnimplementedTaxFlowServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTaxFlowServiceServer struct{}

func (UnimplementedTaxFlowServiceServer) ParseDocument(context.Context, *ParseDocumentRequest) (*ParseDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ParseDocument not implemented")
}
func (UnimplementedTaxFlowServiceServer) GenerateChecklist(context.Context, *GenerateChecklistRequest) (*GenerateChecklistResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateChecklist not implemented")
}
func (UnimplementedTaxFlowServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedTaxFlowServiceServer) DeleteDocument(context.Context, *DeleteDocumentRequest) (*DeleteDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteDocument not implemented")
}
func (UnimplementedTaxFlowServiceServer) ListDocumentEntities(context.Context, *ListDocumentEntitiesRequest) (*ListDocumentEntitiesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDocumentEntities not implemented")
}
func (UnimplementedTaxFlowServiceServer) ListChecklist(context.Context, *ListChecklistRequest) (*ListChecklistResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListChecklist not implemented")
}
func (UnimplementedTaxFlowServiceServer) UpdateChecklistItemStatus(context.Context, *UpdateChecklistItemStatusRequest) (*UpdateChecklistItemStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateChecklistItemStatus not implemented")
}
func (UnimplementedTaxFlowServiceServer) DeleteChecklistItem(context.Context, *DeleteChecklistItemRequest) (*DeleteChecklistItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteChecklistItem not implemented")
}
func (UnimplementedTaxFlowServiceServer) ExportChecklist(context.Context, *ExportChecklistRequest) (*ExportChecklistResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportChecklist not implemented")
}
func (UnimplementedTaxFlowServiceServer) mustEmbedUnimplementedTaxFlowServiceServer() {}
func (UnimplementedTaxFlowServiceServer) testEmbeddedByValue()                        {}

// UnsafeTaxFlowServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TaxFlowServiceServer will
// result in compilation errors.
type UnsafeTaxFlowServiceServer interface {
	mustEmbedUnimplementedTaxFlowServiceServer()
}

func RegisterTaxFlowServiceServer(s grpc.ServiceRegistrar, srv TaxFlowServiceServer) {
	// If the following call panics, it indicates UnimplementedTaxFlowServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TaxFlowService_ServiceDesc, srv)
}

func _TaxFlowService_ParseDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaxFlowServiceServer).ParseDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaxFlowService_ParseDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaxFlowServiceServer).ParseDocument(ctx, req.(*ParseDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaxFlowService_GenerateChecklist_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateChecklistRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaxFlowServiceServer).GenerateChecklist(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaxFlowService_GenerateChecklist_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaxFlowServiceServer).GenerateChecklist(ctx, req.(*GenerateChecklistRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaxFlowService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaxFlowServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaxFlowService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaxFlowServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaxFlowService_DeleteDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaxFlowServiceServer).DeleteDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaxFlowService_DeleteDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaxFlowServiceServer).DeleteDocument(ctx, req.(*DeleteDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaxFlowService_ListDocumentEntities_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentEntitiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaxFlowServiceServer).ListDocumentEntities(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaxFlowService_ListDocumentEntities_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaxFlowServiceServer).ListDocumentEntities(ctx, req.(*ListDocumentEntitiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaxFlowService_ListChecklist_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListChecklistRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaxFlowServiceServer).ListChecklist(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaxFlowService_ListChecklist_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaxFlowServiceServer).ListChecklist(ctx, req.(*ListChecklistRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaxFlowService_UpdateChecklistItemStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateChecklistItemStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaxFlowServiceServer).UpdateChecklistItemStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaxFlowService_UpdateChecklistItemStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaxFlowServiceServer).UpdateChecklistItemStatus(ctx, req.(*UpdateChecklistItemStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaxFlowService_DeleteChecklistItem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteChecklistItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaxFlowServiceServer).DeleteChecklistItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaxFlowService_DeleteChecklistItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaxFlowServiceServer).DeleteChecklistItem(ctx, req.(*DeleteChecklistItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaxFlowService_ExportChecklist_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportChecklistRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaxFlowServiceServer).ExportChecklist(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaxFlowService_ExportChecklist_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaxFlowServiceServer).ExportChecklist(ctx, req.(*ExportChecklistRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TaxFlowService_ServiceDesc is the grpc.ServiceDesc for TaxFlowService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TaxFlowService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "taxflow.v1.TaxFlowService",
	HandlerType: (*TaxFlowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ParseDocument",
			Handler:    _TaxFlowService_ParseDocument_Handler,
		},
		{
			MethodName: "GenerateChecklist",
			Handler:    _TaxFlowService_GenerateChecklist_Handler,
		},
		{
			MethodName: "ListDocuments",
			Handler:    _TaxFlowService_ListDocuments_Handler,
		},
		{
			MethodName: "DeleteDocument",
			Handler:    _TaxFlowService_DeleteDocument_Handler,
		},
		{
			MethodName: "ListDocumentEntities",
			Handler:    _TaxFlowService_ListDocumentEntities_Handler,
		},
		{
			MethodName: "ListChecklist",
			Handler:    _TaxFlowService_ListChecklist_Handler,
		},
		{
			MethodName: "UpdateChecklistItemStatus",
			Handler:    _TaxFlowService_UpdateChecklistItemStatus_Handler,
		},
		{
			MethodName: "DeleteChecklistItem",
			Handler:    _TaxFlowService_DeleteChecklistItem_Handler,
		},
		{
			MethodName: "ExportChecklist",
			Handler:    _TaxFlowService_ExportChecklist_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "taxflow/v1/taxflow.proto",
}
