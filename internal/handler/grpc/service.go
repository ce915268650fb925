// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
	"google.golang.org/grpc"
)

const (
	ServiceName = "notesync.Replicache"

	PushMethod = "/" + ServiceName + "/Push"
	PullMethod = "/" + ServiceName + "/Pull"
)

// ReplicacheServer is the server API of the notesync.Replicache service.
type ReplicacheServer interface {
	Push(ctx context.Context, request *models.PushRequest) (*models.PushResponse, error)
	Pull(ctx context.Context, request *models.PullRequest) (*models.PullResponse, error)
}

// ReplicacheServiceDesc describes notesync.Replicache for grpc.Server.
var ReplicacheServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReplicacheServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Push", Handler: pushHandler},
		{MethodName: "Pull", Handler: pullHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "notesync/replicache.json",
}

func pushHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.PushRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplicacheServer).Push(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PushMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReplicacheServer).Push(ctx, req.(*models.PushRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func pullHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.PullRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplicacheServer).Pull(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReplicacheServer).Pull(ctx, req.(*models.PullRequest))
	}
	return interceptor(ctx, in, info, handler)
}
