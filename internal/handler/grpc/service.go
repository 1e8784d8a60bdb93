// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/custody-vault/models"
	"google.golang.org/grpc"
)

// ServiceName is the fully qualified name of the custody service.
const ServiceName = "custody.v1.CustodyService"

// CustodyServer is the server side of [ServiceName].
type CustodyServer interface {
	IssueToken(ctx context.Context, in *models.TokenRequest) (*models.TokenResponse, error)
	ProvisionVault(ctx context.Context, in *models.ProvisionVaultRequest) (*models.VaultView, error)
	ProvisionAsset(ctx context.Context, in *ProvisionAssetMessage) (*models.Asset, error)
	OpenAccount(ctx context.Context, in *models.OpenAccountRequest) (*models.AccountView, error)
	GrantConsent(ctx context.Context, in *VaultMessage) (*models.VaultView, error)
	ClearConsent(ctx context.Context, in *VaultMessage) (*models.VaultView, error)
	Withdraw(ctx context.Context, in *WithdrawMessage) (*models.Operation, error)
	Transfer(ctx context.Context, in *TransferMessage) (*models.Operation, error)
	Burn(ctx context.Context, in *BurnMessage) (*models.Operation, error)
	GetVault(ctx context.Context, in *VaultMessage) (*models.VaultView, error)
	GetAccount(ctx context.Context, in *AccountMessage) (*models.AccountView, error)
	GetAsset(ctx context.Context, in *AssetMessage) (*models.Asset, error)
	ListOperations(ctx context.Context, in *OperationsMessage) (*OperationsList, error)
	GetVersion(ctx context.Context, in *Empty) (*models.VersionInfo, error)
}

// publicMethods can be called without a bearer token.
var publicMethods = map[string]bool{
	fullMethod("IssueToken"): true,
	fullMethod("GetAsset"):   true,
	fullMethod("GetVersion"): true,
}

// ServiceDesc describes [ServiceName] for [grpc.Server.RegisterService].
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CustodyServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("IssueToken", CustodyServer.IssueToken),
		unary("ProvisionVault", CustodyServer.ProvisionVault),
		unary("ProvisionAsset", CustodyServer.ProvisionAsset),
		unary("OpenAccount", CustodyServer.OpenAccount),
		unary("GrantConsent", CustodyServer.GrantConsent),
		unary("ClearConsent", CustodyServer.ClearConsent),
		unary("Withdraw", CustodyServer.Withdraw),
		unary("Transfer", CustodyServer.Transfer),
		unary("Burn", CustodyServer.Burn),
		unary("GetVault", CustodyServer.GetVault),
		unary("GetAccount", CustodyServer.GetAccount),
		unary("GetAsset", CustodyServer.GetAsset),
		unary("ListOperations", CustodyServer.ListOperations),
		unary("GetVersion", CustodyServer.GetVersion),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "custody/v1/custody.json",
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// unary builds the method descriptor for a CustodyServer method, decoding
// the request and running it through the server interceptor chain.
func unary[Req, Resp any](name string, call func(CustodyServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}

			server := srv.(CustodyServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
