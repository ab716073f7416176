// Package v1 holds the scorereport.v1 gRPC contract generated from
// scorereport.proto.
package v1

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative api/v1/scorereport.proto
