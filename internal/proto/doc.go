// Package proto holds the mailpassd gRPC contract generated from
// mailpassd.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative mailpassd.proto
