package server

import (
	"context"

	"chat-hub/errors"
	pb "chat-hub/proto/account"
	"chat-hub/services"
)

type AuthServer struct {
	pb.UnimplementedAuthServiceServer
	authService services.IAuthService
}

// NewAuthServer creates a new gRPC server for authentication.
func NewAuthServer(authService services.IAuthService) *AuthServer {
	return &AuthServer{authService: authService}
}

// Register handles user registration by validating input, hashing the
// password and issuing a token.
func (s *AuthServer) Register(_ context.Context, in *pb.RegisterRequest) (*pb.AuthResponse, error) {
	token, userID, err := s.authService.Register(in.GetUsername(), in.GetPassword(), in.GetDisplayName())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	return &pb.AuthResponse{
		Token:  string(token),
		UserId: userID,
	}, nil
}

// Login verifies credentials and returns a session token.
func (s *AuthServer) Login(_ context.Context, in *pb.LoginRequest) (*pb.AuthResponse, error) {
	token, userID, err := s.authService.Login(in.GetUsername(), in.GetPassword())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	return &pb.AuthResponse{
		Token:  string(token),
		UserId: userID,
	}, nil
}
