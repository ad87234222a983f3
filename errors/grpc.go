package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError translates domain sentinels into gRPC status codes.
// Anything unrecognized is an internal failure: the caller gets a generic
// message, the real cause stays in the server logs.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUserInactive):
		return status.Error(codes.Unauthenticated, err.Error())

	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrMessageNotFound):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())

	case errors.Is(err, ErrUserAlreadyExists),
		errors.Is(err, ErrMemberAlreadyExists),
		errors.Is(err, ErrRoomFull):
		return status.Error(codes.AlreadyExists, err.Error())

	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidPassword),
		errors.Is(err, ErrInvalidStatus):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, ErrEditWindowExpired),
		errors.Is(err, ErrMessageDeleted):
		return status.Error(codes.FailedPrecondition, err.Error())

	default:
		return status.Error(codes.Internal, "internal error")
	}
}
