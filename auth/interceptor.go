package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"chat-hub/domain"
	"chat-hub/errors"
	pb "chat-hub/proto/account"
)

// Map of methods that do not require JWT authentication.
// Using generated constants from the proto package for type-safety.
var publicMethods = map[string]struct{}{
	pb.AuthService_Login_FullMethodName:    {},
	pb.AuthService_Register_FullMethodName: {},
}

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RolesKey  contextKey = "roles"
)

// UserIDFromContext extracts the authenticated user id injected by the
// interceptors. The empty string means the call was not authenticated.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// UserResolver is the slice of the user store the gate needs: enough to
// confirm a token's subject still exists and is active.
type UserResolver interface {
	GetByID(userID string) (domain.User, error)
}

// Interceptor guards every non-public method. A valid signature is not
// sufficient: the subject is resolved on each call so a deactivated
// account loses access immediately, not when its token expires.
type Interceptor struct {
	users UserResolver
}

func NewInterceptor(users UserResolver) *Interceptor {
	return &Interceptor{users: users}
}

// Unary handles JWT validation for incoming unary gRPC calls.
func (i *Interceptor) Unary(ctx context.Context, req any,
	info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if isPublicMethod(info.FullMethod) {
		return handler(ctx, req)
	}

	newCtx, err := i.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return handler(newCtx, req)
}

// Stream handles JWT validation for streaming calls such as the event
// feed. The enriched context is exposed to the handler through a wrapped
// ServerStream.
func (i *Interceptor) Stream(srv any, ss grpc.ServerStream,
	info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	newCtx, err := i.authenticate(ss.Context())
	if err != nil {
		return err
	}
	return handler(srv, &authenticatedStream{ServerStream: ss, ctx: newCtx})
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context {
	return s.ctx
}

// authenticate pulls the bearer token out of the metadata, validates it,
// resolves the subject against the store and injects the caller's
// identity into the context.
func (i *Interceptor) authenticate(ctx context.Context) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
	}

	// Expecting the standard "Bearer <token>" format
	tokenStr := strings.TrimPrefix(values[0], "Bearer ")

	claims, err := ValidateToken(tokenStr)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}

	user, err := i.users.GetByID(claims.UserID)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "unknown token subject")
	}
	if !user.Active {
		return nil, errors.MapToGRPCError(errors.ErrUserInactive)
	}

	newCtx := context.WithValue(ctx, UserIDKey, claims.UserID)
	newCtx = context.WithValue(newCtx, RolesKey, claims.Roles)
	return newCtx, nil
}

// isPublicMethod checks if the current gRPC method is allowed without a token.
func isPublicMethod(method string) bool {
	_, ok := publicMethods[method]
	return ok
}
