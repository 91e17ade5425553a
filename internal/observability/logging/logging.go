package logging

import (
	"context"
	"regexp"

	"github.com/google/uuid"
)

// ServiceInfo identifies the running service in every log record.
type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Environment string

const (
	EnvDev     Environment = "dev"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

// Module names the component that emitted a log record.
type Module string

type contextKey int

const (
	requestIDKey contextKey = iota
	moduleKey
)

var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{8,128}$`)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ValidateAndExtractRequestID returns id when it is a plausible request id
// and a fresh UUIDv7 otherwise.
func ValidateAndExtractRequestID(id string) string {
	if id != "" && requestIDPattern.MatchString(id) {
		return id
	}
	return NewRequestID()
}

func NewRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	if ctx == nil {
		return ""
	}
	m, _ := ctx.Value(moduleKey).(Module)
	return m
}
