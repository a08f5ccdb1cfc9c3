package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/example/expert-platform/internal/platform/api"
	"github.com/example/expert-platform/internal/platform/httpserver"
)

// ErrNotAdmin is the only error the gate produces. Its message is fixed.
var ErrNotAdmin = errors.New("not an administrator")

const codeNotAdmin = "NOT_ADMIN"

// Gate admits a request only when the Principal injected upstream carries RoleAdmin.
// Every evaluation logs the uri, user id, role and time before deciding.
type Gate struct {
	log *zap.Logger
	now func() time.Time
}

type GateOption func(*Gate)

// WithClock overrides the time source used for the request time record.
func WithClock(now func() time.Time) GateOption {
	return func(g *Gate) { g.now = now }
}

func NewGate(log *zap.Logger, opts ...GateOption) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Gate{log: log, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Evaluate returns nil when the request may proceed and ErrNotAdmin otherwise.
// A missing principal, an empty user id and an unparsable role are all denied.
func (g *Gate) Evaluate(ctx context.Context, uri string) error {
	p, ok := PrincipalFromContext(ctx)
	role, roleErr := ParseRole(p.Role)

	g.log.Info("request uri", zap.String("uri", uri))
	g.log.Info("request user id", zap.String("user_id", p.UserID))
	if roleErr != nil {
		g.log.Info("request user role", zap.String("role", p.Role), zap.Bool("recognized", false))
	} else {
		g.log.Info("request user role", zap.Stringer("role", role))
	}
	g.log.Info("request time", zap.Time("time", g.now()))

	if !ok || p.UserID == "" || roleErr != nil || role != RoleAdmin {
		return ErrNotAdmin
	}
	return nil
}

// Middleware wraps next with Evaluate; denied requests get a 403 and next is never called.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := g.Evaluate(r.Context(), r.URL.RequestURI())
		switch {
		case err == nil:
			next.ServeHTTP(w, r)
		case errors.Is(err, ErrNotAdmin):
			api.Forbidden(w, codeNotAdmin, ErrNotAdmin.Error(), httpserver.RequestIDFromContext(r.Context()))
		default:
			api.Internal(w, httpserver.RequestIDFromContext(r.Context()))
		}
	})
}

// RequireAdmin is the gate with a no-op logger, for routers that do not care about the records.
func RequireAdmin(next http.Handler) http.Handler {
	return NewGate(nil).Middleware(next)
}
