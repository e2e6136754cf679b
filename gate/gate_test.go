package gate_test

import (
	"context"
	"testing"

	"github.com/tjtrack/tjtrack-web/gate"
)

// stubPolicy is a fixed-answer policy for role-name subjects.
type stubPolicy struct {
	allowAll bool
}

func (p *stubPolicy) Can(_ context.Context, _ string, _ gate.Action, _ any) bool {
	return p.allowAll
}

func TestGate_Authorize_NoSubject(t *testing.T) {
	g := gate.NewGate[string]()
	g.Register("article", &stubPolicy{allowAll: true})

	err := g.Authorize(context.Background(), "", gate.ActionView, "article", nil)
	if err != gate.ErrUnauthorized {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGate_Authorize_NoPolicy(t *testing.T) {
	g := gate.NewGate[string]()

	err := g.Authorize(context.Background(), "ADMIN", gate.ActionView, "unknown", nil)
	if err != gate.ErrNoPolicyDefined {
		t.Errorf("expected ErrNoPolicyDefined, got %v", err)
	}
}

func TestGate_Authorize_AllowedAndDenied(t *testing.T) {
	g := gate.NewGate[string]()
	g.Register("article", &stubPolicy{allowAll: true})
	g.Register("vente", &stubPolicy{allowAll: false})

	if err := g.Authorize(context.Background(), "ADMIN", gate.ActionCreate, "article", nil); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if err := g.Authorize(context.Background(), "ADMIN", gate.ActionCreate, "vente", nil); err != gate.ErrUnauthorized {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGate_Can(t *testing.T) {
	g := gate.NewGate[string]()
	g.Register("article", &stubPolicy{allowAll: true})

	if !g.Can(context.Background(), "MANAGER", gate.ActionList, "article", nil) {
		t.Error("expected Can to return true")
	}
	if g.Can(context.Background(), "MANAGER", gate.ActionList, "unregistered", nil) {
		t.Error("expected Can to return false without a policy")
	}
}

func TestPermissionPolicy(t *testing.T) {
	resolver := gate.NewStaticResolver[string]()
	resolver.Set("ADMIN", gate.NewRoleProfile("ADMIN", gate.PermissionAll))
	resolver.Set("MANAGER", gate.NewRoleProfile("MANAGER",
		gate.Permission("article:*"),
		gate.Permission("vente:view"),
	))
	resolver.Set("CLIENT", gate.NewRoleProfile("CLIENT"))

	g := gate.NewGate[string]()
	g.Register("article", gate.NewPermissionPolicy("article", resolver))
	g.Register("vente", gate.NewPermissionPolicy("vente", resolver))

	ctx := context.Background()

	if !g.Can(ctx, "ADMIN", gate.ActionDelete, "vente", nil) {
		t.Error("superadmin wildcard should allow everything")
	}
	if !g.Can(ctx, "MANAGER", gate.ActionDelete, "article", nil) {
		t.Error("resource wildcard should cover delete")
	}
	if !g.Can(ctx, "MANAGER", gate.ActionView, "vente", nil) {
		t.Error("exact permission should allow view")
	}
	if g.Can(ctx, "MANAGER", gate.ActionDelete, "vente", nil) {
		t.Error("manager must not delete ventes")
	}
	if g.Can(ctx, "CLIENT", gate.ActionList, "article", nil) {
		t.Error("client has no back-office permissions")
	}
	if g.Can(ctx, "UNKNOWN_ROLE", gate.ActionList, "article", nil) {
		t.Error("unresolved subject must be denied")
	}
}
