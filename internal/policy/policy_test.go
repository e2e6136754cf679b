package policy

import (
	"context"
	"testing"

	"github.com/tjtrack/tjtrack-web/auth"
	"github.com/tjtrack/tjtrack-web/gate"
	"github.com/tjtrack/tjtrack-web/internal/models"
	"github.com/tjtrack/tjtrack-web/internal/session"
)

func ctxWithRoles(roles ...string) context.Context {
	sess := &session.Session{
		ID:    "s-1",
		Token: "tok",
		User:  &models.ProfileResponse{Email: "u@shop.tld", Roles: roles},
	}
	return auth.WithSession(context.Background(), sess)
}

func TestAuthGateRoleMatrix(t *testing.T) {
	ag := NewAuthGate()
	cases := []struct {
		roles        []string
		action       gate.Action
		resourceType string
		want         bool
	}{
		{[]string{models.RoleAdmin}, gate.ActionCreate, "article", true},
		{[]string{models.RoleAdmin}, gate.ActionApprove, "user", true},
		{[]string{models.RoleManager}, gate.ActionDelete, "article", true},
		{[]string{models.RoleManager}, gate.ActionApprove, "user", false},
		{[]string{models.RoleCommercant}, gate.ActionCreate, "article", true},
		{[]string{models.RoleCommercant}, gate.ActionCreate, "categorie", false},
		{[]string{models.RoleClient}, gate.ActionList, "article", false},
		{[]string{models.RoleLivreur}, gate.ActionUpdate, "commande_client", true},
		{[]string{models.RoleLivreur}, gate.ActionDelete, "commande_client", false},
		// any permitting role is enough
		{[]string{models.RoleClient, models.RoleCommercant}, gate.ActionCreate, "article", true},
		{[]string{"ROLE_INCONNU"}, gate.ActionView, "article", false},
	}
	for _, tc := range cases {
		got := ag.Can(ctxWithRoles(tc.roles...), tc.action, tc.resourceType)
		if got != tc.want {
			t.Errorf("roles %v: can %s %s = %v, want %v",
				tc.roles, tc.action, tc.resourceType, got, tc.want)
		}
	}
}

func TestAuthGateAnonymous(t *testing.T) {
	ag := NewAuthGate()
	if ag.Can(context.Background(), gate.ActionView, "article") {
		t.Error("anonymous request must not pass the gate")
	}
	if ag.IsAdmin(context.Background()) {
		t.Error("anonymous request must not be admin")
	}
}

func TestIsAdmin(t *testing.T) {
	ag := NewAuthGate()
	if !ag.IsAdmin(ctxWithRoles(models.RoleAdmin)) {
		t.Error("ADMIN role should be admin")
	}
	if ag.IsAdmin(ctxWithRoles(models.RoleManager, models.RoleCommercant)) {
		t.Error("back-office roles without ADMIN are not admin")
	}
}
