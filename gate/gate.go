// Package gate is a small Gate/Policy authorization layer. The Gate is a
// registry of policies keyed by resource type; each Policy decides whether a
// subject may perform an action on that resource. The package knows nothing
// about domain models and is generic over the subject type:
//
//   - Gate[string] for role-name based auth
//   - Gate[uint] for user-id based auth
package gate

import (
	"context"
	"errors"
)

// Sentinel errors returned by Gate.Authorize.
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNoPolicyDefined = errors.New("no policy defined for resource")
)

// Policy defines authorization rules for a resource type.
// For list/create, resource may be nil (context-only check).
type Policy[U any] interface {
	Can(ctx context.Context, subject U, action Action, resource any) bool
}

// Gate is the central authorization checkpoint.
// U must be comparable so a zero-value subject can be rejected outright.
type Gate[U comparable] struct {
	policies map[string]Policy[U]
}

// NewGate creates an empty Gate ready to register policies.
func NewGate[U comparable]() *Gate[U] {
	return &Gate[U]{policies: make(map[string]Policy[U])}
}

// Register adds a policy for a resource type (e.g. "article").
// Overwrites any existing policy for that type.
func (g *Gate[U]) Register(resourceType string, p Policy[U]) {
	g.policies[resourceType] = p
}

// Authorize checks authorization and returns an error if denied.
// A zero-value subject or a denying policy yields ErrUnauthorized;
// a resource type without a policy yields ErrNoPolicyDefined.
func (g *Gate[U]) Authorize(ctx context.Context, subject U, action Action, resourceType string, resource any) error {
	var zero U
	if subject == zero {
		return ErrUnauthorized
	}
	p, ok := g.policies[resourceType]
	if !ok {
		return ErrNoPolicyDefined
	}
	if !p.Can(ctx, subject, action, resource) {
		return ErrUnauthorized
	}
	return nil
}

// Can is a convenience wrapper returning bool instead of error.
func (g *Gate[U]) Can(ctx context.Context, subject U, action Action, resourceType string, resource any) bool {
	return g.Authorize(ctx, subject, action, resourceType, resource) == nil
}

// PermissionPolicy authorizes by looking up the subject's profile and
// checking the "resource:action" permission. It ignores the concrete
// resource value; ownership rules stay on the server side of the API.
type PermissionPolicy[U comparable] struct {
	resourceType string
	resolver     ProfileResolver[U]
}

// NewPermissionPolicy builds a profile-backed policy for one resource type.
func NewPermissionPolicy[U comparable](resourceType string, resolver ProfileResolver[U]) *PermissionPolicy[U] {
	return &PermissionPolicy[U]{resourceType: resourceType, resolver: resolver}
}

func (p *PermissionPolicy[U]) Can(ctx context.Context, subject U, action Action, _ any) bool {
	profile, err := p.resolver.Resolve(ctx, subject)
	if err != nil || profile == nil {
		return false
	}
	return profile.HasPermission(NewPermission(p.resourceType, action))
}
