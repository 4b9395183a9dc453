// internal/authz/permify.go

// Package authz mirrors organization membership into a Permify instance so
// route guards can ask relationship questions without touching the document
// store. The service is optional: a nil *Service disables every sync and
// allows every check.
package authz

import (
	"context"
	"fmt"

	v1 "buf.build/gen/go/permifyco/permify/protocolbuffers/go/base/v1"
	permify_grpc "github.com/Permify/permify-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/bitloft/orgkit/internal/model"
)

const entityOrganization = "organization"

// Service wraps the Permify gRPC client.
type Service struct {
	client        *permify_grpc.Client
	tenant        string
	schemaVersion string
	depth         int32
}

type Option func(*Service)

// WithTenant sets the Permify tenant.
func WithTenant(tenant string) Option {
	return func(s *Service) {
		s.tenant = tenant
	}
}

// WithSchemaVersion pins the permission schema version.
func WithSchemaVersion(version string) Option {
	return func(s *Service) {
		s.schemaVersion = version
	}
}

func New(host string, options ...Option) (*Service, error) {
	client, err := permify_grpc.NewClient(
		permify_grpc.Config{
			Endpoint: host,
		},
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to permify: %w", err)
	}

	s := &Service{client: client, schemaVersion: "v1", depth: 20}
	for _, o := range options {
		o(s)
	}
	if s.tenant == "" {
		s.tenant = "t1"
	}
	return s, nil
}

// GrantOrganizationRole records a user's relation to an organization.
// Relation names follow the membership roles: creator, member, observer.
func (s *Service) GrantOrganizationRole(ctx context.Context, orgID, userID string, role model.OrganizationRole) error {
	if s == nil {
		return nil
	}

	relation := string(role)
	_, err := s.client.Data.WriteRelationships(ctx, &v1.RelationshipWriteRequest{
		TenantId: s.tenant,
		Metadata: &v1.RelationshipWriteRequestMetadata{
			SchemaVersion: s.schemaVersion,
		},
		Tuples: []*v1.Tuple{
			{
				Entity: &v1.Entity{
					Type: entityOrganization,
					Id:   orgID,
				},
				Relation: relation,
				Subject: &v1.Subject{
					Type: "user",
					Id:   userID,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("writing %s relation: %w", relation, err)
	}
	return nil
}

// RevokeOrganizationRole removes a user's relation to an organization.
func (s *Service) RevokeOrganizationRole(ctx context.Context, orgID, userID string, role model.OrganizationRole) error {
	if s == nil {
		return nil
	}

	_, err := s.client.Data.DeleteRelationships(ctx, &v1.RelationshipDeleteRequest{
		TenantId: s.tenant,
		Filter: &v1.TupleFilter{
			Entity: &v1.EntityFilter{
				Type: entityOrganization,
				Ids:  []string{orgID},
			},
			Relation: string(role),
			Subject: &v1.SubjectFilter{
				Type: "user",
				Ids:  []string{userID},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("deleting %s relation: %w", role, err)
	}
	return nil
}

// Can checks a permission (for example "edit_chart") for a user against an
// organization. A nil service allows everything.
func (s *Service) Can(ctx context.Context, orgID, userID, permission string) (bool, error) {
	if s == nil {
		return true, nil
	}

	cr, err := s.client.Permission.Check(ctx, &v1.PermissionCheckRequest{
		TenantId: s.tenant,
		Metadata: &v1.PermissionCheckRequestMetadata{
			SchemaVersion: s.schemaVersion,
			Depth:         s.depth,
		},
		Entity: &v1.Entity{
			Type: entityOrganization,
			Id:   orgID,
		},
		Permission: permission,
		Subject: &v1.Subject{
			Type: "user",
			Id:   userID,
		},
	})
	if err != nil {
		return false, fmt.Errorf("checking %s permission: %w", permission, err)
	}

	return cr.Can == v1.CheckResult_CHECK_RESULT_ALLOWED, nil
}
