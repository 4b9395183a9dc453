// internal/service/invite.go
package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bitloft/orgkit/internal/domain"
	"github.com/bitloft/orgkit/internal/email"
	"github.com/bitloft/orgkit/internal/email/mailer"
	"github.com/bitloft/orgkit/internal/model"
	"github.com/bitloft/orgkit/internal/repository"
)

const (
	inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	inviteCodeLength   = 8

	// Largest multiple of len(inviteCodeAlphabet) below 256. Bytes at or
	// above it are rejected so every alphabet character is drawn uniformly.
	inviteCodeByteLimit = 256 - 256%len(inviteCodeAlphabet)
)

// NewInviteCode generates an 8-character uppercase alphanumeric invite code.
// Collisions are not checked; the keyspace makes them astronomically
// unlikely for the volumes this service sees.
func NewInviteCode() (string, error) {
	return inviteCodeFrom(rand.Reader)
}

func inviteCodeFrom(r io.Reader) (string, error) {
	out := make([]byte, 0, inviteCodeLength)
	buf := make([]byte, 1)
	for len(out) < inviteCodeLength {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("generating invite code: %w", err)
		}
		if int(buf[0]) >= inviteCodeByteLimit {
			continue
		}
		out = append(out, inviteCodeAlphabet[int(buf[0])%len(inviteCodeAlphabet)])
	}
	return string(out), nil
}

// InviteMailer delivers one organization invite email.
type InviteMailer interface {
	SendOrgInvitation(to string, data mailer.InvitationTemplateData) error
}

// EmailInviteMailer adapts the email service to InviteMailer.
type EmailInviteMailer struct {
	Service *email.Service
}

func (m *EmailInviteMailer) SendOrgInvitation(to string, data mailer.InvitationTemplateData) error {
	return mailer.SendOrgInvitation(m.Service, to, data)
}

// InviteOutcome is the per-invitee result of a dispatch batch.
type InviteOutcome struct {
	Email   string `json:"email"`
	Code    string `json:"code,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// InviteOrg identifies the organization an invite batch belongs to.
type InviteOrg struct {
	ID   string
	Code string
	Name string
}

// InviteService issues, looks up, accepts, and expires invites.
type InviteService struct {
	repo      repository.InviteRepositoryIface
	mailer    InviteMailer
	webOrigin string
	ttl       time.Duration
	now       func() time.Time
}

func NewInviteService(repo repository.InviteRepositoryIface, inviteMailer InviteMailer, webOrigin string, ttl time.Duration) *InviteService {
	if ttl == 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &InviteService{
		repo:      repo,
		mailer:    inviteMailer,
		webOrigin: strings.TrimRight(webOrigin, "/"),
		ttl:       ttl,
		now:       time.Now,
	}
}

// InviteAll dispatches invites for every personnel node carrying an email
// other than the acting user's own. Dispatches run concurrently and
// independently; a failed invitee is recorded in its outcome and never
// blocks or fails siblings. The only error returned is a precondition
// violation on the organization identifiers.
func (s *InviteService) InviteAll(ctx context.Context, org InviteOrg, actorID, actorEmail string, nodes []model.Node) ([]InviteOutcome, error) {
	if org.ID == "" {
		return nil, fmt.Errorf("%w: organization id is required", domain.ErrInvalidInput)
	}

	var targets []string
	seen := make(map[string]bool)
	for _, n := range nodes {
		if n.Kind != model.NodePersonnel || n.Personnel == nil {
			continue
		}
		addr := strings.TrimSpace(n.Personnel.Email)
		if addr == "" || strings.EqualFold(addr, actorEmail) {
			continue
		}
		key := strings.ToLower(addr)
		if seen[key] {
			continue
		}
		seen[key] = true
		targets = append(targets, addr)
	}

	outcomes := make([]InviteOutcome, len(targets))
	var wg sync.WaitGroup
	for i, addr := range targets {
		wg.Add(1)
		go func(i int, addr string) {
			defer wg.Done()
			outcomes[i] = s.dispatchOne(ctx, org, actorID, addr)
		}(i, addr)
	}
	wg.Wait()

	for _, outcome := range outcomes {
		if !outcome.Success {
			slog.WarnContext(ctx, "invite dispatch failed",
				"email", outcome.Email, "organizationID", org.ID, "error", outcome.Error)
		}
	}

	return outcomes, nil
}

// dispatchOne writes the invite record and then sends the email. Either
// failure is captured in the outcome.
func (s *InviteService) dispatchOne(ctx context.Context, org InviteOrg, actorID, addr string) InviteOutcome {
	outcome := InviteOutcome{Email: addr}

	code, err := NewInviteCode()
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	outcome.Code = code

	now := s.now().UTC()
	invite := &model.Invite{
		Code:             code,
		Email:            addr,
		OrganizationID:   org.ID,
		OrganizationCode: org.Code,
		OrganizationName: org.Name,
		CreatedBy:        actorID,
		CreatedAt:        now,
		ExpiresAt:        now.Add(s.ttl),
		Status:           model.InvitePending,
	}

	if err := s.repo.Create(ctx, invite); err != nil {
		outcome.Error = err.Error()
		return outcome
	}

	err = s.mailer.SendOrgInvitation(addr, mailer.InvitationTemplateData{
		OrganizationName: org.Name,
		OrganizationCode: org.Code,
		InviteCode:       code,
		SignupURL:        fmt.Sprintf("%s/signup-invite/%s", s.webOrigin, code),
		LoginURL:         fmt.Sprintf("%s/login", s.webOrigin),
	})
	if err != nil {
		outcome.Error = fmt.Errorf("%w: %v", domain.ErrEmailDelivery, err).Error()
		return outcome
	}

	outcome.Success = true
	return outcome
}

// Lookup returns the invite for a code. A pending invite past its expiry is
// reported as expired.
func (s *InviteService) Lookup(ctx context.Context, code string) (*model.Invite, error) {
	invite, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if invite.Status == model.InvitePending && invite.Expired(s.now()) {
		return invite, domain.ErrInviteExpired
	}
	return invite, nil
}

// Accept transitions a pending invite to accepted on behalf of a user.
func (s *InviteService) Accept(ctx context.Context, code, userID string) (*model.Invite, error) {
	invite, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	switch invite.Status {
	case model.InviteAccepted:
		return nil, domain.ErrInviteAlreadyAccepted
	case model.InviteExpired:
		return nil, domain.ErrInviteExpired
	}
	if invite.Expired(s.now()) {
		return nil, domain.ErrInviteExpired
	}

	invite.Status = model.InviteAccepted
	invite.AcceptedBy = userID
	if err := s.repo.Update(ctx, invite); err != nil {
		return nil, err
	}
	return invite, nil
}

// ExpireOverdue marks every pending invite past its expiry as expired and
// returns how many were flipped.
func (s *InviteService) ExpireOverdue(ctx context.Context) (int, error) {
	pending, err := s.repo.ListByStatus(ctx, model.InvitePending)
	if err != nil {
		return 0, err
	}

	now := s.now()
	expired := 0
	for _, invite := range pending {
		if !invite.Expired(now) {
			continue
		}
		invite.Status = model.InviteExpired
		if err := s.repo.Update(ctx, invite); err != nil {
			return expired, err
		}
		expired++
	}
	return expired, nil
}
