package administrator

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	administratorerrors "timetrack/internal/administrator/errors"
	"timetrack/internal/department"
	"timetrack/internal/domain"
	"timetrack/internal/events"
	"timetrack/internal/messaging/kafka"
	"timetrack/internal/shared/contextutil"
	"timetrack/internal/shared/pgerr"
	"timetrack/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// codeRetryLimit bounds the collision retry loop on the access code
// unique index.
const codeRetryLimit = 5

//go:generate mockgen -source=administrator_service.go -destination=mock/administrator_service_mock.go -package=mock
type Service interface {
	ListUsers(ctx context.Context) ([]user.UserResponse, error)
	ChangeUser(ctx context.Context, id string, req ChangeUserRequest) (user.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
	Invite(ctx context.Context, req InviteRequest) (InvitationResponse, error)
	ListInvitations(ctx context.Context) ([]InvitationResponse, error)
	RevokeInvitation(ctx context.Context, id string) error
}

type service struct {
	db          *sql.DB
	invitations Repository
	users       user.Repository
	departments department.Repository
	outbox      kafka.OutboxRepository
}

func NewService(
	db *sql.DB,
	invitations Repository,
	users user.Repository,
	departments department.Repository,
	outbox kafka.OutboxRepository,
) Service {
	return &service{
		db:          db,
		invitations: invitations,
		users:       users,
		departments: departments,
		outbox:      outbox,
	}
}

// ListUsers returns every directed account; administrator accounts are
// not managed through this surface.
func (s *service) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.users.FindAllExcludingRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	res := make([]user.UserResponse, len(users))
	for i, u := range users {
		res[i] = user.MapToResponse(u)
	}
	return res, nil
}

func (s *service) ChangeUser(ctx context.Context, id string, req ChangeUserRequest) (user.UserResponse, error) {
	deptID, err := s.requireDepartment(ctx, req.DepartmentID)
	if err != nil {
		return user.UserResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return user.UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.users.WithTx(tx)

	u, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.UserResponse{}, administratorerrors.ErrUserNotFound
		}
		return user.UserResponse{}, err
	}

	u.DepartmentID = &deptID
	u.Post = req.Post
	u.IsActive = *req.IsActive

	if err := qtx.Update(ctx, u); err != nil {
		return user.UserResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return user.UserResponse{}, err
	}

	return user.MapToResponse(*u), nil
}

// DeleteUser removes the account; recorded work time goes with it
// through the cascading FK.
func (s *service) DeleteUser(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.users.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return administratorerrors.ErrUserNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

// Invite creates an invitation and stages the notification event in the
// same transaction. The access code is drawn fresh on every unique
// index collision.
func (s *service) Invite(ctx context.Context, req InviteRequest) (InvitationResponse, error) {
	deptID, err := s.requireDepartment(ctx, req.DepartmentID)
	if err != nil {
		return InvitationResponse{}, err
	}

	if err := s.requireFreeEmail(ctx, req.Email); err != nil {
		return InvitationResponse{}, err
	}

	for attempt := 0; attempt < codeRetryLimit; attempt++ {
		code, err := NewAccessCode()
		if err != nil {
			return InvitationResponse{}, err
		}

		inv := &Invitation{
			ID:           uuid.New(),
			Email:        req.Email,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Code:         code,
			Role:         domain.Role(req.Role),
			Post:         req.Post,
			DepartmentID: deptID,
		}

		resp, err := s.createWithEvent(ctx, inv)
		if err != nil {
			if pgerr.IsUniqueViolation(err, "uniq_invitations_code") {
				continue
			}
			if pgerr.IsUniqueViolation(err, "uniq_invitations_email") {
				return InvitationResponse{}, administratorerrors.ErrEmailTaken
			}
			return InvitationResponse{}, err
		}
		return resp, nil
	}

	return InvitationResponse{}, administratorerrors.ErrCodeExhausted
}

func (s *service) createWithEvent(ctx context.Context, inv *Invitation) (InvitationResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return InvitationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.invitations.WithTx(tx)

	if err := qtx.Create(ctx, inv); err != nil {
		return InvitationResponse{}, err
	}

	payload, err := json.Marshal(events.InvitationCreatedEvent{
		InvitationID: inv.ID.String(),
		Email:        inv.Email,
		FirstName:    inv.FirstName,
		LastName:     inv.LastName,
		Code:         inv.Code,
	})
	if err != nil {
		return InvitationResponse{}, err
	}

	outboxTx := s.outbox.WithTx(tx)
	if err := outboxTx.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "invitation",
		AggregateID:   inv.ID.String(),
		EventType:     events.InvitationCreatedType,
		Topic:         events.InvitationCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return InvitationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return InvitationResponse{}, err
	}

	return mapInvitationToResponse(*inv), nil
}

func (s *service) ListInvitations(ctx context.Context) ([]InvitationResponse, error) {
	invitations, err := s.invitations.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]InvitationResponse, len(invitations))
	for i, inv := range invitations {
		res[i] = mapInvitationToResponse(inv)
	}
	return res, nil
}

func (s *service) RevokeInvitation(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.invitations.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) requireDepartment(ctx context.Context, id string) (uuid.UUID, error) {
	deptID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, administratorerrors.ErrDepartmentNotFound
	}
	if _, err := s.departments.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, administratorerrors.ErrDepartmentNotFound
		}
		return uuid.Nil, err
	}
	return deptID, nil
}

// requireFreeEmail rejects addresses that already belong to an account
// or a pending invitation.
func (s *service) requireFreeEmail(ctx context.Context, email string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return administratorerrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	taken, err := s.invitations.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return administratorerrors.ErrEmailTaken
	}
	return nil
}
