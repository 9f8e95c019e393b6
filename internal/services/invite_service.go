package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/repository"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

var (
	ErrUnknownRecipient    = errors.New("no user with this email")
	ErrRecipientIsMember   = errors.New("user is already a member of this team")
	ErrAlreadyInvited      = errors.New("user is already invited to this team")
	ErrInvalidTransition   = errors.New("invite is already in a terminal status")
	ErrNotInviteRecipient  = errors.New("this invite does not belong to you")
	ErrUnknownInviteStatus = errors.New("status must be Accepted, Declined or Cancelled")
)

// InviteService governs the invite lifecycle and its membership side
// effects.
type InviteService struct {
	inviteRepo repository.InviteRepository
	userRepo   repository.UserRepository
}

// NewInviteService creates a new InviteService.
func NewInviteService(inviteRepo repository.InviteRepository, userRepo repository.UserRepository) *InviteService {
	return &InviteService{
		inviteRepo: inviteRepo,
		userRepo:   userRepo,
	}
}

// ListInvites returns the outstanding invites of a team.
func (s *InviteService) ListInvites(teamID uint64, params utils.PaginationParams) ([]models.Invite, int64, error) {
	invites, total, err := s.inviteRepo.ListByTeam(teamID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invites: %w", err)
	}
	return invites, total, nil
}

// CreateInvite invites an email into the team. Preconditions, checked
// in order: the email belongs to a registered non-deleted user, the
// recipient is not already a member, and no outstanding invite exists
// for the same (email, team) pair.
func (s *InviteService) CreateInvite(team *models.Team, createdBy *models.User, email string) (*models.Invite, error) {
	email = strings.TrimSpace(email)

	recipient, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownRecipient
		}
		return nil, fmt.Errorf("failed to find recipient: %w", err)
	}

	if team.IsMember(recipient.ID) {
		return nil, ErrRecipientIsMember
	}

	if _, err := s.inviteRepo.FindOutstanding(email, team.ID); err == nil {
		return nil, ErrAlreadyInvited
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check outstanding invites: %w", err)
	}

	invite := &models.Invite{
		Email:       email,
		TeamID:      team.ID,
		CreatedByID: createdBy.ID,
		Status:      models.InviteStatusPending,
	}
	if err := s.inviteRepo.Create(invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}
	return invite, nil
}

// Transition applies the requested status change on behalf of actor.
// Accepted and Declined are reserved for the invited user; Cancelled
// for team members. Acceptance joins the recipient to the team
// atomically.
func (s *InviteService) Transition(invite *models.Invite, team *models.Team, actor *models.User, status models.InviteStatus) error {
	switch status {
	case models.InviteStatusAccepted, models.InviteStatusDeclined:
		if actor.Email != invite.Email {
			return ErrNotInviteRecipient
		}
	case models.InviteStatusCancelled:
		// The transition route skips the membership guard so recipients
		// can accept, so cancellation re-checks it here.
		if !team.IsMember(actor.ID) {
			return ErrNotTeamMember
		}
	default:
		return ErrUnknownInviteStatus
	}

	switch status {
	case models.InviteStatusAccepted:
		if err := invite.Accept(); err != nil {
			return ErrInvalidTransition
		}
		// The recipient may have been added through the members route
		// while the invite was still pending; then only the invite
		// itself needs persisting.
		if team.IsMember(actor.ID) {
			if err := s.inviteRepo.Update(invite); err != nil {
				return fmt.Errorf("failed to accept invite: %w", err)
			}
			return nil
		}
		member := &models.TeamMember{
			TeamID:   team.ID,
			UserID:   actor.ID,
			JoinedAt: time.Now(),
		}
		if err := s.inviteRepo.Accept(invite, member); err != nil {
			return fmt.Errorf("failed to accept invite: %w", err)
		}
		team.Members = append(team.Members, *member)
		return nil
	case models.InviteStatusDeclined:
		if err := invite.Decline(); err != nil {
			return ErrInvalidTransition
		}
	case models.InviteStatusCancelled:
		if err := invite.Cancel(); err != nil {
			return ErrInvalidTransition
		}
	}

	if err := s.inviteRepo.Update(invite); err != nil {
		return fmt.Errorf("failed to update invite: %w", err)
	}
	return nil
}

// Cancel retires the invite. Deleting an invite and cancelling it are
// the same transition.
func (s *InviteService) Cancel(invite *models.Invite) error {
	if err := invite.Cancel(); err != nil {
		return ErrInvalidTransition
	}
	if err := s.inviteRepo.Update(invite); err != nil {
		return fmt.Errorf("failed to cancel invite: %w", err)
	}
	return nil
}
