package events

const (
	InvitationCreatedTopic = "timetrack.invitation.created"
	InvitationCreatedType  = "invitation.created"
)

// InvitationCreatedEvent is published through the outbox when an admin
// invites a candidate; the consumer turns it into the registration
// mail.
type InvitationCreatedEvent struct {
	InvitationID string `json:"invitation_id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Code         string `json:"code"`
}
