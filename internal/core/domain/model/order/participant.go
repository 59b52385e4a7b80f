package order

// Participant is an identity's relationship to a specific order: the buyer who
// placed it, the seller whose listing it references, or no relationship at all.
//
// Authorization in the core is decided by this relationship, derived once per
// operation, never by an identity's global role.
type Participant int

const (
	// ParticipantNone means the identity is neither buyer nor seller of the order.
	ParticipantNone Participant = iota

	// ParticipantBuyer is the identity that placed the order.
	ParticipantBuyer

	// ParticipantSeller is the identity owning the referenced listing.
	ParticipantSeller
)

// String returns the human-readable name of the participant.
func (p Participant) String() string {
	switch p {
	case ParticipantBuyer:
		return "Buyer"
	case ParticipantSeller:
		return "Seller"
	default:
		return "None"
	}
}

// IsParticipant reports whether the identity is a party to the order.
func (p Participant) IsParticipant() bool {
	return p == ParticipantBuyer || p == ParticipantSeller
}
