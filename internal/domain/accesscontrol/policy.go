package accesscontrol

import (
	"github.com/Zorochan404/adv-backend-sub001/internal/apperror"
)

var (
	ErrRoleNotAllowed = apperror.Forbidden("your role is not allowed to perform this action")
	ErrNotOwner       = apperror.Forbidden("you can only access your own bookings")
	ErrWrongParking   = apperror.Forbidden("this car is not in your assigned parking lot")
)

type Rules map[Capability]map[Role]Scope

// Policy decides whether an actor may exercise a capability on a resource.
type Policy struct {
	rules Rules
}

func NewPolicy(rules Rules) *Policy {
	return &Policy{rules: rules}
}

// DefaultRules is the booking lifecycle rule table.
//
// ReviewConfirmation grants parking in-charges ScopeAny while verify, pickup
// and return are parking scoped. Narrowing it is a product decision.
func DefaultRules() Rules {
	return Rules{
		CreateBooking:        {RoleUser: ScopeAny},
		ListOwnBookings:      {RoleUser: ScopeAny},
		PayAdvance:           {RoleUser: ScopeOwner},
		SubmitConfirmation:   {RoleUser: ScopeOwner},
		ResubmitConfirmation: {RoleUser: ScopeOwner},
		PayFinal:             {RoleUser: ScopeOwner},
		ResendOTP:            {RoleUser: ScopeOwner},
		Reschedule:           {RoleUser: ScopeOwner},
		ApplyTopup:           {RoleUser: ScopeOwner},
		PayLateFees:          {RoleUser: ScopeOwner},
		ViewStatus:           {RoleUser: ScopeOwner},

		ReviewConfirmation: {RoleParkingIncharge: ScopeAny},
		VerifyOTP:          {RoleParkingIncharge: ScopeParking},
		ConfirmPickup:      {RoleParkingIncharge: ScopeParking},
		ConfirmReturn:      {RoleParkingIncharge: ScopeParking},

		ViewLateFees:          {RoleUser: ScopeOwner, RoleParkingIncharge: ScopeParking, RoleAdmin: ScopeAny},
		ViewTopupHistory:      {RoleUser: ScopeOwner, RoleAdmin: ScopeAny},
		LookupByReference:     {RoleParkingIncharge: ScopeParking, RoleAdmin: ScopeAny},
		UploadConditionImages: {RoleUser: ScopeOwner, RoleParkingIncharge: ScopeParking},
	}
}

// Authorize returns nil when allowed and a Forbidden error otherwise.
func (p *Policy) Authorize(actor Actor, capability Capability, res Resource) error {
	grants, ok := p.rules[capability]
	if !ok {
		return ErrRoleNotAllowed
	}
	scope, ok := grants[actor.Role]
	if !ok {
		return ErrRoleNotAllowed
	}

	switch scope {
	case ScopeAny:
		return nil
	case ScopeOwner:
		if res.OwnerID != actor.ID {
			return ErrNotOwner
		}
		return nil
	case ScopeParking:
		if actor.ParkingID == nil || *actor.ParkingID != res.ParkingID {
			return ErrWrongParking
		}
		return nil
	default:
		return ErrRoleNotAllowed
	}
}

// Allows checks only the role part of a grant. The service calls it before
// reading the booking so a role without any grant never learns whether the
// booking exists.
func (p *Policy) Allows(role Role, capability Capability) bool {
	_, ok := p.rules[capability][role]
	return ok
}
