package accesscontrol

type Role string

const (
	RoleUser            Role = "user"
	RoleVendor          Role = "vendor"
	RoleAdmin           Role = "admin"
	RoleParkingIncharge Role = "parkingincharge"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleVendor, RoleAdmin, RoleParkingIncharge:
		return true
	}
	return false
}

// Actor is the authenticated caller as read from a verified token.
type Actor struct {
	ID        int64
	Role      Role
	ParkingID *int64
}

// Resource describes what an operation touches: the booking's renter and the
// parking lot the car lives in.
type Resource struct {
	OwnerID   int64
	ParkingID int64
}

type Capability string

const (
	CreateBooking         Capability = "booking:create"
	PayAdvance            Capability = "booking:pay_advance"
	SubmitConfirmation    Capability = "booking:submit_confirmation"
	ResubmitConfirmation  Capability = "booking:resubmit_confirmation"
	ReviewConfirmation    Capability = "booking:review_confirmation"
	PayFinal              Capability = "booking:pay_final"
	VerifyOTP             Capability = "booking:verify_otp"
	ResendOTP             Capability = "booking:resend_otp"
	Reschedule            Capability = "booking:reschedule"
	ConfirmPickup         Capability = "booking:confirm_pickup"
	ApplyTopup            Capability = "booking:apply_topup"
	PayLateFees           Capability = "booking:pay_late_fees"
	ConfirmReturn         Capability = "booking:confirm_return"
	ViewStatus            Capability = "booking:view_status"
	ViewLateFees          Capability = "booking:view_late_fees"
	ViewTopupHistory      Capability = "booking:view_topups"
	LookupByReference     Capability = "booking:lookup_reference"
	UploadConditionImages Capability = "booking:upload_images"
	ListOwnBookings       Capability = "booking:list_own"
)

// Scope narrows a role's grant to a subset of resources.
type Scope int

const (
	// ScopeAny grants the capability on every resource.
	ScopeAny Scope = iota + 1
	// ScopeOwner requires the actor to be the booking's renter.
	ScopeOwner
	// ScopeParking requires the actor's assigned lot to hold the car.
	ScopeParking
)
