package bookings

import "fmt"

type Step string

const (
	StepAdvancePayment   Step = "advance_payment"
	StepUserConfirmation Step = "user_confirmation"
	StepPICApproval      Step = "pic_approval"
	StepFinalPayment     Step = "final_payment"
	StepOTPVerification  Step = "otp_verification"
	StepCarPickup        Step = "car_pickup"
	StepCarReturn        Step = "car_return"
	StepCompleted        Step = "completed"
	StepCancelled        Step = "cancelled"
)

type NextStep struct {
	Step   Step   `json:"step"`
	Action string `json:"action"`
}

// Progress summarizes where a booking stands for client progress trackers.
type Progress struct {
	AdvancePayment   bool `json:"advance_payment"`
	OTPVerification  bool `json:"otp_verification"`
	UserConfirmation bool `json:"user_confirmation"`
	PICApproval      bool `json:"pic_approval"`
	FinalPayment     bool `json:"final_payment"`
	CarPickup        bool `json:"car_pickup"`

	NextSteps      []NextStep `json:"next_steps"`
	CurrentStep    Step       `json:"current_step"`
	IsCompleted    bool       `json:"is_completed"`
	CanProceed     bool       `json:"can_proceed"`
	StatusMessages []string   `json:"status_messages"`
}

// CalculateProgress derives the summary from the booking alone.
// CanProceed is false when the booking is closed or waiting on the parking
// in-charge.
func CalculateProgress(b *Booking) Progress {
	p := Progress{
		AdvancePayment:   b.AdvancePaymentStatus == PaymentPaid,
		OTPVerification:  b.OTPVerified,
		UserConfirmation: b.UserConfirmed,
		PICApproval:      b.ConfirmationStatus == ConfirmationApproved,
		FinalPayment:     b.FinalPaymentStatus == PaymentPaid,
		CarPickup:        b.ActualPickupDate != nil,
		NextSteps:        []NextStep{},
		StatusMessages:   statusMessages(b),
	}

	switch b.Status {
	case StatusCancelled:
		p.CurrentStep = StepCancelled
		return p
	case StatusCompleted:
		p.CurrentStep = StepCompleted
		p.IsCompleted = true
		return p
	}

	p.NextSteps = pendingSteps(b)
	if len(p.NextSteps) == 0 {
		p.CurrentStep = StepCompleted
		return p
	}

	p.CurrentStep = p.NextSteps[0].Step
	p.CanProceed = p.CurrentStep != StepPICApproval
	return p
}

func pendingSteps(b *Booking) []NextStep {
	steps := []NextStep{}

	if b.AdvancePaymentStatus != PaymentPaid {
		steps = append(steps, NextStep{StepAdvancePayment, fmt.Sprintf("Pay the advance amount of %.2f", b.AdvanceAmount)})
	}

	switch b.ConfirmationStatus {
	case ConfirmationPending:
		steps = append(steps,
			NextStep{StepUserConfirmation, "Submit car condition images and tool inventory"},
			NextStep{StepPICApproval, "Wait for the parking in-charge to approve the car condition"},
		)
	case ConfirmationRejected:
		steps = append(steps,
			NextStep{StepUserConfirmation, "Resubmit car condition details after the parking in-charge rejected them"},
			NextStep{StepPICApproval, "Wait for the parking in-charge to approve the car condition"},
		)
	case ConfirmationPendingApproval:
		steps = append(steps, NextStep{StepPICApproval, "Wait for the parking in-charge to approve the car condition"})
	}

	if b.FinalPaymentStatus != PaymentPaid {
		steps = append(steps, NextStep{StepFinalPayment, fmt.Sprintf("Pay the remaining amount of %.2f", b.RemainingAmount)})
	}
	if !b.OTPVerified {
		steps = append(steps, NextStep{StepOTPVerification, "Show your OTP to the parking in-charge at pickup"})
	}
	if b.ActualPickupDate == nil {
		steps = append(steps, NextStep{StepCarPickup, "Collect the car from the pickup parking lot"})
	} else if b.ActualDropoffDate == nil {
		end := b.EffectiveEnd()
		steps = append(steps, NextStep{StepCarReturn, "Return the car by " + end.Format("2006-01-02 15:04 MST")})
	}
	return steps
}

func statusMessages(b *Booking) []string {
	msgs := make([]string, 0, 6)

	if b.AdvancePaymentStatus == PaymentPaid {
		msgs = append(msgs, fmt.Sprintf("Advance payment of %.2f received", b.AdvanceAmount))
	} else {
		msgs = append(msgs, fmt.Sprintf("Advance payment of %.2f pending", b.AdvanceAmount))
	}

	if b.UserConfirmed {
		msgs = append(msgs, "Car condition details submitted")
	} else {
		msgs = append(msgs, "Car condition details not submitted yet")
	}

	switch b.ConfirmationStatus {
	case ConfirmationApproved:
		msgs = append(msgs, "Car condition approved by the parking in-charge")
	case ConfirmationRejected:
		msgs = append(msgs, "Car condition rejected by the parking in-charge")
	case ConfirmationPendingApproval:
		msgs = append(msgs, "Awaiting parking in-charge approval")
	default:
		msgs = append(msgs, "Parking in-charge approval not requested yet")
	}

	if b.FinalPaymentStatus == PaymentPaid {
		msgs = append(msgs, fmt.Sprintf("Final payment of %.2f received", b.RemainingAmount))
	} else {
		msgs = append(msgs, fmt.Sprintf("Final payment of %.2f pending", b.RemainingAmount))
	}

	switch {
	case b.OTPVerified:
		msgs = append(msgs, "OTP verified at pickup")
	case b.OTPCode != nil:
		msgs = append(msgs, "OTP issued, verify it with the parking in-charge at pickup")
	default:
		msgs = append(msgs, "OTP will be issued after the advance payment")
	}

	switch {
	case b.ActualDropoffDate != nil:
		msgs = append(msgs, "Car returned")
	case b.ActualPickupDate != nil:
		msgs = append(msgs, "Car picked up")
	default:
		msgs = append(msgs, "Car not picked up yet")
	}

	return msgs
}
