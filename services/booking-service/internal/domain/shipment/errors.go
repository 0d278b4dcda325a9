package shipment

import "errors"

var (
	ErrUnknownShipmentType  = errors.New("unknown shipment type")
	ErrUnknownPickupMode    = errors.New("unknown pickup mode")
	ErrPickupModeRequired   = errors.New("pickup mode must be selected first")
	ErrDateRequired         = errors.New("pickup date must be selected first")
	ErrDateOutOfRange       = errors.New("pickup date is not one of the offered dates")
	ErrUnknownTimeSlot      = errors.New("time slot is not offered for this pickup mode")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrPaymentMethodMissing = errors.New("payment method is required")
	ErrCardDetailsRequired  = errors.New("card number, expiry date and cvv are required for this payment method")
)
