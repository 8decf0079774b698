// Package error defines domain-specific errors for the Motorista Real backend.
package error

import "errors"

// Vehicle domain errors.
var (
	// ErrVehicleNotFound is returned when a vehicle is not found in the system.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrVehicleNotOwnedByUser is returned when the vehicle does not belong to the user.
	ErrVehicleNotOwnedByUser = errors.New("vehicle does not belong to user")

	// ErrInvalidPlate is returned when the license plate is not 7 alphanumeric characters.
	ErrInvalidPlate = errors.New("invalid license plate")

	// ErrDuplicatePlate is returned when the user already registered a vehicle with the plate.
	ErrDuplicatePlate = errors.New("plate already registered for this user")

	// ErrInvalidOwnershipProfile is returned when the ownership variant is inconsistent.
	ErrInvalidOwnershipProfile = errors.New("invalid ownership profile")

	// ErrInvalidInstallments is returned when installment counts violate 0 <= paid <= total.
	ErrInvalidInstallments = errors.New("invalid installment counts")

	// ErrInvalidDueDay is returned when a due day is outside its valid range.
	ErrInvalidDueDay = errors.New("invalid due day")

	// ErrVehicleNotFinanced is returned when amortization is requested for a non-financed vehicle.
	ErrVehicleNotFinanced = errors.New("vehicle is not financed")

	// ErrAmortizationExceedsDebt is returned when amortizing more installments than remain.
	ErrAmortizationExceedsDebt = errors.New("amortization exceeds remaining installments")

	// ErrInvalidInsurance is returned when the insurance attachment is inconsistent.
	ErrInvalidInsurance = errors.New("invalid insurance data")

	// ErrNoActiveVehicle is returned when the user has no active vehicle.
	ErrNoActiveVehicle = errors.New("no active vehicle")
)

// VehicleErrorCode defines error codes for vehicle errors.
// Format: VEH-XXYYYY where XX is category and YYYY is specific error.
type VehicleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPlate            VehicleErrorCode = "VEH-010001"
	ErrCodeDuplicatePlate          VehicleErrorCode = "VEH-010002"
	ErrCodeInvalidOwnershipProfile VehicleErrorCode = "VEH-010003"
	ErrCodeInvalidInstallments     VehicleErrorCode = "VEH-010004"
	ErrCodeInvalidDueDay           VehicleErrorCode = "VEH-010005"
	ErrCodeInvalidInsurance        VehicleErrorCode = "VEH-010006"
	ErrCodeMissingVehicleFields    VehicleErrorCode = "VEH-010007"

	// Access errors (02XXXX)
	ErrCodeVehicleNotFound VehicleErrorCode = "VEH-020001"
	ErrCodeVehicleNotOwned VehicleErrorCode = "VEH-020002"
	ErrCodeNoActiveVehicle VehicleErrorCode = "VEH-020003"

	// Lifecycle errors (03XXXX)
	ErrCodeVehicleNotFinanced      VehicleErrorCode = "VEH-030001"
	ErrCodeAmortizationExceedsDebt VehicleErrorCode = "VEH-030002"
)

// VehicleError represents a vehicle error with code and message.
type VehicleError struct {
	Code    VehicleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *VehicleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *VehicleError) Unwrap() error {
	return e.Err
}

// NewVehicleError creates a new VehicleError with the given code and message.
func NewVehicleError(code VehicleErrorCode, message string, err error) *VehicleError {
	return &VehicleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
