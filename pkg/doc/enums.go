package doc

// ResponseCode is the ISO 15118-2 iso1responseCodeType enumeration, reduced
// to the values the EVSE reply set in this package actually emits.
type ResponseCode uint8

const (
	ResponseCodeOK ResponseCode = iota
	ResponseCodeFailedWrongEnergyTransferMode
)

func (r ResponseCode) String() string {
	switch r {
	case ResponseCodeOK:
		return "OK"
	case ResponseCodeFailedWrongEnergyTransferMode:
		return "FAILED_WrongEnergyTransferMode"
	default:
		return "UNKNOWN"
	}
}

// EnergyTransferMode is the iso1EnergyTransferModeType enumeration.
type EnergyTransferMode uint8

const (
	EnergyTransferModeACSinglePhaseCore EnergyTransferMode = iota
	EnergyTransferModeACThreePhaseCore
	EnergyTransferModeDCCore
	EnergyTransferModeDCExtended
	EnergyTransferModeDCCombo
	EnergyTransferModeDCUnique
)

// PaymentOption is the iso1paymentOptionType enumeration.
type PaymentOption uint8

const (
	PaymentOptionContract PaymentOption = iota
	PaymentOptionExternalPayment
)

// ServiceCategory is the iso1serviceCategoryType enumeration.
type ServiceCategory uint8

const (
	ServiceCategoryEVCharging ServiceCategory = iota
)

// EVSEProcessing is the iso1EVSEProcessingType enumeration.
type EVSEProcessing uint8

const (
	EVSEProcessingFinished EVSEProcessing = iota
	EVSEProcessingOngoing
)

// EVSENotification is the iso1EVSENotificationType enumeration.
type EVSENotification uint8

const (
	EVSENotificationNone EVSENotification = iota
	EVSENotificationStopCharging
	EVSENotificationReNegotiation
)

// DCEVSEStatusCode is the iso1DC_EVSEStatusCodeType enumeration, reduced to
// Ready (the only value this EVSE reports) and NotReady.
type DCEVSEStatusCode uint8

const (
	DCEVSEStatusCodeReady DCEVSEStatusCode = iota
	DCEVSEStatusCodeNotReady
)

// AppHandResponseCode is the appHandresponseCodeType enumeration.
type AppHandResponseCode uint8

const (
	AppHandResponseCodeOKSuccessfulNegotiation AppHandResponseCode = iota
	AppHandResponseCodeFailedNoNegotiation
)

// Unit is the iso1unitSymbolType enumeration for PhysicalValue.
type Unit uint8

const (
	UnitHours Unit = iota
	UnitMinutes
	UnitSeconds
	UnitAmpere
	UnitVolt
	UnitWatt
	UnitWattHours
)

func (u Unit) String() string {
	switch u {
	case UnitAmpere:
		return "A"
	case UnitVolt:
		return "V"
	case UnitWatt:
		return "W"
	case UnitWattHours:
		return "Wh"
	case UnitHours:
		return "h"
	case UnitMinutes:
		return "m"
	case UnitSeconds:
		return "s"
	default:
		return "?"
	}
}

// ChargeProgress is the iso1chargeProgressType enumeration.
type ChargeProgress uint8

const (
	ChargeProgressStart ChargeProgress = iota
	ChargeProgressStop
	ChargeProgressRenegotiate
)
