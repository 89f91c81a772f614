package doc

// PhysicalValue is the iso1PhysicalValueType: a decimal value expressed as
// Value * 10^Multiplier, in the given Unit.
type PhysicalValue struct {
	Value      int16
	Multiplier int8
	Unit       Unit
}

// SessionID is the ISO 15118-2 session identifier: up to 8 bytes, with
// Len==0 meaning "not set" (matches the source's bytesLen/bytes pair).
type SessionID struct {
	Bytes [8]byte
	Len   uint8
}

// NewSessionID builds a SessionID from a byte slice of length 0-8.
func NewSessionID(b []byte) SessionID {
	var s SessionID
	n := copy(s.Bytes[:], b)
	s.Len = uint8(n)
	return s
}

// Slice returns the significant bytes of the session ID.
func (s SessionID) Slice() []byte {
	return s.Bytes[:s.Len]
}

// IsSet reports whether the session ID carries any bytes.
func (s SessionID) IsSet() bool {
	return s.Len > 0
}

// MessageHeader is the V2G_Message.Header: currently just the SessionID
// (the Notification/Signature fields of the full schema are unused by the
// DC_extended happy path this EVSE implements).
type MessageHeader struct {
	SessionID SessionID
}

// DCEVSEChargeParameter is the iso1DC_EVSEChargeParameterType: the station's
// advertised DC charge envelope.
type DCEVSEChargeParameter struct {
	MaximumCurrentLimit PhysicalValue
	MaximumPowerLimit   PhysicalValue
	MaximumVoltageLimit PhysicalValue
	MinimumCurrentLimit PhysicalValue
	MinimumVoltageLimit PhysicalValue
	PeakCurrentRipple   PhysicalValue
}

// DCEVSEStatus is the iso1DC_EVSEStatusType.
type DCEVSEStatus struct {
	Notification EVSENotification
	MaxDelay     uint16
	StatusCode   DCEVSEStatusCode
}

// EVSEStatus is the generic iso1EVSEStatusType (used only by
// PowerDeliveryRes, per the canonical reply in spec §4.3 item 9).
type EVSEStatus struct {
	Notification EVSENotification
	MaxDelay     uint16
}

// ChargeService is the iso1ChargeServiceType.
type ChargeService struct {
	ServiceCategory             ServiceCategory
	FreeService                 bool
	SupportedEnergyTransferMode []EnergyTransferMode
}
