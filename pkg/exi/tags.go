package exi

// Message-kind tags. One byte identifies the concrete doc.Body (or
// handshake document) that follows, taking the place of a real EXI
// schema's grammar-driven event codes.
const (
	tagSupportedAppProtocolReq byte = 0x01
	tagSupportedAppProtocolRes byte = 0x02

	tagSessionSetupReq byte = 0x10
	tagSessionSetupRes byte = 0x11

	tagServiceDiscoveryReq byte = 0x12
	tagServiceDiscoveryRes byte = 0x13

	tagPaymentServiceSelectionReq byte = 0x14
	tagPaymentServiceSelectionRes byte = 0x15

	tagPaymentDetailsReq byte = 0x16
	tagPaymentDetailsRes byte = 0x17

	tagAuthorizationReq byte = 0x18
	tagAuthorizationRes byte = 0x19

	tagChargeParameterDiscoveryReq byte = 0x1A
	tagChargeParameterDiscoveryRes byte = 0x1B

	tagCableCheckReq byte = 0x1C
	tagCableCheckRes byte = 0x1D

	tagPreChargeReq byte = 0x1E
	tagPreChargeRes byte = 0x1F

	tagPowerDeliveryReq byte = 0x20
	tagPowerDeliveryRes byte = 0x21

	tagCurrentDemandReq byte = 0x22
	tagCurrentDemandRes byte = 0x23

	tagWeldingDetectionReq byte = 0x24
	tagWeldingDetectionRes byte = 0x25

	tagSessionStopReq byte = 0x26
	tagSessionStopRes byte = 0x27

	tagServiceDetailReq          byte = 0x30
	tagMeteringReceiptReq        byte = 0x31
	tagCertificateUpdateReq      byte = 0x32
	tagCertificateInstallReq     byte = 0x33
	tagChargingStatusReq         byte = 0x34
)
