package exi

import (
	"reflect"
	"testing"

	"github.com/v2gredux/secc-go/pkg/doc"
)

func TestHandshakeRoundtrip(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{
			name: "req single entry",
			in: &doc.SupportedAppProtocolReq{
				AppProtocol: []doc.AppProtocolEntry{
					{ProtocolNamespace: doc.ISOMsgDefNamespace, SchemaID: 1},
				},
			},
		},
		{
			name: "res accepted",
			in: &doc.SupportedAppProtocolRes{
				ResponseCode: doc.AppHandResponseCodeOKSuccessfulNegotiation,
				SchemaIDSet:  true,
				SchemaID:     1,
			},
		},
		{
			name: "res rejected",
			in: &doc.SupportedAppProtocolRes{
				ResponseCode: doc.AppHandResponseCodeFailedNoNegotiation,
				SchemaIDSet:  false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeHandshake(tt.in)
			if err != nil {
				t.Fatalf("EncodeHandshake: %v", err)
			}
			decoded, err := DecodeHandshake(encoded)
			if err != nil {
				t.Fatalf("DecodeHandshake: %v", err)
			}
			if !reflect.DeepEqual(tt.in, decoded) {
				t.Fatalf("roundtrip mismatch: got %#v, want %#v", decoded, tt.in)
			}
		})
	}
}

func TestEncodeHandshakeUnsupportedType(t *testing.T) {
	if _, err := EncodeHandshake(&doc.SessionSetupReq{}); err != ErrUnsupportedType {
		t.Fatalf("got %v, want ErrUnsupportedType", err)
	}
}

func TestDecodeHandshakeUnknownTag(t *testing.T) {
	if _, err := DecodeHandshake([]byte{0xFF}); err != ErrUnknownTag {
		t.Fatalf("got %v, want ErrUnknownTag", err)
	}
}

func dcParams() doc.DCEVSEChargeParameter {
	pv := func(value int16, mult int8, unit doc.Unit) doc.PhysicalValue {
		return doc.PhysicalValue{Value: value, Multiplier: mult, Unit: unit}
	}
	return doc.DCEVSEChargeParameter{
		MaximumCurrentLimit: pv(3, 0, doc.UnitAmpere),
		MaximumPowerLimit:   pv(2, 3, doc.UnitWatt),
		MaximumVoltageLimit: pv(900, 0, doc.UnitVolt),
		MinimumCurrentLimit: pv(0, 0, doc.UnitAmpere),
		MinimumVoltageLimit: pv(150, 0, doc.UnitVolt),
		PeakCurrentRipple:   pv(0, 0, doc.UnitAmpere),
	}
}

func TestISORoundtrip(t *testing.T) {
	sid := doc.NewSessionID([]byte{0x01, 0x02, 0x03, 0x04})

	tests := []struct {
		name string
		in   *doc.V2GMessage
	}{
		{
			name: "session setup req",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: doc.SessionID{}},
				Body:   &doc.SessionSetupReq{EVCCID: "EVCC01"},
			},
		},
		{
			name: "session setup res",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: sid},
				Body:   &doc.SessionSetupRes{ResponseCode: doc.ResponseCodeOK, EVSEID: "ZZ00000"},
			},
		},
		{
			name: "service discovery res",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: sid},
				Body: &doc.ServiceDiscoveryRes{
					ResponseCode:      doc.ResponseCodeOK,
					PaymentOptionList: []doc.PaymentOption{doc.PaymentOptionContract, doc.PaymentOptionExternalPayment},
					ChargeService: doc.ChargeService{
						ServiceCategory:             doc.ServiceCategoryEVCharging,
						FreeService:                 true,
						SupportedEnergyTransferMode: []doc.EnergyTransferMode{doc.EnergyTransferModeDCCombo},
					},
				},
			},
		},
		{
			name: "payment service selection req",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: sid},
				Body:   &doc.PaymentServiceSelectionReq{SelectedPaymentOption: doc.PaymentOptionExternalPayment},
			},
		},
		{
			name: "authorization res",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: sid},
				Body:   &doc.AuthorizationRes{ResponseCode: doc.ResponseCodeOK, EVSEProcessing: doc.EVSEProcessingFinished},
			},
		},
		{
			name: "charge parameter discovery res",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: sid},
				Body: &doc.ChargeParameterDiscoveryRes{
					ResponseCode:          doc.ResponseCodeOK,
					EVSEProcessing:        doc.EVSEProcessingFinished,
					DCEVSEChargeParameter: dcParams(),
				},
			},
		},
		{
			name: "cable check res",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: sid},
				Body: &doc.CableCheckRes{
					ResponseCode:   doc.ResponseCodeOK,
					DCEVSEStatus:   doc.DCEVSEStatus{Notification: doc.EVSENotificationNone, MaxDelay: 12, StatusCode: doc.DCEVSEStatusCodeReady},
					EVSEProcessing: doc.EVSEProcessingFinished,
				},
			},
		},
		{
			name: "precharge req",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: sid},
				Body: &doc.PreChargeReq{
					EVTargetVoltage: doc.PhysicalValue{Value: 400, Multiplier: 0, Unit: doc.UnitVolt},
					EVTargetCurrent: doc.PhysicalValue{Value: 1, Multiplier: 0, Unit: doc.UnitAmpere},
				},
			},
		},
		{
			name: "power delivery req start",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: sid},
				Body:   &doc.PowerDeliveryReq{ChargeProgress: doc.ChargeProgressStart},
			},
		},
		{
			name: "power delivery res",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: sid},
				Body: &doc.PowerDeliveryRes{
					ResponseCode: doc.ResponseCodeOK,
					EVSEStatus:   doc.EVSEStatus{Notification: doc.EVSENotificationNone, MaxDelay: 12},
				},
			},
		},
		{
			name: "current demand res",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: sid},
				Body: &doc.CurrentDemandRes{
					ResponseCode:       doc.ResponseCodeOK,
					DCEVSEStatus:       doc.DCEVSEStatus{Notification: doc.EVSENotificationNone, MaxDelay: 12, StatusCode: doc.DCEVSEStatusCodeReady},
					EVSEPresentVoltage: doc.PhysicalValue{Value: 400, Multiplier: 0, Unit: doc.UnitVolt},
					EVSEPresentCurrent: doc.PhysicalValue{Value: 3, Multiplier: 0, Unit: doc.UnitAmpere},
				},
			},
		},
		{
			name: "welding detection res",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: sid},
				Body: &doc.WeldingDetectionRes{
					ResponseCode:       doc.ResponseCodeOK,
					DCEVSEStatus:       doc.DCEVSEStatus{Notification: doc.EVSENotificationNone, MaxDelay: 12, StatusCode: doc.DCEVSEStatusCodeReady},
					EVSEPresentVoltage: doc.PhysicalValue{Value: 0, Multiplier: 0, Unit: doc.UnitVolt},
				},
			},
		},
		{
			name: "session stop req",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: sid},
				Body:   &doc.SessionStopReq{},
			},
		},
		{
			name: "service detail req (unhandled, decode only)",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: sid},
				Body:   &doc.ServiceDetailReq{ServiceID: 1},
			},
		},
		{
			name: "metering receipt req (unhandled, decode only)",
			in: &doc.V2GMessage{
				Header: doc.MessageHeader{SessionID: sid},
				Body:   &doc.MeteringReceiptReq{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeISO(tt.in)
			if err != nil {
				t.Fatalf("EncodeISO: %v", err)
			}
			decoded, err := DecodeISO(encoded)
			if err != nil {
				t.Fatalf("DecodeISO: %v", err)
			}
			if !reflect.DeepEqual(tt.in, decoded) {
				t.Fatalf("roundtrip mismatch: got %#v, want %#v", decoded, tt.in)
			}
		})
	}
}

func TestEncodeISOUnsupportedType(t *testing.T) {
	msg := &doc.V2GMessage{Body: unsupportedBody{}}
	if _, err := EncodeISO(msg); err != ErrUnsupportedType {
		t.Fatalf("got %v, want ErrUnsupportedType", err)
	}
}

type unsupportedBody struct{}

func (unsupportedBody) MessageName() string { return "unsupportedBody" }

func TestDecodeISOUnknownTag(t *testing.T) {
	if _, err := DecodeISO([]byte{0x00, 0xFF}); err != ErrUnknownTag {
		t.Fatalf("got %v, want ErrUnknownTag", err)
	}
}

func TestDecodeISOBufferExhausted(t *testing.T) {
	if _, err := DecodeISO(nil); err != ErrBufferExhausted {
		t.Fatalf("got %v, want ErrBufferExhausted", err)
	}
}
