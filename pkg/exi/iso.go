package exi

import "github.com/v2gredux/secc-go/pkg/doc"

// EncodeISO encodes a full ISO 15118-2 V2G_Message document to bytes.
func EncodeISO(msg *doc.V2GMessage) ([]byte, error) {
	buf := make([]byte, defaultEncodeBufferSize)
	bs := &BitStream{}
	bs.Init(buf, 0)

	if err := writeHeader(bs, msg.Header); err != nil {
		return nil, err
	}

	if err := encodeBody(bs, msg.Body); err != nil {
		return nil, err
	}

	return append([]byte(nil), bs.Bytes()...), nil
}

// DecodeISO decodes a full ISO 15118-2 V2G_Message document from bytes.
func DecodeISO(payload []byte) (*doc.V2GMessage, error) {
	bs := &BitStream{}
	bs.Init(payload, 0)

	hdr, err := readHeader(bs)
	if err != nil {
		return nil, err
	}

	body, err := decodeBody(bs)
	if err != nil {
		return nil, err
	}

	return &doc.V2GMessage{Header: hdr, Body: body}, nil
}

func encodeBody(bs *BitStream, body doc.Body) error {
	switch v := body.(type) {
	case *doc.SessionSetupReq:
		return encodeSessionSetupReq(bs, v)
	case *doc.SessionSetupRes:
		return encodeSessionSetupRes(bs, v)
	case *doc.ServiceDiscoveryReq:
		return bs.writeByte(tagServiceDiscoveryReq)
	case *doc.ServiceDiscoveryRes:
		return encodeServiceDiscoveryRes(bs, v)
	case *doc.PaymentServiceSelectionReq:
		return encodePaymentServiceSelectionReq(bs, v)
	case *doc.PaymentServiceSelectionRes:
		return encodeSimpleResponse(bs, tagPaymentServiceSelectionRes, v.ResponseCode)
	case *doc.PaymentDetailsReq:
		return encodePaymentDetailsReq(bs, v)
	case *doc.PaymentDetailsRes:
		return encodeSimpleResponse(bs, tagPaymentDetailsRes, v.ResponseCode)
	case *doc.AuthorizationReq:
		return bs.writeByte(tagAuthorizationReq)
	case *doc.AuthorizationRes:
		return encodeAuthorizationRes(bs, v)
	case *doc.ChargeParameterDiscoveryReq:
		return encodeChargeParameterDiscoveryReq(bs, v)
	case *doc.ChargeParameterDiscoveryRes:
		return encodeChargeParameterDiscoveryRes(bs, v)
	case *doc.CableCheckReq:
		return bs.writeByte(tagCableCheckReq)
	case *doc.CableCheckRes:
		return encodeCableCheckRes(bs, v)
	case *doc.PreChargeReq:
		return encodePreChargeReq(bs, v)
	case *doc.PreChargeRes:
		return encodePreChargeRes(bs, v)
	case *doc.PowerDeliveryReq:
		return encodePowerDeliveryReq(bs, v)
	case *doc.PowerDeliveryRes:
		return encodePowerDeliveryRes(bs, v)
	case *doc.CurrentDemandReq:
		return encodeCurrentDemandReq(bs, v)
	case *doc.CurrentDemandRes:
		return encodeCurrentDemandRes(bs, v)
	case *doc.WeldingDetectionReq:
		return bs.writeByte(tagWeldingDetectionReq)
	case *doc.WeldingDetectionRes:
		return encodeWeldingDetectionRes(bs, v)
	case *doc.SessionStopReq:
		return bs.writeByte(tagSessionStopReq)
	case *doc.SessionStopRes:
		return encodeSimpleResponse(bs, tagSessionStopRes, v.ResponseCode)
	case *doc.ServiceDetailReq:
		if err := bs.writeByte(tagServiceDetailReq); err != nil {
			return err
		}
		return bs.writeUint16(v.ServiceID)
	case *doc.MeteringReceiptReq:
		return bs.writeByte(tagMeteringReceiptReq)
	case *doc.CertificateUpdateReq:
		return bs.writeByte(tagCertificateUpdateReq)
	case *doc.CertificateInstallationReq:
		return bs.writeByte(tagCertificateInstallReq)
	case *doc.ChargingStatusReq:
		return bs.writeByte(tagChargingStatusReq)
	default:
		return ErrUnsupportedType
	}
}

func decodeBody(bs *BitStream) (doc.Body, error) {
	tag, err := bs.readByte()
	if err != nil {
		return nil, err
	}

	switch tag {
	case tagSessionSetupReq:
		return decodeSessionSetupReq(bs)
	case tagSessionSetupRes:
		return decodeSessionSetupRes(bs)
	case tagServiceDiscoveryReq:
		return &doc.ServiceDiscoveryReq{}, nil
	case tagServiceDiscoveryRes:
		return decodeServiceDiscoveryRes(bs)
	case tagPaymentServiceSelectionReq:
		return decodePaymentServiceSelectionReq(bs)
	case tagPaymentServiceSelectionRes:
		code, err := decodeSimpleResponse(bs)
		if err != nil {
			return nil, err
		}
		return &doc.PaymentServiceSelectionRes{ResponseCode: code}, nil
	case tagPaymentDetailsReq:
		return decodePaymentDetailsReq(bs)
	case tagPaymentDetailsRes:
		code, err := decodeSimpleResponse(bs)
		if err != nil {
			return nil, err
		}
		return &doc.PaymentDetailsRes{ResponseCode: code}, nil
	case tagAuthorizationReq:
		return &doc.AuthorizationReq{}, nil
	case tagAuthorizationRes:
		return decodeAuthorizationRes(bs)
	case tagChargeParameterDiscoveryReq:
		return decodeChargeParameterDiscoveryReq(bs)
	case tagChargeParameterDiscoveryRes:
		return decodeChargeParameterDiscoveryRes(bs)
	case tagCableCheckReq:
		return &doc.CableCheckReq{}, nil
	case tagCableCheckRes:
		return decodeCableCheckRes(bs)
	case tagPreChargeReq:
		return decodePreChargeReq(bs)
	case tagPreChargeRes:
		return decodePreChargeRes(bs)
	case tagPowerDeliveryReq:
		return decodePowerDeliveryReq(bs)
	case tagPowerDeliveryRes:
		return decodePowerDeliveryRes(bs)
	case tagCurrentDemandReq:
		return decodeCurrentDemandReq(bs)
	case tagCurrentDemandRes:
		return decodeCurrentDemandRes(bs)
	case tagWeldingDetectionReq:
		return &doc.WeldingDetectionReq{}, nil
	case tagWeldingDetectionRes:
		return decodeWeldingDetectionRes(bs)
	case tagSessionStopReq:
		return &doc.SessionStopReq{}, nil
	case tagSessionStopRes:
		code, err := decodeSimpleResponse(bs)
		if err != nil {
			return nil, err
		}
		return &doc.SessionStopRes{ResponseCode: code}, nil
	case tagServiceDetailReq:
		id, err := bs.readUint16()
		if err != nil {
			return nil, err
		}
		return &doc.ServiceDetailReq{ServiceID: id}, nil
	case tagMeteringReceiptReq:
		return &doc.MeteringReceiptReq{}, nil
	case tagCertificateUpdateReq:
		return &doc.CertificateUpdateReq{}, nil
	case tagCertificateInstallReq:
		return &doc.CertificateInstallationReq{}, nil
	case tagChargingStatusReq:
		return &doc.ChargingStatusReq{}, nil
	default:
		return nil, ErrUnknownTag
	}
}

// encodeSimpleResponse handles the several response messages that carry
// nothing beyond a ResponseCode.
func encodeSimpleResponse(bs *BitStream, tag byte, code doc.ResponseCode) error {
	if err := bs.writeByte(tag); err != nil {
		return err
	}
	return bs.writeByte(byte(code))
}

func decodeSimpleResponse(bs *BitStream) (doc.ResponseCode, error) {
	b, err := bs.readByte()
	return doc.ResponseCode(b), err
}

func encodeSessionSetupReq(bs *BitStream, v *doc.SessionSetupReq) error {
	if err := bs.writeByte(tagSessionSetupReq); err != nil {
		return err
	}
	return bs.writeString(v.EVCCID)
}

func decodeSessionSetupReq(bs *BitStream) (*doc.SessionSetupReq, error) {
	evccid, err := bs.readString()
	if err != nil {
		return nil, err
	}
	return &doc.SessionSetupReq{EVCCID: evccid}, nil
}

func encodeSessionSetupRes(bs *BitStream, v *doc.SessionSetupRes) error {
	if err := bs.writeByte(tagSessionSetupRes); err != nil {
		return err
	}
	if err := bs.writeByte(byte(v.ResponseCode)); err != nil {
		return err
	}
	return bs.writeString(v.EVSEID)
}

func decodeSessionSetupRes(bs *BitStream) (*doc.SessionSetupRes, error) {
	code, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	evseid, err := bs.readString()
	if err != nil {
		return nil, err
	}
	return &doc.SessionSetupRes{ResponseCode: doc.ResponseCode(code), EVSEID: evseid}, nil
}

func encodeServiceDiscoveryRes(bs *BitStream, v *doc.ServiceDiscoveryRes) error {
	if err := bs.writeByte(tagServiceDiscoveryRes); err != nil {
		return err
	}
	if err := bs.writeByte(byte(v.ResponseCode)); err != nil {
		return err
	}
	if err := bs.writeByte(byte(len(v.PaymentOptionList))); err != nil {
		return err
	}
	for _, p := range v.PaymentOptionList {
		if err := bs.writeByte(byte(p)); err != nil {
			return err
		}
	}
	if err := bs.writeByte(byte(v.ChargeService.ServiceCategory)); err != nil {
		return err
	}
	if err := bs.writeBool(v.ChargeService.FreeService); err != nil {
		return err
	}
	if err := bs.writeByte(byte(len(v.ChargeService.SupportedEnergyTransferMode))); err != nil {
		return err
	}
	for _, m := range v.ChargeService.SupportedEnergyTransferMode {
		if err := bs.writeByte(byte(m)); err != nil {
			return err
		}
	}
	return nil
}

func decodeServiceDiscoveryRes(bs *BitStream) (*doc.ServiceDiscoveryRes, error) {
	code, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	n, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	options := make([]doc.PaymentOption, 0, n)
	for i := 0; i < int(n); i++ {
		b, err := bs.readByte()
		if err != nil {
			return nil, err
		}
		options = append(options, doc.PaymentOption(b))
	}
	category, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	free, err := bs.readBool()
	if err != nil {
		return nil, err
	}
	m, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	modes := make([]doc.EnergyTransferMode, 0, m)
	for i := 0; i < int(m); i++ {
		b, err := bs.readByte()
		if err != nil {
			return nil, err
		}
		modes = append(modes, doc.EnergyTransferMode(b))
	}
	return &doc.ServiceDiscoveryRes{
		ResponseCode:      doc.ResponseCode(code),
		PaymentOptionList: options,
		ChargeService: doc.ChargeService{
			ServiceCategory:             doc.ServiceCategory(category),
			FreeService:                 free,
			SupportedEnergyTransferMode: modes,
		},
	}, nil
}

func encodePaymentServiceSelectionReq(bs *BitStream, v *doc.PaymentServiceSelectionReq) error {
	if err := bs.writeByte(tagPaymentServiceSelectionReq); err != nil {
		return err
	}
	return bs.writeByte(byte(v.SelectedPaymentOption))
}

func decodePaymentServiceSelectionReq(bs *BitStream) (*doc.PaymentServiceSelectionReq, error) {
	b, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	return &doc.PaymentServiceSelectionReq{SelectedPaymentOption: doc.PaymentOption(b)}, nil
}

func encodePaymentDetailsReq(bs *BitStream, v *doc.PaymentDetailsReq) error {
	if err := bs.writeByte(tagPaymentDetailsReq); err != nil {
		return err
	}
	return bs.writeString(v.EMAID)
}

func decodePaymentDetailsReq(bs *BitStream) (*doc.PaymentDetailsReq, error) {
	emaid, err := bs.readString()
	if err != nil {
		return nil, err
	}
	return &doc.PaymentDetailsReq{EMAID: emaid}, nil
}

func encodeAuthorizationRes(bs *BitStream, v *doc.AuthorizationRes) error {
	if err := bs.writeByte(tagAuthorizationRes); err != nil {
		return err
	}
	if err := bs.writeByte(byte(v.ResponseCode)); err != nil {
		return err
	}
	return bs.writeByte(byte(v.EVSEProcessing))
}

func decodeAuthorizationRes(bs *BitStream) (*doc.AuthorizationRes, error) {
	code, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	proc, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	return &doc.AuthorizationRes{ResponseCode: doc.ResponseCode(code), EVSEProcessing: doc.EVSEProcessing(proc)}, nil
}

func encodeChargeParameterDiscoveryReq(bs *BitStream, v *doc.ChargeParameterDiscoveryReq) error {
	if err := bs.writeByte(tagChargeParameterDiscoveryReq); err != nil {
		return err
	}
	return bs.writeByte(byte(v.RequestedEnergyTransferMode))
}

func decodeChargeParameterDiscoveryReq(bs *BitStream) (*doc.ChargeParameterDiscoveryReq, error) {
	b, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	return &doc.ChargeParameterDiscoveryReq{RequestedEnergyTransferMode: doc.EnergyTransferMode(b)}, nil
}

func encodeChargeParameterDiscoveryRes(bs *BitStream, v *doc.ChargeParameterDiscoveryRes) error {
	if err := bs.writeByte(tagChargeParameterDiscoveryRes); err != nil {
		return err
	}
	if err := bs.writeByte(byte(v.ResponseCode)); err != nil {
		return err
	}
	if err := bs.writeByte(byte(v.EVSEProcessing)); err != nil {
		return err
	}
	return writeDCChargeParameter(bs, v.DCEVSEChargeParameter)
}

func decodeChargeParameterDiscoveryRes(bs *BitStream) (*doc.ChargeParameterDiscoveryRes, error) {
	code, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	proc, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	params, err := readDCChargeParameter(bs)
	if err != nil {
		return nil, err
	}
	return &doc.ChargeParameterDiscoveryRes{
		ResponseCode:          doc.ResponseCode(code),
		EVSEProcessing:        doc.EVSEProcessing(proc),
		DCEVSEChargeParameter: params,
	}, nil
}

func encodeCableCheckRes(bs *BitStream, v *doc.CableCheckRes) error {
	if err := bs.writeByte(tagCableCheckRes); err != nil {
		return err
	}
	if err := bs.writeByte(byte(v.ResponseCode)); err != nil {
		return err
	}
	if err := writeDCEVSEStatus(bs, v.DCEVSEStatus); err != nil {
		return err
	}
	return bs.writeByte(byte(v.EVSEProcessing))
}

func decodeCableCheckRes(bs *BitStream) (*doc.CableCheckRes, error) {
	code, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	status, err := readDCEVSEStatus(bs)
	if err != nil {
		return nil, err
	}
	proc, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	return &doc.CableCheckRes{ResponseCode: doc.ResponseCode(code), DCEVSEStatus: status, EVSEProcessing: doc.EVSEProcessing(proc)}, nil
}

func encodePreChargeReq(bs *BitStream, v *doc.PreChargeReq) error {
	if err := bs.writeByte(tagPreChargeReq); err != nil {
		return err
	}
	if err := writePhysicalValue(bs, v.EVTargetVoltage); err != nil {
		return err
	}
	return writePhysicalValue(bs, v.EVTargetCurrent)
}

func decodePreChargeReq(bs *BitStream) (*doc.PreChargeReq, error) {
	voltage, err := readPhysicalValue(bs)
	if err != nil {
		return nil, err
	}
	current, err := readPhysicalValue(bs)
	if err != nil {
		return nil, err
	}
	return &doc.PreChargeReq{EVTargetVoltage: voltage, EVTargetCurrent: current}, nil
}

func encodePreChargeRes(bs *BitStream, v *doc.PreChargeRes) error {
	if err := bs.writeByte(tagPreChargeRes); err != nil {
		return err
	}
	if err := bs.writeByte(byte(v.ResponseCode)); err != nil {
		return err
	}
	if err := writeDCEVSEStatus(bs, v.DCEVSEStatus); err != nil {
		return err
	}
	return writePhysicalValue(bs, v.EVSEPresentVoltage)
}

func decodePreChargeRes(bs *BitStream) (*doc.PreChargeRes, error) {
	code, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	status, err := readDCEVSEStatus(bs)
	if err != nil {
		return nil, err
	}
	voltage, err := readPhysicalValue(bs)
	if err != nil {
		return nil, err
	}
	return &doc.PreChargeRes{ResponseCode: doc.ResponseCode(code), DCEVSEStatus: status, EVSEPresentVoltage: voltage}, nil
}

func encodePowerDeliveryReq(bs *BitStream, v *doc.PowerDeliveryReq) error {
	if err := bs.writeByte(tagPowerDeliveryReq); err != nil {
		return err
	}
	return bs.writeByte(byte(v.ChargeProgress))
}

func decodePowerDeliveryReq(bs *BitStream) (*doc.PowerDeliveryReq, error) {
	b, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	return &doc.PowerDeliveryReq{ChargeProgress: doc.ChargeProgress(b)}, nil
}

func encodePowerDeliveryRes(bs *BitStream, v *doc.PowerDeliveryRes) error {
	if err := bs.writeByte(tagPowerDeliveryRes); err != nil {
		return err
	}
	if err := bs.writeByte(byte(v.ResponseCode)); err != nil {
		return err
	}
	return writeEVSEStatus(bs, v.EVSEStatus)
}

func decodePowerDeliveryRes(bs *BitStream) (*doc.PowerDeliveryRes, error) {
	code, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	status, err := readEVSEStatus(bs)
	if err != nil {
		return nil, err
	}
	return &doc.PowerDeliveryRes{ResponseCode: doc.ResponseCode(code), EVSEStatus: status}, nil
}

func encodeCurrentDemandReq(bs *BitStream, v *doc.CurrentDemandReq) error {
	if err := bs.writeByte(tagCurrentDemandReq); err != nil {
		return err
	}
	if err := writePhysicalValue(bs, v.EVTargetVoltage); err != nil {
		return err
	}
	return writePhysicalValue(bs, v.EVTargetCurrent)
}

func decodeCurrentDemandReq(bs *BitStream) (*doc.CurrentDemandReq, error) {
	voltage, err := readPhysicalValue(bs)
	if err != nil {
		return nil, err
	}
	current, err := readPhysicalValue(bs)
	if err != nil {
		return nil, err
	}
	return &doc.CurrentDemandReq{EVTargetVoltage: voltage, EVTargetCurrent: current}, nil
}

func encodeCurrentDemandRes(bs *BitStream, v *doc.CurrentDemandRes) error {
	if err := bs.writeByte(tagCurrentDemandRes); err != nil {
		return err
	}
	if err := bs.writeByte(byte(v.ResponseCode)); err != nil {
		return err
	}
	if err := writeDCEVSEStatus(bs, v.DCEVSEStatus); err != nil {
		return err
	}
	if err := writePhysicalValue(bs, v.EVSEPresentVoltage); err != nil {
		return err
	}
	return writePhysicalValue(bs, v.EVSEPresentCurrent)
}

func decodeCurrentDemandRes(bs *BitStream) (*doc.CurrentDemandRes, error) {
	code, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	status, err := readDCEVSEStatus(bs)
	if err != nil {
		return nil, err
	}
	voltage, err := readPhysicalValue(bs)
	if err != nil {
		return nil, err
	}
	current, err := readPhysicalValue(bs)
	if err != nil {
		return nil, err
	}
	return &doc.CurrentDemandRes{
		ResponseCode:       doc.ResponseCode(code),
		DCEVSEStatus:       status,
		EVSEPresentVoltage: voltage,
		EVSEPresentCurrent: current,
	}, nil
}

func encodeWeldingDetectionRes(bs *BitStream, v *doc.WeldingDetectionRes) error {
	if err := bs.writeByte(tagWeldingDetectionRes); err != nil {
		return err
	}
	if err := bs.writeByte(byte(v.ResponseCode)); err != nil {
		return err
	}
	if err := writeDCEVSEStatus(bs, v.DCEVSEStatus); err != nil {
		return err
	}
	return writePhysicalValue(bs, v.EVSEPresentVoltage)
}

func decodeWeldingDetectionRes(bs *BitStream) (*doc.WeldingDetectionRes, error) {
	code, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	status, err := readDCEVSEStatus(bs)
	if err != nil {
		return nil, err
	}
	voltage, err := readPhysicalValue(bs)
	if err != nil {
		return nil, err
	}
	return &doc.WeldingDetectionRes{ResponseCode: doc.ResponseCode(code), DCEVSEStatus: status, EVSEPresentVoltage: voltage}, nil
}
