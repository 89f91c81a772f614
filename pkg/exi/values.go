package exi

import "github.com/v2gredux/secc-go/pkg/doc"

func writePhysicalValue(bs *BitStream, v doc.PhysicalValue) error {
	if err := bs.writeInt16(v.Value); err != nil {
		return err
	}
	if err := bs.writeInt8(v.Multiplier); err != nil {
		return err
	}
	return bs.writeByte(byte(v.Unit))
}

func readPhysicalValue(bs *BitStream) (doc.PhysicalValue, error) {
	var v doc.PhysicalValue
	value, err := bs.readInt16()
	if err != nil {
		return v, err
	}
	mult, err := bs.readInt8()
	if err != nil {
		return v, err
	}
	unit, err := bs.readByte()
	if err != nil {
		return v, err
	}
	v.Value = value
	v.Multiplier = mult
	v.Unit = doc.Unit(unit)
	return v, nil
}

func writeSessionID(bs *BitStream, id doc.SessionID) error {
	if err := bs.writeByte(id.Len); err != nil {
		return err
	}
	return bs.writeBytes(id.Bytes[:id.Len])
}

func readSessionID(bs *BitStream) (doc.SessionID, error) {
	n, err := bs.readByte()
	if err != nil {
		return doc.SessionID{}, err
	}
	b, err := bs.readBytes(int(n))
	if err != nil {
		return doc.SessionID{}, err
	}
	return doc.NewSessionID(b), nil
}

func writeHeader(bs *BitStream, h doc.MessageHeader) error {
	return writeSessionID(bs, h.SessionID)
}

func readHeader(bs *BitStream) (doc.MessageHeader, error) {
	sid, err := readSessionID(bs)
	if err != nil {
		return doc.MessageHeader{}, err
	}
	return doc.MessageHeader{SessionID: sid}, nil
}

func writeDCEVSEStatus(bs *BitStream, s doc.DCEVSEStatus) error {
	if err := bs.writeByte(byte(s.Notification)); err != nil {
		return err
	}
	if err := bs.writeUint16(s.MaxDelay); err != nil {
		return err
	}
	return bs.writeByte(byte(s.StatusCode))
}

func readDCEVSEStatus(bs *BitStream) (doc.DCEVSEStatus, error) {
	var s doc.DCEVSEStatus
	n, err := bs.readByte()
	if err != nil {
		return s, err
	}
	delay, err := bs.readUint16()
	if err != nil {
		return s, err
	}
	code, err := bs.readByte()
	if err != nil {
		return s, err
	}
	s.Notification = doc.EVSENotification(n)
	s.MaxDelay = delay
	s.StatusCode = doc.DCEVSEStatusCode(code)
	return s, nil
}

func writeEVSEStatus(bs *BitStream, s doc.EVSEStatus) error {
	if err := bs.writeByte(byte(s.Notification)); err != nil {
		return err
	}
	return bs.writeUint16(s.MaxDelay)
}

func readEVSEStatus(bs *BitStream) (doc.EVSEStatus, error) {
	var s doc.EVSEStatus
	n, err := bs.readByte()
	if err != nil {
		return s, err
	}
	delay, err := bs.readUint16()
	if err != nil {
		return s, err
	}
	s.Notification = doc.EVSENotification(n)
	s.MaxDelay = delay
	return s, nil
}

func writeDCChargeParameter(bs *BitStream, p doc.DCEVSEChargeParameter) error {
	for _, v := range []doc.PhysicalValue{
		p.MaximumCurrentLimit, p.MaximumPowerLimit, p.MaximumVoltageLimit,
		p.MinimumCurrentLimit, p.MinimumVoltageLimit, p.PeakCurrentRipple,
	} {
		if err := writePhysicalValue(bs, v); err != nil {
			return err
		}
	}
	return nil
}

func readDCChargeParameter(bs *BitStream) (doc.DCEVSEChargeParameter, error) {
	var p doc.DCEVSEChargeParameter
	vals := make([]*doc.PhysicalValue, 6)
	vals[0] = &p.MaximumCurrentLimit
	vals[1] = &p.MaximumPowerLimit
	vals[2] = &p.MaximumVoltageLimit
	vals[3] = &p.MinimumCurrentLimit
	vals[4] = &p.MinimumVoltageLimit
	vals[5] = &p.PeakCurrentRipple
	for _, dst := range vals {
		v, err := readPhysicalValue(bs)
		if err != nil {
			return p, err
		}
		*dst = v
	}
	return p, nil
}
