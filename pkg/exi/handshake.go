package exi

import "github.com/v2gredux/secc-go/pkg/doc"

// defaultEncodeBufferSize matches the source's single reused 4 KB buffer
// (spec §9 "shared in/out buffer").
const defaultEncodeBufferSize = 4096

// EncodeHandshake encodes an application-handshake document
// (*doc.SupportedAppProtocolReq or *doc.SupportedAppProtocolRes) to bytes.
func EncodeHandshake(v any) ([]byte, error) {
	buf := make([]byte, defaultEncodeBufferSize)
	bs := &BitStream{}
	bs.Init(buf, 0)

	switch val := v.(type) {
	case *doc.SupportedAppProtocolReq:
		if err := encodeSupportedAppProtocolReq(bs, val); err != nil {
			return nil, err
		}
	case *doc.SupportedAppProtocolRes:
		if err := encodeSupportedAppProtocolRes(bs, val); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnsupportedType
	}

	return append([]byte(nil), bs.Bytes()...), nil
}

// DecodeHandshake decodes an application-handshake document from bytes,
// returning either a *doc.SupportedAppProtocolReq or a
// *doc.SupportedAppProtocolRes depending on the leading tag.
func DecodeHandshake(payload []byte) (any, error) {
	bs := &BitStream{}
	bs.Init(payload, 0)

	tag, err := bs.readByte()
	if err != nil {
		return nil, err
	}

	switch tag {
	case tagSupportedAppProtocolReq:
		return decodeSupportedAppProtocolReq(bs)
	case tagSupportedAppProtocolRes:
		return decodeSupportedAppProtocolRes(bs)
	default:
		return nil, ErrUnknownTag
	}
}

func encodeSupportedAppProtocolReq(bs *BitStream, v *doc.SupportedAppProtocolReq) error {
	if err := bs.writeByte(tagSupportedAppProtocolReq); err != nil {
		return err
	}
	if err := bs.writeByte(byte(len(v.AppProtocol))); err != nil {
		return err
	}
	for _, e := range v.AppProtocol {
		if err := bs.writeString(e.ProtocolNamespace); err != nil {
			return err
		}
		if err := bs.writeByte(e.SchemaID); err != nil {
			return err
		}
	}
	return nil
}

func decodeSupportedAppProtocolReq(bs *BitStream) (*doc.SupportedAppProtocolReq, error) {
	n, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	entries := make([]doc.AppProtocolEntry, 0, n)
	for i := 0; i < int(n); i++ {
		ns, err := bs.readString()
		if err != nil {
			return nil, err
		}
		schemaID, err := bs.readByte()
		if err != nil {
			return nil, err
		}
		entries = append(entries, doc.AppProtocolEntry{ProtocolNamespace: ns, SchemaID: schemaID})
	}
	return &doc.SupportedAppProtocolReq{AppProtocol: entries}, nil
}

func encodeSupportedAppProtocolRes(bs *BitStream, v *doc.SupportedAppProtocolRes) error {
	if err := bs.writeByte(tagSupportedAppProtocolRes); err != nil {
		return err
	}
	if err := bs.writeByte(byte(v.ResponseCode)); err != nil {
		return err
	}
	if err := bs.writeBool(v.SchemaIDSet); err != nil {
		return err
	}
	return bs.writeByte(v.SchemaID)
}

func decodeSupportedAppProtocolRes(bs *BitStream) (*doc.SupportedAppProtocolRes, error) {
	code, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	set, err := bs.readBool()
	if err != nil {
		return nil, err
	}
	schemaID, err := bs.readByte()
	if err != nil {
		return nil, err
	}
	return &doc.SupportedAppProtocolRes{
		ResponseCode: doc.AppHandResponseCode(code),
		SchemaIDSet:  set,
		SchemaID:     schemaID,
	}, nil
}
