package doc

// ISOMsgDefNamespace is the ISO 15118-2 (2013) protocol namespace string
// the EVSE negotiates in the application handshake (spec §3).
const ISOMsgDefNamespace = "urn:iso:15118:2:2013:MsgDef"

// AppProtocolEntry is one entry of supportedAppProtocolReq.AppProtocol:
// a candidate protocol namespace paired with the schema ID the EV would
// like the EVSE to use to refer to it thereafter.
type AppProtocolEntry struct {
	ProtocolNamespace string
	SchemaID          uint8
}

// SupportedAppProtocolReq is the EV's application-handshake request: the
// first frame of any TCP session.
type SupportedAppProtocolReq struct {
	AppProtocol []AppProtocolEntry
}

// SupportedAppProtocolRes is the EVSE's application-handshake response.
// SchemaIDSet mirrors the source's SchemaID_isUsed flag: it is true only
// when a compatible protocol was found and negotiated.
type SupportedAppProtocolRes struct {
	ResponseCode AppHandResponseCode
	SchemaID     uint8
	SchemaIDSet  bool
}
