// Package session implements the Session Engine: it accepts one TCP peer
// at a time, negotiates the application handshake, decodes each inbound
// ISO 15118-2 frame, and synthesizes the canonical DC-charging reply
// (spec.md §4.3). It is the transport.SessionHandler the TCP Manager
// drives.
package session

import (
	"errors"
	"io"

	"github.com/pion/logging"
	"github.com/v2gredux/secc-go/internal/randsrc"
	"github.com/v2gredux/secc-go/pkg/doc"
	"github.com/v2gredux/secc-go/pkg/evse"
	"github.com/v2gredux/secc-go/pkg/exi"
	"github.com/v2gredux/secc-go/pkg/transport"
	"github.com/v2gredux/secc-go/pkg/v2gtp"
)

// peerState holds the mutable, per-connection scratch state spec.md §3
// describes: the negotiated session ID, whether the handshake has
// completed, and the latched EV targets echoed back in later replies.
type peerState struct {
	sessionID        doc.SessionID
	handshakePending bool
	evTargetVoltage  doc.PhysicalValue
	evTargetCurrent  doc.PhysicalValue
}

// EngineConfig configures an Engine.
type EngineConfig struct {
	// Station is the EVSE's immutable configuration record.
	Station evse.StationConfig

	// Random supplies the SessionID's 8 random bytes. Required.
	Random *randsrc.Source

	// LoggerFactory is the factory for creating loggers. If nil, logging
	// is disabled.
	LoggerFactory logging.LoggerFactory
}

// Engine is the Session Engine. It implements transport.SessionHandler;
// the transport Manager calls HandleConn once per accepted peer and
// enforces the single-peer invariant itself, so Engine needs no locking
// of its own — HandleConn calls never overlap.
type Engine struct {
	cfg    evse.StationConfig
	random *randsrc.Source
	log    logging.LeveledLogger
}

var _ transport.SessionHandler = (*Engine)(nil)

// NewEngine builds an Engine from the given configuration.
func NewEngine(cfg EngineConfig) *Engine {
	e := &Engine{
		cfg:    cfg.Station,
		random: cfg.Random,
	}
	if cfg.LoggerFactory != nil {
		e.log = cfg.LoggerFactory.NewLogger("session")
	}
	return e
}

// HandleConn drives one peer connection from TCP accept to teardown: the
// application handshake first, then a loop of ISO 15118-2 request/reply
// exchanges, until the peer disconnects or a session-fatal error occurs.
func (e *Engine) HandleConn(conn *transport.Conn) {
	s := &peerState{handshakePending: true}

	for {
		payloadType, payload, err := conn.ReadFrame()
		if err != nil {
			e.teardown(err)
			return
		}

		if payloadType != v2gtp.EXI {
			if e.log != nil {
				e.log.Warnf("dropping non-EXI frame (type %s)", payloadType)
			}
			continue
		}

		if s.handshakePending {
			if err := e.handleHandshake(conn, s, payload); err != nil {
				e.teardown(err)
				return
			}
			continue
		}

		if err := e.handleISO(conn, s, payload); err != nil {
			e.teardown(err)
			return
		}
	}
}

// handleHandshake processes one frame received while handshakePending is
// true. A malformed handshake document or one that carries no compatible
// protocol is frame-ignored, not session-fatal: spec.md §4.3 ("no reply
// is sent and the peer will time out") and §8's boundary scenario
// ("session remains in HANDSHAKE state") both say the session stays
// open; only §7's error-tier summary lists this case under
// session-fatal. The two more specific passages take precedence — see
// DESIGN.md.
func (e *Engine) handleHandshake(conn *transport.Conn, s *peerState, payload []byte) error {
	parsed, err := exi.DecodeHandshake(payload)
	if err != nil {
		if e.log != nil {
			e.log.Warnf("dropping malformed handshake frame: %v", err)
		}
		return nil
	}

	req, ok := parsed.(*doc.SupportedAppProtocolReq)
	if !ok {
		if e.log != nil {
			e.log.Warnf("dropping unexpected handshake document")
		}
		return nil
	}

	for _, entry := range req.AppProtocol {
		if entry.ProtocolNamespace != e.cfg.ProtocolNamespace {
			continue
		}

		res := &doc.SupportedAppProtocolRes{
			ResponseCode: doc.AppHandResponseCodeOKSuccessfulNegotiation,
			SchemaIDSet:  true,
			SchemaID:     entry.SchemaID,
		}
		encoded, err := exi.EncodeHandshake(res)
		if err != nil {
			if e.log != nil {
				e.log.Errorf("encoding handshake response: %v", err)
			}
			return nil
		}
		if err := conn.WriteFrame(v2gtp.EXI, encoded); err != nil {
			return err
		}

		s.handshakePending = false
		if e.log != nil {
			e.log.Infof("handshake negotiated: namespace=%s schemaID=%d", entry.ProtocolNamespace, entry.SchemaID)
		}
		return nil
	}

	if e.log != nil {
		e.log.Warnf("no compatible protocol in handshake request; dropping frame")
	}
	return nil
}

// handleISO processes one ISO 15118-2 body frame received after the
// handshake has completed: decode, dispatch, header-echo, encode, write.
func (e *Engine) handleISO(conn *transport.Conn, s *peerState, payload []byte) error {
	msg, err := exi.DecodeISO(payload)
	if err != nil {
		if e.log != nil {
			e.log.Warnf("dropping malformed ISO frame: %v", err)
		}
		return nil
	}

	resBody, err := e.dispatch(s, msg.Body)
	if err != nil {
		if errors.Is(err, errFrameIgnored) {
			return nil
		}
		return err
	}
	if resBody == nil {
		// dispatch reports dropped frames through errFrameIgnored; a nil
		// body without an error is dropped the same way.
		return nil
	}

	if e.log != nil {
		e.log.Infof("%s -> %s", msg.Body.MessageName(), resBody.MessageName())
	}

	resHeader := doc.MessageHeader{SessionID: s.sessionID}
	if !resHeader.SessionID.IsSet() && msg.Header.SessionID.IsSet() {
		resHeader.SessionID = msg.Header.SessionID
	}

	res := &doc.V2GMessage{Header: resHeader, Body: resBody}
	encoded, err := exi.EncodeISO(res)
	if err != nil {
		if e.log != nil {
			e.log.Errorf("encoding %s: %v", resBody.MessageName(), err)
		}
		return nil
	}

	return conn.WriteFrame(v2gtp.EXI, encoded)
}

// errFrameIgnored marks a dispatch outcome that logs and drops the frame
// without tearing down the session: unknown or deliberately unhandled
// ISO body kinds (spec.md §4.3 "Deliberately unhandled", §7 tier 3).
var errFrameIgnored = errors.New("session: frame ignored")

// dispatch implements the twelve numbered request/response contracts of
// spec.md §4.3. It returns (nil, errFrameIgnored) for the five
// deliberately unhandled request kinds and for any other undispatched
// body, and latches ev_target_voltage/ev_target_current and session_id
// as a side effect where the contract calls for it.
func (e *Engine) dispatch(s *peerState, body doc.Body) (doc.Body, error) {
	switch req := body.(type) {
	case *doc.SessionSetupReq:
		return e.dispatchSessionSetup(s, req)

	case *doc.ServiceDiscoveryReq:
		return &doc.ServiceDiscoveryRes{
			ResponseCode:      doc.ResponseCodeOK,
			PaymentOptionList: []doc.PaymentOption{doc.PaymentOptionExternalPayment},
			ChargeService: doc.ChargeService{
				ServiceCategory:             doc.ServiceCategoryEVCharging,
				FreeService:                 true,
				SupportedEnergyTransferMode: []doc.EnergyTransferMode{doc.EnergyTransferModeDCExtended},
			},
		}, nil

	case *doc.PaymentServiceSelectionReq:
		return &doc.PaymentServiceSelectionRes{ResponseCode: doc.ResponseCodeOK}, nil

	case *doc.PaymentDetailsReq:
		return &doc.PaymentDetailsRes{ResponseCode: doc.ResponseCodeOK}, nil

	case *doc.AuthorizationReq:
		return &doc.AuthorizationRes{
			ResponseCode:   doc.ResponseCodeOK,
			EVSEProcessing: doc.EVSEProcessingFinished,
		}, nil

	case *doc.ChargeParameterDiscoveryReq:
		return e.dispatchChargeParameterDiscovery(req)

	case *doc.CableCheckReq:
		return &doc.CableCheckRes{
			ResponseCode:   doc.ResponseCodeOK,
			DCEVSEStatus:   e.readyStatus(),
			EVSEProcessing: doc.EVSEProcessingFinished,
		}, nil

	case *doc.PreChargeReq:
		s.evTargetVoltage = req.EVTargetVoltage
		s.evTargetCurrent = req.EVTargetCurrent
		return &doc.PreChargeRes{
			ResponseCode:       doc.ResponseCodeOK,
			DCEVSEStatus:       e.readyStatus(),
			EVSEPresentVoltage: s.evTargetVoltage,
		}, nil

	case *doc.PowerDeliveryReq:
		return &doc.PowerDeliveryRes{
			ResponseCode: doc.ResponseCodeOK,
			EVSEStatus: doc.EVSEStatus{
				Notification: doc.EVSENotificationStopCharging,
				MaxDelay:     e.cfg.NotificationDelay,
			},
		}, nil

	case *doc.CurrentDemandReq:
		s.evTargetVoltage = req.EVTargetVoltage
		s.evTargetCurrent = req.EVTargetCurrent
		return &doc.CurrentDemandRes{
			ResponseCode:       doc.ResponseCodeOK,
			DCEVSEStatus:       e.readyStatus(),
			EVSEPresentVoltage: s.evTargetVoltage,
			EVSEPresentCurrent: s.evTargetCurrent,
		}, nil

	case *doc.WeldingDetectionReq:
		return &doc.WeldingDetectionRes{
			ResponseCode:       doc.ResponseCodeOK,
			DCEVSEStatus:       e.readyStatus(),
			EVSEPresentVoltage: s.evTargetVoltage,
		}, nil

	case *doc.SessionStopReq:
		return &doc.SessionStopRes{ResponseCode: doc.ResponseCodeOK}, nil

	case *doc.ServiceDetailReq, *doc.MeteringReceiptReq, *doc.CertificateUpdateReq,
		*doc.CertificateInstallationReq, *doc.ChargingStatusReq:
		if e.log != nil {
			e.log.Debugf("dropping deliberately unhandled %s", body.MessageName())
		}
		return nil, errFrameIgnored

	default:
		if e.log != nil {
			e.log.Warnf("dropping unknown body %s", body.MessageName())
		}
		return nil, errFrameIgnored
	}
}

func (e *Engine) dispatchSessionSetup(s *peerState, req *doc.SessionSetupReq) (doc.Body, error) {
	raw, err := e.random.SessionID()
	if err != nil {
		return nil, err
	}
	s.sessionID = doc.NewSessionID(raw[:])

	if e.log != nil {
		e.log.Infof("session setup: EVCCID=%s", req.EVCCID)
	}

	return &doc.SessionSetupRes{
		ResponseCode: doc.ResponseCodeOK,
		EVSEID:       e.cfg.EVSEID,
	}, nil
}

func (e *Engine) dispatchChargeParameterDiscovery(req *doc.ChargeParameterDiscoveryReq) (doc.Body, error) {
	code := doc.ResponseCodeOK
	if req.RequestedEnergyTransferMode != doc.EnergyTransferModeDCExtended {
		code = doc.ResponseCodeFailedWrongEnergyTransferMode
	}

	return &doc.ChargeParameterDiscoveryRes{
		ResponseCode:          code,
		EVSEProcessing:        doc.EVSEProcessingFinished,
		DCEVSEChargeParameter: e.cfg.ChargeParameter,
	}, nil
}

func (e *Engine) readyStatus() doc.DCEVSEStatus {
	return doc.DCEVSEStatus{
		Notification: doc.EVSENotificationNone,
		MaxDelay:     e.cfg.NotificationDelay,
		StatusCode:   doc.DCEVSEStatusCodeReady,
	}
}

// teardown logs session-fatal termination: V2GTP header malformed, peer
// read error, or peer EOF (spec.md §7 tier 2). The transport Manager
// closes the socket and re-arms the listener once HandleConn returns.
func (e *Engine) teardown(err error) {
	if e.log == nil {
		return
	}
	if errors.Is(err, io.EOF) {
		e.log.Info("peer closed connection")
		return
	}
	e.log.Warnf("session closed: %v", err)
}
