// Package evse holds the EVSE's immutable station identity and DC charge
// envelope, modeled the way matter.NodeConfig bundles a node's fixed
// identity fields and examples/common.Options bundles a device's startup
// defaults.
package evse

import "github.com/v2gredux/secc-go/pkg/doc"

// StationConfig is the EVSE's fixed configuration record: the DC charge
// envelope it always reports during ChargeParameterDiscovery, its
// identity, and the network parameters SDP and the TCP listener bind to.
type StationConfig struct {
	EVSEID            string
	ProtocolNamespace string
	NotificationDelay uint16

	ChargeParameter doc.DCEVSEChargeParameter

	TCPPort    int
	SDPPort    int
	SDPGroup   string
	SDPBacklog int
}

// DefaultStationConfig returns the station configuration this EVSE always
// reports: max current 3 A, max power 2 kW, max voltage 900 V, min current
// 0 A, min voltage 150 V, peak ripple 0 A.
func DefaultStationConfig() StationConfig {
	pv := func(value int16, mult int8, unit doc.Unit) doc.PhysicalValue {
		return doc.PhysicalValue{Value: value, Multiplier: mult, Unit: unit}
	}

	return StationConfig{
		EVSEID:            "ZZ00000",
		ProtocolNamespace: doc.ISOMsgDefNamespace,
		NotificationDelay: 12,

		ChargeParameter: doc.DCEVSEChargeParameter{
			MaximumCurrentLimit: pv(3, 0, doc.UnitAmpere),
			MaximumPowerLimit:   pv(2, 3, doc.UnitWatt), // 2 * 10^3 W
			MaximumVoltageLimit: pv(900, 0, doc.UnitVolt),
			MinimumCurrentLimit: pv(0, 0, doc.UnitAmpere),
			MinimumVoltageLimit: pv(150, 0, doc.UnitVolt),
			PeakCurrentRipple:   pv(0, 0, doc.UnitAmpere),
		},

		TCPPort:    51111,
		SDPPort:    15118,
		SDPGroup:   "ff02::1",
		SDPBacklog: 1,
	}
}
