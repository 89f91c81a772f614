package sdp

import "net"

// ResolveLinkLocalAddress walks net.Interfaces() for the interface named
// ifname and returns its first fe80::/10 address. Comparison is ordinary
// Go string equality against iface.Name — the source's sizeof(ifname)
// pointer-length bug (spec §9 open question (c)) does not apply here.
func ResolveLinkLocalAddress(ifname string) (net.IP, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	for _, iface := range ifaces {
		if iface.Name != ifname {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return nil, err
		}

		for _, a := range addrs {
			ip := addrIP(a)
			if ip == nil || ip.To4() != nil {
				continue
			}
			if ip.IsLinkLocalUnicast() {
				return ip, nil
			}
		}

		return nil, ErrNoLinkLocalAddress
	}

	return nil, ErrInterfaceNotFound
}

func addrIP(a net.Addr) net.IP {
	switch v := a.(type) {
	case *net.IPNet:
		return v.IP
	case *net.IPAddr:
		return v.IP
	default:
		return nil
	}
}
