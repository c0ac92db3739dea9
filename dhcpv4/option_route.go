package dhcpv4

import (
	"fmt"
	"net"

	"github.com/pkg/errors"

	"github.com/go-dhcp/dhcpwire/wire"
)

// ClasslessRoute is one (destination, router) pair from a Classless
// Static Route option (RFC 3442).
type ClasslessRoute struct {
	Dest   net.IPNet
	Router net.IP
}

func (r ClasslessRoute) String() string {
	return fmt.Sprintf("%s via %s", r.Dest.String(), r.Router)
}

// ClasslessStaticRouteOption carries a list of classless routes, option
// 121.
type ClasslessStaticRouteOption struct {
	Routes []ClasslessRoute
}

func (o *ClasslessStaticRouteOption) Code() Code { return CodeClasslessStaticRoute }
func (o *ClasslessStaticRouteOption) String() string {
	return fmt.Sprintf("ClasslessStaticRoute: %v", o.Routes)
}
func (o *ClasslessStaticRouteOption) Value() ([]byte, error) {
	w := wire.NewWriter(0)
	for _, route := range o.Routes {
		prefixLen, _ := route.Dest.Mask.Size()
		if prefixLen < 0 || prefixLen > 32 {
			return nil, errors.Errorf("classless route prefix length %d out of range", prefixLen)
		}
		sigBytes := (prefixLen + 7) / 8
		ip4 := route.Dest.IP.To4()
		if ip4 == nil {
			return nil, errors.Errorf("classless route destination %s is not IPv4", route.Dest.IP)
		}
		if err := w.WriteU8(uint8(prefixLen)); err != nil {
			return nil, err
		}
		if err := w.WriteBytes(ip4[:sigBytes]); err != nil {
			return nil, err
		}
		if err := w.WriteIPv4(route.Router); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// decodeClasslessRoutes parses the RFC 3442 route list: a one-byte
// prefix length, that many significant destination octets, then four
// router octets, repeated to the end of data.
func decodeClasslessRoutes(data []byte) ([]ClasslessRoute, error) {
	r := wire.NewReader(data)
	var routes []ClasslessRoute
	for r.Len() > 0 {
		prefixLen, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		if prefixLen > 32 {
			return nil, errors.Errorf("classless route prefix length %d exceeds 32", prefixLen)
		}
		sigBytes := (int(prefixLen) + 7) / 8
		dest := make([]byte, 4)
		sig, err := r.ReadArray(sigBytes)
		if err != nil {
			return nil, errors.Wrap(err, "classless route destination")
		}
		copy(dest, sig)
		router, err := r.ReadIPv4(4)
		if err != nil {
			return nil, errors.Wrap(err, "classless route router")
		}
		routes = append(routes, ClasslessRoute{
			Dest:   net.IPNet{IP: net.IP(dest), Mask: net.CIDRMask(int(prefixLen), 32)},
			Router: router,
		})
	}
	return routes, nil
}
