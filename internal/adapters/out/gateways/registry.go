// Package gateways holds the payment methods configured for the storefront.
package gateways

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// Registry implements ports.PaymentGateways from a static list.
type Registry struct {
	gateways []ports.Gateway
}

// Parse reads "code:Name,code:Name". A missing name falls back to the code.
func Parse(raw string) (*Registry, error) {
	r := &Registry{}
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		code, name, _ := strings.Cut(part, ":")
		code, name = strings.TrimSpace(code), strings.TrimSpace(name)
		if code == "" {
			return nil, errs.NewValueIsInvalidErrorWithCause("payment gateways", fmt.Errorf("entry %q has no code", part))
		}
		if _, dup := seen[code]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("payment gateways", fmt.Errorf("code %q is listed twice", code))
		}
		seen[code] = struct{}{}

		if name == "" {
			name = code
		}
		r.gateways = append(r.gateways, ports.Gateway{Code: code, Name: name})
	}
	return r, nil
}

func (r *Registry) ListGateways() []ports.Gateway {
	return append([]ports.Gateway(nil), r.gateways...)
}
