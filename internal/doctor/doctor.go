// Package doctor runs local readiness checks for a toolbox deployment: the
// loaded config, the listen address and, when asked, a probe of a running
// daemon over JSON-RPC.
package doctor

import (
	"context"
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"

	"toolbox/go-backend/internal/bootstrap/toolboxconfig"
	"toolbox/go-backend/internal/domains/capability"
)

var hostnamePattern = regexp.MustCompile(`^[a-zA-Z0-9.-]+$`)

type Input struct {
	Config toolboxconfig.Config
	// ProbeAddr is the host:port of a running daemon; empty skips the probe
	// and checks that the configured address is free instead.
	ProbeAddr     string
	MinAPIVersion int
}

type Check struct {
	Name   string `json:"name"`
	Pass   bool   `json:"pass"`
	Reason string `json:"reason,omitempty"`
}

type Report struct {
	Ready            bool      `json:"ready"`
	Checks           []Check   `json:"checks"`
	DisabledFeatures []string  `json:"disabled_features"`
	CheckedAt        time.Time `json:"checked_at"`
}

type Service struct {
	now   func() time.Time
	probe func(ctx context.Context, rpcAddr string) (int, error)
}

func New() *Service {
	return &Service{
		now:   func() time.Time { return time.Now().UTC() },
		probe: probeAPIVersion,
	}
}

func (s *Service) Run(ctx context.Context, input Input) Report {
	if input.MinAPIVersion <= 0 {
		input.MinAPIVersion = 1
	}
	report := Report{
		Ready:            true,
		Checks:           make([]Check, 0, 6),
		DisabledFeatures: []string{},
		CheckedAt:        s.now(),
	}
	appendCheck := func(name string, pass bool, reason string) {
		report.Checks = append(report.Checks, Check{Name: name, Pass: pass, Reason: reason})
		if !pass {
			report.Ready = false
		}
	}

	cfgErr := input.Config.Validate()
	appendCheck("config_valid", cfgErr == nil, errReason(cfgErr))

	caps, capErr := capability.NewSet(input.Config.Features.Disabled)
	appendCheck("features_known", capErr == nil, errReason(capErr))
	if capErr == nil {
		report.DisabledFeatures = caps.Missing()
	}

	addrErr := validateListenAddress(input.Config.Server.RPCAddr)
	appendCheck("rpc_addr_valid", addrErr == nil, errReason(addrErr))

	if strings.TrimSpace(input.ProbeAddr) == "" {
		if addrErr == nil {
			portErr := checkAddrAvailable(input.Config.Server.RPCAddr)
			appendCheck("rpc_addr_available", portErr == nil, errReason(portErr))
		}
		return report
	}

	version, err := s.probe(ctx, input.ProbeAddr)
	if err != nil {
		appendCheck("rpc_reachable", false, err.Error())
		return report
	}
	appendCheck("rpc_reachable", true, "")
	appendCheck("rpc_api_version_min", version >= input.MinAPIVersion,
		failReason(version < input.MinAPIVersion, fmt.Sprintf("api_version=%d < min_api_version=%d", version, input.MinAPIVersion)))
	return report
}

func errReason(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func failReason(failed bool, reason string) string {
	if !failed {
		return ""
	}
	return reason
}

func checkAddrAvailable(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("address %s is unavailable: %w", addr, err)
	}
	_ = ln.Close()
	return nil
}

func validateListenAddress(raw string) error {
	addr := strings.TrimSpace(raw)
	if addr == "" {
		return fmt.Errorf("rpc address is empty")
	}
	host, p, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("rpc address is invalid: %q", addr)
	}
	port, convErr := strconv.Atoi(strings.TrimSpace(p))
	if convErr != nil || port < 0 || port > 65535 {
		return fmt.Errorf("rpc address port is invalid: %q", p)
	}
	host = strings.TrimSpace(host)
	if host == "" || net.ParseIP(host) != nil {
		return nil
	}
	if !hostnamePattern.MatchString(host) {
		return fmt.Errorf("rpc address host is invalid: %q", host)
	}
	return nil
}
