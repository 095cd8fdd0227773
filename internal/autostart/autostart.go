// Package autostart registers clipstash to start with the user's session.
//
// Registration goes through kardianos/service, which maps to launchd on
// macOS, systemd on Linux, and the service manager on Windows.
package autostart

import (
	"fmt"
	"os"

	"github.com/kardianos/service"
)

const name = "clipstash"

// noop satisfies service.Interface. Install/Uninstall never run the program;
// the daemon is launched by the OS service manager with the recorded
// arguments.
type noop struct{}

func (noop) Start(service.Service) error { return nil }
func (noop) Stop(service.Service) error  { return nil }

// newConfig builds the service definition. The unit must exec the run
// subcommand: the cobra root alone only prints usage. The service manager
// owns no terminal, so the TUI stays off.
func newConfig() (*service.Config, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	return &service.Config{
		Name:        name,
		DisplayName: "clipstash",
		Description: "Clipboard history manager",
		Executable:  exe,
		Arguments:   []string{"run", "--no-tui"},
		Option: service.KeyValue{
			"UserService": true,
			"RunAtLoad":   true,
		},
	}, nil
}

func newService() (service.Service, error) {
	cfg, err := newConfig()
	if err != nil {
		return nil, err
	}
	return service.New(noop{}, cfg)
}

// Install performs one-time autostart registration with the OS.
func Install() error {
	s, err := newService()
	if err != nil {
		return err
	}
	if err := s.Install(); err != nil {
		return fmt.Errorf("install service: %w", err)
	}
	return nil
}

// Uninstall removes the autostart registration.
func Uninstall() error {
	s, err := newService()
	if err != nil {
		return err
	}
	if err := s.Uninstall(); err != nil {
		return fmt.Errorf("uninstall service: %w", err)
	}
	return nil
}
