package wifi

import (
	"context"
	"fmt"
	"os/exec"
)

// RadioAdmin is the OS-facing capability the channel hopper drives,
// kept as an interface (spec.md §9 design note) so the hopper's state
// machine is testable against a fake without touching a real NIC.
type RadioAdmin interface {
	EnableMonitor(name string) error
	SetChannel(name string, ch uint16) error
}

// IwRadioAdmin drives a Linux NIC with the `iw` and `ip` command-line
// tools, the same way wireless-scanning tooling conventionally shells
// out rather than linking netlink directly.
type IwRadioAdmin struct {
	Runner func(ctx context.Context, name string, args ...string) error
}

// NewIwRadioAdmin returns an IwRadioAdmin that shells out via os/exec.
func NewIwRadioAdmin() *IwRadioAdmin {
	return &IwRadioAdmin{Runner: runCommand}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s %v: %w (%s)", name, args, err, out)
	}
	return nil
}

func (r *IwRadioAdmin) EnableMonitor(name string) error {
	ctx := context.Background()
	if err := r.Runner(ctx, "ip", "link", "set", name, "down"); err != nil {
		return err
	}
	if err := r.Runner(ctx, "iw", name, "set", "monitor", "none"); err != nil {
		return err
	}
	return r.Runner(ctx, "ip", "link", "set", name, "up")
}

func (r *IwRadioAdmin) SetChannel(name string, ch uint16) error {
	return r.Runner(context.Background(), "iw", "dev", name, "set", "channel", fmt.Sprint(ch))
}
