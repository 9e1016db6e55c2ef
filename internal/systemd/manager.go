// Package systemd reports service state to the service manager.
package systemd

import (
	"github.com/coreos/go-systemd/v22/daemon"
)

// notifyFunc matches daemon.SdNotify.
type notifyFunc func(unsetEnvironment bool, state string) (bool, error)

// Notifier sends sd_notify messages. Outside systemd every call is a no-op.
type Notifier struct {
	notify notifyFunc
}

// NewNotifier creates a Notifier using $NOTIFY_SOCKET.
func NewNotifier() *Notifier {
	return &Notifier{notify: daemon.SdNotify}
}

// Ready tells systemd start-up is complete.
func (n *Notifier) Ready() (bool, error) {
	return n.notify(false, daemon.SdNotifyReady)
}

// Stopping tells systemd the service is shutting down.
func (n *Notifier) Stopping() (bool, error) {
	return n.notify(false, daemon.SdNotifyStopping)
}

// Status sets the free-form status line shown by systemctl status.
func (n *Notifier) Status(status string) (bool, error) {
	return n.notify(false, "STATUS="+status)
}
