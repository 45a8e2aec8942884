package room

import (
	"context"

	"bridge-server/pkg/bridge"
)

const logMessageLimit = 25

// addLogMessages adds log messages, keeping only the most recent
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*bridge.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

// LogMessages returns the most recent log messages, oldest first
func (d *Dealer) LogMessages(ctx context.Context) ([]*bridge.LogMessage, error) {
	var messages []*bridge.LogMessage
	err := d.exec(ctx, func() {
		messages = append([]*bridge.LogMessage{}, d.logMessages...)
	})

	return messages, err
}
