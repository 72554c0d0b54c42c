package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanbanpro/internal/events"
)

// notificationTimeout is how long a toast stays on screen
const notificationTimeout = 3 * time.Second

// eventMsg carries a board event into the update loop
type eventMsg events.Event

// eventsClosedMsg reports that the event subscription ended
type eventsClosedMsg struct{}

// dismissNotificationMsg removes a toast once it has timed out
type dismissNotificationMsg struct {
	id int
}

// waitForEvent blocks until the next board event arrives
func waitForEvent(ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(ev)
	}
}

// dismissAfter schedules removal of the toast with the given id
func dismissAfter(id int) tea.Cmd {
	return tea.Tick(notificationTimeout, func(time.Time) tea.Msg {
		return dismissNotificationMsg{id: id}
	})
}
