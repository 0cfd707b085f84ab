package application

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/bnema/session-vault-cli/internal/domain"
)

type MessageAction string

const (
	ActionSetCookies       MessageAction = "setCookies"
	ActionDeleteAllCookies MessageAction = "deleteAllCookies"
	ActionRestoreSession   MessageAction = "restoreSession"
	ActionRecentSessions   MessageAction = "recentSessions"
)

var ErrUnknownAction = errors.New("unknown action")

// Message is a request sent by an extension front end.
type Message struct {
	Action    MessageAction   `json:"action"`
	URL       string          `json:"url,omitempty"`
	Cookies   []domain.Cookie `json:"cookies,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
}

type RecentSessionView struct {
	SessionID  string   `json:"sessionId"`
	Timestamp  int64    `json:"timestamp"`
	Domain     string   `json:"domain"`
	ExpiryDate *float64 `json:"expiryDate,omitempty"`
	Status     string   `json:"status"`
}

type MessageReply struct {
	Success  bool                `json:"success"`
	Message  string              `json:"message,omitempty"`
	Sessions []RecentSessionView `json:"sessions,omitempty"`
}

// MessageDispatcher answers extension messages with the synchronizer and
// restore services.
type MessageDispatcher struct {
	sync    *CookieSynchronizer
	restore *RestoreService
	history *HistoryService
}

func NewMessageDispatcher(sync *CookieSynchronizer, restore *RestoreService, history *HistoryService) *MessageDispatcher {
	return &MessageDispatcher{sync: sync, restore: restore, history: history}
}

// Dispatch never fails on action errors; they are folded into Success=false.
// It only returns an error for an unknown action.
func (d *MessageDispatcher) Dispatch(ctx context.Context, msg Message) (MessageReply, error) {
	switch msg.Action {
	case ActionSetCookies:
		_, err := d.sync.InstallCookies(ctx, msg.Cookies)
		return MessageReply{Success: err == nil}, nil

	case ActionDeleteAllCookies:
		_, err := d.sync.DeleteAllCookiesForDomain(ctx, hostOf(msg.URL))
		return MessageReply{Success: err == nil}, nil

	case ActionRestoreSession:
		result, err := d.restore.Restore(ctx, msg.SessionID)
		banner := RestoreBanner(result, err)
		return MessageReply{Success: err == nil, Message: banner.Message}, nil

	case ActionRecentSessions:
		entries, err := d.history.GetRecentSessions(ctx)
		if err != nil {
			return MessageReply{Success: false}, nil
		}
		return MessageReply{Success: true, Sessions: RecentSessionViews(entries)}, nil

	default:
		return MessageReply{}, fmt.Errorf("%w: %q", ErrUnknownAction, msg.Action)
	}
}

// RecentSessionViews converts history entries to their wire shape, with
// timestamps in Unix milliseconds.
func RecentSessionViews(entries []domain.SessionHistoryEntry) []RecentSessionView {
	views := make([]RecentSessionView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, RecentSessionView{
			SessionID:  string(entry.SessionID),
			Timestamp:  entry.Timestamp.UnixMilli(),
			Domain:     entry.Domain,
			ExpiryDate: entry.ExpiryDate,
			Status:     string(entry.Status),
		})
	}
	return views
}

func hostOf(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	return parsed.Hostname()
}
