package nativehost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/session-vault-cli/internal/application"
)

// Dispatcher answers one decoded extension message.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg application.Message) (application.MessageReply, error)
}

// Host reads messages from in and writes one reply per message to out until
// in is closed.
type Host struct {
	dispatcher Dispatcher
	in         io.Reader
	out        io.Writer
	logger     *slog.Logger
}

func NewHost(dispatcher Dispatcher, in io.Reader, out io.Writer, logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}

	return &Host{dispatcher: dispatcher, in: in, out: out, logger: logger}
}

// Run returns nil when the browser closes the pipe.
func (h *Host) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := h.processOneMessage(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (h *Host) processOneMessage(ctx context.Context) error {
	data, err := ReadMessage(h.in)
	if err != nil {
		return err
	}

	var msg application.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		h.logger.Debug("native message rejected", "error", err)
		return h.reply(application.MessageReply{Message: fmt.Sprintf("invalid message: %v", err)})
	}

	reply, err := h.dispatcher.Dispatch(ctx, msg)
	if err != nil {
		h.logger.Debug("native message failed", "action", msg.Action, "error", err)
		reply = application.MessageReply{Message: err.Error()}
	}

	return h.reply(reply)
}

func (h *Host) reply(reply application.MessageReply) error {
	payload, err := json.Marshal(reply)
	if err != nil {
		return fmt.Errorf("encode native reply: %w", err)
	}

	return WriteMessage(h.out, payload)
}
