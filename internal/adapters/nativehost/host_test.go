package nativehost

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/bnema/session-vault-cli/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDispatcher struct {
	received []application.Message
}

func (s *stubDispatcher) Dispatch(_ context.Context, msg application.Message) (application.MessageReply, error) {
	s.received = append(s.received, msg)
	if msg.Action == "explode" {
		return application.MessageReply{}, fmt.Errorf("%w: %q", application.ErrUnknownAction, msg.Action)
	}
	return application.MessageReply{Success: true}, nil
}

func frame(t *testing.T, payload string) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, WriteMessage(&buf, []byte(payload)))
	return buf.Bytes()
}

func readReplies(t *testing.T, out *bytes.Buffer) []application.MessageReply {
	t.Helper()

	var replies []application.MessageReply
	for out.Len() > 0 {
		data, err := ReadMessage(out)
		require.NoError(t, err)

		var reply application.MessageReply
		require.NoError(t, json.Unmarshal(data, &reply))
		replies = append(replies, reply)
	}
	return replies
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMessageFraming(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteMessage(&buf, []byte(`{"a":1}`)))
	assert.Equal(t, uint32(7), binary.LittleEndian.Uint32(buf.Bytes()[:4]))

	got, err := ReadMessage(&buf)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestReadMessageRejectsOversizedLength(t *testing.T) {
	t.Parallel()

	header := make([]byte, 4)
	binary.LittleEndian.PutUint32(header, MaxMessageSize+1)

	_, err := ReadMessage(bytes.NewReader(header))
	require.Error(t, err)
	assert.ErrorContains(t, err, "message too large")
}

func TestWriteMessageRejectsOversizedPayload(t *testing.T) {
	t.Parallel()

	err := WriteMessage(io.Discard, make([]byte, MaxMessageSize+1))
	require.Error(t, err)
}

func TestHostRunAnswersEachMessageUntilEOF(t *testing.T) {
	t.Parallel()

	var in bytes.Buffer
	in.Write(frame(t, `{"action":"setCookies","cookies":[{"domain":"example.com","name":"a","value":"1"}]}`))
	in.Write(frame(t, `{"action":"explode"}`))
	in.Write(frame(t, `not json`))
	in.Write(frame(t, `{"action":"deleteAllCookies","url":"https://example.com/x"}`))

	dispatcher := &stubDispatcher{}
	var out bytes.Buffer
	host := NewHost(dispatcher, &in, &out, discardLogger())

	require.NoError(t, host.Run(context.Background()))

	replies := readReplies(t, &out)
	require.Len(t, replies, 4)
	assert.True(t, replies[0].Success)
	assert.False(t, replies[1].Success)
	assert.Contains(t, replies[1].Message, "unknown action")
	assert.False(t, replies[2].Success)
	assert.Contains(t, replies[2].Message, "invalid message")
	assert.True(t, replies[3].Success)

	require.Len(t, dispatcher.received, 3)
	assert.Equal(t, application.ActionSetCookies, dispatcher.received[0].Action)
	require.Len(t, dispatcher.received[0].Cookies, 1)
	assert.Equal(t, "example.com", dispatcher.received[0].Cookies[0].Domain)
	assert.Equal(t, "https://example.com/x", dispatcher.received[2].URL)
}

func TestHostRunTruncatedMessageReturnsError(t *testing.T) {
	t.Parallel()

	full := frame(t, `{"action":"setCookies"}`)
	host := NewHost(&stubDispatcher{}, bytes.NewReader(full[:len(full)-3]), io.Discard, discardLogger())

	err := host.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestHostRunStopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	host := NewHost(&stubDispatcher{}, bytes.NewReader(frame(t, `{"action":"setCookies"}`)), io.Discard, discardLogger())
	require.ErrorIs(t, host.Run(ctx), context.Canceled)
}
