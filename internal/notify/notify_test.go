package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/ccradio/rotation-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeSender struct {
	channelID string
	content   string
	err       error
}

func (f *fakeSender) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.channelID = channelID
	f.content = content
	return &discordgo.Message{Content: content}, f.err
}

func TestDiscordAnnouncer(t *testing.T) {
	sender := &fakeSender{}
	a := NewDiscordAnnouncer(sender, "C1")

	require.NoError(t, a.Announce(context.Background(), "화산심장"))
	assert.Equal(t, "C1", sender.channelID)
	assert.Equal(t, "화산심장", sender.content)

	sender.err = assert.AnError
	assert.ErrorIs(t, a.Announce(context.Background(), "x"), assert.AnError)
}

func TestSlackAnnouncer(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, NewSlackAnnouncer(srv.URL).Announce(context.Background(), "다음 맵: 붉은 사막"))
	assert.Equal(t, "다음 맵: 붉은 사막", got["text"])
}

func TestMulti(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ok := mocks.NewMockAnnouncer(ctrl)
	failing := mocks.NewMockAnnouncer(ctrl)

	ok.EXPECT().Announce(gomock.Any(), "msg").Return(nil).Times(1)
	failing.EXPECT().Announce(gomock.Any(), "msg").Return(assert.AnError).Times(1)

	err := Multi{failing, ok}.Announce(context.Background(), "msg")
	assert.ErrorIs(t, err, assert.AnError)
}
