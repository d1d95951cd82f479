package healthservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestReady(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(topups, users *MockPinger)
		expectedMsg string
	}{
		{
			name: "Both stores answer",
			prepareMock: func(topups, users *MockPinger) {
				topups.EXPECT().Ping(gomock.Any()).Return(nil)
				users.EXPECT().Ping(gomock.Any()).Return(nil)
			},
		},
		{
			name: "Topups store down",
			prepareMock: func(topups, users *MockPinger) {
				topups.EXPECT().Ping(gomock.Any()).Return(errors.New("403 forbidden"))
				users.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()
			},
			expectedMsg: "topups store: 403 forbidden",
		},
		{
			name: "Users store down",
			prepareMock: func(topups, users *MockPinger) {
				topups.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()
				users.EXPECT().Ping(gomock.Any()).Return(errors.New("unable to parse range"))
			},
			expectedMsg: "users store: unable to parse range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			topups := NewMockPinger(ctrl)
			users := NewMockPinger(ctrl)
			tt.prepareMock(topups, users)

			err := New(topups, users).Ready(context.Background())
			if tt.expectedMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.expectedMsg)
		})
	}
}
