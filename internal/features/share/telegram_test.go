package share

import (
	"path/filepath"
	"testing"
)

func TestParseChatID(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "positive id", in: "123456789", want: 123456789},
		{name: "negative group id", in: "-1003190218710", want: -1003190218710},
		{name: "empty", in: "", wantErr: true},
		{name: "not a number", in: "channel", wantErr: true},
		{name: "zero", in: "0", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseChatID(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseChatID(%q) = %d, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChatID(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseChatID(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewSenderWithoutCredentials(t *testing.T) {
	if _, err := NewSender("", "42"); err == nil {
		t.Error("expected an error without a bot token")
	}
	if _, err := NewSender("token", ""); err == nil {
		t.Error("expected an error without a chat id")
	}
}

func TestSendChartMissingFile(t *testing.T) {
	s := &Sender{chatID: 42}
	err := s.SendChart(filepath.Join(t.TempDir(), "absent.png"), "caption")
	if err == nil {
		t.Fatal("expected an error for a missing chart image")
	}
}
