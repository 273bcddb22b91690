package hooks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestShorten(t *testing.T) {
	cases := []struct {
		file  string
		short string
	}{
		{"/root/mjrecorder/internal/recorder/recorder.go", "recorder/recorder.go"},
		{"recorder/recorder.go", "recorder/recorder.go"},
		{"main.go", "main.go"},
	}

	for _, c := range cases {
		if s := shorten(c.file); s != c.short {
			t.Errorf("%s: expect %s, got %s", c.file, c.short, s)
		}
	}
}

func TestHook(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.Out = buf
	l.Formatter = &logrus.TextFormatter{DisableColors: true}
	l.AddHook(NewHook())

	l.WithField("component", "test").Info("hello")

	if !strings.Contains(buf.String(), "source=") || !strings.Contains(buf.String(), "hooks/filename_test.go:") {
		t.Fatalf("missing source field: %s", buf.String())
	}

	if len(NewHook(logrus.ErrorLevel).Levels()) != 1 || len(NewHook().Levels()) != len(logrus.AllLevels) {
		t.Fail()
	}
}
