// Package console drives a recorder from a line oriented script
package console

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lonng/mjrecorder/internal/board"
	"github.com/lonng/mjrecorder/internal/command"
	"github.com/lonng/mjrecorder/internal/recorder"
	"github.com/lonng/mjrecorder/pkg/errutil"
	"github.com/lonng/mjrecorder/protocol"
	"github.com/pborman/uuid"
	log "github.com/sirupsen/logrus"
)

const fieldSession = "session"

type options struct {
	quiet  bool
	asJSON bool
}

// Option configures a Session
type Option func(*options)

// Quiet renders the board only once, after the whole script
func Quiet(quiet bool) Option {
	return func(opts *options) {
		opts.quiet = quiet
	}
}

// JSON renders protocol.StateResponse lines instead of the text board
func JSON(asJSON bool) Option {
	return func(opts *options) {
		opts.asJSON = asJSON
	}
}

// Session one scoring session over a recorder
type Session struct {
	id     string
	rec    *recorder.Recorder
	out    io.Writer
	opts   options
	logger *log.Entry

	failed int
}

// NewSession returns a session with a fresh id
func NewSession(out io.Writer, opts ...Option) *Session {
	s := &Session{
		id:  uuid.New(),
		out: out,
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	s.logger = log.WithFields(log.Fields{"component": "console", fieldSession: s.id})
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) Logger() *log.Entry { return s.logger }

// Attach binds the recorder the commands are applied to
func (s *Session) Attach(rec *recorder.Recorder) {
	s.rec = rec
}

// Failed number of lines that could not be applied
func (s *Session) Failed() int { return s.failed }

// Run applies every line of in. Bad lines are reported and skipped, only read
// errors stop the session.
func (s *Session) Run(in io.Reader) error {
	if s.rec == nil {
		return errutil.ErrIllegalParameter
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		cmd, err := command.Parse(scanner.Text())
		if err == nil && cmd == nil {
			continue
		}
		if err == nil {
			err = cmd.Apply(s.rec)
		}
		if err != nil {
			s.failed++
			s.report(lineNo, err)
			continue
		}

		s.logger.Debugf("第%d行: %s", lineNo, cmd)
		if _, ok := cmd.(command.Show); ok || !s.opts.quiet {
			if err := s.render(); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if s.opts.quiet {
		return s.render()
	}
	return nil
}

func (s *Session) report(lineNo int, err error) {
	code := errutil.Code(err)
	s.logger.Warnf("第%d行执行失败: Code=%d Error=%v", lineNo, code, err)

	if s.opts.asJSON {
		json.NewEncoder(s.out).Encode(&protocol.ErrorResponse{Code: code, Error: err.Error()})
		return
	}
	fmt.Fprintf(s.out, "line %d: error %d: %v\n", lineNo, code, err)
}

func (s *Session) render() error {
	if s.opts.asJSON {
		return board.RenderJSON(s.out, s.rec)
	}
	if err := board.Render(s.out, s.rec); err != nil {
		return err
	}
	_, err := io.WriteString(s.out, "\n")
	return err
}
