package content

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

const readBufferSize = 4096

// ErrSessionClosed is returned by writes to a closed session.
var ErrSessionClosed = errors.New("terminal session closed")

// SessionCallbacks receive session output. Both run on the reader goroutine.
type SessionCallbacks struct {
	Output func(chunk []byte)
	// Exit is called once, after the process has been reaped.
	Exit func(err error)
}

// Session is a process attached to a pseudo terminal.
type Session struct {
	cmd *exec.Cmd
	pty *os.File

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// StartSession runs argv on a new pseudo terminal of rows x cols cells.
func StartSession(argv []string, rows, cols uint16, cb SessionCallbacks) (*Session, error) {
	if len(argv) == 0 {
		return nil, errors.New("no command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), "TERM=dumb")

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: rows, Cols: cols})
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", argv[0], err)
	}

	s := &Session{cmd: cmd, pty: f, done: make(chan struct{})}
	go s.readLoop(cb)
	return s, nil
}

func (s *Session) readLoop(cb SessionCallbacks) {
	defer close(s.done)

	buf := make([]byte, readBufferSize)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 && cb.Output != nil {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			cb.Output(chunk)
		}
		if err != nil {
			break
		}
	}

	waitErr := s.cmd.Wait()
	if cb.Exit != nil {
		cb.Exit(waitErr)
	}
}

// Pid returns the process id of the session leader.
func (s *Session) Pid() int { return s.cmd.Process.Pid }

// Write sends input to the process.
func (s *Session) Write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if _, err := s.pty.Write(p); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Resize changes the terminal size.
func (s *Session) Resize(rows, cols uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	return pty.Setsize(s.pty, &pty.Winsize{Rows: rows, Cols: cols})
}

// Close hangs up the process group and releases the terminal. It does not
// wait for the process; Done is closed once it has been reaped.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	pid := s.cmd.Process.Pid
	s.mu.Unlock()

	// A stopped group ignores SIGHUP until continued.
	_ = unix.Kill(-pid, unix.SIGCONT)
	_ = unix.Kill(-pid, unix.SIGHUP)
	return s.pty.Close()
}

// Done is closed after the process exited and all output was delivered.
func (s *Session) Done() <-chan struct{} { return s.done }
