package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"
)

// ipc speaks mpv's newline delimited JSON protocol over a unix socket,
// one connection per request.
type ipc struct {
	socket string
	mu     sync.Mutex
}

const (
	ipcAttempts = 3
	ipcBackoff  = 100 * time.Millisecond
	ipcTimeout  = time.Second
)

// reachable reports whether mpv accepts connections yet.
func (c *ipc) reachable() bool {
	conn, err := net.DialTimeout("unix", c.socket, ipcTimeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// call runs one command, retrying while mpv is busy or restarting its socket.
func (c *ipc) call(args ...any) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	for attempt := 1; attempt <= ipcAttempts; attempt++ {
		var data any
		if data, err = c.roundTrip(args); err == nil {
			return data, nil
		}
		time.Sleep(ipcBackoff * time.Duration(attempt))
	}
	return nil, fmt.Errorf("mpv %v: %w", args[0], err)
}

func (c *ipc) roundTrip(args []any) (any, error) {
	conn, err := net.DialTimeout("unix", c.socket, ipcTimeout)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(ipcTimeout)); err != nil {
		return nil, err
	}

	request, err := json.Marshal(map[string][]any{"command": args})
	if err != nil {
		return nil, err
	}
	if _, err := conn.Write(append(request, '\n')); err != nil {
		return nil, err
	}

	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return nil, err
	}
	return decodeResponse(line)
}

// decodeResponse unpacks one reply line. mpv reports "success" in the error field.
func decodeResponse(line []byte) (any, error) {
	var reply struct {
		Data  any    `json:"data"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(line, &reply); err != nil {
		return nil, fmt.Errorf("mpv reply %q: %w", line, err)
	}

	if reply.Error != "success" && reply.Error != "" {
		return nil, fmt.Errorf("mpv: %s", reply.Error)
	}
	return reply.Data, nil
}
