package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"
)

const ipcTimeout = 2 * time.Second

// ipcConn is a request/response client for mpv's JSON IPC protocol.
// mpv interleaves asynchronous events with command replies on the same
// socket; replies are matched by request_id and events are discarded.
type ipcConn struct {
	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
	nextID int64
}

type ipcRequest struct {
	Command   []interface{} `json:"command"`
	RequestID int64         `json:"request_id"`
}

type ipcResponse struct {
	Error     string          `json:"error"`
	Data      json.RawMessage `json:"data"`
	RequestID int64           `json:"request_id"`
	Event     string          `json:"event"`
}

func dialIPC(socket string) (*ipcConn, error) {
	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil, fmt.Errorf("dial mpv socket: %w", err)
	}
	return &ipcConn{
		conn:   conn,
		reader: bufio.NewReader(conn),
	}, nil
}

// command sends a single command and waits for its reply. The decoded
// data payload is returned, or nil for commands without one.
func (c *ipcConn) command(args ...interface{}) (json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	req := ipcRequest{Command: args, RequestID: c.nextID}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal command: %w", err)
	}
	payload = append(payload, '\n')

	deadline := time.Now().Add(ipcTimeout)
	_ = c.conn.SetDeadline(deadline)

	if _, err := c.conn.Write(payload); err != nil {
		return nil, fmt.Errorf("write command: %w", err)
	}

	for {
		line, err := c.reader.ReadBytes('\n')
		if err != nil {
			return nil, fmt.Errorf("read reply: %w", err)
		}

		var resp ipcResponse
		if err := json.Unmarshal(line, &resp); err != nil {
			continue // garbage line, keep scanning
		}
		if resp.Event != "" || resp.RequestID != req.RequestID {
			continue // async event or stale reply
		}
		if resp.Error != "" && resp.Error != "success" {
			return nil, fmt.Errorf("mpv: %s", resp.Error)
		}
		return resp.Data, nil
	}
}

func (c *ipcConn) close() error {
	return c.conn.Close()
}
