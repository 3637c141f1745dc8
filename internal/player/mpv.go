package player

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// DefaultVolume is what the accessors report before the player answers.
// It matches mpv's own startup volume.
const DefaultVolume = 100

// Options configures how the mpv process is launched.
type Options struct {
	Binary    string   // mpv binary, defaults to "mpv"
	Socket    string   // IPC socket path, defaults to a per-user temp path
	ExtraArgs []string // appended to the mpv command line
}

// DefaultSocket returns the socket path used when none is configured.
// It is stable per user so that a second process (e.g. `croon tail`)
// can attach to the same player.
func DefaultSocket() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "croon-mpv.sock")
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("croon-mpv-%d.sock", os.Getuid()))
}

// MPV drives an mpv process over its JSON IPC socket. It satisfies
// Port; every accessor swallows IPC failures and reports a safe
// default instead, per the port contract.
type MPV struct {
	cmd    *exec.Cmd
	ipc    *ipcConn
	socket string
}

// Start launches a new mpv process in idle mode and connects to its
// IPC socket. Audio only; URL resolution is delegated to mpv's ytdl
// hook, so watch-page URLs play directly.
func Start(opts Options) (*MPV, error) {
	binary := opts.Binary
	if binary == "" {
		binary = "mpv"
	}
	socket := opts.Socket
	if socket == "" {
		socket = DefaultSocket()
	}

	// A stale socket from a crashed run would break the bind.
	_ = os.Remove(socket)

	args := []string{
		"--idle=yes",
		"--no-video",
		"--no-terminal",
		"--ytdl=yes",
		"--input-ipc-server=" + socket,
	}
	args = append(args, opts.ExtraArgs...)

	cmd := exec.Command(binary, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", binary, err)
	}

	ipc, err := waitForSocket(socket, 5*time.Second)
	if err != nil {
		_ = cmd.Process.Kill()
		return nil, err
	}

	return &MPV{cmd: cmd, ipc: ipc, socket: socket}, nil
}

// Attach connects to an already running mpv instance by socket path,
// without owning the process. Used by `croon tail` to observe the
// player from another terminal.
func Attach(socket string) (*MPV, error) {
	if socket == "" {
		socket = DefaultSocket()
	}
	ipc, err := dialIPC(socket)
	if err != nil {
		return nil, err
	}
	return &MPV{ipc: ipc, socket: socket}, nil
}

func waitForSocket(socket string, timeout time.Duration) (*ipcConn, error) {
	deadline := time.Now().Add(timeout)
	for {
		ipc, err := dialIPC(socket)
		if err == nil {
			return ipc, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("mpv socket %s not ready: %w", socket, err)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// Socket returns the IPC socket path in use.
func (m *MPV) Socket() string {
	return m.socket
}

// Close shuts the player down. The process is asked to quit first; if
// it does not own a process (Attach) only the connection is closed.
func (m *MPV) Close() error {
	if m.cmd == nil {
		return m.ipc.close()
	}

	_, _ = m.ipc.command("quit")
	err := m.ipc.close()

	done := make(chan struct{})
	go func() {
		_ = m.cmd.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		_ = m.cmd.Process.Kill()
		<-done
	}
	return err
}

// Play loads url and starts playing it, replacing the current source.
func (m *MPV) Play(url string) {
	_, _ = m.ipc.command("loadfile", url, "replace")
	m.Pause(false)
}

// Pause sets the paused state.
func (m *MPV) Pause(paused bool) {
	_, _ = m.ipc.command("set_property", "pause", paused)
}

// TogglePause inverts the paused state.
func (m *MPV) TogglePause() {
	_, _ = m.ipc.command("cycle", "pause")
}

// Stop stops playback and unloads the current source.
func (m *MPV) Stop() {
	_, _ = m.ipc.command("stop")
}

// Seek moves the playback position.
func (m *MPV) Seek(seconds float64, mode SeekMode) {
	_, _ = m.ipc.command("seek", seconds, string(mode))
}

// SetVolume sets the volume, clamped to 0-100.
func (m *MPV) SetVolume(level int) {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	_, _ = m.ipc.command("set_property", "volume", level)
}

// Volume returns the current volume, or DefaultVolume if unavailable.
func (m *MPV) Volume() int {
	return int(m.getFloat("volume", DefaultVolume))
}

// Position returns the playback position in seconds.
func (m *MPV) Position() float64 {
	return m.getFloat("time-pos", 0)
}

// Duration returns the total duration of the current source in seconds.
func (m *MPV) Duration() float64 {
	return m.getFloat("duration", 0)
}

// IsPaused reports whether playback is paused.
func (m *MPV) IsPaused() bool {
	return m.getBool("pause", false)
}

// IsPlaying reports whether the player is actively producing audio:
// not paused and not sitting idle between tracks.
func (m *MPV) IsPlaying() bool {
	return !m.getBool("pause", true) && !m.getBool("core-idle", true)
}

// Media returns the URL of the loaded source, or "" when idle.
func (m *MPV) Media() string {
	return m.getString("path", "")
}

func (m *MPV) getFloat(property string, fallback float64) float64 {
	data, err := m.ipc.command("get_property", property)
	if err != nil || data == nil {
		return fallback
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fallback
	}
	return v
}

func (m *MPV) getBool(property string, fallback bool) bool {
	data, err := m.ipc.command("get_property", property)
	if err != nil || data == nil {
		return fallback
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return fallback
	}
	return v
}

func (m *MPV) getString(property string, fallback string) string {
	data, err := m.ipc.command("get_property", property)
	if err != nil || data == nil {
		return fallback
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fallback
	}
	return v
}
