package logger

import (
	"context"
	"os"
	"path/filepath"
	"sync"
)

// ReopenableWriteSyncer is the dashboard's log file sink. Reload swaps in a
// freshly opened file at the same path so logrotate can move the old one away.
type ReopenableWriteSyncer struct {
	path string

	mu   sync.RWMutex
	file *os.File
}

func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	ws := &ReopenableWriteSyncer{
		path: path,
	}
	if err := ws.Reload(); err != nil {
		return nil, err
	}
	return ws, nil
}

func (ws *ReopenableWriteSyncer) open() (*os.File, error) {
	if dir := filepath.Dir(ws.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(ws.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// Reload opens the path again and closes the previous file once no write is using it.
func (ws *ReopenableWriteSyncer) Reload() error {
	file, err := ws.open()
	if err != nil {
		return err
	}
	ws.mu.Lock()
	old := ws.file
	ws.file = file
	ws.mu.Unlock()
	if old != nil {
		return old.Close()
	}
	return nil
}

// ReloadOn reloads the file for every value received on signals until ctx is
// done or signals is closed. done, when set, gets the result of each reload.
func (ws *ReopenableWriteSyncer) ReloadOn(ctx context.Context, signals <-chan os.Signal, done func(error)) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-signals:
			if !ok {
				return
			}
			err := ws.Reload()
			if done != nil {
				done(err)
			}
		}
	}
}

func (ws *ReopenableWriteSyncer) Path() string {
	return ws.path
}

func (ws *ReopenableWriteSyncer) Sync() error {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.file.Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.file.Close()
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (n int, err error) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.file.Write(p)
}
