package daylog

import (
	"bufio"
	"os"
	"sync"
)

// lockedFile couples the open log file with the mutex that serializes access to it.
// The file is only reachable through write, so no caller can bypass the lock.
type lockedFile struct {
	mu         sync.Mutex
	file       *os.File
	w          *bufio.Writer
	syncWrites bool
}

func newLockedFile(file *os.File, syncWrites bool) *lockedFile {
	return &lockedFile{
		file:       file,
		w:          bufio.NewWriterSize(file, 2*maxLineBytes),
		syncWrites: syncWrites,
	}
}

// write appends one complete entry and flushes it before releasing the lock.
// On failure the buffered bytes are discarded so the next entry starts clean.
func (f *lockedFile) write(entry []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.w.Write(entry); err != nil {
		f.w.Reset(f.file)
		return err
	}
	if err := f.w.Flush(); err != nil {
		f.w.Reset(f.file)
		return err
	}
	if f.syncWrites {
		return f.file.Sync()
	}
	return nil
}

// name returns the path the file was opened with.
func (f *lockedFile) name() string {
	return f.file.Name()
}
