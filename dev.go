package main

import (
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/howeyc/fsnotify"

	"github.com/nf/ch8/system"
)

// watchROM resets r with a freshly loaded machine each time romFile
// changes. Closing the returned watcher stops it.
func watchROM(romFile string, c config, r *system.Runner) (io.Closer, error) {
	romFile = filepath.Clean(romFile)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(filepath.Dir(romFile)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		var reload <-chan time.Time
		for {
			select {
			case <-reload:
				reload = nil
				m, err := loadROM(romFile, c)
				if err != nil {
					log.Printf("dev: %v", err)
					break
				}
				if !r.Reset(m) {
					return
				}
				log.Printf("dev: reset %s", filepath.Base(romFile))
			case ev, ok := <-watcher.Event:
				if !ok {
					return
				}
				if isROMChange(ev, romFile) {
					// Editors and assemblers often write in several
					// steps; wait for them to settle.
					reload = time.After(100 * time.Millisecond)
				}
			case err, ok := <-watcher.Error:
				if !ok {
					return
				}
				log.Printf("dev: watcher: %v", err)
			}
		}
	}()
	return watcher, nil
}

func isROMChange(ev *fsnotify.FileEvent, romFile string) bool {
	return filepath.Clean(ev.Name) == romFile && !ev.IsAttrib() && !ev.IsDelete()
}
