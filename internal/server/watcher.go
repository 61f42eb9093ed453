package server

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/specmock-project/specmock-go/pkg/logger"
)

// watchSpec starts a file watcher on the specification and reloads the route
// table on changes. Remote specifications cannot be watched.
func (s *Server) watchSpec() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(s.specPath); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch specification %s: %w", s.specPath, err)
	}

	logger.Infof("watching specification %s for changes", s.specPath)
	go s.watchLoop(watcher)
	return nil
}

func (s *Server) watchLoop(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				logger.Debugf("specification change detected: %s", event)
				s.Reload()
			}
			// some editors replace the file on save, dropping the watch
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				if err := watcher.Add(s.specPath); err == nil {
					s.Reload()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warnf("specification watcher error: %v", err)
		}
	}
}
