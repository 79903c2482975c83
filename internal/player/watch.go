package player

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// debounceDelay lets editors finish their write-then-rename dance before
// the file is reparsed.
const debounceDelay = 150 * time.Millisecond

type watcher struct {
	fw *fsnotify.Watcher
}

// watchFile posts a fileChangedMsg to events whenever path is rewritten.
// The watch is held on the parent directory: editors that save through a
// temp file and rename would otherwise silently drop a watch held on the
// file itself.
func watchFile(path string, events chan<- tea.Msg) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &watcher{fw: fw}
	go w.loop(filepath.Clean(path), events)
	return w, nil
}

func (w *watcher) loop(path string, events chan<- tea.Msg) {
	var debounce *time.Timer

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case events <- fileChangedMsg{}:
				default:
				}
			})

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case events <- watchErrMsg{err: err}:
			default:
			}
		}
	}
}

func (w *watcher) Close() error {
	return w.fw.Close()
}
