//go:build !linux

package cmd

import (
	"os"
	"time"
)

// fileWatcher polls file modification times and invokes onChange with
// the changed path. Platforms without inotify fall back to this.
type fileWatcher struct {
	paths    []string
	modTimes map[string]time.Time
	onChange func(string)
}

func newFileWatcher(onChange func(string)) (*fileWatcher, error) {
	return &fileWatcher{
		modTimes: make(map[string]time.Time),
		onChange: onChange,
	}, nil
}

func (fw *fileWatcher) addFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	fw.paths = append(fw.paths, path)
	fw.modTimes[path] = info.ModTime()
	return nil
}

// watch blocks, dispatching change events until the process exits.
func (fw *fileWatcher) watch() {
	for {
		time.Sleep(500 * time.Millisecond)
		for _, path := range fw.paths {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.ModTime().After(fw.modTimes[path]) {
				fw.modTimes[path] = info.ModTime()
				fw.onChange(path)
			}
		}
	}
}
