package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	bmerrors "github.com/matzehuels/bmcanvas/pkg/errors"
)

// debounceWindow is how long to wait for more events before re-rendering.
// Editors often save through several writes or a rename.
var debounceWindow = 100 * time.Millisecond

// watch runs render once and then again after every change to path, until
// ctx is canceled. The parent directory is watched so atomic saves (write a
// temp file, rename over the original) are seen. Failed re-renders are
// reported and watching continues.
func (c *CLI) watch(ctx context.Context, path string, render func(context.Context) error) error {
	logger := loggerFromContext(ctx)

	if err := render(ctx); err != nil {
		printFailure(err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return bmerrors.Wrap(bmerrors.ErrCodeInternal, err, "start file watcher")
	}
	defer w.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return bmerrors.Wrap(bmerrors.ErrCodeInvalidInput, err, "resolve %s", path)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return bmerrors.Wrap(bmerrors.ErrCodeInvalidInput, err, "watch %s", path)
	}
	printInfo("Watching %s (Ctrl+C to stop)", path)

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			timerC = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)

		case <-timerC:
			timerC = nil
			if err := render(ctx); err != nil {
				printFailure(err)
			}
		}
	}
}

// printFailure reports a render error without stopping the watch.
func printFailure(err error) {
	printError("%s", bmerrors.UserMessage(err))
	for _, d := range bmerrors.DetailsOf(err) {
		printDetail("%s", d)
	}
}
