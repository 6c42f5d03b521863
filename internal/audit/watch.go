package audit

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const (
	defaultDebounceIntervalConstant     = 300 * time.Millisecond
	hiddenDirectoryPrefixConstant       = "."
	watchInitializationTemplateConstant = "unable to initialize filesystem watcher: %w"
	watchRegistrationTemplateConstant   = "unable to watch repository root %s: %w"
	watchStartedMessageConstant         = "Watching part repository"
	watchEventMessageConstant           = "Repository change detected"
	watchPassFailedMessageConstant      = "Audit pass failed"
	watchErrorMessageConstant           = "Filesystem watcher reported an error"
	watchPathFieldNameConstant          = "path"
)

// FileSystemWatcher exposes the filesystem notification surface consumed by
// RepositoryWatcher.
type FileSystemWatcher interface {
	Add(path string) error
	Close() error
	Events() <-chan fsnotify.Event
	Errors() <-chan error
}

// WatcherFactory produces filesystem watchers; the default factory wraps fsnotify.
type WatcherFactory func() (FileSystemWatcher, error)

type fsnotifyWatcher struct {
	watcher *fsnotify.Watcher
}

func (adapter fsnotifyWatcher) Add(path string) error {
	return adapter.watcher.Add(path)
}

func (adapter fsnotifyWatcher) Close() error {
	return adapter.watcher.Close()
}

func (adapter fsnotifyWatcher) Events() <-chan fsnotify.Event {
	return adapter.watcher.Events
}

func (adapter fsnotifyWatcher) Errors() <-chan error {
	return adapter.watcher.Errors
}

func newFSNotifyWatcher() (FileSystemWatcher, error) {
	watcher, watcherError := fsnotify.NewWatcher()
	if watcherError != nil {
		return nil, watcherError
	}
	return fsnotifyWatcher{watcher: watcher}, nil
}

// RepositoryWatcher re-runs audits while files beneath the repository root change.
type RepositoryWatcher struct {
	runner           AuditRunner
	watcherFactory   WatcherFactory
	debounceInterval time.Duration
	logger           *zap.Logger
}

// NewRepositoryWatcher constructs a RepositoryWatcher around the provided
// runner. A nil factory falls back to fsnotify, a nonpositive debounce
// interval falls back to the default, and a nil logger falls back to a no-op
// logger.
func NewRepositoryWatcher(runner AuditRunner, watcherFactory WatcherFactory, debounceInterval time.Duration, logger *zap.Logger) *RepositoryWatcher {
	if watcherFactory == nil {
		watcherFactory = newFSNotifyWatcher
	}
	if debounceInterval <= 0 {
		debounceInterval = defaultDebounceIntervalConstant
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RepositoryWatcher{
		runner:           runner,
		watcherFactory:   watcherFactory,
		debounceInterval: debounceInterval,
		logger:           logger,
	}
}

// Run performs an initial audit pass and repeats it after every debounced
// batch of filesystem events. The loop terminates when the context is
// cancelled or the watcher channels close.
func (repositoryWatcher *RepositoryWatcher) Run(executionContext context.Context, options CommandOptions) error {
	fileWatcher, watcherError := repositoryWatcher.watcherFactory()
	if watcherError != nil {
		return fmt.Errorf(watchInitializationTemplateConstant, watcherError)
	}
	defer func() {
		_ = fileWatcher.Close()
	}()

	repositoryRoot := strings.TrimSpace(options.RepositoryRoot)
	if len(repositoryRoot) == 0 {
		repositoryRoot = defaultRepositoryRootConstant
	}
	if registrationError := registerWatchTargets(fileWatcher, repositoryRoot); registrationError != nil {
		return fmt.Errorf(watchRegistrationTemplateConstant, repositoryRoot, registrationError)
	}

	repositoryWatcher.logger.Info(watchStartedMessageConstant, zap.String(repositoryFieldNameConstant, repositoryRoot))

	repositoryWatcher.runPass(executionContext, options)

	rerunSignals := make(chan struct{}, 1)
	scheduleRerun := func() {
		select {
		case rerunSignals <- struct{}{}:
		default:
		}
	}

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-executionContext.Done():
			return nil
		case fileEvent, channelOpen := <-fileWatcher.Events():
			if !channelOpen {
				return nil
			}
			repositoryWatcher.logger.Debug(watchEventMessageConstant, zap.String(watchPathFieldNameConstant, fileEvent.Name))
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(repositoryWatcher.debounceInterval, scheduleRerun)
		case <-rerunSignals:
			repositoryWatcher.runPass(executionContext, options)
		case watchError, channelOpen := <-fileWatcher.Errors():
			if !channelOpen {
				return nil
			}
			repositoryWatcher.logger.Warn(watchErrorMessageConstant, zap.Error(watchError))
		}
	}
}

func (repositoryWatcher *RepositoryWatcher) runPass(executionContext context.Context, options CommandOptions) {
	if runError := repositoryWatcher.runner.Run(executionContext, options); runError != nil {
		repositoryWatcher.logger.Warn(watchPassFailedMessageConstant, zap.Error(runError))
	}
}

func registerWatchTargets(fileWatcher FileSystemWatcher, repositoryRoot string) error {
	return filepath.WalkDir(repositoryRoot, func(walkPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			return walkError
		}
		if !directoryEntry.IsDir() {
			return nil
		}
		if walkPath != repositoryRoot && strings.HasPrefix(directoryEntry.Name(), hiddenDirectoryPrefixConstant) {
			return fs.SkipDir
		}
		return fileWatcher.Add(walkPath)
	})
}
