package export

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/qr-gallery/internal/model"
	"github.com/ytget/qr-gallery/internal/render"
)

// Pipeline defaults
const (
	DefaultDataTimeout = 10 * time.Second
	TaskIDPrefix       = "export-"
)

// Options configures where and how exports are stored
type Options struct {
	DocumentsDir string        // directory receiving the temporary PNG
	FileName     string        // fixed name of the temporary PNG
	AlbumName    string        // gallery album collecting the exports
	DataTimeout  time.Duration // bound on waiting for the renderer's data
}

// DefaultOptions returns options writing to documentsDir with default names
func DefaultOptions(documentsDir string) Options {
	return Options{
		DocumentsDir: documentsDir,
		FileName:     model.DefaultExportFileName,
		AlbumName:    model.DefaultAlbumName,
		DataTimeout:  DefaultDataTimeout,
	}
}

// Service runs the export pipeline
type Service struct {
	permission PermissionAuthority
	writer     FileWriter
	gallery    Gallery
	notifier   Notifier
	log        zerolog.Logger

	optsMutex sync.RWMutex
	opts      Options

	sourceMutex sync.RWMutex
	source      render.DataURLSource

	// exportMutex serialises runs so two exports never share the temp file
	exportMutex sync.Mutex

	tasksMutex sync.RWMutex
	onUpdate   func(*model.ExportTask) // callback for UI updates
}

// NewService creates a new export service
func NewService(permission PermissionAuthority, writer FileWriter, gallery Gallery, notifier Notifier, opts Options, log zerolog.Logger) *Service {
	if opts.FileName == "" {
		opts.FileName = model.DefaultExportFileName
	}
	if opts.AlbumName == "" {
		opts.AlbumName = model.DefaultAlbumName
	}

	return &Service{
		permission: permission,
		writer:     writer,
		gallery:    gallery,
		notifier:   notifier,
		opts:       opts,
		log:        log,
	}
}

// SetSource mounts the renderer handle; nil unmounts it
func (s *Service) SetSource(src render.DataURLSource) {
	s.sourceMutex.Lock()
	defer s.sourceMutex.Unlock()
	s.source = src
}

// Source returns the mounted renderer handle
func (s *Service) Source() render.DataURLSource {
	s.sourceMutex.RLock()
	defer s.sourceMutex.RUnlock()
	return s.source
}

// SetOptions replaces the storage options used by subsequent exports
func (s *Service) SetOptions(opts Options) {
	s.optsMutex.Lock()
	defer s.optsMutex.Unlock()
	s.opts = opts
}

// Options returns the current storage options
func (s *Service) Options() Options {
	s.optsMutex.RLock()
	defer s.optsMutex.RUnlock()
	return s.opts
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ExportTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// Export runs the pipeline once. It always returns the task record; the error
// is nil only when the asset reached the album. Exactly one notice is sent per
// call and no panic escapes.
func (s *Service) Export(ctx context.Context) (task *model.ExportTask, err error) {
	s.exportMutex.Lock()
	defer s.exportMutex.Unlock()

	task = s.newTask()

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if !task.Status.IsFinished() {
			task, err = s.fail(task, &StageError{Stage: StagePanic, Err: fmt.Errorf("%v", r)})
			return
		}

		// The outcome is already recorded; keep it
		s.log.Error().Str("export", task.ID).Interface("panic", r).Msg("panic after export finished")
		if task.Status != model.ExportStatusCompleted && err == nil {
			err = errors.New(task.LastError)
		}
	}()

	return s.run(ctx, task)
}

func (s *Service) run(ctx context.Context, task *model.ExportTask) (*model.ExportTask, error) {
	src := s.Source()
	if src == nil {
		return s.finish(task, model.ExportStatusDenied, model.NoticeMissingReference, ErrRendererMissing)
	}
	// Encode exactly the content recorded on the task
	if f, ok := src.(render.Freezer); ok {
		src = f.Freeze()
	}
	if ts, ok := src.(interface{ Text() string }); ok {
		task.Text = ts.Text()
	}

	opts := s.Options()

	s.setStatus(task, model.ExportStatusRequestingPermission)
	status, err := s.permission.Request(ctx)
	if err != nil {
		return s.fail(task, &StageError{Stage: StagePermission, Err: err})
	}
	if !status.Granted() {
		return s.finish(task, model.ExportStatusDenied, model.NoticePermissionDenied, ErrPermissionDenied)
	}

	s.setStatus(task, model.ExportStatusEncoding)
	data, err := render.Await(ctx, src, opts.DataTimeout)
	if err != nil {
		return s.fail(task, &StageError{Stage: StageEncode, Err: err})
	}

	s.setStatus(task, model.ExportStatusWriting)
	filePath := filepath.Join(opts.DocumentsDir, opts.FileName)
	if err := s.writer.WriteBase64(filePath, data); err != nil {
		return s.fail(task, &StageError{Stage: StageWrite, Err: err})
	}
	s.update(task, func() { task.FilePath = filePath })

	s.setStatus(task, model.ExportStatusRegistering)
	asset, err := s.gallery.CreateAsset(ctx, filePath)
	if err != nil {
		return s.fail(task, &StageError{Stage: StageRegister, Err: err})
	}
	if _, err := s.gallery.CreateAlbum(ctx, opts.AlbumName, asset, false); err != nil {
		return s.fail(task, &StageError{Stage: StageRegister, Err: err})
	}
	s.update(task, func() { task.Asset = asset })

	s.log.Info().
		Str("export", task.ID).
		Str("asset", asset.ID).
		Str("album", opts.AlbumName).
		Str("path", asset.Path).
		Msg("QR code exported")

	return s.finish(task, model.ExportStatusCompleted, model.NoticeSuccess, nil)
}

// fail logs err with its cause and reports a generic failure
func (s *Service) fail(task *model.ExportTask, err error) (*model.ExportTask, error) {
	event := s.log.Error().Err(err).Str("export", task.ID)
	var se *StageError
	if errors.As(err, &se) {
		event = event.Str("stage", se.Stage)
	}
	event.Msg("Failed to save QR code")

	return s.finish(task, model.ExportStatusFailed, model.NoticeFailure, err)
}

// finish moves task to its terminal status and sends the notice
func (s *Service) finish(task *model.ExportTask, status model.ExportStatus, kind model.NoticeKind, err error) (*model.ExportTask, error) {
	s.update(task, func() {
		task.Status = status
		task.FinishedAt = time.Now()
		if err != nil {
			task.LastError = err.Error()
		}
	})

	s.notify(task, Notice{Kind: kind, Asset: task.Asset, Err: err})

	return task, err
}

// notify delivers notice; a panicking notifier is logged and does not change
// the outcome of the export
func (s *Service) notify(task *model.ExportTask, notice Notice) {
	if s.notifier == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Str("export", task.ID).
				Str("notice", notice.Kind.String()).
				Interface("panic", r).
				Msg("Failed to show notice")
		}
	}()

	s.notifier.Notify(notice)
}

func (s *Service) newTask() *model.ExportTask {
	task := &model.ExportTask{
		ID:        generateTaskID(),
		Status:    model.ExportStatusPending,
		StartedAt: time.Now(),
	}

	s.notifyUpdate(task)
	return task
}

func (s *Service) setStatus(task *model.ExportTask, status model.ExportStatus) {
	s.log.Debug().Str("export", task.ID).Str("status", status.String()).Msg("export stage")
	s.update(task, func() { task.Status = status })
}

// update mutates task under the tasks lock and publishes it
func (s *Service) update(task *model.ExportTask, mutate func()) {
	s.tasksMutex.Lock()
	mutate()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ExportTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	s.tasksMutex.RUnlock()

	if callback == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Str("export", task.ID).Interface("panic", r).Msg("update callback panicked")
		}
	}()
	callback(task)
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return TaskIDPrefix + uuid.New().String()
}
