package services

import (
	"context"
	"errors"
	"mime/multipart"
	"reflect"

	"go.uber.org/zap"

	"ecotours/internal/repositories"
	"ecotours/internal/storage"
	"ecotours/pkg/utils"
)

// CrudService is the uniform contract of every resource: In is the writable
// input, Out the representation returned to clients.
type CrudService[In any, Out any] interface {
	List(ctx context.Context, page utils.Page) ([]Out, error)
	Get(ctx context.Context, id uint) (*Out, error)
	// Create fills a fresh input through bind, then persists it.
	Create(ctx context.Context, bind func(*In) error) (*Out, error)
	// Update binds onto the current values when partial is set, onto a
	// fresh input otherwise, and saves the result atomically.
	Update(ctx context.Context, id uint, partial bool, bind func(*In) error) (*Out, error)
	Delete(ctx context.Context, id uint) error
}

// resource implements CrudService for a flat entity M.
type resource[M any, In any, Out any] struct {
	name     string
	notFound error
	repo     repositories.CrudRepository[M]
	media    storage.Media
	log      *zap.Logger

	newInput func() *In
	prefill  func(in *In, m *M)
	// stage stores the uploaded files of in before any row is locked.
	stage func(ctx context.Context, in *In, up *uploads) error
	// apply runs inside the write and must not do I/O.
	apply   func(in *In, m *M, up *uploads) error
	present func(ctx context.Context, m *M) Out
	files   func(m *M) []string
}

func (r *resource[M, In, Out]) List(ctx context.Context, page utils.Page) ([]Out, error) {
	rows, err := r.repo.List(ctx, page)
	if err != nil {
		return nil, r.fail(ctx, "list", 0, err)
	}
	out := make([]Out, 0, len(rows))
	for i := range rows {
		out = append(out, r.present(ctx, &rows[i]))
	}
	return out, nil
}

func (r *resource[M, In, Out]) Get(ctx context.Context, id uint) (*Out, error) {
	m, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, "get", id, err)
	}
	if m == nil {
		return nil, r.notFound
	}
	out := r.present(ctx, m)
	return &out, nil
}

func (r *resource[M, In, Out]) Create(ctx context.Context, bind func(*In) error) (*Out, error) {
	m, err := r.create(ctx, bind, nil)
	if err != nil {
		return nil, err
	}
	out := r.present(ctx, m)
	return &out, nil
}

// create runs prepare after the input has been applied, for values that
// do not come from the client.
func (r *resource[M, In, Out]) create(ctx context.Context, bind func(*In) error, prepare func(*M)) (*M, error) {
	in := r.newInput()
	if err := bind(in); err != nil {
		return nil, err
	}

	var m M
	up := newUploads(r.media)
	err := r.stageFiles(ctx, in, up)
	if err == nil {
		err = r.apply(in, &m, up)
	}
	if err == nil {
		if prepare != nil {
			prepare(&m)
		}
		err = r.repo.Create(ctx, &m)
	}
	up.finish(ctx, err)
	if err != nil {
		return nil, r.fail(ctx, "create", 0, err)
	}
	return &m, nil
}

// Update binds and stores files against a snapshot of the row, then merges
// the result into the locked row. A partial update only overwrites the
// fields it changed, so concurrent writes to other fields survive.
func (r *resource[M, In, Out]) Update(ctx context.Context, id uint, partial bool, bind func(*In) error) (*Out, error) {
	current, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, "update", id, err)
	}
	if current == nil {
		return nil, r.notFound
	}

	in := r.newInput()
	var base *In
	if partial && r.prefill != nil {
		r.prefill(in, current)
		snapshot := *in
		base = &snapshot
	}
	if err := bind(in); err != nil {
		return nil, err
	}

	up := newUploads(r.media)
	var updated *M
	err = r.stageFiles(ctx, in, up)
	if err == nil {
		updated, err = r.repo.Update(ctx, id, func(m *M) error {
			if base != nil {
				latest := r.newInput()
				r.prefill(latest, m)
				rebase(in, base, latest)
			}
			return r.apply(in, m, up)
		})
		if err == nil && updated == nil {
			err = r.notFound
		}
	}
	up.finish(ctx, err)
	if err != nil {
		return nil, r.fail(ctx, "update", id, err)
	}
	out := r.present(ctx, updated)
	return &out, nil
}

func (r *resource[M, In, Out]) stageFiles(ctx context.Context, in *In, up *uploads) error {
	if r.stage == nil {
		return nil
	}
	return r.stage(ctx, in, up)
}

// rebase resets every field of in that still equals base, the values the
// client started from, to its value in latest.
func rebase[In any](in, base, latest *In) {
	iv := reflect.ValueOf(in).Elem()
	bv := reflect.ValueOf(base).Elem()
	lv := reflect.ValueOf(latest).Elem()
	for i := 0; i < iv.NumField(); i++ {
		f := iv.Field(i)
		if !f.CanSet() {
			continue
		}
		if reflect.DeepEqual(f.Interface(), bv.Field(i).Interface()) {
			f.Set(lv.Field(i))
		}
	}
}

func (r *resource[M, In, Out]) Delete(ctx context.Context, id uint) error {
	deleted, err := r.repo.Delete(ctx, id)
	if err != nil {
		return r.fail(ctx, "delete", id, err)
	}
	if deleted == nil {
		return r.notFound
	}
	if r.files != nil && r.media != nil {
		r.media.Discard(ctx, r.files(deleted)...)
	}
	return nil
}

func (r *resource[M, In, Out]) fail(ctx context.Context, op string, id uint, err error) error {
	return failure(ctx, r.log, op, r.name, id, err)
}

// failure passes client errors through and logs everything else before
// hiding it behind ErrDatabaseError.
func failure(ctx context.Context, log *zap.Logger, op, resource string, id uint, err error) error {
	var verr *utils.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, utils.ErrNotFound),
		errors.Is(err, utils.ErrPayloadTooLarge),
		errors.Is(err, utils.ErrForbidden):
		return err
	}

	fields := []zap.Field{
		zap.String("operation", op),
		zap.String("resource", resource),
		zap.String("trace_id", utils.TraceIDFromContext(ctx)),
		zap.Error(err),
	}
	if id != 0 {
		fields = append(fields, zap.Uint("id", id))
	}
	log.Error("persistence failure", fields...)
	return utils.ErrDatabaseError
}

// uploads tracks files stored while handling one request: new files are
// dropped if the write fails, replaced ones once it has succeeded.
type uploads struct {
	media    storage.Media
	staged   map[string][]string
	saved    []string
	replaced []string
}

func newUploads(media storage.Media) *uploads {
	return &uploads{media: media, staged: make(map[string][]string)}
}

// store saves files under field ahead of the write.
func (u *uploads) store(ctx context.Context, field, dir string, files ...*multipart.FileHeader) error {
	for _, file := range files {
		if file == nil {
			continue
		}
		ref, err := u.media.SaveImage(ctx, dir, file)
		if errors.Is(err, storage.ErrInvalidImage) {
			return utils.NewValidationError(field,
				"Upload a valid image. The file you uploaded was either not an image or a corrupted image.")
		}
		if err != nil {
			return err
		}
		u.saved = append(u.saved, ref)
		u.staged[field] = append(u.staged[field], ref)
	}
	return nil
}

// refs lists what was stored under field.
func (u *uploads) refs(field string) []string {
	return u.staged[field]
}

// replace points *current at the file stored under field, if any.
func (u *uploads) replace(field string, current *string) {
	refs := u.staged[field]
	if len(refs) == 0 {
		return
	}
	if *current != "" {
		u.replaced = append(u.replaced, *current)
	}
	*current = refs[len(refs)-1]
}

// drop schedules refs for removal once the write has been committed.
func (u *uploads) drop(refs ...string) {
	u.replaced = append(u.replaced, refs...)
}

func (u *uploads) finish(ctx context.Context, err error) {
	if u.media == nil {
		return
	}
	if err != nil {
		u.media.Discard(ctx, u.saved...)
		return
	}
	u.media.Discard(ctx, u.replaced...)
}
