package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/KasunInd27/CampQuest-sub000/model"
	orderrepo "github.com/KasunInd27/CampQuest-sub000/repository/order"
	storagerepo "github.com/KasunInd27/CampQuest-sub000/repository/storage"
)

// MaxSlipSize bounds an uploaded proof-of-payment file.
const MaxSlipSize = 24 << 20 // 24 MB

var allowedSlipTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

var (
	ErrUploadRejected    = errors.New("upload rejected")
	ErrIllegalTransition = errors.New("illegal payment status transition")
	ErrNotFound          = errors.New("order not found")
	ErrNotOwner          = errors.New("not the order owner")
	ErrSlipNotExpected   = errors.New("order does not use slip payment")
)

type SlipUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type Repo interface {
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindForUpdate(ctx context.Context, tx *sql.Tx, id string) (*model.Order, error)
	SetPaymentSlip(ctx context.Context, tx *sql.Tx, id string, slip *model.PaymentSlip, status model.PaymentStatus) error
	SetPaymentStatus(ctx context.Context, tx *sql.Tx, id string, status model.PaymentStatus) error
}

type Service interface {
	// SubmitSlip stores the proof artifact and moves the order to
	// VERIFICATION_PENDING. Size/type checks run before anything is
	// written anywhere.
	SubmitSlip(ctx context.Context, userID int64, orderID string, up SlipUpload) (*model.PaymentSlip, error)

	// Verify is the manual staff decision on a submitted slip.
	Verify(ctx context.Context, orderID string, approved bool) error

	Refund(ctx context.Context, orderID string) error
}

type service struct {
	db      *sql.DB
	r       Repo
	storage storagerepo.Repo
	now     func() time.Time
}

func New(db *sql.DB, r Repo, storage storagerepo.Repo) Service {
	return &service{db: db, r: r, storage: storage, now: time.Now}
}

func (s *service) SubmitSlip(ctx context.Context, userID int64, orderID string, up SlipUpload) (*model.PaymentSlip, error) {
	if err := validateSlip(up); err != nil {
		return nil, err
	}

	// Cheap pre-checks before the artifact upload; the locked re-check
	// below is what actually guards the write.
	o, err := s.r.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if o.Customer.UserID != userID {
		return nil, ErrNotOwner
	}
	if o.PaymentMethod == nil || *o.PaymentMethod != model.MethodSlip {
		return nil, ErrSlipNotExpected
	}
	if !o.PaymentStatus.CanTransitionTo(model.PaymentVerification) {
		return nil, fmt.Errorf("%w: payment status is %s", ErrIllegalTransition, o.PaymentStatus)
	}

	stored, err := s.storage.Store(ctx, storagerepo.UploadReq{
		Filename:    up.Filename,
		ContentType: up.ContentType,
		Size:        up.Size,
		Content:     up.Content,
	})
	if err != nil {
		return nil, err
	}
	slip := &model.PaymentSlip{
		URL:         stored.URL,
		ContentType: up.ContentType,
		SizeBytes:   up.Size,
		UploadedAt:  s.now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	o, err = s.r.FindForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if !o.PaymentStatus.CanTransitionTo(model.PaymentVerification) {
		err = fmt.Errorf("%w: payment status is %s", ErrIllegalTransition, o.PaymentStatus)
		return nil, err
	}
	if err = s.r.SetPaymentSlip(ctx, tx, orderID, slip, model.PaymentVerification); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return slip, nil
}

func (s *service) Verify(ctx context.Context, orderID string, approved bool) error {
	next := model.PaymentCompleted
	if !approved {
		next = model.PaymentFailed
	}
	return s.transition(ctx, orderID, next)
}

func (s *service) Refund(ctx context.Context, orderID string) error {
	return s.transition(ctx, orderID, model.PaymentRefunded)
}

func (s *service) transition(ctx context.Context, orderID string, next model.PaymentStatus) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	o, err := s.r.FindForUpdate(ctx, tx, orderID)
	if err != nil {
		return mapNotFound(err)
	}
	if !o.PaymentStatus.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.PaymentStatus, next)
	}
	if err = s.r.SetPaymentStatus(ctx, tx, orderID, next); err != nil {
		return err
	}
	return tx.Commit()
}

func validateSlip(up SlipUpload) error {
	if up.Size <= 0 {
		return fmt.Errorf("%w: empty file", ErrUploadRejected)
	}
	if up.Size > MaxSlipSize {
		return fmt.Errorf("%w: file exceeds 24 MB", ErrUploadRejected)
	}
	if !allowedSlipTypes[up.ContentType] {
		return fmt.Errorf("%w: unsupported type %s", ErrUploadRejected, up.ContentType)
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, orderrepo.ErrNotFound) || errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
