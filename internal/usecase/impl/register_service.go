package impl

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nutriledger/config"
	deliverycontext "nutriledger/internal/delivery/context"
	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/period"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/errors"
	"nutriledger/internal/usecase"
	"nutriledger/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const reasonRejectedByUser = "rejected by user"

type registerService struct {
	txManager     repository.TransactionManager
	registerRepo  repository.RegisterRepository
	imageStore    service.ImageStore
	publisher     service.EventPublisher
	location      *time.Location
	maxImageBytes int64
	now           func() time.Time
	logger        *slog.Logger
}

// RegisterServiceParams holds dependencies for RegisterService, injected by Fx.
type RegisterServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	RegisterRepo repository.RegisterRepository
	ImageStore   service.ImageStore
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRegisterService is the constructor for registerService.
func NewRegisterService(params RegisterServiceParams) (usecase.RegisterUsecase, error) {
	loc, err := params.Config.Location()
	if err != nil {
		return nil, err
	}

	var maxImageBytes int64
	if params.Config.Storage != nil {
		maxImageBytes = params.Config.Storage.MaxImageBytes
	}

	return &registerService{
		txManager:     params.TxManager,
		registerRepo:  params.RegisterRepo,
		imageStore:    params.ImageStore,
		publisher:     params.Publisher,
		location:      loc,
		maxImageBytes: maxImageBytes,
		now:           time.Now,
		logger:        params.Logger,
	}, nil
}

func (srv *registerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *registerService) CreateRegister(ctx context.Context, input *usecase.CreateRegisterInput) (*entity.Register, error) {
	if len(input.Image) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is required")
	}
	if srv.maxImageBytes > 0 && int64(len(input.Image)) > srv.maxImageBytes {
		return nil, domainerrors.ErrImageTooLarge.WithDetails(
			util.FormatBytes(int64(len(input.Image))) + " > " + util.FormatBytes(srv.maxImageBytes))
	}

	contentType := input.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(input.Image)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported content type " + contentType)
	}

	checksum, err := util.Checksum(bytes.NewReader(input.Image))
	if err != nil {
		return nil, errors.Wrap(err, "failed to checksum image")
	}
	key := util.ImageKey(input.OwnerID.String(), checksum, contentType)

	if err := srv.imageStore.Put(ctx, key, input.Image, contentType); err != nil {
		return nil, errors.Wrap(err, "failed to store image")
	}

	register := entity.NewRegister(input.OwnerID, key, strings.TrimSpace(input.Description), srv.now())
	if err := srv.registerRepo.Create(ctx, register); err != nil {
		return nil, errors.Wrap(err, "failed to create register")
	}

	srv.log(ctx).Info("Register created",
		slog.String("registerID", register.ID.String()),
		slog.String("imageRef", key),
		slog.String("status", string(register.Status)))

	event := &service.AnalysisEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		RegisterID: register.ID.String(),
	}
	if err := srv.publisher.PublishAnalysisRequested(ctx, event); err != nil {
		// The register stays in analyzing; a failed publish must not lose the upload.
		srv.log(ctx).Error("Failed to publish analysis event",
			slog.String("registerID", register.ID.String()),
			slog.Any("error", err))
	}

	return register, nil
}

func (srv *registerService) GetRegister(ctx context.Context, ownerID, registerID uuid.UUID) (*entity.Register, error) {
	return srv.findOwned(ctx, srv.registerRepo, ownerID, registerID, false)
}

func (srv *registerService) ListRegisters(ctx context.Context, ownerID uuid.UUID, desc period.Descriptor) ([]*entity.Register, error) {
	rng, err := period.Resolve(desc, period.Today(srv.now(), srv.location))
	if err != nil {
		return nil, translateDomainError(err)
	}

	from, to := rng.Bounds(srv.location)
	registers, err := srv.registerRepo.List(ctx, repository.RegisterQuery{OwnerID: ownerID, From: from, To: to})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registers")
	}

	return registers, nil
}

func (srv *registerService) DeleteRegister(ctx context.Context, ownerID, registerID uuid.UUID) error {
	register, err := srv.findOwned(ctx, srv.registerRepo, ownerID, registerID, false)
	if err != nil {
		return err
	}

	if err := srv.registerRepo.Delete(ctx, registerID); err != nil {
		return translateDomainError(errors.Wrap(err, "failed to delete register"))
	}

	if register.ImageRef != "" {
		if err := srv.imageStore.Delete(ctx, register.ImageRef); err != nil && !errors.Is(err, service.ErrImageNotFound) {
			srv.log(ctx).Warn("Failed to delete register image",
				slog.String("registerID", registerID.String()),
				slog.String("imageRef", register.ImageRef),
				slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Register deleted", slog.String("registerID", registerID.String()))

	return nil
}

func (srv *registerService) ConfirmRegister(ctx context.Context, ownerID, registerID uuid.UUID, items []entity.FoodItem) (*entity.Register, error) {
	return srv.transition(ctx, ownerID, registerID, func(r *entity.Register, now time.Time) error {
		if r.Status != entity.RegisterStatusReviewing {
			return errors.Wrapf(entity.ErrInvalidTransition, "confirm requires %s, register is %s", entity.RegisterStatusReviewing, r.Status)
		}
		confirmed := items
		if len(confirmed) == 0 {
			confirmed = r.ReviewItems
		}

		return r.Complete(confirmed, "", now)
	})
}

func (srv *registerService) RejectRegister(ctx context.Context, ownerID, registerID uuid.UUID, reason string) (*entity.Register, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = reasonRejectedByUser
	}

	return srv.transition(ctx, ownerID, registerID, func(r *entity.Register, now time.Time) error {
		if r.Status != entity.RegisterStatusReviewing {
			return errors.Wrapf(entity.ErrInvalidTransition, "reject requires %s, register is %s", entity.RegisterStatusReviewing, r.Status)
		}

		return r.Fail(reason, now)
	})
}

// transition applies apply to a locked copy of the register and stores it conditionally on its previous status.
func (srv *registerService) transition(
	ctx context.Context,
	ownerID, registerID uuid.UUID,
	apply func(r *entity.Register, now time.Time) error,
) (*entity.Register, error) {
	var updated *entity.Register
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewRegisterRepository()

		register, err := srv.findOwned(ctx, repo, ownerID, registerID, true)
		if err != nil {
			return err
		}

		from := register.Status
		if err := apply(register, srv.now()); err != nil {
			return err
		}
		if err := repo.SaveTransition(ctx, register, from); err != nil {
			return errors.Wrap(err, "failed to save transition")
		}

		srv.log(ctx).Info("Register transitioned",
			slog.String("registerID", register.ID.String()),
			slog.String("from", string(from)),
			slog.String("to", string(register.Status)),
			slog.String("reason", register.FailureReason))
		updated = register

		return nil
	})
	if err != nil {
		return nil, translateDomainError(err)
	}

	return updated, nil
}

func (srv *registerService) findOwned(
	ctx context.Context,
	repo repository.RegisterRepository,
	ownerID, registerID uuid.UUID,
	forUpdate bool,
) (*entity.Register, error) {
	find := repo.FindByID
	if forUpdate {
		find = repo.FindByIDForUpdate
	}

	register, err := find(ctx, registerID)
	if err != nil {
		if errors.Is(err, repository.ErrRegisterNotFound) {
			return nil, domainerrors.ErrRegisterNotFound
		}

		return nil, errors.Wrap(err, "failed to find register")
	}

	if register.OwnerID != ownerID {
		return nil, domainerrors.ErrRegisterForbidden
	}

	return register, nil
}
