package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/semo-todo/internal/domain/errors"
	"github.com/wekeepgrowing/semo-todo/internal/domain/repository"
	apperrors "github.com/wekeepgrowing/semo-todo/pkg/errors"
)

const maxInviteCodeAttempts = 5

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

// InviteCodeGenerator produces random invite codes.
type InviteCodeGenerator interface {
	Generate() (string, error)
}

// UserUseCase handles registration, profile and password changes.
type UserUseCase struct {
	validator *Validator
	hasher    PasswordHasher
	codes     InviteCodeGenerator
	logger    *zap.Logger
}

func NewUserUseCase(validator *Validator, hasher PasswordHasher, codes InviteCodeGenerator, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{
		validator: validator,
		hasher:    hasher,
		codes:     codes,
		logger:    logger,
	}
}

// Register creates an active, non-superuser account with a fresh invite code.
func (uc *UserUseCase) Register(ctx context.Context, uow repository.UnitOfWork, in entity.UserRegister) (*entity.User, error) {
	in.Normalize()
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	return uc.create(ctx, uow, in, false)
}

// EnsureSuperuser creates the bootstrap superuser unless the email is already registered.
func (uc *UserUseCase) EnsureSuperuser(ctx context.Context, uow repository.UnitOfWork, email, password string) (*entity.User, error) {
	in := entity.UserRegister{Email: email, Password: password, FullName: "Administrator"}
	in.Normalize()
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}

	existing, err := uow.Users().FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to look up superuser")
	}
	if existing != nil {
		return existing, nil
	}

	user, err := uc.create(ctx, uow, in, true)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("superuser created", zap.String("user_id", user.ID.String()), zap.String("email", user.Email))
	return user, nil
}

func (uc *UserUseCase) create(ctx context.Context, uow repository.UnitOfWork, in entity.UserRegister, superuser bool) (*entity.User, error) {
	existing, err := uow.Users().FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to check email")
	}
	if existing != nil {
		return nil, domainerrors.ErrEmailTaken
	}

	hashed, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	code, err := uc.uniqueInviteCode(ctx, uow)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:             uuid.New(),
		Email:          in.Email,
		FullName:       in.FullName,
		HashedPassword: hashed,
		InviteCode:     code,
		IsActive:       true,
		IsSuperuser:    superuser,
	}
	if err := uow.Users().Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrEmailTaken
		}
		apperrors.LogError(uc.logger, err, "failed to create user")
		return nil, apperrors.Wrap(err, "failed to create user")
	}
	return user, nil
}

// uniqueInviteCode checks candidates against storage before insert, since a
// failed insert aborts the surrounding transaction on Postgres.
func (uc *UserUseCase) uniqueInviteCode(ctx context.Context, uow repository.UnitOfWork) (string, error) {
	for attempt := 0; attempt < maxInviteCodeAttempts; attempt++ {
		code, err := uc.codes.Generate()
		if err != nil {
			return "", apperrors.Wrap(err, "failed to generate invite code")
		}
		taken, err := uow.Users().FindByInviteCode(ctx, code)
		if err != nil {
			return "", apperrors.Wrap(err, "failed to check invite code")
		}
		if taken == nil {
			return code, nil
		}
		uc.logger.Debug("invite code collision", zap.Int("attempt", attempt+1))
	}
	return "", apperrors.NewAppError(apperrors.ErrInternal, "could not allocate a unique invite code", nil)
}

// Authenticate resolves the user a verified token refers to.
func (uc *UserUseCase) Authenticate(ctx context.Context, uow repository.UnitOfWork, userID uuid.UUID) (*entity.User, error) {
	user, err := uow.Users().FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load user")
	}
	if user == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if !user.IsActive {
		return nil, domainerrors.ErrInactiveUser
	}
	return user, nil
}

// UpdateProfile changes the actor's email or full name.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, in entity.UserUpdate) (*entity.User, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != actor.Email {
			other, err := uow.Users().FindByEmail(ctx, email)
			if err != nil {
				return nil, apperrors.Wrap(err, "failed to check email")
			}
			if other != nil && other.ID != actor.ID {
				return nil, domainerrors.ErrEmailTaken
			}
		}
	}

	updated := *actor
	in.Apply(&updated)
	if err := uow.Users().Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrEmailTaken
		}
		return nil, apperrors.Wrap(err, "failed to update user")
	}
	return &updated, nil
}

// UpdatePassword replaces the password after verifying the current one.
func (uc *UserUseCase) UpdatePassword(ctx context.Context, uow repository.UnitOfWork, actor *entity.User, in entity.PasswordUpdate) error {
	if err := uc.validator.Struct(in); err != nil {
		return err
	}
	if err := uc.hasher.Compare(actor.HashedPassword, in.CurrentPassword); err != nil {
		return domainerrors.ErrIncorrectPassword
	}
	if in.CurrentPassword == in.NewPassword {
		return domainerrors.ErrSamePassword
	}

	hashed, err := uc.hasher.Hash(in.NewPassword)
	if err != nil {
		return apperrors.Wrap(err, "failed to hash password")
	}

	updated := *actor
	updated.HashedPassword = hashed
	if err := uow.Users().Update(ctx, &updated); err != nil {
		return apperrors.Wrap(err, "failed to update password")
	}
	return nil
}
