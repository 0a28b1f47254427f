package auth

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 会員登録の入力
type RegisterUserInput struct {
	Email       string
	DisplayName string
	Password    string
}

// 会員登録の出力
type RegisterUserOutput struct {
	User model.User
}

var (
	// 入力が不正
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrWeakPassword       = errors.New("weak password")

	// 競合
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// 入力検証の約束（実装はvalidatorパッケージ）
type RegisterValidator interface {
	ValidateRegister(ctx context.Context, email string, password string) error
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	userRepo  repository.UserRepository
	validator RegisterValidator
	hasher    PasswordHasher
	clock     Clock
}

// DI
func NewRegisterUserUsecase(
	userRepo repository.UserRepository,
	validator RegisterValidator,
	hasher PasswordHasher,
	clock Clock,
) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		userRepo:  userRepo,
		validator: validator,
		hasher:    hasher,
		clock:     clock,
	}
}

// 会員登録実行
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (RegisterUserOutput, error) {
	var out RegisterUserOutput

	// 形式チェック＋email重複チェックはvalidatorに寄せる
	if err := u.validator.ValidateRegister(ctx, in.Email, in.Password); err != nil {
		return out, err
	}

	// パスワードをハッシュ化（平文は保存しない）
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	now := u.clock.Now()

	user := &model.User{
		Email:        in.Email,
		DisplayName:  in.DisplayName,
		PasswordHash: hashed,
		Role:         model.RoleUser, // 初期はUSER
		TokenVersion: 0,
		IsActive:     true,
		LastLoginAt:  nil,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// DBへ保存。validatorの重複チェックをすり抜けてもunique制約で止まる
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return out, ErrEmailAlreadyExists
		}
		return out, err
	}

	out.User = *user
	return out, nil
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
