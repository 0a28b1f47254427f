package validator

import (
	"context"
	"net/mail"
	"strings"

	"app/internal/repository"
	auth "app/internal/usecase/auth_usecase"
)

type authValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewAuthValidator(users repository.UserRepository) auth.RegisterValidator {
	return &authValidator{users: users}
}

// サインアップの入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)

	// email形式
	if !isEmailLike(email) {
		return auth.ErrInvalidEmailFormat
	}

	// パスワード最低文字数
	if len(password) < 8 {
		return auth.ErrPasswordTooShort
	}

	// よくある弱いパスワードの拒否
	if isWeakPassword(password) {
		return auth.ErrWeakPassword
	}

	// email重複チェック（DBが必要）
	u, err := v.users.FindByEmail(ctx, email)
	if err == nil && u != nil {
		return auth.ErrEmailAlreadyExists
	}

	return nil
}

// メールチェック
func isEmailLike(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

// よくある弱いパスワード
func isWeakPassword(password string) bool {
	normalized := strings.ToLower(strings.TrimSpace(password))

	weak := map[string]struct{}{
		"password":    {},
		"password123": {},
		"12345678":    {},
		"1234567890":  {},
		"qwertyuiop":  {},
		"letmein1":    {},
		"admin123":    {},
	}

	_, ok := weak[normalized]
	return ok
}
