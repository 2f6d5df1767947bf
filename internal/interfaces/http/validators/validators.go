package validators

import (
	"errors"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fitpulse.backend/internal/domain/entities"
)

var (
	// Korean mobile number: 01X followed by 8-9 digits, separators ignored
	phonePattern = regexp.MustCompile(`^01[0-9]{8,9}$`)
	// Hangul, latin letters, digits and underscore
	nicknamePattern = regexp.MustCompile(`^[가-힣a-zA-Z0-9_]+$`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
)

// Register installs the custom binding rules on gin's validator engine.
// Must run once before any route binds CreateUserInput or UpdateUserInput.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected gin validator engine")
	}

	if err := v.RegisterValidation("krmobile", validKoreanMobile); err != nil {
		return err
	}
	if err := v.RegisterValidation("nickname", validNickname); err != nil {
		return err
	}
	return v.RegisterValidation("userpassword", validUserPassword)
}

func validKoreanMobile(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(entities.NormalizePhoneNumber(fl.Field().String()))
}

func validNickname(fl validator.FieldLevel) bool {
	return nicknamePattern.MatchString(fl.Field().String())
}

// at least 6 characters with at least one digit; capped at 72 bytes,
// the most bcrypt will hash
func validUserPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return len(s) >= 6 && len(s) <= 72 && digitPattern.MatchString(s)
}
