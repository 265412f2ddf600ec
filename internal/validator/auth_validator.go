package validator

// パスワード最低文字数
const MinPasswordLength = 8

// サインアップの入力を検証
func ValidateRegister(email, password string) error {
	if !isEmail(email) {
		return invalid("email", "must be a valid email address")
	}
	if len(password) < MinPasswordLength {
		return invalid("password", "must be at least 8 characters")
	}
	return maxLen("password", password, 72)
}

// ログインの入力を検証
func ValidateLogin(email, password string) error {
	if !isEmail(email) {
		return invalid("email", "must be a valid email address")
	}
	return required("password", password)
}
