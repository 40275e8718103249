package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Пользователи и профили
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeProfileNotFound    ErrorCode = "PROFILE_NOT_FOUND"

	// Гиги и отклики
	CodeGigNotFound              ErrorCode = "GIG_NOT_FOUND"
	CodeApplicationNotFound      ErrorCode = "APPLICATION_NOT_FOUND"
	CodeApplicationAlreadyExists ErrorCode = "APPLICATION_ALREADY_EXISTS"
	CodeInvalidApplicationStatus ErrorCode = "INVALID_APPLICATION_STATUS"
	CodeGigRequestNotFound       ErrorCode = "GIG_REQUEST_NOT_FOUND"

	// Уведомления
	CodeNotificationNotFound ErrorCode = "NOTIFICATION_NOT_FOUND"

	// Общие
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeConflict      ErrorCode = "CONFLICT"
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
