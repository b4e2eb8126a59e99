package httpdto

// Fixed localized error messages carried over from the public API
// contract. Clients match on these strings.
const (
	MsgInvalidRequest = "Неверный запрос"
	MsgBadCredentials = "Неверный логин или пароль"
	MsgUserNotFound   = "Пользователь не найден"
	MsgAdminOnly      = "Только администратор может создавать пользователей"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewErrorResponse(err string) ErrorResponse {
	return ErrorResponse{Success: false, Error: err}
}

type OKResponse struct {
	Success bool `json:"success"`
}
