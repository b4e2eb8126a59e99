package httpdto

// The search endpoint predates the localized messages and answers in
// English; clients match on these strings too.
const (
	MsgQueryRequired = "Query parameter q is required"
	MsgPairRequired  = "user_id and target_user_id are required"
	MsgContactAdded  = "Contact added successfully"
	MsgContactExists = "Contact already exists"
)

// SearchAddContactRequest is the POST body of the /search-users endpoint.
type SearchAddContactRequest struct {
	UserID       int64 `json:"user_id"`
	TargetUserID int64 `json:"target_user_id"`
}

type SearchUserDTO struct {
	UserID      int64   `json:"user_id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	AvatarURL   *string `json:"avatar_url"`
	IsVerified  bool    `json:"is_verified"`
	IsContact   bool    `json:"is_contact"`
}

type SearchResponse struct {
	Success bool            `json:"success"`
	Users   []SearchUserDTO `json:"users"`
}

type SearchAddContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
