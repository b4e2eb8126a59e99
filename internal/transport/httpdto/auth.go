package httpdto

// AuthRequest is the POST body of the /auth endpoint; Action selects
// which of the remaining fields are read.
type AuthRequest struct {
	Action string `json:"action"`

	// login / register
	Username string `json:"username"`
	Password string `json:"password"`

	// register
	AdminID         int64 `json:"admin_id"`
	IsFriendOfAdmin bool  `json:"is_friend_of_admin"`

	// update_profile
	UserID      int64  `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// UserDTO is the public profile returned by login.
type UserDTO struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username"`
	DisplayName     *string `json:"display_name"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	AvatarURL       *string `json:"avatar_url"`
	IsAdmin         bool    `json:"is_admin"`
	IsVerified      bool    `json:"is_verified"`
	IsFriendOfAdmin bool    `json:"is_friend_of_admin"`
}

// ProfileDTO is the full profile returned by the GET lookup.
type ProfileDTO struct {
	UserDTO
	StatusVisibility string  `json:"status_visibility"`
	LastSeen         *string `json:"last_seen"`
}

type RegisteredUserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type UpdatedUserDTO struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	DisplayName *string `json:"display_name"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	AvatarURL   *string `json:"avatar_url"`
}

type LoginResponse struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
	Token   string  `json:"token,omitempty"`
}

type RegisterResponse struct {
	Success bool              `json:"success"`
	User    RegisteredUserDTO `json:"user"`
}

type UpdateProfileResponse struct {
	Success bool           `json:"success"`
	User    UpdatedUserDTO `json:"user"`
}

type ProfileResponse struct {
	Success bool       `json:"success"`
	User    ProfileDTO `json:"user"`
}
