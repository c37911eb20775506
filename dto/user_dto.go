package dto

import "blog-admin/models"

type SignupInput struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Password  string `json:"password"`
}

// UpdateUserInput carries a partial update; nil fields are left untouched.
// The id and api token are never accepted from a payload.
type UpdateUserInput struct {
	Username  *string `json:"username"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Role      *string `json:"role"`
	Password  *string `json:"password"`
}

// UserListResponse is the list view: id, username and role only.
type UserListResponse struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// UserDetailResponse is the detail view. The password hash and the API token
// are deliberately absent from every outbound struct.
type UserDetailResponse struct {
	ID        uint        `json:"id"`
	Username  string      `json:"username"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Role      models.Role `json:"role"`
	Articles  []uint      `json:"articles"`
}

func NewUserListResponse(user *models.User) UserListResponse {
	return UserListResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

func NewUserListResponses(users []models.User) []UserListResponse {
	responses := make([]UserListResponse, 0, len(users))
	for i := range users {
		responses = append(responses, NewUserListResponse(&users[i]))
	}
	return responses
}

func NewUserDetailResponse(user *models.User) UserDetailResponse {
	articleIDs := make([]uint, 0, len(user.Articles))
	for _, article := range user.Articles {
		articleIDs = append(articleIDs, article.ID)
	}
	return UserDetailResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Articles:  articleIDs,
	}
}
