package dto

import (
	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/comment"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/user"
)

// CommentDTO is the presentation shape of a comment
type CommentDTO struct {
	ID     int    `json:"id"`
	Body   string `json:"body"`
	PostID int    `json:"post_id"`
	UserID int    `json:"user_id"`
}

// UserDTO is the presentation shape of a user. The password never leaves the store.
type UserDTO struct {
	ID       int    `json:"id"`
	UserName string `json:"user_name"`
}

// CommentListDTO wraps a list of comments
type CommentListDTO struct {
	Comments []CommentDTO `json:"comments"`
	Count    int          `json:"count"`
}

// UserListDTO wraps a list of users
type UserListDTO struct {
	Users []UserDTO `json:"users"`
	Count int       `json:"count"`
}

// DeletedDTO reports a removed record
type DeletedDTO struct {
	Entity string `json:"entity"`
	ID     int    `json:"id"`
}

// FromComment converts a domain comment
func FromComment(c *comment.Comment) CommentDTO {
	return CommentDTO{ID: c.ID, Body: c.Body, PostID: c.PostID, UserID: c.UserID}
}

// FromComments converts a list of domain comments
func FromComments(comments []*comment.Comment) *CommentListDTO {
	list := &CommentListDTO{Comments: make([]CommentDTO, 0, len(comments))}
	for _, c := range comments {
		list.Comments = append(list.Comments, FromComment(c))
	}
	list.Count = len(list.Comments)
	return list
}

// FromUser converts a domain user
func FromUser(u *user.User) UserDTO {
	return UserDTO{ID: u.ID, UserName: u.UserName}
}

// FromUsers converts a list of domain users
func FromUsers(users []*user.User) *UserListDTO {
	list := &UserListDTO{Users: make([]UserDTO, 0, len(users))}
	for _, u := range users {
		list.Users = append(list.Users, FromUser(u))
	}
	list.Count = len(list.Users)
	return list
}
