package comment

// Comment is a comment left by a user on a post.
// Only ID is meaningful to the repositories; the rest is carried as-is.
type Comment struct {
	ID     int    `json:"id" yaml:"id"`
	Body   string `json:"body" yaml:"body"`
	PostID int    `json:"post_id" yaml:"post_id"`
	UserID int    `json:"user_id" yaml:"user_id"`
}

// NewComment creates a comment that has not been stored yet.
// The ID is assigned by the repository on Add.
func NewComment(body string, postID, userID int) *Comment {
	return &Comment{
		Body:   body,
		PostID: postID,
		UserID: userID,
	}
}

// EntityName is used in not-found messages
const EntityName = "Comment"
