package presenter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/YoshitsuguKoike/filerepo/internal/application/dto"
	"github.com/YoshitsuguKoike/filerepo/internal/application/port/output"
)

// CLIPresenter implements output.Presenter for human-readable terminal output
type CLIPresenter struct {
	output io.Writer
}

// NewCLIPresenter creates a new CLI presenter
func NewCLIPresenter(output io.Writer) output.Presenter {
	return &CLIPresenter{output: output}
}

// PresentSuccess presents a successful result
func (p *CLIPresenter) PresentSuccess(message string, data interface{}) error {
	if message != "" {
		fmt.Fprintf(p.output, "✓ %s\n", message)
	}

	switch v := data.(type) {
	case nil:
		return nil
	case dto.CommentDTO:
		return p.presentComment(v)
	case *dto.CommentListDTO:
		return p.presentCommentList(v)
	case dto.UserDTO:
		return p.presentUser(v)
	case *dto.UserListDTO:
		return p.presentUserList(v)
	case *dto.DeletedDTO:
		return nil
	case *dto.ConfigDTO:
		return p.presentConfig(v)
	default:
		// Fallback for unknown types
		fmt.Fprintf(p.output, "%+v\n", data)
	}
	return nil
}

// PresentError presents an error
func (p *CLIPresenter) PresentError(err error) error {
	fmt.Fprintf(p.output, "✗ Error: %v\n", err)
	return nil
}

func (p *CLIPresenter) presentComment(c dto.CommentDTO) error {
	fmt.Fprintf(p.output, "ID:      %d\n", c.ID)
	fmt.Fprintf(p.output, "Post ID: %d\n", c.PostID)
	fmt.Fprintf(p.output, "User ID: %d\n", c.UserID)
	fmt.Fprintf(p.output, "Body:    %s\n", c.Body)
	return nil
}

func (p *CLIPresenter) presentCommentList(list *dto.CommentListDTO) error {
	if list.Count == 0 {
		fmt.Fprintln(p.output, "No comments found")
		return nil
	}

	w := tabwriter.NewWriter(p.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPOST\tUSER\tBODY")
	for _, c := range list.Comments {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", c.ID, c.PostID, c.UserID, c.Body)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(p.output, "\nTotal: %d comment(s)\n", list.Count)
	return nil
}

func (p *CLIPresenter) presentUser(u dto.UserDTO) error {
	fmt.Fprintf(p.output, "ID:       %d\n", u.ID)
	fmt.Fprintf(p.output, "UserName: %s\n", u.UserName)
	return nil
}

func (p *CLIPresenter) presentUserList(list *dto.UserListDTO) error {
	if list.Count == 0 {
		fmt.Fprintln(p.output, "No users found")
		return nil
	}

	w := tabwriter.NewWriter(p.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME")
	for _, u := range list.Users {
		fmt.Fprintf(w, "%d\t%s\n", u.ID, u.UserName)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(p.output, "\nTotal: %d user(s)\n", list.Count)
	return nil
}

func (p *CLIPresenter) presentConfig(c *dto.ConfigDTO) error {
	w := tabwriter.NewWriter(p.output, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "source:\t%s\n", c.Source)
	if c.SettingPath != "" {
		fmt.Fprintf(w, "setting_path:\t%s\n", c.SettingPath)
	}
	fmt.Fprintf(w, "backend:\t%s\n", c.Backend)
	fmt.Fprintf(w, "format:\t%s\n", c.Format)
	fmt.Fprintf(w, "data_dir:\t%s\n", c.DataDir)
	if c.Backend == "sqlite" {
		fmt.Fprintf(w, "db_path:\t%s\n", c.DBPath)
	} else {
		fmt.Fprintf(w, "comments_path:\t%s\n", c.CommentsPath)
		fmt.Fprintf(w, "users_path:\t%s\n", c.UsersPath)
	}
	fmt.Fprintf(w, "serialize:\t%t\n", c.Serialize)
	fmt.Fprintf(w, "stderr_level:\t%s\n", c.StderrLevel)
	fmt.Fprintf(w, "output:\t%s\n", c.Output)
	return w.Flush()
}
