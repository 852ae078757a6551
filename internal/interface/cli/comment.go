package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/filerepo/internal/application/dto"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/comment"
	"github.com/YoshitsuguKoike/filerepo/internal/infrastructure/di"
)

type commentFlags struct {
	body   string
	postID int
	userID int
}

func (f *commentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.body, "body", "", "comment body")
	cmd.Flags().IntVar(&f.postID, "post-id", 0, "post the comment belongs to")
	cmd.Flags().IntVar(&f.userID, "user-id", 0, "user who wrote the comment")
	_ = cmd.MarkFlagRequired("body")
	_ = cmd.MarkFlagRequired("post-id")
	_ = cmd.MarkFlagRequired("user-id")
}

func newCommentCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Manage comments",
	}
	cmd.AddCommand(newCommentAddCmd(s))
	cmd.AddCommand(newCommentUpdateCmd(s))
	cmd.AddCommand(newCommentDeleteCmd(s))
	cmd.AddCommand(newCommentGetCmd(s))
	cmd.AddCommand(newCommentListCmd(s))
	return cmd
}

func newCommentAddCmd(s *session) *cobra.Command {
	flags := &commentFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a comment",
		Long:  "Add a comment. The store assigns the next identifier.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withStores(func(c *di.Container) error {
				added, err := c.CommentRepository().Add(cmd.Context(),
					comment.NewComment(normalizeText(flags.body), flags.postID, flags.userID))
				if err != nil {
					return err
				}
				s.logger.Info("added comment %d", added.ID)
				return s.presenter.PresentSuccess(fmt.Sprintf("Comment %d added", added.ID), dto.FromComment(added))
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newCommentUpdateCmd(s *session) *cobra.Command {
	flags := &commentFlags{}
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a comment",
		Long:  "Replace every field of an existing comment. The updated comment moves to the end of the list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return s.fail(err)
			}
			return s.withStores(func(c *di.Container) error {
				updated := &comment.Comment{
					ID:     id,
					Body:   normalizeText(flags.body),
					PostID: flags.postID,
					UserID: flags.userID,
				}
				if err := c.CommentRepository().Update(cmd.Context(), updated); err != nil {
					return err
				}
				s.logger.Info("updated comment %d", id)
				return s.presenter.PresentSuccess(fmt.Sprintf("Comment %d updated", id), dto.FromComment(updated))
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newCommentDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return s.fail(err)
			}
			return s.withStores(func(c *di.Container) error {
				if err := c.CommentRepository().Delete(cmd.Context(), id); err != nil {
					return err
				}
				s.logger.Info("deleted comment %d", id)
				return s.presenter.PresentSuccess(fmt.Sprintf("Comment %d deleted", id),
					&dto.DeletedDTO{Entity: comment.EntityName, ID: id})
			})
		},
	}
}

func newCommentGetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return s.fail(err)
			}
			return s.withStores(func(c *di.Container) error {
				found, err := c.CommentRepository().GetSingle(cmd.Context(), id)
				if err != nil {
					return err
				}
				return s.presenter.PresentSuccess("", dto.FromComment(found))
			})
		},
	}
}

func newCommentListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all comments in stored order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withStores(func(c *di.Container) error {
				comments, err := c.CommentRepository().GetMany(cmd.Context())
				if err != nil {
					return err
				}
				return s.presenter.PresentSuccess("", dto.FromComments(comments))
			})
		},
	}
}
