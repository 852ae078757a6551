package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/filerepo/internal/application/dto"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/user"
	"github.com/YoshitsuguKoike/filerepo/internal/infrastructure/di"
)

type userFlags struct {
	name     string
	password string
}

func (f *userFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "user name")
	cmd.Flags().StringVar(&f.password, "password", "", "password, stored as given")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
}

func newUserCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(
		newUserAddCmd(s),
		newUserUpdateCmd(s),
		newUserDeleteCmd(s),
		newUserGetCmd(s),
		newUserListCmd(s),
	)
	return cmd
}

func newUserAddCmd(s *session) *cobra.Command {
	flags := &userFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withStores(func(c *di.Container) error {
				// The password is not normalized: it must round-trip byte for byte.
				added, err := c.UserRepository().Add(cmd.Context(),
					user.NewUser(normalizeText(flags.name), flags.password))
				if err != nil {
					return err
				}
				s.logger.Info("added user %d", added.ID)
				return s.presenter.PresentSuccess(fmt.Sprintf("User %d added", added.ID), dto.FromUser(added))
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newUserUpdateCmd(s *session) *cobra.Command {
	flags := &userFlags{}
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return s.fail(err)
			}
			return s.withStores(func(c *di.Container) error {
				updated := &user.User{ID: id, UserName: normalizeText(flags.name), Password: flags.password}
				if err := c.UserRepository().Update(cmd.Context(), updated); err != nil {
					return err
				}
				s.logger.Info("updated user %d", id)
				return s.presenter.PresentSuccess(fmt.Sprintf("User %d updated", id), dto.FromUser(updated))
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newUserDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return s.fail(err)
			}
			return s.withStores(func(c *di.Container) error {
				if err := c.UserRepository().Delete(cmd.Context(), id); err != nil {
					return err
				}
				s.logger.Info("deleted user %d", id)
				return s.presenter.PresentSuccess(fmt.Sprintf("User %d deleted", id),
					&dto.DeletedDTO{Entity: user.EntityName, ID: id})
			})
		},
	}
}

func newUserGetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return s.fail(err)
			}
			return s.withStores(func(c *di.Container) error {
				found, err := c.UserRepository().GetSingle(cmd.Context(), id)
				if err != nil {
					return err
				}
				return s.presenter.PresentSuccess("", dto.FromUser(found))
			})
		},
	}
}

func newUserListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users in stored order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withStores(func(c *di.Container) error {
				users, err := c.UserRepository().GetMany(cmd.Context())
				if err != nil {
					return err
				}
				return s.presenter.PresentSuccess("", dto.FromUsers(users))
			})
		},
	}
}
