package cli

import (
	"errors"
	"fmt"
	"strings"

	"qa-tracker-backend/internal/database/models"
	apperrors "qa-tracker-backend/internal/errors"
	"qa-tracker-backend/internal/repository"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UsersCmd returns the users command
func UsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(usersCreateCmd())
	cmd.AddCommand(usersSetRoleCmd())
	cmd.AddCommand(usersDeactivateCmd())

	return cmd
}

func usersCreateCmd() *cobra.Command {
	var (
		email    string
		fullName string
		role     string
		password string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a verified local account",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			user, err := createUser(repository.NewUserRepository(db), email, fullName, role, password)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s (%s) %s\n", color.New(color.FgGreen).Sprint("Created"), user.Email, user.Role, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&fullName, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&role, "role", string(models.RoleTester), "Global role: admin, lead or tester")
	cmd.Flags().StringVar(&password, "password", "", "Initial password, at least 8 characters (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func usersSetRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-role <email> <role>",
		Short: "Change the global role of a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			user, err := setUserRole(repository.NewUserRepository(db), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s is now %s\n", user.Email, color.New(color.FgCyan).Sprint(user.Role))
			return nil
		},
	}
}

func usersDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <email>",
		Short: "Deactivate a user so they can no longer sign in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			user, err := deactivateUser(repository.NewUserRepository(db), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", color.New(color.FgYellow).Sprint("Deactivated"), user.Email)
			return nil
		},
	}
}

func createUser(users repository.UserRepositoryInterface, email, fullName, role, password string) (*models.User, error) {
	parsed := models.Role(strings.ToLower(role))
	if !parsed.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be admin, lead or tester")
	}
	if len(password) < 8 {
		return nil, apperrors.NewValidationError("password", "must be at least 8 characters")
	}

	if _, err := users.GetByEmail(email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	encoded := string(hash)

	user := &models.User{
		Email:         strings.ToLower(strings.TrimSpace(email)),
		FullName:      strings.TrimSpace(fullName),
		Role:          parsed,
		IsActive:      true,
		EmailVerified: true,
		PasswordHash:  &encoded,
		AuthProvider:  models.AuthProviderLocal,
	}
	if err := users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func setUserRole(users repository.UserRepositoryInterface, email, role string) (*models.User, error) {
	parsed := models.Role(strings.ToLower(role))
	if !parsed.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be admin, lead or tester")
	}
	user, err := findUser(users, email)
	if err != nil {
		return nil, err
	}
	user.Role = parsed
	if err := users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func deactivateUser(users repository.UserRepositoryInterface, email string) (*models.User, error) {
	user, err := findUser(users, email)
	if err != nil {
		return nil, err
	}
	user.IsActive = false
	if err := users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func findUser(users repository.UserRepositoryInterface, email string) (*models.User, error) {
	user, err := users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}
