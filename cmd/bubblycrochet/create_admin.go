package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"bubblycrochet/internal/config"
	"bubblycrochet/internal/domain"
	"bubblycrochet/internal/repos"
	"bubblycrochet/internal/validate"
)

// create-admin is the only way to mint an admin account; registration always
// produces clients.
func createAdminCmd() *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create or update the store admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, okE := validate.Email(email)
			if !okE {
				return errors.New("invalid email")
			}
			if !validate.Password(password) {
				return errors.New("password must be at least 6 characters")
			}
			if name == "" {
				name = "Store Owner"
			}

			cfg := config.Load()
			db, err := repos.OpenDB(cfg.DBDSN)
			if err != nil {
				return err
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
			if err != nil {
				return err
			}

			users := repos.NewUserRepo(db)
			if existing, err := users.ByEmail(email); err == nil {
				// Promote-or-reset an existing account
				if _, err := db.Exec(`UPDATE users SET role=?, password_hash=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
					domain.RoleAdmin, string(hash), existing.ID); err != nil {
					return err
				}
				fmt.Printf("admin account updated: %s\n", email)
				return nil
			}

			u := &domain.User{
				ID:     uuid.NewString(),
				Email:  email,
				Name:   name,
				Hash:   string(hash),
				Role:   domain.RoleAdmin,
				Avatar: "https://ui-avatars.com/api/?name=BC&background=d946ef&color=fff",
				Active: true,
			}
			u.EncodeInterests()
			if err := users.Create(u); err != nil {
				return err
			}
			fmt.Printf("admin account created: %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email (required)")
	cmd.Flags().StringVar(&password, "password", "", "admin password (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
