package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"user-account-api/internal"
	"user-account-api/internal/interface/api/rest/dto/user"
	"user-account-api/internal/interface/api/rest/validator"
)

var adminReq user.Request

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative account tasks",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an ADMIN account directly in the database",
	Long: `Create an ADMIN account directly in the database. Usage:

	useraccount admin create --email root@example.com --password '...' \
		--name Ivan --surname Petrov --patronymic Sergeevich --dob 1990-05-17
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := adminReq
		req.Role = "ADMIN"
		if errs := validator.ValidateRegistration(req); errs != nil {
			return fmt.Errorf("invalid admin: %v", errs)
		}
		u, err := user.ToDomainUser(req)
		if err != nil {
			return err
		}

		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		created, err := internal.BootstrapAdmin(cmd.Context(), logger, cfg, u, req.Password)
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}

		logger.Info("admin created", zap.Int64("id", created.ID), zap.String("email", created.Email))
		return nil
	},
}

func init() {
	f := adminCreateCmd.Flags()
	f.StringVar(&adminReq.Email, "email", "", "admin email")
	f.StringVar(&adminReq.Password, "password", "", "admin password")
	f.StringVar(&adminReq.Name, "name", "", "first name")
	f.StringVar(&adminReq.Surname, "surname", "", "surname")
	f.StringVar(&adminReq.Patronymic, "patronymic", "", "patronymic")
	f.StringVar(&adminReq.DateOfBirth, "dob", "", "date of birth, YYYY-MM-DD")
	for _, name := range []string{"email", "password", "name", "surname", "patronymic", "dob"} {
		_ = adminCreateCmd.MarkFlagRequired(name)
	}

	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminCreateCmd)
}
