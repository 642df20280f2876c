package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uongozi/uongozi/internal/application"
	"github.com/uongozi/uongozi/internal/domain"
)

var registerFlags struct {
	firstName    string
	lastName     string
	email        string
	password     string
	county       string
	constituency string
	ward         string
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account tied to your county, constituency and ward",
	RunE:  runRegister,
}

var loginFlags struct {
	email    string
	password string
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to an existing account",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	RunE:  runLogout,
}

func init() {
	f := registerCmd.Flags()
	f.StringVar(&registerFlags.firstName, "first-name", "", "first name")
	f.StringVar(&registerFlags.lastName, "last-name", "", "last name")
	f.StringVar(&registerFlags.email, "email", "", "email address")
	f.StringVar(&registerFlags.password, "password", "", "password")
	f.StringVar(&registerFlags.county, "county", "", "home county")
	f.StringVar(&registerFlags.constituency, "constituency", "", "home constituency")
	f.StringVar(&registerFlags.ward, "ward", "", "home ward")

	loginCmd.Flags().StringVar(&loginFlags.email, "email", "", "email address")
	loginCmd.Flags().StringVar(&loginFlags.password, "password", "", "password")
}

func runRegister(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	session, err := rt.app.Register(cmd.Context(), domain.Registration{
		FirstName: registerFlags.firstName,
		LastName:  registerFlags.lastName,
		Email:     registerFlags.email,
		Password:  registerFlags.password,
		Geography: domain.Geography{
			County:       registerFlags.county,
			Constituency: registerFlags.constituency,
			Ward:         registerFlags.ward,
		},
	})
	if err != nil {
		return err
	}

	if err := saveSession(session); err != nil {
		rt.logger.Warn("could not persist session", zap.Error(err))
	}

	fmt.Printf("Welcome, %s. Your account is tied to %s ward, %s.\n",
		session.User.FirstName, session.User.Ward, session.User.County)
	fmt.Println("Next:", application.RouteForRole(session.User.Role))
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	session, err := rt.app.Login(cmd.Context(), domain.Credentials{
		Email:    loginFlags.email,
		Password: loginFlags.password,
	})
	if err != nil {
		return err
	}

	if err := saveSession(session); err != nil {
		rt.logger.Warn("could not persist session", zap.Error(err))
	}

	fmt.Printf("Signed in as %s.\n", session.User.FirstName)
	fmt.Println("Next:", application.RouteForRole(session.User.Role))
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	rt.app.Logout()
	clearSessionFile()
	fmt.Println("Signed out.")
	return nil
}
