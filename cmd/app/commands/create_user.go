package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	userUseCase "github.com/allisson/store/internal/user/usecase"
)

// RunCreateUser registers a user from the command line. When password is empty it is read
// from io.Reader. Output is written as text or JSON depending on format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	useCase userUseCase.UseCase,
	logger *slog.Logger,
	username string,
	pseudonym string,
	password string,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new user", slog.String("username", username))

	if password == "" {
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return fmt.Errorf("failed to get password: %w", err)
		}
	}

	user, err := useCase.Register(ctx, userUseCase.RegisterUserInput{
		Username:  username,
		Pseudonym: pseudonym,
		Password:  password,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		if err := writeJSON(io.Writer, map[string]string{
			"id":        user.ID.String(),
			"username":  user.Username,
			"pseudonym": user.Pseudonym,
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(io.Writer, "\nUser created successfully!")
		_, _ = fmt.Fprintf(io.Writer, "User ID: %s\n", user.ID.String())
		_, _ = fmt.Fprintf(io.Writer, "Username: %s\n", user.Username)
		_, _ = fmt.Fprintf(io.Writer, "Pseudonym: %s\n", user.Pseudonym)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)

	return nil
}

// promptForPassword reads a single line password.
func promptForPassword(io IOTuple) (string, error) {
	_, _ = fmt.Fprint(io.Writer, "Enter password: ")

	line, err := bufio.NewReader(io.Reader).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}
