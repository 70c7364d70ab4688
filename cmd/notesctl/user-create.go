package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/notes-in-go/pkg/db"
	"github.com/doodlesbykumbi/notes-in-go/pkg/model"
	"github.com/doodlesbykumbi/notes-in-go/pkg/password"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server/store"
	gormstore "github.com/doodlesbykumbi/notes-in-go/pkg/server/store/gorm"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create [name] [email]",
	Short: "Create a user account",
	Long: `Create a user account.

The password is read from stdin so it never appears in shell history or
process listings. The new user's ID is printed to stdout.

Example:
  notesctl user create --name Alice --email alice@example.com < password.txt
  echo -n "s3cret!" | notesctl user create -n Alice -e alice@example.com`,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		if name == "" && len(args) > 0 {
			name = args[0]
		}
		if email == "" && len(args) > 1 {
			email = args[1]
		}

		if name == "" || email == "" {
			fmt.Fprintln(os.Stderr, "Both --name and --email are required")
			os.Exit(1)
		}

		userID, err := createUser(name, email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created user '%s'\n", email)
		fmt.Println(userID)
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().StringP("name", "n", "", "Display name")
	userCreateCmd.Flags().StringP("email", "e", "", "Email address (used to log in)")
}

func createUser(name, email string) (string, error) {
	plaintext, err := readPassword(os.Stdin)
	if err != nil {
		return "", err
	}

	hasher := password.NewHasher()
	digest, err := hasher.Hash(plaintext)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", err
	}

	user := &model.User{
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: digest,
	}

	users := gormstore.NewUsersStore(database)
	if err := users.CreateUser(user); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			return "", fmt.Errorf("a user with email '%s' already exists", user.Email)
		}
		return "", err
	}

	return user.ID, nil
}

func readPassword(r *os.File) (string, error) {
	if isTerminal(r) {
		fmt.Fprint(os.Stderr, "Password: ")
	}

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no password provided on stdin")
	}

	plaintext := strings.TrimRight(scanner.Text(), "\r\n")
	if plaintext == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return plaintext, nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
