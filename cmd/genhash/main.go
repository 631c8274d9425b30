// Prints a bcrypt hash for the given password, for seeding staff accounts
// by hand. Usage: go run ./cmd/genhash [password]
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

const defaultPassword = "kush2026"

func main() {
	password := defaultPassword
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}
	fmt.Println(string(hash))
}
