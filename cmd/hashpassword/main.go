// Command hashpassword prints a bcrypt hash suitable for AUTH_ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tmhigienizacao/site-api/internal/auth"
)

func main() {
	cost := flag.Int("cost", 0, "bcrypt cost (0 uses the library default)")
	flag.Parse()

	password := strings.Join(flag.Args(), " ")
	if password == "" {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("read password: %v", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		log.Fatal("password must not be empty")
	}

	hashed, err := auth.HashPassword(password, *cost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	fmt.Println(hashed)
}
