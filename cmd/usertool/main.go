// Command usertool manages user credential records directly in the
// database. Registration has no network endpoint; this tool is the
// administrative path for seeding and removing logins.
//
//	usertool -d <dsn> -u alice -rights 1,2,3          # add a record
//	usertool -d <dsn> -u alice -delete                # remove record(s)
//
// The password is prompted on the terminal and never echoed.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/authgate/internal/server/models"
	"github.com/dmitrijs2005/authgate/internal/server/repositories/repomanager"
	"golang.org/x/term"
)

func main() {
	var (
		dsn      = flag.String("d", "", "PostgreSQL DSN")
		username = flag.String("u", "", "username")
		rights   = flag.String("rights", "", "comma-separated access rights, e.g. 1,2,3")
		del      = flag.Bool("delete", false, "delete matching credential record(s) instead of adding")
	)
	flag.Parse()

	if *dsn == "" || *username == "" {
		flag.Usage()
		os.Exit(2)
	}

	accessRights, err := parseRights(*rights)
	if err != nil {
		log.Fatalf("invalid -rights value: %v", err)
	}

	fmt.Println("Enter password")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("reading password: %v", err)
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repos := repomanager.NewPostgresRepositoryManager()
	if err := repos.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	creds := &models.UserCredentials{
		Username:     *username,
		Password:     string(password),
		AccessRights: accessRights,
	}

	repo := repos.Credentials(db)
	if *del {
		err = repo.Delete(ctx, creds)
	} else {
		err = repo.Put(ctx, creds)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println("Success!")
}

func parseRights(s string) ([]int, error) {
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}
