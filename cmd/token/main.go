// Command token mints an access token for mailpassd from the server's
// configured secret key.
//
//	token -account 42 [-role superadmin] [-ttl 24h]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/mailpassd/internal/flagx"
	"github.com/dmitrijs2005/mailpassd/internal/server/auth"
	"github.com/dmitrijs2005/mailpassd/internal/server/config"
)

var serverFlags = []string{"-a", "-d", "-s", "-l", "-H", "-P", "-S", "-T", "-I", "-c", "-config", "-e", "-env"}

func main() {

	cfg := config.LoadConfig()

	fs := flag.NewFlagSet("token", flag.ExitOnError)
	account := fs.String("account", "", "account id the token is issued for")
	role := fs.String("role", string(auth.RoleUser), "role claim (user or superadmin)")
	ttl := fs.Duration("ttl", 24*time.Hour, "token validity")

	_ = fs.Parse(flagx.StripArgs(os.Args[1:], serverFlags))

	if *account == "" {
		fs.Usage()
		os.Exit(2)
	}

	r := auth.Role(*role)
	if r != auth.RoleUser && r != auth.RoleSuperAdmin {
		log.Fatalf("unknown role %q", *role)
	}

	token, err := auth.GenerateToken(*account, r, []byte(cfg.SecretKey), *ttl)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println(token)

}
