package main

import (
	"context"
	"database/sql"
	_ "embed"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/seller-pnl-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-pnl-api/internal/config"
)

//go:embed schema.sql
var schema string

// carga inicial opcional, lida do ambiente
type seed struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
	ShopName      string
	ShopToken     string
}

func seedFromEnv() seed {
	return seed{
		AdminName:     envOr("SEED_ADMIN_NAME", "Administrador"),
		AdminEmail:    strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL"))),
		AdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
		ShopName:      os.Getenv("SEED_SHOP_NAME"),
		ShopToken:     os.Getenv("SEED_SHOP_TOKEN"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupLogger() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func applySchema(tx *sql.Tx) {
	log.Println("Aplicando schema...")
	startTime := time.Now()

	if _, err := tx.Exec(schema); err != nil {
		log.Fatalf("ERRO ao aplicar schema: %v", err)
	}

	log.Printf("Schema aplicado em %v", time.Since(startTime))
}

func insertAdmin(tx *sql.Tx, s seed) int {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("ERRO ao gerar hash da senha: %v", err)
	}

	var userID int
	err = tx.QueryRow(`
		INSERT INTO users (name, email, password_hash, role_id)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = NOW()
		RETURNING id`,
		s.AdminName, s.AdminEmail, string(hash),
	).Scan(&userID)
	if err != nil {
		log.Fatalf("ERRO ao inserir administrador %s: %v", s.AdminEmail, err)
	}

	log.Printf("Administrador %s pronto (ID: %d)", s.AdminEmail, userID)
	return userID
}

func insertShop(tx *sql.Tx, s seed, userID int) {
	var shopID int64
	err := tx.QueryRow(`INSERT INTO shops (name, api_token) VALUES ($1, $2) RETURNING id`, s.ShopName, s.ShopToken).Scan(&shopID)
	if err != nil {
		log.Fatalf("ERRO ao inserir loja %s: %v", s.ShopName, err)
	}

	if userID > 0 {
		_, err = tx.Exec(`INSERT INTO user_shops (user_id, shop_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, userID, shopID)
		if err != nil {
			log.Fatalf("ERRO ao vincular loja %d ao usuário %d: %v", shopID, userID, err)
		}
	}

	log.Printf("Loja %s cadastrada (ID: %d)", s.ShopName, shopID)
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	s := seedFromEnv()
	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		applySchema(tx)

		userID := 0
		if s.AdminEmail != "" && s.AdminPassword != "" {
			userID = insertAdmin(tx, s)
		}

		if s.ShopName != "" && s.ShopToken != "" {
			insertShop(tx, s, userID)
		}

		return nil
	})
	if err != nil {
		log.Printf("ERRO ao confirmar transação: %v", err)
		os.Exit(1)
	}

	log.Printf("Migração concluída em %v!", time.Since(startTime))
}
