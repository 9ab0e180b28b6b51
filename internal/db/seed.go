package db

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	username string
	email    string
	password string
	bio      string
	rating   float64
	reviews  int
}

type seedItem struct {
	title       string
	description string
	price       float64
	condition   string
	category    string
	size        string
	brand       string
	image       string
	seller      string
}

var seedUsers = []seedUser{
	{"marie_123", "marie@example.com", "password123", "Vendeuse de vêtements de qualité", 4.5, 27},
	{"jean_running", "jean@example.com", "password123", "Passionné par le running", 4.8, 8},
	{"sophie_style", "sophie@example.com", "password123", "Accessoires de mode tendance", 4.6, 15},
	{"tech_lover", "tech@example.com", "password123", "Technologie et gadgets", 4.9, 20},
}

var seedItems = []seedItem{
	{"Robe Rouge Été Taille M", "Robe rouge légère, parfaite pour l'été. Portée 2 fois seulement.", 25, "Très bon état", "Vêtements", "M", "Zara", "https://via.placeholder.com/400x500/ff6b6b/ffffff?text=Robe+Rouge", "marie_123"},
	{"Baskets Nike Air Max", "Baskets de sport Nike en bon état. Très confortables pour la course.", 60, "Bon état", "Chaussures", "42", "Nike", "https://via.placeholder.com/400x500/4ecdc4/ffffff?text=Nike+Air+Max", "jean_running"},
	{"Sac à Main Cuir Marron", "Sac à main en cuir véritable, style vintage. Excellent état.", 45, "Très bon état", "Accessoires", "Unique", "Fossil", "https://via.placeholder.com/400x500/8B4513/ffffff?text=Sac+Cuir", "sophie_style"},
	{"MacBook Pro 13\" 2020", "MacBook Pro 13 pouces 2020. État quasi neuf, vendu avec chargeur.", 900, "Très bon état", "Électronique", "13 pouces", "Apple", "https://via.placeholder.com/400x500/95a5a6/ffffff?text=MacBook+Pro", "tech_lover"},
	{"Chemise Blanche Coton", "Chemise blanche en coton pur, jamais portée avec étiquette.", 18, "Neuf", "Vêtements", "S", "H&M", "https://via.placeholder.com/400x500/ffffff/333333?text=Chemise+Blanche", "marie_123"},
	{"Bottes Cuir Noir", "Bottes en cuir véritable, élégantes et confortables.", 75, "Bon état", "Chaussures", "38", "Minelli", "https://via.placeholder.com/400x500/000000/ffffff?text=Bottes+Cuir", "sophie_style"},
	{"Montre Connectée Samsung", "Montre connectée Samsung Galaxy Watch. Fonctionne parfaitement.", 150, "Très bon état", "Électronique", "Unique", "Samsung", "https://via.placeholder.com/400x500/000080/ffffff?text=Samsung+Watch", "tech_lover"},
	{"Veste en Jean", "Veste en jean classique, couleur bleu clair. Parfait état.", 35, "Très bon état", "Vêtements", "M", "Levi's", "https://via.placeholder.com/400x500/5dade2/ffffff?text=Veste+Jean", "marie_123"},
}

// Seed inserts demo users, items, reviews and messages if the database
// is empty. Passwords are hashed like any regular registration.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	userIDs := make(map[string]int64)
	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing seed password: %w", err)
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, email, password_hash, bio, rating, reviews_count)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			u.username, u.email, string(hash), u.bio, u.rating, u.reviews,
		)
		if err != nil {
			return fmt.Errorf("seeding user %s: %w", u.username, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting seed user id: %w", err)
		}
		userIDs[u.username] = id
	}

	itemIDs := make(map[string]int64)
	for _, it := range seedItems {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO items (title, description, price, condition, category, size, brand, image_url, seller_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			it.title, it.description, it.price, it.condition, it.category, it.size, it.brand, it.image, userIDs[it.seller],
		)
		if err != nil {
			return fmt.Errorf("seeding item %s: %w", it.title, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting seed item id: %w", err)
		}
		itemIDs[it.title] = id
	}

	reviews := []struct {
		seller   string
		reviewer string
		rating   int
		comment  string
	}{
		{"marie_123", "luc_buyer", 5, "Excellent service, livraison rapide! Article conforme à la description."},
		{"sophie_style", "clara_22", 4, "Très contente de mon achat. Le sac est superbe."},
		{"tech_lover", "paul_tech", 5, "Vendeur sérieux, produit en excellent état. Je recommande!"},
		{"marie_123", "emma_style", 4, "Belle robe, conforme aux photos. Livraison un peu longue."},
	}
	for _, rv := range reviews {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO reviews (seller_id, reviewer, rating, comment) VALUES (?, ?, ?, ?)`,
			userIDs[rv.seller], rv.reviewer, rv.rating, rv.comment,
		)
		if err != nil {
			return fmt.Errorf("seeding review: %w", err)
		}
	}

	messages := []struct {
		sender   string
		receiver string
		content  string
		item     string
	}{
		{"marie_123", "jean_running", "Oui, l'article est toujours disponible!", "Robe Rouge Été Taille M"},
		{"jean_running", "marie_123", "Parfait! Est-ce que vous acceptez les négociations?", "Robe Rouge Été Taille M"},
		{"sophie_style", "marie_123", "Merci pour votre achat!", "Sac à Main Cuir Marron"},
	}
	for _, m := range messages {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO messages (sender_id, receiver_id, content, item_id) VALUES (?, ?, ?, ?)`,
			userIDs[m.sender], userIDs[m.receiver], m.content, itemIDs[m.item],
		)
		if err != nil {
			return fmt.Errorf("seeding message: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}
