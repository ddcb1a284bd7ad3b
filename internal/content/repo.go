package content

import (
	"context"
	"database/sql"
	"time"
)

// Article is a learning-hub entry. Content is editorial and read-only from
// the API's point of view; nothing user-generated is ever written here.
type Article struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Summary     string    `json:"summary"`
	Body        string    `json:"body,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

type Category struct {
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	ArticleCount int    `json:"article_count"`
}

type Repository interface {
	ListArticles(ctx context.Context, category string) ([]Article, error)
	GetArticle(ctx context.Context, slug string) (Article, error)
	ListCategories(ctx context.Context) ([]Category, error)
}

type PostgresContentRepository struct {
	db *sql.DB
}

func NewPostgresContentDB(db *sql.DB) *PostgresContentRepository {
	return &PostgresContentRepository{db: db}
}

func (r *PostgresContentRepository) ListArticles(ctx context.Context, category string) ([]Article, error) {
	query := `SELECT slug, title, category, summary, published_at
	          FROM articles WHERE $1 = '' OR category = $1
	          ORDER BY published_at DESC`
	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Article
	for rows.Next() {
		var a Article
		if err := rows.Scan(&a.Slug, &a.Title, &a.Category, &a.Summary, &a.PublishedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresContentRepository) GetArticle(ctx context.Context, slug string) (Article, error) {
	var a Article
	query := `SELECT slug, title, category, summary, body, published_at
	          FROM articles WHERE slug = $1`
	err := r.db.QueryRowContext(ctx, query, slug).
		Scan(&a.Slug, &a.Title, &a.Category, &a.Summary, &a.Body, &a.PublishedAt)
	return a, err
}

func (r *PostgresContentRepository) ListCategories(ctx context.Context) ([]Category, error) {
	query := `SELECT c.slug, c.name, COUNT(a.slug)
	          FROM categories c LEFT JOIN articles a ON a.category = c.slug
	          GROUP BY c.slug, c.name ORDER BY c.name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.Slug, &c.Name, &c.ArticleCount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
