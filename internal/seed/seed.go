// Package seed resets the schema and loads development fixture data.
// It is invoked by cmd/seed and is never part of request-time behavior.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ncnews/news-api/internal/platform/postgres"
)

// Run drops and recreates the schema, then bulk-inserts the fixture
// topics, users, articles and comments. Comments are seeded last so
// their article titles can be resolved to generated ids.
func Run(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	if err := postgres.MigrateReset(ctx, db); err != nil {
		return err
	}

	if err := insertTopics(ctx, db); err != nil {
		return fmt.Errorf("failed to seed topics: %w", err)
	}
	if err := insertUsers(ctx, db); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	articleIDs, err := insertArticles(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to seed articles: %w", err)
	}
	if err := insertComments(ctx, db, articleIDs); err != nil {
		return fmt.Errorf("failed to seed comments: %w", err)
	}

	log.Info("seed complete",
		slog.Int("topics", len(topicData)),
		slog.Int("users", len(userData)),
		slog.Int("articles", len(articleData)),
		slog.Int("comments", len(commentData)))
	return nil
}

// valuesClause builds the ($1,$2,...),($4,$5,...) placeholder list for a
// multi-row insert of rows rows with width columns each.
func valuesClause(rows, width int) string {
	var sb strings.Builder
	n := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for c := 0; c < width; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", n)
			n++
		}
		sb.WriteString(")")
	}
	return sb.String()
}

func msToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func insertTopics(ctx context.Context, db *sql.DB) error {
	query := `INSERT INTO topics (description, slug, img_url) VALUES ` +
		valuesClause(len(topicData), 3)

	args := make([]any, 0, len(topicData)*3)
	for _, t := range topicData {
		args = append(args, t.Description, t.Slug, t.ImgURL)
	}
	_, err := db.ExecContext(ctx, query, args...)
	return err
}

func insertUsers(ctx context.Context, db *sql.DB) error {
	query := `INSERT INTO users (username, name, avatar_url) VALUES ` +
		valuesClause(len(userData), 3)

	args := make([]any, 0, len(userData)*3)
	for _, u := range userData {
		args = append(args, u.Username, u.Name, u.AvatarURL)
	}
	_, err := db.ExecContext(ctx, query, args...)
	return err
}

func insertArticles(ctx context.Context, db *sql.DB) (map[string]int64, error) {
	query := `INSERT INTO articles (created_at, title, topic, author, body, votes, article_img_url) VALUES ` +
		valuesClause(len(articleData), 7) + ` RETURNING article_id, title`

	args := make([]any, 0, len(articleData)*7)
	for _, a := range articleData {
		args = append(args, msToTime(a.CreatedAtMs), a.Title, a.Topic, a.Author, a.Body, a.Votes, a.ArticleImgURL)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	ids := make(map[string]int64, len(articleData))
	for rows.Next() {
		var (
			id    int64
			title string
		)
		if err := rows.Scan(&id, &title); err != nil {
			return nil, err
		}
		ids[title] = id
	}
	return ids, rows.Err()
}

func insertComments(ctx context.Context, db *sql.DB, articleIDs map[string]int64) error {
	query := `INSERT INTO comments (created_at, body, votes, author, article_id) VALUES ` +
		valuesClause(len(commentData), 5)

	args := make([]any, 0, len(commentData)*5)
	for _, c := range commentData {
		id, ok := articleIDs[c.ArticleTitle]
		if !ok {
			return fmt.Errorf("comment references unknown article %q", c.ArticleTitle)
		}
		args = append(args, msToTime(c.CreatedAtMs), c.Body, c.Votes, c.Author, id)
	}
	_, err := db.ExecContext(ctx, query, args...)
	return err
}
