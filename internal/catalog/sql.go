package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

// Schema creates the table read by LoadSQL. Genres are stored as a
// comma-separated list.
const Schema = `CREATE TABLE IF NOT EXISTS songs (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	artist      TEXT NOT NULL,
	album       TEXT,
	year        INTEGER,
	genre       TEXT NOT NULL DEFAULT '',
	language    TEXT NOT NULL DEFAULT 'English',
	lyrics      TEXT NOT NULL,
	cover_image TEXT NOT NULL DEFAULT '',
	preview_url TEXT,
	spotify_id  TEXT,
	youtube_id  TEXT,
	popularity  INTEGER NOT NULL DEFAULT 0
)`

var songColumns = []string{
	"id", "title", "artist", "album", "year", "genre", "language", "lyrics",
	"cover_image", "preview_url", "spotify_id", "youtube_id", "popularity",
}

// OpenSQLite opens a SQLite database file with the pure-Go driver.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

// LoadSQL reads every row of the songs table, most popular first.
func LoadSQL(ctx context.Context, db *sql.DB) ([]Song, error) {
	query, args, err := sq.Select(songColumns...).
		From("songs").
		OrderBy("popularity DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build song query: %w", err)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query songs: %w", err)
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		var (
			s                                Song
			album, preview, spotify, youtube sql.NullString
			year                             sql.NullInt64
			genre                            string
		)
		if err := rows.Scan(&s.ID, &s.Title, &s.Artist, &album, &year, &genre, &s.Language,
			&s.Lyrics, &s.CoverImage, &preview, &spotify, &youtube, &s.Popularity); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		s.Album = album.String
		s.Year = int(year.Int64)
		s.PreviewURL = preview.String
		s.SpotifyID = spotify.String
		s.YouTubeID = youtube.String
		s.Genre = splitGenres(genre)
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read songs: %w", err)
	}
	return songs, nil
}

// SaveSQL creates the songs table when missing and upserts songs into it.
func SaveSQL(ctx context.Context, db *sql.DB, songs []Song) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create songs table: %w", err)
	}
	if len(songs) == 0 {
		return nil
	}
	insert := sq.Insert("songs").Options("OR REPLACE").Columns(songColumns...)
	for _, s := range songs {
		insert = insert.Values(s.ID, s.Title, s.Artist, nullable(s.Album), nullableInt(s.Year),
			strings.Join(s.Genre, ","), s.Language, s.Lyrics, s.CoverImage,
			nullable(s.PreviewURL), nullable(s.SpotifyID), nullable(s.YouTubeID), s.Popularity)
	}
	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build song insert: %w", err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert songs: %w", err)
	}
	return nil
}

// LoadSQLite opens path and builds a catalog from its songs table.
func LoadSQLite(ctx context.Context, path string, opts ...Option) (*Catalog, error) {
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	songs, err := LoadSQL(ctx, db)
	if err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, fmt.Errorf("%s: songs table is empty", path)
	}
	return New(songs, opts...)
}

func splitGenres(raw string) []string {
	var out []string
	for _, g := range strings.Split(raw, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullableInt(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v != 0}
}
